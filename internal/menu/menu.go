// internal/menu/menu.go
//
// Roasted Fig – Menu catalog.
//
// Context
//   The menu page and its search box are driven by `conf/menu.yaml`.  The
//   catalog is loaded through Koanf (same parser stack as global config) and
//   kept behind a RWMutex so the file can be re-read while requests are in
//   flight.  Search is a case-insensitive substring match over each item's
//   title and description, mirroring the site's live filter box.
//
//------------------------------------------------------------------------------

package menu

import (
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

// Item is one dish or drink on the menu.
type Item struct {
	Title       string  `koanf:"title"       json:"title"`
	Description string  `koanf:"description" json:"description"`
	Price       float64 `koanf:"price"       json:"price"`
}

// Category groups items under a menu heading (breakfast, mains, drinks …).
type Category struct {
	Name  string `koanf:"name"  json:"name"`
	Items []Item `koanf:"items" json:"items"`
}

// Catalog is the loaded menu plus the rotating daily special.
type Catalog struct {
	mu         sync.RWMutex
	path       string
	categories []Category
	specialIdx int
}

// Load reads the catalog from path.
func Load(path string) (*Catalog, error) {
	c := &Catalog{path: path}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads the menu file.  Used at startup and by the file watcher so
// menu edits go live without a restart.
func (c *Catalog) Reload() error {
	k := koanf.New(".")
	if err := k.Load(file.Provider(c.path), yaml.Parser()); err != nil {
		return err
	}

	var cats []Category
	if err := k.Unmarshal("categories", &cats); err != nil {
		return err
	}

	c.mu.Lock()
	c.categories = cats
	if c.specialIdx >= c.itemCountLocked() {
		c.specialIdx = 0
	}
	c.mu.Unlock()

	zap.S().Infow("menu loaded", "file", c.path, "categories", len(cats))
	return nil
}

// Watch re-reads the catalog whenever the menu file changes.  Koanf's file
// provider uses fsnotify under the hood; the callback fires per change.
func (c *Catalog) Watch() error {
	f := file.Provider(c.path)
	return f.Watch(func(_ any, err error) {
		if err != nil {
			zap.S().Warnw("menu watch error", "err", err)
			return
		}
		if err := c.Reload(); err != nil {
			zap.S().Errorw("menu reload failed", "err", err)
		}
	})
}

// Categories returns a snapshot of the full menu.
func (c *Catalog) Categories() []Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// SearchResult is what the live filter box receives.
type SearchResult struct {
	Query string `json:"query"`
	Count int    `json:"count"`
	Items []Item `json:"items"`
}

// Search returns every item whose title or description contains q,
// case-insensitively.  An empty query matches the whole menu.
func (c *Catalog) Search(q string) SearchResult {
	needle := strings.ToLower(strings.TrimSpace(q))

	c.mu.RLock()
	defer c.mu.RUnlock()

	res := SearchResult{Query: q, Items: []Item{}}
	for _, cat := range c.categories {
		for _, it := range cat.Items {
			if needle == "" ||
				strings.Contains(strings.ToLower(it.Title), needle) ||
				strings.Contains(strings.ToLower(it.Description), needle) {
				res.Items = append(res.Items, it)
			}
		}
	}
	res.Count = len(res.Items)
	return res
}

// itemCountLocked counts all items.  Caller holds c.mu.
func (c *Catalog) itemCountLocked() int {
	n := 0
	for _, cat := range c.categories {
		n += len(cat.Items)
	}
	return n
}
