// internal/view/render.go
//
// View engine: template lookup, func-map injection, and an LRU of parsed
// *template.Template sets.
//
// Public helpers
// --------------
//   - NewRenderer    – build a renderer rooted at <root>/templates.
//   - Render         – write a rendered page to an http.ResponseWriter.
//   - RenderToString – return template.HTML (notification fragments).
//
// All templates under the root are parsed as one set per page, so shared
// sub-templates ({{ template "layout" . }}) work out-of-the-box.  Parsed
// sets are cached in an LRU; an fsnotify watcher purges the cache whenever a
// template file changes, so edits show up without a restart.
//
// Concurrency: the LRU itself is not goroutine-safe, so all access goes
// through the renderer's mutex.

package view

import (
	"bytes"
	"html/template"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/roastedfig/website/internal/cache"
	"github.com/roastedfig/website/internal/form"
)

// Renderer loads, caches, and executes page templates.
type Renderer struct {
	mu    sync.Mutex
	dir   string
	lru   *cache.LRU
	funcs template.FuncMap
}

// NewRenderer returns a Renderer reading templates from <root>/templates.
func NewRenderer(root string) *Renderer {
	r := &Renderer{
		dir: filepath.Join(root, "templates"),
		lru: cache.New(64),
	}
	r.funcs = template.FuncMap{
		"csrfToken": csrfToken,
		"year":      func() int { return time.Now().Year() },
		"upper":     strings.ToUpper,
	}
	return r
}

// Watch purges the template cache whenever a file under the template root
// changes.  It blocks until the watcher fails or the process exits, so run
// it in its own goroutine.
func (r *Renderer) Watch() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(r.dir); err != nil {
		return err
	}

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				r.mu.Lock()
				r.lru.Purge()
				r.mu.Unlock()
				zap.S().Infow("template cache purged", "file", ev.Name)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			zap.S().Warnw("template watcher error", "err", err)
		}
	}
}

// Render executes the named page template and streams it to w.
func (r *Renderer) Render(w http.ResponseWriter, name string, data any) error {
	t, err := r.load(name)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.ExecuteTemplate(w, name+".html", data)
}

// RenderToString executes and returns HTML (used for notification message
// fragments).  It mirrors Render, but writes to a buffer instead of w.
func (r *Renderer) RenderToString(name string, data any) (template.HTML, error) {
	t, err := r.load(name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name+".html", data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// load finds and (if necessary) parses the template set for the given page.
// Every *.html in the root is parsed together so the layout and partials
// resolve.
func (r *Renderer) load(name string) (*template.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.lru.Get(name); ok {
		return v.(*template.Template), nil
	}

	pattern := filepath.Join(r.dir, "*.html")
	t, err := template.New(name).Funcs(r.funcs).ParseGlob(pattern)
	if err != nil {
		return nil, err
	}

	r.lru.Add(name, t)
	return t, nil
}

// csrfToken exposes a fresh token to templates; errors surface as an empty
// value so a render never fails on token generation.
func csrfToken() string {
	tok, err := form.GenerateToken()
	if err != nil {
		zap.S().Errorw("csrf token generation failed", "err", err)
		return ""
	}
	return tok
}
