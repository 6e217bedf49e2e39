// internal/menu/specials.go
//
// Daily-special rotation.
//
// Context
//   The home page shows one "today's special" picked from the menu.  A cron
//   job advances the pick every morning before opening; RotateSpecial is
//   also safe to call manually (e.g., after a menu reload).
//
//------------------------------------------------------------------------------

package menu

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// rotateSpec fires daily at 06:00 local time, before the café opens.
const rotateSpec = "0 6 * * *"

// Special returns today's special.  ok is false while the menu is empty.
func (c *Catalog) Special() (Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := c.specialIdx
	for _, cat := range c.categories {
		if idx < len(cat.Items) {
			return cat.Items[idx], true
		}
		idx -= len(cat.Items)
	}
	return Item{}, false
}

// RotateSpecial advances the special to the next item, wrapping at the end
// of the menu.
func (c *Catalog) RotateSpecial() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n := c.itemCountLocked(); n > 0 {
		c.specialIdx = (c.specialIdx + 1) % n
	}
}

// StartRotation schedules the daily rotation and returns the running cron so
// the caller can Stop it on shutdown.
func (c *Catalog) StartRotation() (*cron.Cron, error) {
	cr := cron.New()
	if _, err := cr.AddFunc(rotateSpec, func() {
		c.RotateSpecial()
		if sp, ok := c.Special(); ok {
			zap.S().Infow("daily special rotated", "title", sp.Title)
		}
	}); err != nil {
		return nil, err
	}
	cr.Start()
	return cr, nil
}
