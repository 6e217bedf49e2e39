// internal/web/handlers.go
//
// Roasted Fig – Page handlers and shared helpers.
//
// Context
//   Handlers bundles every dependency the HTTP layer needs: site config,
//   the view engine, the notification center, the menu catalog, and the
//   gallery ring.  Page handlers render templates; the JSON helpers below
//   serve the widget API.
//
//------------------------------------------------------------------------------

package web

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/roastedfig/website/internal/config"
	"github.com/roastedfig/website/internal/gallery"
	"github.com/roastedfig/website/internal/menu"
	"github.com/roastedfig/website/internal/notify"
	"github.com/roastedfig/website/internal/view"
)

// Handlers carries the wired dependencies for every route.
type Handlers struct {
	cfg     *config.Config
	view    *view.Renderer
	center  *notify.Center
	menu    *menu.Catalog
	gallery *gallery.Ring
	log     *zap.SugaredLogger
}

// New builds the handler set.
func New(cfg *config.Config, v *view.Renderer, c *notify.Center,
	m *menu.Catalog, g *gallery.Ring, log *zap.SugaredLogger) *Handlers {
	return &Handlers{cfg: cfg, view: v, center: c, menu: m, gallery: g, log: log}
}

// pageData is the payload every page template receives.
type pageData struct {
	Site    config.Site
	Page    string
	Special *menu.Item
	Menu    []menu.Category
	Images  []gallery.Image
}

// page returns a handler rendering a plain page template.
func (h *Handlers) page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, name, pageData{Site: h.cfg.Site, Page: name})
	}
}

// menuPage renders the menu with the full catalog and today's special.
func (h *Handlers) menuPage(w http.ResponseWriter, r *http.Request) {
	data := pageData{Site: h.cfg.Site, Page: "menu", Menu: h.menu.Categories()}
	if sp, ok := h.menu.Special(); ok {
		data.Special = &sp
	}
	h.render(w, "menu", data)
}

// galleryPage renders the gallery grid; the lightbox fetches frames from the
// API as the visitor navigates.
func (h *Handlers) galleryPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "gallery", pageData{
		Site: h.cfg.Site, Page: "gallery", Images: h.gallery.Images(),
	})
}

// render executes the template, converting failures into a 500.
func (h *Handlers) render(w http.ResponseWriter, name string, data pageData) {
	if err := h.view.Render(w, name, data); err != nil {
		h.log.Errorw("render failed", "page", name, "err", err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// requestLog logs one line per request.
func (h *Handlers) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		h.log.Infow("request",
			"method", r.Method,
			"path", r.URL.Path,
			"dur", time.Since(start),
		)
	})
}

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
