// internal/web/router.go
//
// Roasted Fig – HTTP routing.
//
// Context
//   One chi router serves the whole site: the six pages, the form POST
//   endpoints, the JSON API used by the front-end widgets (menu search,
//   gallery lightbox, notification stack), static assets, and the
//   operational endpoints (/healthz, /metrics).
//
//------------------------------------------------------------------------------

package web

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/roastedfig/website/internal/middleware"
)

// NewRouter wires every route to h.
func NewRouter(h *Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Security)
	r.Use(h.requestLog)

	// Pages
	r.Get("/", h.page("home"))
	r.Get("/menu", h.menuPage)
	r.Get("/about", h.page("about"))
	r.Get("/gallery", h.galleryPage)
	r.Get("/catering", h.page("catering"))
	r.Get("/contact", h.page("contact"))

	// Form submissions
	r.Post("/contact", h.contactSubmit)
	r.Post("/catering", h.cateringSubmit)

	// Widget API
	r.Route("/api", func(r chi.Router) {
		r.Get("/menu/search", h.menuSearch)
		r.Get("/gallery/{index}", h.galleryFrame)
		r.Get("/notifications", h.notifications)
		r.Post("/notifications/{id}/dismiss", h.dismissNotification)
	})

	// Static assets
	staticDir := filepath.Join(h.cfg.Paths.Root, "web", "static")
	r.Handle("/static/*", http.StripPrefix("/static/",
		http.FileServer(http.Dir(staticDir))))

	// Operational endpoints
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
