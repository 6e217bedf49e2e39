// internal/web/api.go
//
// Roasted Fig – Widget API endpoints.
//
// Context
//   The menu search box, the gallery lightbox, and the notification stack
//   are rendered client-side from these JSON endpoints.  All of them are
//   read-only except the notification dismiss action.
//
//------------------------------------------------------------------------------

package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/roastedfig/website/internal/metrics"
)

// menuSearch filters the catalog by the q parameter.
func (h *Handlers) menuSearch(w http.ResponseWriter, r *http.Request) {
	metrics.MenuSearchesTotal.Inc()
	writeJSON(w, http.StatusOK, h.menu.Search(r.URL.Query().Get("q")))
}

// galleryFrame returns the lightbox frame for one image, with its wrapped
// previous/next indices.
func (h *Handlers) galleryFrame(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "bad index", http.StatusBadRequest)
		return
	}
	frame, ok := h.gallery.FrameAt(idx)
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, frame)
}

// notifications returns the active stack in arrival order.
func (h *Handlers) notifications(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.center.Active())
}

// dismissNotification starts the two-phase removal of one instance.
func (h *Handlers) dismissNotification(w http.ResponseWriter, r *http.Request) {
	if !h.center.Dismiss(chi.URLParam(r, "id")) {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
