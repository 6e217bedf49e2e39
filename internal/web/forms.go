// internal/web/forms.go
//
// Roasted Fig – Form submission endpoints.
//
// Context
//   POST /contact and POST /catering run the same two-phase shape: verify
//   the CSRF token, validate the fields (collecting every failure), then
//   either surface the error list as a persistent notification or compose
//   the outcome (mail draft, catering quote) and confirm with a transient
//   one.  Responses are JSON; the page script applies them without a reload
//   and the form is cleared client-side only on ok.
//
//   Error notifications use a zero duration so they persist until the
//   visitor dismisses them; the catering confirmation gets an extended
//   10-second display to accommodate the longer summary.
//
//------------------------------------------------------------------------------

package web

import (
	"net/http"
	"time"

	"github.com/roastedfig/website/internal/form"
	"github.com/roastedfig/website/internal/message"
	"github.com/roastedfig/website/internal/metrics"
	"github.com/roastedfig/website/internal/notify"
)

// Display durations for success notifications.
const (
	contactSuccessFor  = 5 * time.Second
	cateringSuccessFor = 10 * time.Second
	advisoryFor        = 8 * time.Second
)

// submitResponse is the JSON shape both form endpoints return.
type submitResponse struct {
	OK         bool        `json:"ok"`
	Errors     []string    `json:"errors,omitempty"`
	Advisories []string    `json:"advisories,omitempty"`
	Mailto     string      `json:"mailto,omitempty"`
	Quote      *form.Quote `json:"quote,omitempty"`
}

// contactSubmit handles the contact enquiry form.
func (h *Handlers) contactSubmit(w http.ResponseWriter, r *http.Request) {
	src, ok := h.postedForm(w, r)
	if !ok {
		return
	}

	draft, err := form.HandleContact(src, h.cfg.Site.ContactEmail)
	if err != nil {
		res, _ := form.AsValidationError(err)
		h.reject(w, "contact", res)
		return
	}

	metrics.FormSubmissionsTotal.WithLabelValues("contact", "ok").Inc()
	_ = message.EnqueueEmail(r.Context(), draft)

	h.center.Push(notify.Request{
		Title:    "Message ready to send",
		Message:  "<p>Thank you!  Your mail client will open with the message pre-filled.</p>",
		Type:     notify.Success,
		Duration: contactSuccessFor,
	})

	writeJSON(w, http.StatusOK, submitResponse{OK: true, Mailto: draft.MailtoURL()})
}

// cateringSubmit handles the catering enquiry form.
func (h *Handlers) cateringSubmit(w http.ResponseWriter, r *http.Request) {
	src, ok := h.postedForm(w, r)
	if !ok {
		return
	}

	quote, summary, res, err := form.HandleCatering(src, time.Now(), h.cfg.Site.ContactEmail)
	if err != nil {
		h.reject(w, "catering", res)
		return
	}

	metrics.FormSubmissionsTotal.WithLabelValues("catering", "ok").Inc()
	metrics.CateringQuotesTotal.Inc()

	h.center.Push(notify.Request{
		Title:    "Catering enquiry received",
		Message:  summary,
		Type:     notify.Success,
		Duration: cateringSuccessFor,
	})

	// Short-notice advisories ride the success path as their own info
	// notification rather than being dropped with the error list.
	if len(res.Advisories) > 0 {
		h.center.Push(notify.Request{
			Title:    "Please note",
			Type:     notify.Info,
			Duration: advisoryFor,
			List:     res.Advisories,
		})
	}

	writeJSON(w, http.StatusOK, submitResponse{
		OK:         true,
		Advisories: res.Advisories,
		Quote:      &quote,
	})
}

// postedForm parses the body and verifies the CSRF token.  On failure it has
// already written the response.
func (h *Handlers) postedForm(w http.ResponseWriter, r *http.Request) (form.Source, bool) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, submitResponse{
			OK: false, Errors: []string{"Malformed form submission."},
		})
		return nil, false
	}
	if !form.VerifyToken(r.PostForm.Get("csrf_token")) {
		writeJSON(w, http.StatusForbidden, submitResponse{
			OK: false, Errors: []string{"Security token invalid.  Please refresh and try again."},
		})
		return nil, false
	}
	return form.Values(r.PostForm), true
}

// reject surfaces a failed validation: a persistent error notification
// carrying the full message list, then a 422 with the same content.  When
// the submission also produced advisories they are appended to the list.
func (h *Handlers) reject(w http.ResponseWriter, formName string, res form.Result) {
	metrics.FormSubmissionsTotal.WithLabelValues(formName, "invalid").Inc()
	metrics.ValidationFailuresTotal.WithLabelValues(formName).Add(float64(len(res.Errors)))

	list := append(append([]string{}, res.Errors...), res.Advisories...)
	h.center.Push(notify.Request{
		Title: "Please fix the following",
		Type:  notify.Error,
		List:  list,
	})

	writeJSON(w, http.StatusUnprocessableEntity, submitResponse{
		OK:         false,
		Errors:     res.Errors,
		Advisories: res.Advisories,
	})
}
