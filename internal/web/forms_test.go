// internal/web/forms_test.go
//
// Handler tests for the form endpoints and the notification API.
//
// Context
// -------
// Each test builds the real router around a fresh notification center and
// fires httptest requests, asserting on the JSON contract the page script
// relies on: 422 with the collected error list, 200 with a mailto draft or
// catering quote, and the dismiss round-trip.
//
// Run: go test ./internal/web -v

package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/roastedfig/website/internal/config"
	"github.com/roastedfig/website/internal/form"
	"github.com/roastedfig/website/internal/notify"
	"github.com/roastedfig/website/internal/view"
)

// newTestApp wires a router around throwaway config and a fresh center.
func newTestApp(t *testing.T) (http.Handler, *notify.Center) {
	t.Helper()

	cfg := &config.Config{
		HTTP: config.HTTP{ListenAddr: ":0"},
		Site: config.Site{
			Name:         "The Roasted Fig",
			ContactEmail: "hello@roastedfig.co.za",
		},
		Paths: config.Paths{Root: t.TempDir()},
	}

	center := notify.New()
	h := New(cfg, view.NewRenderer(cfg.Paths.Root), center, nil, nil, zap.NewNop().Sugar())
	return NewRouter(h), center
}

// post submits form values with a fresh CSRF token.
func post(t *testing.T, router http.Handler, path string, vals url.Values) *httptest.ResponseRecorder {
	t.Helper()

	tok, err := form.GenerateToken()
	if err != nil {
		t.Fatalf("csrf token: %v", err)
	}
	vals.Set("csrf_token", tok)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(vals.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) submitResponse {
	t.Helper()
	var res submitResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v\n%s", err, rr.Body.String())
	}
	return res
}

func TestContactSubmit_InvalidCollectsAllErrors(t *testing.T) {
	router, center := newTestApp(t)

	rr := post(t, router, "/contact", url.Values{
		"name":    {"J"},
		"email":   {"bad"},
		"subject": {""},
		"message": {"hi"},
	})

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rr.Code)
	}
	res := decode(t, rr)
	if res.OK || len(res.Errors) != 4 {
		t.Fatalf("response = %+v", res)
	}

	// The error notification persists (no duration) and carries the list.
	active := center.Active()
	if len(active) != 1 || active[0].Type != notify.Error || len(active[0].List) != 4 {
		t.Fatalf("notifications = %+v", active)
	}
}

func TestContactSubmit_ValidReturnsMailto(t *testing.T) {
	router, center := newTestApp(t)

	rr := post(t, router, "/contact", url.Values{
		"name":    {"Anna Smith"},
		"email":   {"anna@example.com"},
		"subject": {"Bookings"},
		"message": {"Do you take group bookings?"},
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\n%s", rr.Code, rr.Body.String())
	}
	res := decode(t, rr)
	if !res.OK || !strings.HasPrefix(res.Mailto, "mailto:hello@roastedfig.co.za?") {
		t.Fatalf("response = %+v", res)
	}
	if !strings.Contains(res.Mailto, "Contact%20Form%3A%20Bookings") {
		t.Fatalf("mailto missing subject prefix: %s", res.Mailto)
	}

	active := center.Active()
	if len(active) != 1 || active[0].Type != notify.Success {
		t.Fatalf("notifications = %+v", active)
	}
}

func TestContactSubmit_RejectsBadToken(t *testing.T) {
	router, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/contact",
		strings.NewReader("csrf_token=forged&name=Anna"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rr.Code)
	}
}

func TestCateringSubmit_ValidReturnsQuote(t *testing.T) {
	router, center := newTestApp(t)

	date := time.Now().AddDate(0, 0, 30).Format("2006-01-02")
	rr := post(t, router, "/catering", url.Values{
		"name":       {"Anna Smith"},
		"email":      {"a@b.com"},
		"phone":      {"0821234567"},
		"event_type": {"wedding"},
		"guests":     {"100"},
		"date":       {date},
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\n%s", rr.Code, rr.Body.String())
	}
	res := decode(t, rr)
	if !res.OK || res.Quote == nil {
		t.Fatalf("response = %+v", res)
	}
	if res.Quote.CostPerPerson != 250 || res.Quote.TotalCost != 25000 {
		t.Fatalf("quote = %+v", res.Quote)
	}
	if len(res.Advisories) != 0 {
		t.Fatalf("30 days out must not advise: %v", res.Advisories)
	}

	active := center.Active()
	if len(active) != 1 || active[0].Type != notify.Success {
		t.Fatalf("notifications = %+v", active)
	}
}

func TestCateringSubmit_ShortNoticeAdvisesOnSuccess(t *testing.T) {
	router, center := newTestApp(t)

	date := time.Now().AddDate(0, 0, 3).Format("2006-01-02")
	rr := post(t, router, "/catering", url.Values{
		"name":       {"Anna Smith"},
		"email":      {"a@b.com"},
		"phone":      {"0821234567"},
		"event_type": {"corporate"},
		"guests":     {"40"},
		"date":       {date},
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\n%s", rr.Code, rr.Body.String())
	}
	res := decode(t, rr)
	if !res.OK || len(res.Advisories) != 1 {
		t.Fatalf("response = %+v", res)
	}

	// Success summary plus a separate info notification for the advisory.
	active := center.Active()
	if len(active) != 2 || active[0].Type != notify.Success || active[1].Type != notify.Info {
		t.Fatalf("notifications = %+v", active)
	}
}

func TestCateringSubmit_GuestCountRejected(t *testing.T) {
	router, _ := newTestApp(t)

	date := time.Now().AddDate(0, 0, 30).Format("2006-01-02")
	rr := post(t, router, "/catering", url.Values{
		"name":       {"Anna Smith"},
		"email":      {"a@b.com"},
		"phone":      {"0821234567"},
		"event_type": {"wedding"},
		"guests":     {"5"},
		"date":       {date},
	})

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rr.Code)
	}
	res := decode(t, rr)
	if res.OK || len(res.Errors) != 1 {
		t.Fatalf("response = %+v", res)
	}
}

func TestNotificationDismissRoundTrip(t *testing.T) {
	router, center := newTestApp(t)

	inst := center.Push(notify.Request{Title: "bad", Type: notify.Error})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/notifications", nil))
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), inst.ID) {
		t.Fatalf("list: %d %s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost,
		"/api/notifications/"+inst.ID+"/dismiss", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("dismiss: %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost,
		"/api/notifications/"+inst.ID+"/dismiss", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("second dismiss: %d, want 404", rr.Code)
	}
}
