// internal/form/catering_test.go
//
// Unit-tests for the catering enquiry pipeline.
//
// Context
// -------
// Covers the required-phone contrast with the contact form, the guest-count
// bounds, date handling against a fixed clock, the non-blocking short-notice
// advisory, and the price-tier arithmetic.
//
// Run: go test ./internal/form -v

package form

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// clock is the fixed "now" every test validates against.
var clock = time.Date(2026, 3, 2, 15, 4, 0, 0, time.UTC)

func validCatering() Fields {
	return Fields{
		"name":       "Anna Smith",
		"email":      "a@b.com",
		"phone":      "0821234567",
		"event_type": "wedding",
		"guests":     "100",
		"date":       clock.AddDate(0, 0, 30).Format("2006-01-02"),
	}
}

func TestValidateCatering_AllRulesPass(t *testing.T) {
	res := ValidateCatering(validCatering(), clock)
	if !res.Valid || len(res.Errors) != 0 {
		t.Fatalf("expected valid, got %+v", res)
	}
	if len(res.Advisories) != 0 {
		t.Fatalf("30 days out must not advise: %v", res.Advisories)
	}
}

func TestValidateCatering_PhoneRequired(t *testing.T) {
	src := validCatering()
	src["phone"] = ""
	res := ValidateCatering(src, clock)
	if res.Valid {
		t.Fatal("missing phone must fail the catering form")
	}
}

func TestValidateCatering_GuestBounds(t *testing.T) {
	cases := map[string]bool{
		"9":         false,
		"10":        true,
		"500":       true,
		"501":       false,
		"0":         false,
		"abc":       false, // parse failure defaults to 0
		"":          false,
		"5":         false,
		"two dozen": false,
	}
	for in, want := range cases {
		src := validCatering()
		src["guests"] = in
		if got := ValidateCatering(src, clock).Valid; got != want {
			t.Errorf("guests %q: valid = %v, want %v", in, got, want)
		}
	}
}

func TestValidateCatering_GuestCountFailsRegardless(t *testing.T) {
	// Everything else valid; the guest rule alone must reject.
	src := validCatering()
	src["guests"] = "5"

	res := ValidateCatering(src, clock)
	if res.Valid {
		t.Fatal("expected invalid result")
	}
	want := []string{"Number of guests must be between 10 and 500."}
	if diff := cmp.Diff(want, res.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateCatering_Dates(t *testing.T) {
	for _, tc := range []struct {
		name    string
		date    string
		valid   bool
		advised bool
	}{
		{"missing", "", false, false},
		{"garbage", "next tuesday", false, false},
		{"yesterday", "2026-03-01", false, false},
		{"today counts as short notice", "2026-03-02", true, true},
		{"six days out", "2026-03-08", true, true},
		{"seven days out", "2026-03-09", true, false},
		{"far future", "2026-09-24", true, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			src := validCatering()
			src["date"] = tc.date
			res := ValidateCatering(src, clock)
			if res.Valid != tc.valid {
				t.Fatalf("valid = %v, want %v (%+v)", res.Valid, tc.valid, res)
			}
			if got := len(res.Advisories) > 0; got != tc.advised {
				t.Fatalf("advised = %v, want %v (%v)", got, tc.advised, res.Advisories)
			}
		})
	}
}

func TestValidateCatering_AdvisoryDoesNotBlock(t *testing.T) {
	src := validCatering()
	src["date"] = "2026-03-05" // three days out

	res := ValidateCatering(src, clock)
	if !res.Valid {
		t.Fatalf("short notice must not reject: %+v", res)
	}
	if len(res.Advisories) != 1 {
		t.Fatalf("expected one advisory, got %v", res.Advisories)
	}
}

func TestQuoteCatering_Tiers(t *testing.T) {
	for eventType, per := range map[string]int{
		"wedding":   250,
		"corporate": 180,
		"birthday":  150,
		"private":   150,
		"other":     150,
		"mystery":   150, // unknown types fall back to standard
	} {
		src := validCatering()
		src["event_type"] = eventType
		q := QuoteCatering(src)
		if q.CostPerPerson != per {
			t.Errorf("%s: per-person = %d, want %d", eventType, q.CostPerPerson, per)
		}
		if q.TotalCost != 100*per {
			t.Errorf("%s: total = %d, want %d", eventType, q.TotalCost, 100*per)
		}
	}
}

func TestQuoteCatering_WeddingExample(t *testing.T) {
	q := QuoteCatering(validCatering())
	if q.CostPerPerson != 250 || q.TotalCost != 25000 {
		t.Fatalf("quote = %+v", q)
	}
	if q.FormattedDate != "1 April 2026" || q.DayOfWeek != "Wednesday" {
		t.Fatalf("date formatting = %q / %q", q.FormattedDate, q.DayOfWeek)
	}
}

func TestHandleCatering_SuccessComposesSummary(t *testing.T) {
	q, summary, res, err := HandleCatering(validCatering(), clock, "hello@roastedfig.co.za")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Valid {
		t.Fatalf("result invalid: %+v", res)
	}
	for _, want := range []string{
		"Anna Smith",
		"Wedding",
		"R250 per person",
		"R25000 in total",
		"Your date is available",
		"hello@roastedfig.co.za",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
	if q.TotalCost != 25000 {
		t.Fatalf("total = %d", q.TotalCost)
	}
}

func TestValidateCatering_Idempotent(t *testing.T) {
	src := Fields{"name": "J", "email": "x", "guests": "boom"}
	first := ValidateCatering(src, clock)
	second := ValidateCatering(src, clock)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("results differ across identical calls:\n%s", diff)
	}
}
