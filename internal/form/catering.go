// internal/form/catering.go
//
// Roasted Fig – Forms subsystem: catering enquiry pipeline.
//
// Context
//   The catering page posts name, email, phone (required here, unlike the
//   contact form), event type, guest count, event date, and free-text
//   special requests.  ValidateCatering applies the rule set; on success the
//   handler computes a Quote from the event-type price tier and composes a
//   rich confirmation summary for the notification stack.
//
//   Short-notice bookings (fewer than seven days ahead) produce an advisory,
//   not a rejection.  The advisory rides on Result.Advisories so it reaches
//   the visitor on the success path too, instead of being dropped whenever
//   the rest of the form happens to be valid.
//
//------------------------------------------------------------------------------

package form

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Guest count bounds for a catering booking.
const (
	minGuests = 10
	maxGuests = 500
)

// Per-person price tiers in rand, selected by event type.  Unknown types
// fall back to the standard tier.
const (
	weddingPerPerson   = 250
	corporatePerPerson = 180
	standardPerPerson  = 150
)

// shortNoticeWindow is the lead time under which we warn about limited menu
// availability.
const shortNoticeWindow = 7 * 24 * time.Hour

// eventTypes is the fixed set offered by the catering form.
var eventTypes = []string{"wedding", "corporate", "birthday", "private", "other"}

// Quote is the derived cost estimate for a valid catering enquiry.
type Quote struct {
	CostPerPerson int
	TotalCost     int
	FormattedDate string // e.g., "24 September 2026"
	DayOfWeek     string // e.g., "Thursday"
}

// ValidateCatering checks a catering submission against the clock now.
// Dates are compared at midnight granularity, so a booking for today is
// still acceptable.
func ValidateCatering(src Source, now time.Time) Result {
	res := Result{Valid: true}

	if len(trimmed(src, "name")) < minNameLen {
		res.fail("Name must be at least 2 characters long.")
	}
	if !validEmail(trimmed(src, "email")) {
		res.fail("Please enter a valid email address.")
	}
	if !validPhone(trimmed(src, "phone")) {
		res.fail("Please enter a valid phone number.")
	}
	if trimmed(src, "event_type") == "" {
		res.fail("Please select an event type.")
	}

	guests := parseGuests(src.Get("guests"))
	if guests < minGuests || guests > maxGuests {
		res.fail("Number of guests must be between 10 and 500.")
	}

	today := midnight(now)
	switch date, err := parseDate(src.Get("date")); {
	case trimmed(src, "date") == "":
		res.fail("Please select an event date.")
	case err != nil:
		res.fail("Please enter a valid event date.")
	case date.Before(today):
		res.fail("Event date cannot be in the past.")
	case date.Before(today.Add(shortNoticeWindow)):
		res.advise("Less than 7 days' notice: some menu options may be unavailable.")
	}

	return res
}

// QuoteCatering computes the cost estimate for a submission that has passed
// ValidateCatering.
func QuoteCatering(src Source) Quote {
	per := costPerPerson(trimmed(src, "event_type"))
	guests := parseGuests(src.Get("guests"))
	date, _ := parseDate(src.Get("date"))

	return Quote{
		CostPerPerson: per,
		TotalCost:     guests * per,
		FormattedDate: date.Format("2 January 2006"),
		DayOfWeek:     date.Format("Monday"),
	}
}

// ComposeCatering renders the confirmation summary shown in the success
// notification.  The availability line is a static courtesy; no booking
// calendar is consulted.
func ComposeCatering(src Source, q Quote, contactEmail string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Thank you, %s!  We have received your catering enquiry.</p>", trimmed(src, "name"))
	fmt.Fprintf(&b, "<p><strong>%s</strong> on %s, %s for %s guests.</p>",
		eventLabel(trimmed(src, "event_type")), q.DayOfWeek, q.FormattedDate, src.Get("guests"))
	fmt.Fprintf(&b, "<p>Estimated cost: R%d per person, R%d in total.</p>", q.CostPerPerson, q.TotalCost)
	b.WriteString("<p>Your date is available.  We will confirm the details by email within one business day.</p>")
	fmt.Fprintf(&b, "<p>Questions in the meantime?  Write to %s.</p>", contactEmail)
	return b.String()
}

// HandleCatering validates and, on success, returns the quote and summary.
// On failure it returns a validationError carrying the collected messages.
func HandleCatering(src Source, now time.Time, contactEmail string) (Quote, string, Result, error) {
	res := ValidateCatering(src, now)
	if !res.Valid {
		return Quote{}, "", res, validationError{Result: res}
	}
	q := QuoteCatering(src)
	return q, ComposeCatering(src, q, contactEmail), res, nil
}

// costPerPerson maps an event type to its price tier.
func costPerPerson(eventType string) int {
	switch eventType {
	case "wedding":
		return weddingPerPerson
	case "corporate":
		return corporatePerPerson
	default:
		return standardPerPerson
	}
}

// parseGuests converts the raw guest count, defaulting to 0 on bad input so
// the range rule reports it as out of bounds.
func parseGuests(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

// parseDate parses the form's ISO date input.
func parseDate(raw string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(raw))
}

// midnight truncates t to the start of its day in local time.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// eventLabel capitalizes the stored event type for display.
func eventLabel(eventType string) string {
	for _, known := range eventTypes {
		if eventType == known {
			return strings.ToUpper(eventType[:1]) + eventType[1:]
		}
	}
	return "Event"
}
