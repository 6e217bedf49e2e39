// internal/form/validate.go
//
// Roasted Fig – Forms subsystem: shared validation rules.
//
// Context
//   Both enquiry forms (contact and catering) run a fixed rule set over the
//   submitted fields.  Every rule is checked and every failure collected in
//   submission order; we never short-circuit on the first error, so the
//   visitor sees the full list in one pass.  Validation is pure: the same
//   Source always yields the same Result.
//
// Workflow
//   •  ValidateContact / ValidateCatering (contact.go, catering.go) call the
//      field helpers below and append messages to a Result.
//   •  Result.Valid is true exactly when Errors is empty.  Advisories are
//      non-blocking guidance and never affect Valid.
//   •  Handlers wrap a failed Result in validationError so the HTTP layer
//      can tell user errors from system failures via errors.As.
//
//------------------------------------------------------------------------------

package form

import (
	"errors"
	"regexp"
)

// Result is the outcome of validating one submission.  Errors holds one
// user-facing message per failed rule, in rule order.  Advisories holds
// non-blocking guidance (e.g., the short-notice catering note) that must be
// surfaced without rejecting the submission.
type Result struct {
	Valid      bool
	Errors     []string
	Advisories []string
}

// fail appends a message and marks the result invalid.
func (r *Result) fail(msg string) {
	r.Valid = false
	r.Errors = append(r.Errors, msg)
}

// advise appends a non-blocking advisory.  Valid is left untouched.
func (r *Result) advise(msg string) {
	r.Advisories = append(r.Advisories, msg)
}

// validationError wraps a failed Result and satisfies the error interface,
// letting callers distinguish user input errors from system failures.
type validationError struct{ Result Result }

func (ve validationError) Error() string { return "form validation failed" }

// AsValidationError extracts the failed Result from err, if err came from a
// rejected submission.
func AsValidationError(err error) (Result, bool) {
	var ve validationError
	if errors.As(err, &ve) {
		return ve.Result, true
	}
	return Result{}, false
}

var (
	// emailRe accepts local@domain.tld: no whitespace, a single "@", and at
	// least one "." after it.
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// phoneRe accepts 10–15 characters drawn from digits, spaces, hyphens,
	// parentheses, and a plus sign.
	phoneRe = regexp.MustCompile(`^[0-9\s()+-]{10,15}$`)
)

// validEmail reports whether s looks like a deliverable address.
func validEmail(s string) bool { return emailRe.MatchString(s) }

// validPhone reports whether s is an acceptable phone number.
func validPhone(s string) bool { return phoneRe.MatchString(s) }
