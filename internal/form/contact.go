// internal/form/contact.go
//
// Roasted Fig – Forms subsystem: contact enquiry pipeline.
//
// Context
//   The contact page posts name, email, phone (optional), location
//   (optional), subject, and message.  ValidateContact applies the rule set
//   and collects every failure; ComposeContact turns a valid submission into
//   a ready-to-send mail draft addressed to the café, which the handler both
//   enqueues for delivery and hands back to the visitor as a mailto: link so
//   their own mail client opens pre-filled.
//
//------------------------------------------------------------------------------

package form

import (
	"fmt"
	"strings"

	"github.com/roastedfig/website/internal/message"
)

// Contact field rules, applied together; all failures are collected.
const (
	minNameLen    = 2
	minMessageLen = 10
)

// ValidateContact checks a contact submission.  Phone is optional but, when
// supplied, must still look like a phone number.
func ValidateContact(src Source) Result {
	res := Result{Valid: true}

	if len(trimmed(src, "name")) < minNameLen {
		res.fail("Name must be at least 2 characters long.")
	}
	if !validEmail(trimmed(src, "email")) {
		res.fail("Please enter a valid email address.")
	}
	if p := trimmed(src, "phone"); p != "" && !validPhone(p) {
		res.fail("Please enter a valid phone number.")
	}
	if trimmed(src, "subject") == "" {
		res.fail("Please select a subject.")
	}
	if len(trimmed(src, "message")) < minMessageLen {
		res.fail("Message must be at least 10 characters long.")
	}

	return res
}

// ComposeContact builds the outbound mail draft for a submission that has
// already passed ValidateContact.  recipient is the café's enquiry address
// from site configuration.
func ComposeContact(src Source, recipient string) message.Email {
	phone := trimmed(src, "phone")
	if phone == "" {
		phone = "Not provided"
	}
	location := trimmed(src, "location")
	if location == "" {
		location = "Not specified"
	}

	body := strings.Join([]string{
		"Name: " + trimmed(src, "name"),
		"Email: " + trimmed(src, "email"),
		"Phone: " + phone,
		"Location: " + location,
		"Subject: " + trimmed(src, "subject"),
		"",
		"Message:",
		trimmed(src, "message"),
	}, "\n")

	return message.Email{
		To:      []string{recipient},
		Subject: fmt.Sprintf("Contact Form: %s", trimmed(src, "subject")),
		Text:    body,
	}
}

// HandleContact validates and, on success, composes the draft.  On failure
// it returns a validationError carrying the collected messages.
func HandleContact(src Source, recipient string) (message.Email, error) {
	res := ValidateContact(src)
	if !res.Valid {
		return message.Email{}, validationError{Result: res}
	}
	return ComposeContact(src, recipient), nil
}
