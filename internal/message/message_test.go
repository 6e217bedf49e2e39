// internal/message/message_test.go
//
// Unit-tests for the mailto draft rendering.
//
// Run: go test ./internal/message -v

package message

import (
	"net/url"
	"strings"
	"testing"
)

func TestMailtoURL_RoundTrips(t *testing.T) {
	draft := Email{
		To:      []string{"hello@roastedfig.co.za"},
		Subject: "Contact Form: Bookings",
		Text:    "Name: Anna Smith\n\nMessage:\nSee you Sunday?",
	}

	raw := draft.MailtoURL()
	if !strings.HasPrefix(raw, "mailto:hello@roastedfig.co.za?") {
		t.Fatalf("unexpected prefix: %s", raw)
	}
	// Mail clients decode the query as a path segment, so spaces must be
	// %20, never '+'.
	if strings.Contains(raw, "+") {
		t.Fatalf("mailto URL contains '+': %s", raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	q := u.Query()
	if got := q.Get("subject"); got != draft.Subject {
		t.Errorf("subject = %q", got)
	}
	if got := q.Get("body"); got != draft.Text {
		t.Errorf("body = %q", got)
	}
}

func TestMailtoURL_MultipleRecipients(t *testing.T) {
	draft := Email{To: []string{"a@x.com", "b@x.com"}, Subject: "s", Text: "t"}
	if !strings.HasPrefix(draft.MailtoURL(), "mailto:a@x.com,b@x.com?") {
		t.Fatalf("unexpected: %s", draft.MailtoURL())
	}
}
