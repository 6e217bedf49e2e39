// internal/message/message.go
//
// Roasted Fig – Outbound messaging.
//
// Context
//   The forms subsystem hands validated enquiries to this package.  Delivery
//   happens two ways: the draft is returned to the visitor as a mailto: URL
//   so their own mail client opens pre-filled, and EnqueueEmail logs the
//   payload for the (future) delivery worker.  Until a real queue is wired
//   in, EnqueueEmail records the job and returns nil so callers proceed
//   without blocking.
//
//------------------------------------------------------------------------------

package message

import (
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// Email represents one outbound email job.
type Email struct {
	To      []string
	Subject string
	Text    string
	HTML    string // optional, unused by the mailto path
}

// MailtoURL renders the draft as a mailto: URL suitable for an anchor href.
// Subject and body are query-escaped; '+' is rewritten to %20 because mail
// clients decode the query as a path segment, not form data.
func (e Email) MailtoURL() string {
	q := url.Values{}
	q.Set("subject", e.Subject)
	q.Set("body", e.Text)
	encoded := strings.ReplaceAll(q.Encode(), "+", "%20")
	return "mailto:" + strings.Join(e.To, ",") + "?" + encoded
}

// EnqueueEmail records the email payload.  Swap the body with a real queue
// publisher when delivery infrastructure lands.
func EnqueueEmail(ctx context.Context, msg Email) error {
	zap.S().Infow("email enqueued",
		"to", msg.To,
		"subject", msg.Subject,
		"bytes", len(msg.Text),
	)
	return nil
}
