// internal/notify/center.go
//
// Roasted Fig – Notification stack.
//
// Context
//   Handlers push transient notifications (success summaries, validation
//   error lists, advisories) onto a Center.  The Center owns the shared
//   stacking container: it is created lazily on the first push and torn down
//   when the last instance leaves, and instances stack in arrival order with
//   no coalescing.  The site front end polls GET /api/notifications and
//   renders whatever is active.
//
// Lifecycle
//   create → (auto-dismiss after Duration, skipped for errors, or manual
//   dismiss) → leaving → detached after a fixed 300 ms grace so the exit
//   transition can play.  Error notifications persist until the visitor
//   dismisses them; their Duration is ignored.
//
//   Timers may fire after an instance has already been dismissed.  Both
//   beginExit and detach check membership first, so a late timer is a no-op.
//
//------------------------------------------------------------------------------

package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/roastedfig/website/internal/metrics"
)

// Type classifies a notification for styling.  Unrecognized values are
// accepted and rendered with default treatment.
type Type string

const (
	Success Type = "success"
	Error   Type = "error"
	Info    Type = "info"
)

// exitGrace is how long an instance stays in the leaving state before it is
// detached, matching the front end's exit transition.
const exitGrace = 300 * time.Millisecond

// richText strips anything dangerous from notification bodies, which may
// embed user-supplied text (names, event details).
var richText = bluemonday.UGCPolicy()

// Request describes one notification to display.  Message is a rich-text
// fragment and is sanitized on push.  A zero Duration means the notification
// persists until dismissed.  List carries an optional ordered message list
// (the validator's collected errors).
type Request struct {
	Title    string        `json:"title"`
	Message  string        `json:"message"`
	Type     Type          `json:"type"`
	Duration time.Duration `json:"-"`
	List     []string      `json:"list,omitempty"`
}

// Instance is one displayed notification, tied 1:1 to its Request.
type Instance struct {
	ID      string    `json:"id"`
	Request           // embedded, sanitized
	Created time.Time `json:"created"`
	Leaving bool      `json:"leaving"`
}

// Center owns the notification stack.  Construct with New and pass by
// reference; there is deliberately no package-level instance.
type Center struct {
	mu    sync.Mutex
	stack []*Instance
	grace time.Duration
}

// New returns an empty Center.
func New() *Center {
	return &Center{grace: exitGrace}
}

// Push displays req and returns the live instance.  Instances stack in
// arrival order; duplicates are not deduplicated.  Unless req.Type is Error,
// a positive Duration schedules auto-dismissal.
func (c *Center) Push(req Request) *Instance {
	req.Message = richText.Sanitize(req.Message)

	inst := &Instance{
		ID:      uuid.NewString(),
		Request: req,
		Created: time.Now(),
	}

	c.mu.Lock()
	if c.stack == nil { // lazy container creation
		c.stack = make([]*Instance, 0, 4)
	}
	c.stack = append(c.stack, inst)
	metrics.NotificationsActive.Set(float64(len(c.stack)))
	c.mu.Unlock()

	// Errors must be acknowledged; their duration is ignored.
	if req.Type != Error && req.Duration > 0 {
		time.AfterFunc(req.Duration, func() { c.beginExit(inst.ID) })
	}

	return inst
}

// Dismiss starts the two-phase removal of the identified instance.  It
// reports false when the instance is unknown or already leaving.
func (c *Center) Dismiss(id string) bool {
	return c.beginExit(id)
}

// Active returns a snapshot of the stack in arrival order.
func (c *Center) Active() []Instance {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Instance, 0, len(c.stack))
	for _, inst := range c.stack {
		out = append(out, *inst)
	}
	return out
}

// Len reports how many instances are displayed, including leaving ones.
func (c *Center) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.stack)
}

// beginExit marks the instance as leaving and schedules the final detach.
// A no-op for unknown or already-leaving instances, so a late auto-dismiss
// timer cannot double-fire against a manual dismissal.
func (c *Center) beginExit(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, inst := range c.stack {
		if inst.ID == id && !inst.Leaving {
			inst.Leaving = true
			time.AfterFunc(c.grace, func() { c.detach(id) })
			return true
		}
	}
	return false
}

// detach removes the instance from the stack.  When the last instance goes,
// the container itself is torn down; the next Push recreates it.
func (c *Center) detach(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, inst := range c.stack {
		if inst.ID == id {
			c.stack = append(c.stack[:i], c.stack[i+1:]...)
			break
		}
	}
	if len(c.stack) == 0 {
		c.stack = nil
	}
	metrics.NotificationsActive.Set(float64(len(c.stack)))
}
