// internal/form/source.go
//
// Roasted Fig – Forms subsystem: submission source abstraction.
//
// Context
//   The contact and catering validators run over raw field values.  To keep
//   them testable without an HTTP request (or any rendering surface at all),
//   they read through the tiny Source capability instead of touching
//   url.Values directly.  The HTTP layer adapts r.PostForm; tests pass plain
//   maps.
//
// Style
//   Comments follow the house guide: full sentences, two spaces after
//   periods, Oxford commas.
//
//------------------------------------------------------------------------------

package form

import (
	"net/url"
	"strings"
)

// Source yields the raw string value of a named field.  Missing fields
// return the empty string.
type Source interface {
	Get(name string) string
}

// Values adapts url.Values (e.g., r.PostForm) to Source.
type Values url.Values

// Get returns the first submitted value for name, or "".
func (v Values) Get(name string) string {
	return url.Values(v).Get(name)
}

// Fields adapts a plain map to Source.  Used by tests and by callers that
// already hold decoded values.
type Fields map[string]string

// Get returns the mapped value for name, or "".
func (f Fields) Get(name string) string { return f[name] }

// trimmed returns the whitespace-trimmed value of a field.
func trimmed(src Source, name string) string {
	return strings.TrimSpace(src.Get(name))
}
