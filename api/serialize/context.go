package serialize

import "github.com/jonboulle/clockwork"

// Context keys with meaning to the library. Anything else stored in a
// Context is passed through to serializers and handlers untouched.
const (
	ActorKey   = "actor"
	ClockKey   = "clock"
	MetaKey    = "meta"
	PerPageKey = "per_page"
	ViewKey    = "view"
)

// Context is the per-request metadata map threaded from dispatch through to
// serializers and handlers. It is built fresh per request and never shared
// across requests.
type Context map[string]any

func NewContext() Context {
	return Context{}
}

// Merge shallow-merges other into a copy of c. Keys in other win.
func (c Context) Merge(other Context) Context {
	merged := make(Context, len(c)+len(other))
	for k, v := range c {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// SetDefault stores the value only when the key is not already set.
func (c Context) SetDefault(key string, value any) {
	if _, ok := c[key]; !ok {
		c[key] = value
	}
}

func (c Context) Actor() any {
	return c[ActorKey]
}

func (c Context) View() string {
	v, _ := c[ViewKey].(string)
	return v
}

// Meta returns the caller-supplied free-form metadata, or nil.
func (c Context) Meta() map[string]any {
	m, _ := c[MetaKey].(map[string]any)
	return m
}

func (c Context) PerPage() (int, bool) {
	p, ok := c[PerPageKey].(int)
	return p, ok
}

// Clock returns the clock stored in the context, falling back to the real
// clock so serializers can always stamp times.
func (c Context) Clock() clockwork.Clock {
	if clock, ok := c[ClockKey].(clockwork.Clock); ok {
		return clock
	}
	return clockwork.NewRealClock()
}
