// Package quota provides admission control for upstream generation calls.
//
// The tracker is a fixed-window counter, not a token bucket or sliding
// window: the counter resets entirely when the window expires. A burst of up
// to twice the limit can land across a window boundary; do not swap in a
// smoother algorithm here without updating the chat gateway's documented
// semantics.
//
// The counter is scoped to one process. When the gateway runs as multiple
// replicas, each replica enforces its own independent quota; there is no
// cross-instance coordination.
package quota

import (
	"sync"
	"time"
)

// Default admission limits for the upstream generation endpoint.
const (
	DefaultLimit  = 10
	DefaultWindow = 60 * time.Second
)

// Tracker is a mutex-serialized fixed-window admission counter. The zero
// value is not usable; construct with NewTracker.
type Tracker struct {
	mu          sync.Mutex
	limit       int
	window      time.Duration
	windowStart time.Time
	count       int
	now         func() time.Time
}

// NewTracker creates a tracker admitting at most limit calls per window.
// Nonpositive arguments fall back to the defaults.
func NewTracker(limit int, window time.Duration) *Tracker {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Tracker{
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// TryAdmit decides whether one more upstream call is permitted. It first
// resets the window if it has expired, then admits and counts the call if the
// limit has not been reached. Never blocks. An admitted slot is never given
// back: callers that abandon the call still consumed it.
func (t *Tracker) TryAdmit() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if now.Sub(t.windowStart) > t.window {
		t.count = 0
		t.windowStart = now
	}

	if t.count >= t.limit {
		return false
	}
	t.count++
	return true
}

// Remaining reports how many admissions are left in the current window,
// resetting the window first if it has expired.
func (t *Tracker) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if now.Sub(t.windowStart) > t.window {
		t.count = 0
		t.windowStart = now
	}
	return t.limit - t.count
}

// Limit returns the configured per-window admission limit.
func (t *Tracker) Limit() int {
	return t.limit
}

// Window returns the configured window duration.
func (t *Tracker) Window() time.Duration {
	return t.window
}
