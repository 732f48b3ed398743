// Package llm defines the provider-neutral contract between the chat gateway
// and upstream text-generation providers: the failure taxonomy and the minimal
// client interface. Provider packages (gemini) live below this one.
package llm

import (
	"errors"
	"fmt"
)

// ErrRateLimited reports that the upstream itself rejected the call with a
// rate-limit signal (HTTP 429). The gateway treats it like local throttling.
var ErrRateLimited = errors.New("upstream rate limited")

// UpstreamError covers every other upstream failure: network errors, timeouts,
// non-success statuses and malformed response bodies. All of them degrade to a
// fallback answer; the distinction from ErrRateLimited only controls the
// user-facing note.
type UpstreamError struct {
	Status int    // HTTP status, 0 when the request never completed
	Reason string // short operator-facing description
	Err    error  // underlying cause, may be nil
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream error (status %d): %s: %v", e.Status, e.Reason, e.Err)
	}
	return fmt.Sprintf("upstream error (status %d): %s", e.Status, e.Reason)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
