package knowledge

import (
	"context"
	"strings"
	"time"
)

// DefaultDelay is the simulated generation latency for locally produced
// answers. Upstream answers take on the order of a second; a fallback that
// returns instantly would make the degraded path obvious to the client, so the
// responder waits at least this long before answering.
const DefaultDelay = 1 * time.Second

// Responder produces canned answers from the knowledge base without any
// network dependency. Matching is deterministic and the responder holds no
// mutable state, so a single instance is safe for concurrent use.
type Responder struct {
	rules []Rule
	delay time.Duration
}

// NewResponder creates a responder over the built-in knowledge base.
// delay is the minimum time Reply takes to answer; pass 0 in tests.
func NewResponder(delay time.Duration) *Responder {
	return &Responder{
		rules: rules,
		delay: delay,
	}
}

// Answer returns the canned answer for the given user message, evaluating the
// rules in priority order with first-match-wins semantics. Unmatched messages
// get the generic introduction. Pure: same input, same output.
func (r *Responder) Answer(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range r.rules {
		for _, trigger := range rule.Triggers {
			if strings.Contains(lower, trigger) {
				return rule.Answer
			}
		}
	}
	return defaultAnswer
}

// Match reports which topic would answer the given message, for diagnostics
// and tests. Returns TopicGeneral when no rule matches.
func (r *Responder) Match(message string) Topic {
	lower := strings.ToLower(message)
	for _, rule := range r.rules {
		for _, trigger := range rule.Triggers {
			if strings.Contains(lower, trigger) {
				return rule.Topic
			}
		}
	}
	return TopicGeneral
}

// Reply answers like Answer but waits out the configured latency floor first.
// If ctx is cancelled during the wait the answer is returned immediately; the
// caller that cancelled is gone and gets a usable answer either way.
func (r *Responder) Reply(ctx context.Context, message string) string {
	answer := r.Answer(message)
	if r.delay <= 0 {
		return answer
	}
	timer := time.NewTimer(r.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
	return answer
}
