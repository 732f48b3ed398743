// Package gateway orchestrates a single chat request: admission control, one
// optional upstream attempt, and local fallback.
//
// Per-request flow:
//
//	RECEIVED -> validate text (empty fails fast, no quota consumed)
//	         -> quota.TryAdmit
//	            false -> THROTTLED: fallback answer + degraded-mode note
//	            true  -> ADMITTED: one upstream call
//	                       ok           -> upstream answer, no note
//	                       rate limited -> fallback answer + degraded-mode note
//	                       other error  -> fallback answer, NO note
//	         -> RESPONDED
//
// After validation every path produces a usable answer: upstream problems are
// never surfaced to the end user as errors. The gateway itself is stateless
// across requests; the quota tracker is the only shared mutable state and the
// admitted slot is not refunded if the caller disconnects mid-call.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/admybrand/adbot-gateway/internal/knowledge"
	"github.com/admybrand/adbot-gateway/internal/llm"
	"github.com/admybrand/adbot-gateway/internal/metrics"
	"github.com/admybrand/adbot-gateway/internal/quota"
)

// Source reports where a chat answer came from.
type Source string

const (
	SourceUpstream Source = "upstream"
	SourceFallback Source = "fallback"
)

// DegradedNote is attached when the answer degraded because of rate limiting,
// ours or the upstream's. Other upstream failures degrade silently: "we chose
// not to call" reads differently to the user than "the call broke".
const DegradedNote = "Using enhanced response due to high demand. Please try again in a few minutes for AI-powered responses."

// ErrEmptyMessage rejects empty or whitespace-only chat messages.
var ErrEmptyMessage = errors.New("chat message is empty")

// Response is the normalized chat answer envelope.
type Response struct {
	ID        string    `json:"id"`
	Text      string    `json:"response"`
	Source    Source    `json:"source"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Gateway mediates between chat clients and the upstream generation service.
// Safe for concurrent use.
type Gateway struct {
	upstream llm.Client
	quota    *quota.Tracker
	fallback *knowledge.Responder
	log      *zap.Logger
}

// New creates a gateway. All dependencies are required.
func New(upstream llm.Client, tracker *quota.Tracker, fallback *knowledge.Responder, log *zap.Logger) (*Gateway, error) {
	if upstream == nil {
		return nil, fmt.Errorf("upstream client is required")
	}
	if tracker == nil {
		return nil, fmt.Errorf("quota tracker is required")
	}
	if fallback == nil {
		return nil, fmt.Errorf("fallback responder is required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{
		upstream: upstream,
		quota:    tracker,
		fallback: fallback,
		log:      log,
	}, nil
}

// Send handles one chat message and always returns a response for non-empty
// input. The only error it returns is ErrEmptyMessage.
func (g *Gateway) Send(ctx context.Context, message string) (*Response, error) {
	start := time.Now()

	message = strings.TrimSpace(message)
	if message == "" {
		metrics.ChatRequestsTotal.WithLabelValues("none", "invalid").Inc()
		return nil, ErrEmptyMessage
	}

	id := uuid.NewString()

	if !g.quota.TryAdmit() {
		metrics.QuotaThrottledTotal.Inc()
		g.log.Info("quota exhausted, answering from knowledge base",
			zap.String("request_id", id))
		return g.respond(ctx, id, start, message, DegradedNote), nil
	}

	upstreamStart := time.Now()
	text, err := g.upstream.Answer(ctx, message)
	metrics.UpstreamRequestDuration.Observe(time.Since(upstreamStart).Seconds())

	switch {
	case err == nil:
		metrics.UpstreamRequestsTotal.WithLabelValues("ok").Inc()
		metrics.ChatRequestsTotal.WithLabelValues(string(SourceUpstream), "ok").Inc()
		metrics.ChatRequestDuration.WithLabelValues(string(SourceUpstream)).Observe(time.Since(start).Seconds())
		return &Response{
			ID:        id,
			Text:      text,
			Source:    SourceUpstream,
			Timestamp: time.Now(),
		}, nil

	case errors.Is(err, llm.ErrRateLimited):
		metrics.UpstreamRequestsTotal.WithLabelValues("rate_limited").Inc()
		g.log.Warn("upstream rate limited, answering from knowledge base",
			zap.String("request_id", id))
		return g.respond(ctx, id, start, message, DegradedNote), nil

	default:
		metrics.UpstreamRequestsTotal.WithLabelValues("error").Inc()
		g.log.Error("upstream call failed, answering from knowledge base",
			zap.String("request_id", id),
			zap.Error(err))
		return g.respond(ctx, id, start, message, ""), nil
	}
}

// respond produces a fallback response envelope.
func (g *Gateway) respond(ctx context.Context, id string, start time.Time, message, note string) *Response {
	text := g.fallback.Reply(ctx, message)
	metrics.ChatRequestsTotal.WithLabelValues(string(SourceFallback), "ok").Inc()
	metrics.ChatRequestDuration.WithLabelValues(string(SourceFallback)).Observe(time.Since(start).Seconds())
	return &Response{
		ID:        id,
		Text:      text,
		Source:    SourceFallback,
		Note:      note,
		Timestamp: time.Now(),
	}
}
