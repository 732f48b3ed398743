package gateway

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/admybrand/adbot-gateway/internal/knowledge"
	"github.com/admybrand/adbot-gateway/internal/llm"
	"github.com/admybrand/adbot-gateway/internal/quota"
)

// fakeUpstream scripts the upstream client's behavior and counts calls.
type fakeUpstream struct {
	mu    sync.Mutex
	calls int
	text  string
	err   error
}

func (f *fakeUpstream) Answer(ctx context.Context, message string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func (f *fakeUpstream) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestGateway(t *testing.T, up llm.Client, limit int) *Gateway {
	t.Helper()
	gw, err := New(up, quota.NewTracker(limit, time.Minute), knowledge.NewResponder(0), zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return gw
}

func TestSendUpstreamSuccess(t *testing.T) {
	up := &fakeUpstream{text: "generated answer"}
	gw := newTestGateway(t, up, 10)

	resp, err := gw.Send(context.Background(), "what are your pricing plans?")
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if resp.Source != SourceUpstream {
		t.Errorf("Source = %s, want %s", resp.Source, SourceUpstream)
	}
	if resp.Text != "generated answer" {
		t.Errorf("Text = %q", resp.Text)
	}
	if resp.Note != "" {
		t.Errorf("Note = %q, want empty on upstream success", resp.Note)
	}
	if resp.ID == "" {
		t.Error("expected non-empty response ID")
	}
}

func TestSendEmptyMessage(t *testing.T) {
	up := &fakeUpstream{text: "generated answer"}
	gw := newTestGateway(t, up, 10)

	for _, msg := range []string{"", "   ", "\n\t "} {
		_, err := gw.Send(context.Background(), msg)
		if !errors.Is(err, ErrEmptyMessage) {
			t.Errorf("Send(%q) error = %v, want ErrEmptyMessage", msg, err)
		}
	}
	if up.callCount() != 0 {
		t.Errorf("upstream called %d times for invalid input, want 0", up.callCount())
	}
}

func TestSendThrottledUsesFallbackWithNote(t *testing.T) {
	up := &fakeUpstream{text: "generated answer"}
	gw := newTestGateway(t, up, 2)

	// Exhaust the quota.
	for i := 0; i < 2; i++ {
		if _, err := gw.Send(context.Background(), "hello there"); err != nil {
			t.Fatalf("Send() error: %v", err)
		}
	}

	resp, err := gw.Send(context.Background(), "pricing please")
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if resp.Source != SourceFallback {
		t.Errorf("Source = %s, want %s", resp.Source, SourceFallback)
	}
	if resp.Note != DegradedNote {
		t.Errorf("Note = %q, want degraded-mode note", resp.Note)
	}
	if up.callCount() != 2 {
		t.Errorf("upstream called %d times, want 2 (throttled call must not reach upstream)", up.callCount())
	}
}

func TestSendUpstreamRateLimitedUsesFallbackWithNote(t *testing.T) {
	up := &fakeUpstream{err: llm.ErrRateLimited}
	gw := newTestGateway(t, up, 10)

	resp, err := gw.Send(context.Background(), "tell me about features")
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if resp.Source != SourceFallback {
		t.Errorf("Source = %s, want %s", resp.Source, SourceFallback)
	}
	if resp.Note != DegradedNote {
		t.Errorf("Note = %q, want degraded-mode note", resp.Note)
	}
	if resp.Text == "" {
		t.Error("fallback answer is empty")
	}
}

func TestSendUpstreamErrorUsesFallbackWithoutNote(t *testing.T) {
	up := &fakeUpstream{err: &llm.UpstreamError{Status: 500, Reason: "boom"}}
	gw := newTestGateway(t, up, 10)

	resp, err := gw.Send(context.Background(), "tell me about features")
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if resp.Source != SourceFallback {
		t.Errorf("Source = %s, want %s", resp.Source, SourceFallback)
	}
	if resp.Note != "" {
		t.Errorf("Note = %q, want empty for non-rate-limit upstream failure", resp.Note)
	}
	if up.callCount() != 1 {
		t.Errorf("upstream called %d times, want exactly 1 (no retries)", up.callCount())
	}
}

func TestSendAlwaysAnswers(t *testing.T) {
	failures := []error{
		llm.ErrRateLimited,
		&llm.UpstreamError{Status: 500, Reason: "server error"},
		&llm.UpstreamError{Status: 200, Reason: "malformed body"},
		&llm.UpstreamError{Reason: "network down"},
	}

	for _, failure := range failures {
		up := &fakeUpstream{err: failure}
		gw := newTestGateway(t, up, 10)

		resp, err := gw.Send(context.Background(), "anything at all")
		if err != nil {
			t.Errorf("Send() with upstream failure %v returned error: %v", failure, err)
			continue
		}
		if resp.Text == "" {
			t.Errorf("Send() with upstream failure %v returned empty answer", failure)
		}
		if resp.Source != SourceFallback {
			t.Errorf("Send() with upstream failure %v: Source = %s", failure, resp.Source)
		}
	}
}

func TestSendElevenRequestsWithinWindow(t *testing.T) {
	up := &fakeUpstream{text: "generated answer"}
	gw := newTestGateway(t, up, 10)

	for i := 0; i < 10; i++ {
		resp, err := gw.Send(context.Background(), "hello")
		if err != nil {
			t.Fatalf("request %d: %v", i+1, err)
		}
		if resp.Source != SourceUpstream {
			t.Fatalf("request %d: Source = %s, want upstream", i+1, resp.Source)
		}
	}

	resp, err := gw.Send(context.Background(), "hello")
	if err != nil {
		t.Fatalf("11th request: %v", err)
	}
	if resp.Source != SourceFallback {
		t.Errorf("11th request: Source = %s, want fallback", resp.Source)
	}
	if resp.Note != DegradedNote {
		t.Errorf("11th request: Note = %q, want degraded-mode note", resp.Note)
	}
	if up.callCount() != 10 {
		t.Errorf("upstream attempted %d times, want 10", up.callCount())
	}
}

func TestSendConcurrent(t *testing.T) {
	up := &fakeUpstream{text: "generated answer"}
	gw := newTestGateway(t, up, 10)

	var wg sync.WaitGroup
	var mu sync.Mutex
	upstreamCount := 0

	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := gw.Send(context.Background(), "concurrent hello")
			if err != nil {
				t.Errorf("Send() error: %v", err)
				return
			}
			if resp.Source == SourceUpstream {
				mu.Lock()
				upstreamCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if upstreamCount != 10 {
		t.Errorf("%d upstream answers under concurrency, want exactly 10", upstreamCount)
	}
	if up.callCount() != 10 {
		t.Errorf("upstream attempted %d times, want exactly 10", up.callCount())
	}
}

func TestNewRequiresDependencies(t *testing.T) {
	up := &fakeUpstream{}
	tracker := quota.NewTracker(1, time.Minute)
	responder := knowledge.NewResponder(0)

	if _, err := New(nil, tracker, responder, nil); err == nil {
		t.Error("expected error for nil upstream")
	}
	if _, err := New(up, nil, responder, nil); err == nil {
		t.Error("expected error for nil tracker")
	}
	if _, err := New(up, tracker, nil, nil); err == nil {
		t.Error("expected error for nil responder")
	}
	if _, err := New(up, tracker, responder, nil); err != nil {
		t.Errorf("nil logger should default to nop, got error: %v", err)
	}
}
