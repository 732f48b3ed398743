package llm

import "context"

// Client is a single-attempt boundary call to an upstream text-generation
// service. Implementations compose the full prompt from the user message,
// perform exactly one network call, and classify failures as ErrRateLimited
// or *UpstreamError. Retry and fallback policy belong to the gateway, never
// here.
type Client interface {
	// Answer generates an assistant reply to the user's message.
	Answer(ctx context.Context, message string) (string, error)
}
