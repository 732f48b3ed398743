// Package leads persists demo requests captured from the marketing site.
package leads

import (
	"context"
	"time"
)

// Lead is a stored demo request.
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the persistence interface for captured leads.
type Store interface {
	// Save writes a single lead. The ID must be set by the caller.
	Save(ctx context.Context, lead *Lead) error

	// List retrieves leads newest first, up to limit.
	List(ctx context.Context, limit int) ([]*Lead, error)

	// Close releases database resources.
	Close() error

	// Ping verifies the connection is alive.
	Ping(ctx context.Context) error
}
