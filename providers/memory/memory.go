package memory

import (
	"context"

	"github.com/reagentic/reagent/providers/ai"
)

// Provider is the conversation store used by agent loops. Implementations
// must be safe for concurrent use.
type Provider interface {
	// AppendMessage stores a copy of message at the end of the history.
	AppendMessage(ctx context.Context, message *ai.Message)

	// AllMessages returns a copy of the full history in insertion order.
	AllMessages(ctx context.Context) ([]ai.Message, error)

	// LastMessages returns up to the last n messages.
	LastMessages(ctx context.Context, n int) ([]ai.Message, error)

	// Count returns the number of stored messages.
	Count(ctx context.Context) (int, error)

	// ClearMessages removes all stored messages.
	ClearMessages(ctx context.Context)
}
