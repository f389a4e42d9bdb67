package inmemory

import (
	"context"
	"sync"

	"github.com/reagentic/reagent/providers/ai"
	"github.com/reagentic/reagent/providers/memory"
	"github.com/reagentic/reagent/providers/observability"
)

// ArrayMemory is a concurrency-safe, append-only in-memory message store.
// It guards access with an RWMutex, which suits the read-heavy access pattern
// of an agent loop replaying the conversation on every model call.
//
// Tool messages are deduplicated by tool call ID: appending a second result
// for a call ID already present in the history is a no-op. This keeps a loop
// that replays tool executions from corrupting the conversation with
// duplicate observations.
type ArrayMemory struct {
	mu       sync.RWMutex
	messages []ai.Message
	seenIDs  map[string]bool
}

// New returns a new, empty [ArrayMemory] ready for immediate use.
func New() *ArrayMemory {
	return &ArrayMemory{
		messages: []ai.Message{},
		seenIDs:  map[string]bool{},
	}
}

var _ memory.Provider = (*ArrayMemory)(nil)

// AppendMessage stores a copy of message at the end of the history. Nil
// messages and tool results whose call ID is already stored are ignored.
// When a span is present in ctx, an append event is recorded with the message
// role, and the running message count is set as a span attribute.
func (m *ArrayMemory) AppendMessage(ctx context.Context, message *ai.Message) {
	if message == nil {
		return
	}

	m.mu.Lock()
	if message.Role == ai.RoleTool && message.ToolCallID != "" {
		if m.seenIDs[message.ToolCallID] {
			m.mu.Unlock()
			return
		}
		m.seenIDs[message.ToolCallID] = true
	}
	m.messages = append(m.messages, *message)
	total := len(m.messages)
	m.mu.Unlock()

	if span := observability.SpanFromContext(ctx); span != nil {
		span.AddEvent(observability.EventMemoryAppend,
			observability.String(observability.AttrMemoryMessageRole, string(message.Role)),
		)
		span.SetAttributes(
			observability.Int(observability.AttrMemoryTotalMessages, total),
		)
	}
}

// AllMessages returns a copy of all messages so callers cannot mutate the
// internal state. The returned error is always nil.
func (m *ArrayMemory) AllMessages(_ context.Context) ([]ai.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]ai.Message, len(m.messages))
	copy(out, m.messages)
	return out, nil
}

// LastMessages returns up to the last n messages as an independent slice.
// A non-positive n yields an empty, non-nil slice. The returned error is
// always nil.
func (m *ArrayMemory) LastMessages(_ context.Context, n int) ([]ai.Message, error) {
	if n <= 0 {
		return []ai.Message{}, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if n > len(m.messages) {
		n = len(m.messages)
	}
	out := make([]ai.Message, n)
	copy(out, m.messages[len(m.messages)-n:])
	return out, nil
}

// Count returns the number of stored messages. The returned error is always
// nil.
func (m *ArrayMemory) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.messages), nil
}

// ClearMessages removes all stored messages and forgets seen tool call IDs.
func (m *ArrayMemory) ClearMessages(_ context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = []ai.Message{}
	m.seenIDs = map[string]bool{}
}
