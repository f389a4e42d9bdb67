package inmemory

import (
	"context"
	"sync"
	"testing"

	"github.com/reagentic/reagent/providers/ai"
)

func TestArrayMemory_AppendAndRead(t *testing.T) {
	ctx := context.Background()
	m := New()

	m.AppendMessage(ctx, &ai.Message{Role: ai.RoleUser, Content: "hello"})
	m.AppendMessage(ctx, &ai.Message{Role: ai.RoleAssistant, Content: "hi"})

	msgs, err := m.AllMessages(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected two messages, got %d", len(msgs))
	}
	if msgs[0].Role != ai.RoleUser || msgs[1].Role != ai.RoleAssistant {
		t.Errorf("messages out of order: %+v", msgs)
	}

	if n, _ := m.Count(ctx); n != 2 {
		t.Errorf("expected count 2, got %d", n)
	}
}

func TestArrayMemory_NilIgnored(t *testing.T) {
	ctx := context.Background()
	m := New()

	m.AppendMessage(ctx, nil)

	if n, _ := m.Count(ctx); n != 0 {
		t.Errorf("expected nil message ignored, count %d", n)
	}
}

func TestArrayMemory_ToolResultDedupe(t *testing.T) {
	ctx := context.Background()
	m := New()

	m.AppendMessage(ctx, &ai.Message{Role: ai.RoleTool, ToolCallID: "call_1", Content: "first"})
	m.AppendMessage(ctx, &ai.Message{Role: ai.RoleTool, ToolCallID: "call_1", Content: "duplicate"})
	m.AppendMessage(ctx, &ai.Message{Role: ai.RoleTool, ToolCallID: "call_2", Content: "second"})

	msgs, _ := m.AllMessages(ctx)
	if len(msgs) != 2 {
		t.Fatalf("expected duplicate dropped, got %d messages", len(msgs))
	}
	if msgs[0].Content != "first" || msgs[1].Content != "second" {
		t.Errorf("unexpected contents: %+v", msgs)
	}
}

// Dedupe only applies to tool results; assistant and user messages may repeat.
func TestArrayMemory_NonToolMessagesNotDeduped(t *testing.T) {
	ctx := context.Background()
	m := New()

	m.AppendMessage(ctx, &ai.Message{Role: ai.RoleUser, Content: "same"})
	m.AppendMessage(ctx, &ai.Message{Role: ai.RoleUser, Content: "same"})

	if n, _ := m.Count(ctx); n != 2 {
		t.Errorf("expected both user messages kept, count %d", n)
	}
}

func TestArrayMemory_LastMessages(t *testing.T) {
	ctx := context.Background()
	m := New()
	for _, c := range []string{"a", "b", "c"} {
		m.AppendMessage(ctx, &ai.Message{Role: ai.RoleUser, Content: c})
	}

	last, _ := m.LastMessages(ctx, 2)
	if len(last) != 2 || last[0].Content != "b" || last[1].Content != "c" {
		t.Errorf("unexpected tail: %+v", last)
	}

	all, _ := m.LastMessages(ctx, 10)
	if len(all) != 3 {
		t.Errorf("expected full history for oversized n, got %d", len(all))
	}

	none, _ := m.LastMessages(ctx, 0)
	if none == nil || len(none) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", none)
	}
}

func TestArrayMemory_Clear(t *testing.T) {
	ctx := context.Background()
	m := New()
	m.AppendMessage(ctx, &ai.Message{Role: ai.RoleTool, ToolCallID: "call_1", Content: "x"})

	m.ClearMessages(ctx)

	if n, _ := m.Count(ctx); n != 0 {
		t.Errorf("expected empty store, count %d", n)
	}

	// Clearing also forgets call IDs, so the same ID can be stored again.
	m.AppendMessage(ctx, &ai.Message{Role: ai.RoleTool, ToolCallID: "call_1", Content: "again"})
	if n, _ := m.Count(ctx); n != 1 {
		t.Errorf("expected call ID usable after clear, count %d", n)
	}
}

func TestArrayMemory_CopySemantics(t *testing.T) {
	ctx := context.Background()
	m := New()
	m.AppendMessage(ctx, &ai.Message{Role: ai.RoleUser, Content: "original"})

	msgs, _ := m.AllMessages(ctx)
	msgs[0].Content = "mutated"

	fresh, _ := m.AllMessages(ctx)
	if fresh[0].Content != "original" {
		t.Error("external mutation leaked into the store")
	}
}

func TestArrayMemory_ConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	m := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.AppendMessage(ctx, &ai.Message{Role: ai.RoleUser, Content: "msg"})
		}()
	}
	wg.Wait()

	if n, _ := m.Count(ctx); n != 50 {
		t.Errorf("expected 50 messages, got %d", n)
	}
}
