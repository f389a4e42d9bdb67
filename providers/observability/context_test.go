package observability

import (
	"context"
	"testing"
)

type nopSpan struct{}

func (nopSpan) End()                          {}
func (nopSpan) SetAttributes(...Attribute)    {}
func (nopSpan) SetStatus(StatusCode, string)  {}
func (nopSpan) RecordError(error)             {}
func (nopSpan) AddEvent(string, ...Attribute) {}

func TestSpanFromContext_Empty(t *testing.T) {
	if span := SpanFromContext(context.Background()); span != nil {
		t.Errorf("expected nil span, got %v", span)
	}
	if span := SpanFromContext(nil); span != nil { //nolint:staticcheck
		t.Errorf("expected nil span for nil context, got %v", span)
	}
}

func TestContextWithSpan_RoundTrip(t *testing.T) {
	span := nopSpan{}
	ctx := ContextWithSpan(context.Background(), span)

	got := SpanFromContext(ctx)
	if got != span {
		t.Errorf("expected the attached span back, got %v", got)
	}
}

func TestContextWithSpan_NilParent(t *testing.T) {
	ctx := ContextWithSpan(nil, nopSpan{}) //nolint:staticcheck
	if ctx == nil {
		t.Fatal("expected a non-nil context")
	}
	if SpanFromContext(ctx) == nil {
		t.Error("expected span to survive nil parent")
	}
}

func TestObserverFromContext_Empty(t *testing.T) {
	if p := ObserverFromContext(context.Background()); p != nil {
		t.Errorf("expected nil provider, got %v", p)
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("short", 10); got != "short" {
		t.Errorf("short string should be unchanged, got %q", got)
	}
	got := TruncateString("abcdefghij", 4)
	if got == "abcdefghij" {
		t.Error("expected truncation")
	}
	if got[:4] != "abcd" {
		t.Errorf("expected prefix preserved, got %q", got)
	}
}
