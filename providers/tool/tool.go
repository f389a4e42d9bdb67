package tool

import (
	"context"
	"encoding/json"
	"time"

	"github.com/reagentic/reagent/core/cost"
	"github.com/reagentic/reagent/core/parse"
	"github.com/reagentic/reagent/internal/jsonschema"
	"github.com/reagentic/reagent/providers/ai"
	"github.com/reagentic/reagent/providers/observability"
)

// Tool binds a name and description to a strongly-typed Go function and
// derives JSON schemas for its input (I) and output (O) via reflection.
// Use [NewTool] to construct one; store and dispatch tools through the
// provider-agnostic [GenericTool] interface.
type Tool[I, O any] struct {
	Name        string
	Description string
	Parameters  *jsonschema.Schema
	Output      *jsonschema.Schema
	Function    func(ctx context.Context, input I) (O, error)
	// Metrics holds optional cost and performance metadata for this tool.
	Metrics *cost.ToolMetrics
}

// GenericTool is the provider-agnostic interface for all tools. It abstracts
// over the concrete type parameters of [Tool] so tools can be registered and
// invoked without knowing their exact input and output types.
type GenericTool interface {
	// ToolInfo returns the metadata used to advertise this tool to an LLM.
	ToolInfo() ai.ToolDescription

	// Call invokes the tool with a JSON-encoded input string and returns a
	// JSON-encoded output string.
	Call(ctx context.Context, inputJSON string) (string, error)

	// GetMetrics returns the tool's cost metadata, or nil if none was set.
	GetMetrics() *cost.ToolMetrics
}

type toolOptions struct {
	description string
	metrics     *cost.ToolMetrics
}

// Option configures a tool created via [NewTool].
type Option func(*toolOptions)

// WithDescription sets the human-readable description surfaced to the model.
func WithDescription(description string) Option {
	return func(o *toolOptions) {
		o.description = description
	}
}

// WithMetrics attaches cost and performance metadata to the tool.
func WithMetrics(metrics cost.ToolMetrics) Option {
	return func(o *toolOptions) {
		o.metrics = &metrics
	}
}

// NewTool constructs a [Tool] with the given name and handler function.
// Schemas for I and O are derived automatically.
//
// Example:
//
//	searchTool := tool.NewTool("web_search", searchFunc,
//	    tool.WithDescription("Search for information about a topic."),
//	)
func NewTool[I, O any](name string, function func(ctx context.Context, input I) (O, error), options ...Option) *Tool[I, O] {
	opts := &toolOptions{}
	for _, option := range options {
		option(opts)
	}

	return &Tool[I, O]{
		Name:        name,
		Description: opts.description,
		Parameters:  jsonschema.GenerateJSONSchema[I](),
		Output:      jsonschema.GenerateJSONSchema[O](),
		Function:    function,
		Metrics:     opts.metrics,
	}
}

// ToolInfo returns the [ai.ToolDescription] advertising this tool.
func (t *Tool[I, O]) ToolInfo() ai.ToolDescription {
	return ai.ToolDescription{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  t.Parameters,
		Metrics:     t.Metrics,
	}
}

// Call parses inputJSON into the tool's input type, executes the function,
// and returns the output serialized as JSON. Input parsing tolerates the
// malformed JSON models sometimes emit. Span events are recorded when a span
// is present in ctx.
func (t *Tool[I, O]) Call(ctx context.Context, inputJSON string) (string, error) {
	span := observability.SpanFromContext(ctx)

	if span != nil {
		span.AddEvent(observability.EventToolExecutionStart,
			observability.String(observability.AttrToolName, t.Name),
			observability.String(observability.AttrToolInput, inputJSON),
		)
		defer span.AddEvent(observability.EventToolExecutionEnd)
	}

	start := time.Now()

	input, err := parse.ParseStringAs[I](inputJSON)
	if err != nil {
		if span != nil {
			span.RecordError(err)
		}
		return "", err
	}

	output, err := t.Function(ctx, input)
	duration := time.Since(start)

	if err != nil {
		if span != nil {
			span.RecordError(err)
			span.SetAttributes(observability.Duration(observability.AttrToolDuration, duration))
		}
		return "", err
	}

	outputBytes, err := json.Marshal(output)
	if err != nil {
		if span != nil {
			span.RecordError(err)
		}
		return "", err
	}

	if span != nil {
		span.SetAttributes(
			observability.String(observability.AttrToolOutput, string(outputBytes)),
			observability.Duration(observability.AttrToolDuration, duration),
		)
	}

	return string(outputBytes), nil
}

// GetMetrics returns the tool's cost metadata, if any.
func (t *Tool[I, O]) GetMetrics() *cost.ToolMetrics {
	return t.Metrics
}
