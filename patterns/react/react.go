package react

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reagentic/reagent/providers/ai"
	"github.com/reagentic/reagent/providers/memory/inmemory"
	"github.com/reagentic/reagent/providers/observability"
	"github.com/reagentic/reagent/providers/tool"
)

// ErrMaxIterations is returned when the loop hits its iteration bound before
// the model produces a final answer. The partial answer collected so far is
// still returned alongside it.
var ErrMaxIterations = errors.New("maximum iterations reached")

const (
	defaultMaxIterations = 5
	defaultTemperature   = 0.1
)

// Config holds the explicit, per-agent settings of the loop. The zero value
// is usable: defaults are filled in by New.
type Config struct {
	// Model is the provider-specific model identifier. Empty selects the
	// provider's default model.
	Model string

	// Temperature is the sampling temperature. Zero selects the default 0.1.
	Temperature float32

	// MaxTokens bounds the completion size. Zero leaves it unset.
	MaxTokens int

	// SystemPrompt overrides DefaultSystemPrompt when non-empty.
	SystemPrompt string

	// MaxIterations bounds how many times the model is called per query.
	// Zero selects the default of 5.
	MaxIterations int

	// RequestTimeout bounds each individual model call. Zero means no
	// per-call timeout beyond the caller's context.
	RequestTimeout time.Duration
}

// Agent drives the ReAct loop: the model reasons over the conversation,
// requests tool executions, observes their results, and repeats until it
// answers in plain text or the iteration bound is hit.
//
// Each query runs on a fresh conversation; an Agent is safe for concurrent
// use by multiple goroutines.
type Agent struct {
	provider ai.Provider
	catalog  *tool.Catalog
	observer observability.Provider
	config   Config
}

// New creates an Agent from a model provider, a tool catalog, and a config.
// The observer may be nil, which disables tracing and metrics.
func New(provider ai.Provider, catalog *tool.Catalog, observer observability.Provider, config Config) (*Agent, error) {
	if provider == nil {
		return nil, errors.New("provider is required")
	}
	if catalog == nil {
		catalog = tool.NewCatalog()
	}
	if config.MaxIterations <= 0 {
		config.MaxIterations = defaultMaxIterations
	}
	if config.Temperature <= 0 {
		config.Temperature = defaultTemperature
	}
	if config.SystemPrompt == "" {
		config.SystemPrompt = DefaultSystemPrompt
	}

	return &Agent{
		provider: provider,
		catalog:  catalog,
		observer: observer,
		config:   config,
	}, nil
}

// Config returns a copy of the agent's effective configuration, with
// defaults applied.
func (a *Agent) Config() Config {
	return a.config
}

// Invoke runs the loop to completion for one query and returns the final
// answer text. On ErrMaxIterations the last assistant text is returned along
// with the error.
func (a *Agent) Invoke(ctx context.Context, query string) (string, error) {
	return a.Stream(ctx, query).Collect()
}

// Stream runs the loop for one query, yielding a step snapshot for every
// phase: iteration starts, assistant messages, tool calls, tool results, and
// the final answer. The model is called exactly once per iteration whether
// the caller consumes events or collects them.
func (a *Agent) Stream(ctx context.Context, query string) *Stream {
	return &Stream{iterator: func(yield func(Event, error) bool) {
		a.run(ctx, query, yield)
	}}
}

// run is the loop driver behind Stream and Invoke.
func (a *Agent) run(ctx context.Context, query string, yield func(Event, error) bool) {
	var span observability.Span
	if a.observer != nil {
		ctx = observability.ContextWithObserver(ctx, a.observer)
		ctx, span = a.observer.StartSpan(ctx, observability.SpanAgentInvoke,
			observability.String(observability.AttrAgentQuery, observability.TruncateString(query, observability.DefaultMaxStringLength)),
			observability.Int(observability.AttrAgentMaxIterations, a.config.MaxIterations),
		)
		ctx = observability.ContextWithSpan(ctx, span)
		defer span.End()

		a.observer.Counter(observability.MetricAgentInvocationCount).Add(ctx, 1)
	}

	// Each query gets a fresh conversation seeded with the user message.
	conversation := inmemory.New()
	conversation.AppendMessage(ctx, &ai.Message{Role: ai.RoleUser, Content: query})

	// Tool results are applied at most once per call ID, even if the model
	// re-emits a call it has already seen answered.
	executed := map[string]bool{}

	var lastContent string

	for iteration := 1; ; iteration++ {
		if iteration > a.config.MaxIterations {
			if span != nil {
				span.SetStatus(observability.StatusError, ErrMaxIterations.Error())
			}
			a.recordIterations(ctx, a.config.MaxIterations)
			yield(Event{Type: EventAssistantMessage, Iteration: a.config.MaxIterations, Content: lastContent},
				fmt.Errorf("agent stopped after %d iterations: %w", a.config.MaxIterations, ErrMaxIterations))
			return
		}

		if !yield(Event{Type: EventIterationStart, Iteration: iteration}, nil) {
			return
		}

		response, err := a.callModel(ctx, conversation)
		if err != nil {
			// Model failures are fatal: without a response there is nothing
			// to append or recover from.
			if span != nil {
				span.RecordError(err)
				span.SetStatus(observability.StatusError, "model call failed")
			}
			yield(Event{Iteration: iteration}, fmt.Errorf("model call failed on iteration %d: %w", iteration, err))
			return
		}

		assistant := response.AssistantMessage()
		conversation.AppendMessage(ctx, assistant)
		if assistant.Content != "" {
			lastContent = assistant.Content
		}

		if !yield(Event{Type: EventAssistantMessage, Iteration: iteration, Content: assistant.Content}, nil) {
			return
		}

		// Continuation predicate: the loop keeps going only while the latest
		// assistant message requests tool executions.
		if len(response.ToolCalls) == 0 {
			a.recordIterations(ctx, iteration)
			if span != nil {
				span.SetStatus(observability.StatusOK, "")
				span.SetAttributes(observability.Int(observability.AttrAgentIteration, iteration))
			}
			yield(Event{Type: EventFinalAnswer, Iteration: iteration, Content: assistant.Content}, nil)
			return
		}

		for _, call := range response.ToolCalls {
			if executed[call.ID] {
				continue
			}
			executed[call.ID] = true

			if !yield(Event{
				Type:       EventToolCall,
				Iteration:  iteration,
				ToolName:   call.Function.Name,
				ToolInput:  call.Function.Arguments,
				ToolCallID: call.ID,
			}, nil) {
				return
			}

			output := a.executeTool(ctx, call)
			conversation.AppendMessage(ctx, &ai.Message{
				Role:       ai.RoleTool,
				Name:       call.Function.Name,
				ToolCallID: call.ID,
				Content:    output,
			})

			if !yield(Event{
				Type:       EventToolResult,
				Iteration:  iteration,
				ToolName:   call.Function.Name,
				ToolOutput: output,
				ToolCallID: call.ID,
			}, nil) {
				return
			}
		}
	}
}

// callModel sends the current conversation to the provider, applying the
// configured per-call timeout.
func (a *Agent) callModel(ctx context.Context, conversation *inmemory.ArrayMemory) (*ai.ChatResponse, error) {
	if a.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.RequestTimeout)
		defer cancel()
	}

	messages, err := conversation.AllMessages(ctx)
	if err != nil {
		return nil, err
	}

	return a.provider.SendMessage(ctx, ai.ChatRequest{
		Model:        a.config.Model,
		SystemPrompt: a.config.SystemPrompt,
		Messages:     messages,
		Tools:        a.catalog.Descriptions(),
		GenerationConfig: &ai.GenerationConfig{
			Temperature: a.config.Temperature,
			MaxTokens:   a.config.MaxTokens,
		},
	})
}

// executeTool runs one tool call and renders its outcome as the tool message
// content. Unknown tools and execution failures are recovered into error
// envelopes the model can read, so the loop keeps going.
func (a *Agent) executeTool(ctx context.Context, call ai.ToolCall) string {
	if a.observer != nil {
		a.observer.Counter(observability.MetricToolCallCount).Add(ctx, 1,
			observability.String(observability.AttrToolName, call.Function.Name))
	}

	t, ok := a.catalog.Get(call.Function.Name)
	if !ok {
		out, _ := ai.NewToolResultError("unknown_tool",
			fmt.Sprintf("tool %q is not available", call.Function.Name)).ToJSON()
		return out
	}

	output, err := t.Call(ctx, call.Function.Arguments)
	if err != nil {
		out, _ := ai.NewToolResultError("execution_error", err.Error()).ToJSON()
		return out
	}
	return output
}

func (a *Agent) recordIterations(ctx context.Context, n int) {
	if a.observer != nil {
		a.observer.Histogram(observability.MetricAgentIterations).Record(ctx, float64(n))
	}
}
