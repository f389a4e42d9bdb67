package react

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/reagentic/reagent/providers/ai"
	"github.com/reagentic/reagent/providers/tool"
	"github.com/reagentic/reagent/providers/tool/calculator"
)

// scriptedProvider replays a fixed sequence of responses and records every
// request it receives.
type scriptedProvider struct {
	mu        sync.Mutex
	responses []*ai.ChatResponse
	requests  []ai.ChatRequest
	err       error
}

func (p *scriptedProvider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.requests = append(p.requests, request)
	if p.err != nil {
		return nil, p.err
	}
	if len(p.responses) == 0 {
		return &ai.ChatResponse{Content: "out of script", FinishReason: "stop"}, nil
	}
	resp := p.responses[0]
	p.responses = p.responses[1:]
	return resp, nil
}

func (p *scriptedProvider) IsStopMessage(message *ai.ChatResponse) bool {
	return message == nil || len(message.ToolCalls) == 0
}

func (p *scriptedProvider) WithAPIKey(string) ai.Provider { return p }

func (p *scriptedProvider) WithBaseURL(string) ai.Provider { return p }

func (p *scriptedProvider) WithHttpClient(*http.Client) ai.Provider { return p }

func (p *scriptedProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}

func (p *scriptedProvider) request(i int) ai.ChatRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requests[i]
}

func toolCallResponse(calls ...ai.ToolCall) *ai.ChatResponse {
	return &ai.ChatResponse{ToolCalls: calls, FinishReason: "stop"}
}

func answerResponse(text string) *ai.ChatResponse {
	return &ai.ChatResponse{Content: text, FinishReason: "stop"}
}

func calcCall(id, expression string) ai.ToolCall {
	return ai.ToolCall{
		ID:   id,
		Type: "function",
		Function: ai.ToolCallFunction{
			Name:      "calculator",
			Arguments: `{"expression":"` + expression + `"}`,
		},
	}
}

func newTestAgent(t *testing.T, provider ai.Provider, cfg Config) *Agent {
	t.Helper()
	catalog := tool.NewCatalogWithTools(calculator.NewCalculatorTool())
	agent, err := New(provider, catalog, nil, cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return agent
}

func TestInvoke_DirectAnswer(t *testing.T) {
	provider := &scriptedProvider{responses: []*ai.ChatResponse{
		answerResponse("Paris is the capital of France."),
	}}
	agent := newTestAgent(t, provider, Config{})

	answer, err := agent.Invoke(context.Background(), "capital of France?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "Paris is the capital of France." {
		t.Errorf("unexpected answer: %q", answer)
	}
	if provider.callCount() != 1 {
		t.Errorf("expected one model call, got %d", provider.callCount())
	}
}

func TestInvoke_ToolLoop(t *testing.T) {
	provider := &scriptedProvider{responses: []*ai.ChatResponse{
		toolCallResponse(calcCall("call_0", "25 * 4")),
		answerResponse("25 * 4 is 100."),
	}}
	agent := newTestAgent(t, provider, Config{})

	answer, err := agent.Invoke(context.Background(), "what is 25 * 4?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "25 * 4 is 100." {
		t.Errorf("unexpected answer: %q", answer)
	}
	if provider.callCount() != 2 {
		t.Fatalf("expected two model calls, got %d", provider.callCount())
	}

	// The second request must replay the full conversation including the
	// tool observation.
	second := provider.request(1)
	if len(second.Messages) != 3 {
		t.Fatalf("expected user+assistant+tool messages, got %d", len(second.Messages))
	}
	toolMsg := second.Messages[2]
	if toolMsg.Role != ai.RoleTool || toolMsg.ToolCallID != "call_0" {
		t.Errorf("unexpected tool message: %+v", toolMsg)
	}
	if !strings.Contains(toolMsg.Content, "Result: 100") {
		t.Errorf("expected calculator output in tool message, got %q", toolMsg.Content)
	}
}

func TestInvoke_RequestShape(t *testing.T) {
	provider := &scriptedProvider{responses: []*ai.ChatResponse{answerResponse("ok")}}
	agent := newTestAgent(t, provider, Config{Model: "gemini-1.5-flash", Temperature: 0.1})

	if _, err := agent.Invoke(context.Background(), "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := provider.request(0)
	if req.Model != "gemini-1.5-flash" {
		t.Errorf("unexpected model: %q", req.Model)
	}
	if req.SystemPrompt != DefaultSystemPrompt {
		t.Error("expected default system prompt")
	}
	if len(req.Tools) != 1 || req.Tools[0].Name != "calculator" {
		t.Errorf("unexpected tools: %+v", req.Tools)
	}
	if req.GenerationConfig == nil || req.GenerationConfig.Temperature != 0.1 {
		t.Errorf("unexpected generation config: %+v", req.GenerationConfig)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != ai.RoleUser || req.Messages[0].Content != "hello" {
		t.Errorf("unexpected messages: %+v", req.Messages)
	}
}

func TestInvoke_MaxIterationsBound(t *testing.T) {
	// The model never stops calling tools; the loop must cut it off.
	provider := &scriptedProvider{responses: []*ai.ChatResponse{
		toolCallResponse(calcCall("call_0", "1 + 1")),
		toolCallResponse(calcCall("call_1", "2 + 2")),
		toolCallResponse(calcCall("call_2", "3 + 3")),
		toolCallResponse(calcCall("call_3", "4 + 4")),
	}}
	agent := newTestAgent(t, provider, Config{MaxIterations: 3})

	_, err := agent.Invoke(context.Background(), "keep calculating")
	if !errors.Is(err, ErrMaxIterations) {
		t.Fatalf("expected ErrMaxIterations, got %v", err)
	}
	if provider.callCount() != 3 {
		t.Errorf("expected exactly 3 model calls, got %d", provider.callCount())
	}
}

func TestInvoke_MaxIterationsKeepsPartialAnswer(t *testing.T) {
	provider := &scriptedProvider{responses: []*ai.ChatResponse{
		{Content: "Working on it.", ToolCalls: []ai.ToolCall{calcCall("call_0", "1 + 1")}},
		{ToolCalls: []ai.ToolCall{calcCall("call_1", "2 + 2")}},
	}}
	agent := newTestAgent(t, provider, Config{MaxIterations: 2})

	answer, err := agent.Invoke(context.Background(), "slow question")
	if !errors.Is(err, ErrMaxIterations) {
		t.Fatalf("expected ErrMaxIterations, got %v", err)
	}
	if answer != "Working on it." {
		t.Errorf("expected last assistant text alongside the error, got %q", answer)
	}
}

func TestInvoke_UnknownToolRecovered(t *testing.T) {
	provider := &scriptedProvider{responses: []*ai.ChatResponse{
		toolCallResponse(ai.ToolCall{
			ID:       "call_0",
			Type:     "function",
			Function: ai.ToolCallFunction{Name: "teleport", Arguments: `{}`},
		}),
		answerResponse("I cannot teleport, sorry."),
	}}
	agent := newTestAgent(t, provider, Config{})

	answer, err := agent.Invoke(context.Background(), "teleport me")
	if err != nil {
		t.Fatalf("unknown tool must not be fatal: %v", err)
	}
	if answer != "I cannot teleport, sorry." {
		t.Errorf("unexpected answer: %q", answer)
	}

	toolMsg := provider.request(1).Messages[2]
	if !strings.Contains(toolMsg.Content, "unknown_tool") || !strings.Contains(toolMsg.Content, "teleport") {
		t.Errorf("expected unknown_tool envelope, got %q", toolMsg.Content)
	}
}

func TestInvoke_ToolErrorRecovered(t *testing.T) {
	failing := tool.NewTool("calculator", func(ctx context.Context, in calculator.Input) (calculator.Output, error) {
		return calculator.Output{}, errors.New("backend unavailable")
	})
	catalog := tool.NewCatalogWithTools(failing)

	provider := &scriptedProvider{responses: []*ai.ChatResponse{
		toolCallResponse(calcCall("call_0", "1 + 1")),
		answerResponse("The calculator is down."),
	}}
	agent, err := New(provider, catalog, nil, Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	answer, err := agent.Invoke(context.Background(), "add")
	if err != nil {
		t.Fatalf("tool failure must not be fatal: %v", err)
	}
	if answer != "The calculator is down." {
		t.Errorf("unexpected answer: %q", answer)
	}

	toolMsg := provider.request(1).Messages[2]
	if !strings.Contains(toolMsg.Content, "execution_error") || !strings.Contains(toolMsg.Content, "backend unavailable") {
		t.Errorf("expected execution_error envelope, got %q", toolMsg.Content)
	}
}

func TestInvoke_ModelErrorFatal(t *testing.T) {
	provider := &scriptedProvider{err: errors.New("connection refused")}
	agent := newTestAgent(t, provider, Config{})

	_, err := agent.Invoke(context.Background(), "anything")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "model call failed") || !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("unexpected error: %v", err)
	}
	if provider.callCount() != 1 {
		t.Errorf("expected no retry after model failure, got %d calls", provider.callCount())
	}
}

func TestInvoke_DuplicateCallIDExecutedOnce(t *testing.T) {
	var calls int
	var mu sync.Mutex
	counting := tool.NewTool("calculator", func(ctx context.Context, in calculator.Input) (calculator.Output, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return calculator.Output{Result: "Result: 2"}, nil
	})
	catalog := tool.NewCatalogWithTools(counting)

	// The model repeats the same call ID across iterations.
	provider := &scriptedProvider{responses: []*ai.ChatResponse{
		toolCallResponse(calcCall("call_0", "1 + 1")),
		toolCallResponse(calcCall("call_0", "1 + 1")),
		answerResponse("done"),
	}}
	agent, err := New(provider, catalog, nil, Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := agent.Invoke(context.Background(), "add"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Errorf("expected the repeated call ID to execute once, got %d executions", calls)
	}

	// The conversation must hold a single observation for call_0.
	final := provider.request(2)
	var toolMsgs int
	for _, m := range final.Messages {
		if m.Role == ai.RoleTool && m.ToolCallID == "call_0" {
			toolMsgs++
		}
	}
	if toolMsgs != 1 {
		t.Errorf("expected one stored tool result for call_0, got %d", toolMsgs)
	}
}

// Distinct requests on later iterations carry distinct IDs and must all
// execute; only a genuine replay of an already-answered ID is skipped.
func TestInvoke_DistinctCallsAcrossIterationsAllExecute(t *testing.T) {
	var mu sync.Mutex
	var expressions []string
	recording := tool.NewTool("calculator", func(ctx context.Context, in calculator.Input) (calculator.Output, error) {
		mu.Lock()
		expressions = append(expressions, in.Expression)
		mu.Unlock()
		return calculator.Output{Result: "Result: ok"}, nil
	})
	catalog := tool.NewCatalogWithTools(recording)

	provider := &scriptedProvider{responses: []*ai.ChatResponse{
		toolCallResponse(calcCall("call_1", "25 * 4")),
		toolCallResponse(calcCall("call_2", "100 + 50")),
		answerResponse("150"),
	}}
	agent, err := New(provider, catalog, nil, Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := agent.Invoke(context.Background(), "multiply then add"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(expressions) != 2 || expressions[0] != "25 * 4" || expressions[1] != "100 + 50" {
		t.Fatalf("expected both calls to execute in order, got %v", expressions)
	}

	// Each executed call must leave its own observation in the conversation.
	final := provider.request(2)
	var toolIDs []string
	for _, m := range final.Messages {
		if m.Role == ai.RoleTool {
			toolIDs = append(toolIDs, m.ToolCallID)
		}
	}
	if len(toolIDs) != 2 || toolIDs[0] != "call_1" || toolIDs[1] != "call_2" {
		t.Errorf("expected stored results for call_1 and call_2, got %v", toolIDs)
	}
}

func TestNew_Defaults(t *testing.T) {
	agent := newTestAgent(t, &scriptedProvider{}, Config{})

	cfg := agent.Config()
	if cfg.MaxIterations != 5 {
		t.Errorf("expected default max iterations 5, got %d", cfg.MaxIterations)
	}
	if cfg.Temperature != 0.1 {
		t.Errorf("expected default temperature 0.1, got %v", cfg.Temperature)
	}
	if cfg.SystemPrompt != DefaultSystemPrompt {
		t.Error("expected default system prompt")
	}
}

func TestNew_RequiresProvider(t *testing.T) {
	if _, err := New(nil, tool.NewCatalog(), nil, Config{}); err == nil {
		t.Fatal("expected error for nil provider")
	}
}

func TestAgent_FreshConversationPerQuery(t *testing.T) {
	provider := &scriptedProvider{responses: []*ai.ChatResponse{
		answerResponse("first"),
		answerResponse("second"),
	}}
	agent := newTestAgent(t, provider, Config{})

	if _, err := agent.Invoke(context.Background(), "one"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := agent.Invoke(context.Background(), "two"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The second query must not carry the first conversation.
	req := provider.request(1)
	if len(req.Messages) != 1 || req.Messages[0].Content != "two" {
		t.Errorf("conversation leaked across queries: %+v", req.Messages)
	}
}
