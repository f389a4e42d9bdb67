package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/reagentic/reagent/providers/ai"
)

func TestSendMessage_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Errorf("unexpected api key header: %q", got)
		}
		if !strings.Contains(r.URL.Path, "models/gemini-1.5-flash:generateContent") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		var req generateContentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if req.SystemInstruction == nil {
			t.Error("expected system instruction forwarded")
		}
		if len(req.Tools) != 1 || len(req.Tools[0].FunctionDeclarations) != 1 {
			t.Errorf("expected one function declaration, got %+v", req.Tools)
		}

		w.Write([]byte(`{
			"candidates": [{
				"content": {
					"role": "model",
					"parts": [{"functionCall": {"name": "calculator", "args": {"expression": "2+2"}}}]
				},
				"finishReason": "STOP"
			}],
			"usageMetadata": {"promptTokenCount": 7, "candidatesTokenCount": 3, "totalTokenCount": 10},
			"modelVersion": "gemini-1.5-flash-001"
		}`))
	}))
	defer srv.Close()

	p := New().WithAPIKey("test-key").WithBaseURL(srv.URL).WithHttpClient(srv.Client())

	resp, err := p.SendMessage(context.Background(), ai.ChatRequest{
		SystemPrompt: "You are a ReAct agent.",
		Messages:     []ai.Message{{Role: ai.RoleUser, Content: "what is 2+2"}},
		Tools:        []ai.ToolDescription{{Name: "calculator", Description: "math"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.ToolCalls) != 1 || resp.ToolCalls[0].Function.Name != "calculator" {
		t.Fatalf("unexpected tool calls: %+v", resp.ToolCalls)
	}
	if resp.ToolCalls[0].Function.Arguments != `{"expression": "2+2"}` && !strings.Contains(resp.ToolCalls[0].Function.Arguments, "2+2") {
		t.Errorf("unexpected arguments: %s", resp.ToolCalls[0].Function.Arguments)
	}
	if resp.Model != "gemini-1.5-flash" {
		t.Errorf("expected requested model echoed, got %q", resp.Model)
	}
	if p.IsStopMessage(resp) {
		t.Error("response with tool calls must not stop the loop")
	}
}

func TestSendMessage_MissingKey(t *testing.T) {
	p := &GeminiProvider{baseURL: defaultBaseURL, client: &http.Client{}}

	_, err := p.SendMessage(context.Background(), ai.ChatRequest{})
	if err == nil || !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Errorf("expected missing key error, got %v", err)
	}
}
