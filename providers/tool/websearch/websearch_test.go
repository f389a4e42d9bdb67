package websearch

import (
	"context"
	"strings"
	"testing"
)

func TestSearch_ExactTopic(t *testing.T) {
	out, err := Search(context.Background(), Input{Query: "what is langgraph"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.Results, "LangGraph - Build Stateful AI Agents") {
		t.Errorf("expected langgraph entry, got:\n%s", out.Results)
	}
	if !strings.Contains(out.Results, "Source: https://langchain-ai.github.io/langgraph/") {
		t.Errorf("expected source URL, got:\n%s", out.Results)
	}
}

// A single word of a multi-word key is enough to match.
func TestSearch_PartialKeyMatch(t *testing.T) {
	out, err := Search(context.Background(), Input{Query: "tell me about the gemini model"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.Results, "Google Gemini API Documentation") {
		t.Errorf("expected gemini entry for partial match, got:\n%s", out.Results)
	}
}

func TestSearch_MultipleResultsNumbered(t *testing.T) {
	out, err := Search(context.Background(), Input{Query: "langgraph vs langchain"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.Results, "1. **") || !strings.Contains(out.Results, "2. **") {
		t.Errorf("expected numbered results, got:\n%s", out.Results)
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	out, err := Search(context.Background(), Input{Query: "PYTHON tutorials"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.Results, "Python Programming Language") {
		t.Errorf("expected python entry, got:\n%s", out.Results)
	}
}

func TestSearch_NoMatchFallback(t *testing.T) {
	out, err := Search(context.Background(), Input{Query: "quantum entanglement"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.Results, "No specific results found") {
		t.Errorf("expected fallback message, got:\n%s", out.Results)
	}
	if !strings.Contains(out.Results, "Tip: Try searching for") {
		t.Errorf("expected topic suggestions, got:\n%s", out.Results)
	}
	if !strings.Contains(out.Results, "'quantum entanglement'") {
		t.Errorf("expected query echoed back, got:\n%s", out.Results)
	}
}

func TestNewWebSearchTool_Info(t *testing.T) {
	searchTool := NewWebSearchTool()

	info := searchTool.ToolInfo()
	if info.Name != "web_search" {
		t.Errorf("unexpected name: %q", info.Name)
	}
	if info.Parameters == nil || info.Parameters.Properties["query"] == nil {
		t.Error("expected a 'query' parameter in the schema")
	}
}
