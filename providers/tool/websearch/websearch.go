package websearch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/reagentic/reagent/core/cost"
	"github.com/reagentic/reagent/providers/tool"
)

// entry is one article in the canned knowledge base.
type entry struct {
	key     string
	title   string
	content string
	url     string
}

// knowledgeBase is the canned corpus served by the faux search tool. Entries
// are kept in a slice so results come back in a stable order.
func knowledgeBase() []entry {
	return []entry{
		{
			key:   "langgraph",
			title: "LangGraph - Build Stateful AI Agents",
			content: "LangGraph is a library for building stateful, multi-actor applications with LLMs. " +
				"It extends LangChain with cyclic computational capabilities, enabling complex agent workflows. " +
				"Key features: State management, Conditional edges, Parallel execution, Human-in-the-loop.",
			url: "https://langchain-ai.github.io/langgraph/",
		},
		{
			key:   "react agent",
			title: "ReAct: Synergizing Reasoning and Acting in Language Models",
			content: "ReAct (Reasoning + Acting) is a paradigm where LLMs interleave reasoning traces and actions. " +
				"The agent thinks step-by-step (Thought), takes an action (Action), and observes the result (Observation). " +
				"This loop continues until the task is complete.",
			url: "https://arxiv.org/abs/2210.03629",
		},
		{
			key:   "gemini api",
			title: "Google Gemini API Documentation",
			content: "Gemini is Google's most capable AI model family. The API provides access to Gemini 1.5 Pro, " +
				"Gemini 1.5 Flash, and other models. Features include multimodal understanding, " +
				"long context windows (up to 2M tokens), and function calling capabilities.",
			url: "https://ai.google.dev/docs",
		},
		{
			key:   "langchain",
			title: "LangChain - Build LLM Applications",
			content: "LangChain is a framework for developing applications powered by language models. " +
				"It provides modules for prompts, models, memory, chains, agents, and tools. " +
				"LangChain Expression Language (LCEL) enables easy composition of components.",
			url: "https://python.langchain.com/",
		},
		{
			key:   "python",
			title: "Python Programming Language",
			content: "Python is a high-level, general-purpose programming language. " +
				"Current stable version is Python 3.12. Known for readability and extensive libraries. " +
				"Widely used in AI/ML, web development, data science, and automation.",
			url: "https://www.python.org/",
		},
		{
			key:   "weather",
			title: "Current Weather Information",
			content: fmt.Sprintf("Weather data as of %s: ", time.Now().Format("2006-01-02")) +
				"Temperature varies by location. For accurate weather, please specify a city. " +
				"Demo shows: New York - 45°F, London - 50°F, Tokyo - 55°F, Sydney - 75°F.",
			url: "https://weather.example.com/",
		},
	}
}

// NewWebSearchTool returns a [tool.Tool] that serves canned search results
// from a small in-process knowledge base. It stands in for a real search
// API integration, so the tool carries zero-cost metrics.
func NewWebSearchTool() *tool.Tool[Input, Output] {
	return tool.NewTool[Input, Output](
		"web_search",
		Search,
		tool.WithDescription("Search the web for information on a given topic. Returns results with title, content snippet, and source URL."),
		tool.WithMetrics(cost.ToolMetrics{
			Amount:          0.0,
			Currency:        "USD",
			CostDescription: "simulated search, no external API",
			Accuracy:        1.0,
		}),
	)
}

// Search matches req.Query against the knowledge base. An entry matches when
// its key appears in the query, or any single word of a multi-word key does.
// With no match it returns a fallback message suggesting known topics.
func Search(ctx context.Context, req Input) (Output, error) {
	queryLower := strings.ToLower(req.Query)

	var matches []entry
	for _, e := range knowledgeBase() {
		if entryMatches(e.key, queryLower) {
			matches = append(matches, e)
		}
	}

	if len(matches) == 0 {
		return Output{Results: fmt.Sprintf(
			"Search results for '%s':\n"+
				"No specific results found in demo knowledge base.\n"+
				"In production, this would return real web search results.\n"+
				"Tip: Try searching for 'LangGraph', 'ReAct agent', 'Gemini API', or 'Python'.",
			req.Query)}, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Search results for '%s':\n\n", req.Query)
	for i, e := range matches {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, e.title)
		fmt.Fprintf(&b, "   %s\n", e.content)
		fmt.Fprintf(&b, "   Source: %s\n\n", e.url)
	}
	return Output{Results: b.String()}, nil
}

func entryMatches(key, queryLower string) bool {
	if strings.Contains(queryLower, key) {
		return true
	}
	for _, word := range strings.Fields(key) {
		if strings.Contains(queryLower, word) {
			return true
		}
	}
	return false
}

// Input holds the search query string.
type Input struct {
	Query string `json:"query" jsonschema:"description=The search query string,required"`
}

// Output carries the formatted search results.
type Output struct {
	Results string `json:"results" jsonschema:"description=Search results with title and content snippet and source URL"`
}
