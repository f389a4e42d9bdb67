package openai

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/reagentic/reagent/internal/httpx"
	"github.com/reagentic/reagent/providers/ai"
	"github.com/reagentic/reagent/providers/observability"
)

const (
	defaultBaseURL          = "https://api.openai.com/v1"
	chatCompletionsEndpoint = "/chat/completions"
	defaultModel            = "gpt-4o-mini"
)

// OpenAIProvider implements the ai.Provider interface for the OpenAI chat
// completions API. It also works against OpenAI-compatible endpoints via
// WithBaseURL.
type OpenAIProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates an OpenAI provider configured from the environment.
// Environment variables:
//   - OPENAI_API_KEY: API key for authentication
//   - OPENAI_API_BASE_URL: base URL override (optional)
func New() *OpenAIProvider {
	baseURL := os.Getenv("OPENAI_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &OpenAIProvider{
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

var _ ai.Provider = (*OpenAIProvider)(nil)

// WithAPIKey sets the API key for the provider.
func (p *OpenAIProvider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API.
func (p *OpenAIProvider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient sets a custom HTTP client.
func (p *OpenAIProvider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// SendMessage sends a chat request to the chat completions endpoint and
// returns the response in the generic format.
func (p *OpenAIProvider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	span := observability.SpanFromContext(ctx)

	if request.Model == "" {
		request.Model = defaultModel
	}

	if span != nil {
		span.AddEvent(observability.EventLLMRequestStart)
		span.SetAttributes(
			observability.String(observability.AttrLLMProvider, "openai"),
			observability.String(observability.AttrLLMEndpoint, p.baseURL),
			observability.String(observability.AttrLLMModel, request.Model),
		)
		defer span.AddEvent(observability.EventLLMRequestEnd)
	}

	if p.apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	httpResponse, resp, err := httpx.DoPostSync[chatCompletionResponse](
		ctx,
		p.client,
		p.baseURL+chatCompletionsEndpoint,
		requestFromGeneric(request),
		httpx.BearerAuth(p.apiKey),
	)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("empty response from OpenAI API: %s", httpResponse.Status)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	result := responseToGeneric(*resp)

	if span != nil {
		span.SetAttributes(
			observability.String(observability.AttrLLMResponseID, result.Id),
			observability.String(observability.AttrLLMFinishReason, result.FinishReason),
		)
	}

	return result, nil
}

// IsStopMessage reports whether the response ends the conversation turn.
func (p *OpenAIProvider) IsStopMessage(message *ai.ChatResponse) bool {
	if message == nil {
		return true
	}
	if len(message.ToolCalls) > 0 {
		return false
	}
	switch message.FinishReason {
	case "stop", "length", "content_filter":
		return true
	}
	return message.Content == ""
}
