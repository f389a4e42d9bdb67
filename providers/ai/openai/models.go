package openai

import (
	"github.com/reagentic/reagent/internal/jsonschema"
	"github.com/reagentic/reagent/providers/ai"
)

// chatCompletionRequest is the request body for the chat completions
// endpoint, limited to text generation and function calling.
type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Tools       []chatTool    `json:"tools,omitempty"`
	Temperature *float32      `json:"temperature,omitempty"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`
}

// chatMessage mirrors the wire format of a conversation message.
type chatMessage struct {
	Role       string        `json:"role"`
	Content    string        `json:"content"`
	ToolCalls  []ai.ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string        `json:"tool_call_id,omitempty"`
	Name       string        `json:"name,omitempty"`
}

// chatTool wraps a function declaration the way the API expects it.
type chatTool struct {
	Type     string       `json:"type"`
	Function chatFunction `json:"function"`
}

type chatFunction struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
}

// chatCompletionResponse is the JSON response returned by the chat
// completions endpoint, reduced to the fields this package consumes.
type chatCompletionResponse struct {
	Id      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role      string        `json:"role"`
			Content   string        `json:"content"`
			ToolCalls []ai.ToolCall `json:"tool_calls,omitempty"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// requestFromGeneric converts an ai.ChatRequest to the chat completions wire
// format. The system prompt becomes the leading system message.
func requestFromGeneric(request ai.ChatRequest) chatCompletionRequest {
	req := chatCompletionRequest{Model: request.Model}

	if request.SystemPrompt != "" {
		req.Messages = append(req.Messages, chatMessage{Role: "system", Content: request.SystemPrompt})
	}
	for _, msg := range request.Messages {
		req.Messages = append(req.Messages, chatMessage{
			Role:       string(msg.Role),
			Content:    msg.Content,
			ToolCalls:  msg.ToolCalls,
			ToolCallID: msg.ToolCallID,
			Name:       msg.Name,
		})
	}

	for _, t := range request.Tools {
		req.Tools = append(req.Tools, chatTool{
			Type: "function",
			Function: chatFunction{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		})
	}

	if request.GenerationConfig != nil {
		if request.GenerationConfig.Temperature > 0 {
			temp := request.GenerationConfig.Temperature
			req.Temperature = &temp
		}
		if request.GenerationConfig.MaxTokens > 0 {
			maxTokens := request.GenerationConfig.MaxTokens
			req.MaxTokens = &maxTokens
		}
	}

	return req
}

// responseToGeneric converts a chat completions response to an
// ai.ChatResponse, taking the first choice.
func responseToGeneric(resp chatCompletionResponse) *ai.ChatResponse {
	result := &ai.ChatResponse{
		Id:      resp.Id,
		Object:  resp.Object,
		Created: resp.Created,
		Model:   resp.Model,
		Usage: &ai.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}

	if len(resp.Choices) > 0 {
		choice := resp.Choices[0]
		result.Content = choice.Message.Content
		result.ToolCalls = choice.Message.ToolCalls
		result.FinishReason = choice.FinishReason
	}

	return result
}
