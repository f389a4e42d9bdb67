package gemini

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/reagentic/reagent/providers/ai"
)

// callSeq mints unique tool-call IDs for Gemini responses, which carry none
// of their own.
var callSeq atomic.Int64

// requestToGemini converts an ai.ChatRequest to a generateContentRequest.
func requestToGemini(request ai.ChatRequest) generateContentRequest {
	req := generateContentRequest{}

	if request.SystemPrompt != "" {
		req.SystemInstruction = &systemInstruction{
			Parts: []part{{Text: request.SystemPrompt}},
		}
	}

	req.Contents = buildContents(request.Messages)
	req.GenerationConfig = buildGenerationConfig(request.GenerationConfig)

	if len(request.Tools) > 0 {
		req.Tools = buildTools(request.Tools)
	}

	return req
}

// buildContents converts messages to Gemini contents.
// Role mapping: user -> user, assistant -> model, tool -> user with a
// functionResponse part. System messages belong in SystemInstruction; one
// passed here degrades to a user message.
func buildContents(messages []ai.Message) []content {
	var contents []content

	for _, msg := range messages {
		switch msg.Role {
		case ai.RoleUser:
			contents = append(contents, content{
				Role:  "user",
				Parts: []part{{Text: msg.Content}},
			})

		case ai.RoleAssistant:
			c := content{Role: "model"}
			for _, tc := range msg.ToolCalls {
				c.Parts = append(c.Parts, part{
					FunctionCall: &functionCall{
						Name: tc.Function.Name,
						Args: json.RawMessage(tc.Function.Arguments),
					},
				})
			}
			if msg.Content != "" {
				c.Parts = append(c.Parts, part{Text: msg.Content})
			}
			if len(c.Parts) > 0 {
				contents = append(contents, c)
			}

		case ai.RoleTool:
			contents = append(contents, content{
				Role: "user",
				Parts: []part{{
					FunctionResponse: &functionResponse{
						Name:     msg.Name,
						Response: toolResponseJSON(msg.Content),
					},
				}},
			})

		case ai.RoleSystem:
			contents = append(contents, content{
				Role:  "user",
				Parts: []part{{Text: msg.Content}},
			})
		}
	}

	return contents
}

// toolResponseJSON renders a tool message's content as a JSON object. Tool
// outputs are normally JSON already; plain text gets wrapped so the request
// stays well-formed.
func toolResponseJSON(content string) json.RawMessage {
	if json.Valid([]byte(content)) {
		return json.RawMessage(content)
	}
	wrapped, _ := json.Marshal(map[string]string{"output": content})
	return wrapped
}

func buildGenerationConfig(cfg *ai.GenerationConfig) *generationConfig {
	if cfg == nil {
		return nil
	}

	gc := &generationConfig{}
	if cfg.Temperature > 0 {
		t := float64(cfg.Temperature)
		gc.Temperature = &t
	}
	if cfg.MaxTokens > 0 {
		gc.MaxOutputTokens = &cfg.MaxTokens
	}
	return gc
}

// buildTools converts tool descriptions into a single tool entry carrying
// all function declarations.
func buildTools(aiTools []ai.ToolDescription) []tool {
	funcDecls := make([]functionDeclaration, 0, len(aiTools))
	for _, t := range aiTools {
		fd := functionDeclaration{
			Name:        t.Name,
			Description: t.Description,
		}
		if t.Parameters != nil {
			if paramBytes, err := json.Marshal(t.Parameters); err == nil {
				fd.Parameters = paramBytes
			}
		}
		funcDecls = append(funcDecls, fd)
	}
	return []tool{{FunctionDeclarations: funcDecls}}
}

// geminiToGeneric converts a generateContentResponse to an ai.ChatResponse.
func geminiToGeneric(resp generateContentResponse) *ai.ChatResponse {
	result := &ai.ChatResponse{
		Id:      fmt.Sprintf("gemini-%d", time.Now().UnixNano()),
		Model:   resp.ModelVersion,
		Object:  "chat.completion",
		Created: time.Now().Unix(),
	}

	if len(resp.Candidates) == 0 {
		result.FinishReason = "error"
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			result.FinishReason = "content_filter"
		}
		return result
	}

	candidate := resp.Candidates[0]
	result.FinishReason = mapFinishReason(candidate.FinishReason)

	if candidate.Content != nil {
		for _, p := range candidate.Content.Parts {
			if p.Text != "" {
				if result.Content != "" {
					result.Content += "\n"
				}
				result.Content += p.Text
			}
			if p.FunctionCall != nil {
				// Gemini does not assign call IDs. Mint them from a
				// process-wide sequence so they stay unique across
				// iterations of a conversation; an index within the
				// response alone would collide and make a later call look
				// like a replay of an earlier one.
				args := string(p.FunctionCall.Args)
				if args == "" {
					args = "{}"
				}
				result.ToolCalls = append(result.ToolCalls, ai.ToolCall{
					ID:   fmt.Sprintf("call_%d", callSeq.Add(1)),
					Type: "function",
					Function: ai.ToolCallFunction{
						Name:      p.FunctionCall.Name,
						Arguments: args,
					},
				})
			}
		}
	}

	if resp.UsageMetadata != nil {
		result.Usage = &ai.Usage{
			PromptTokens:     resp.UsageMetadata.PromptTokenCount,
			CompletionTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      resp.UsageMetadata.TotalTokenCount,
		}
	}

	return result
}

// mapFinishReason translates Gemini finish reasons to the generic vocabulary.
func mapFinishReason(reason string) string {
	switch reason {
	case "STOP":
		return "stop"
	case "MAX_TOKENS":
		return "length"
	case "SAFETY", "RECITATION", "BLOCKLIST", "PROHIBITED_CONTENT":
		return "content_filter"
	case "":
		return ""
	default:
		return "other"
	}
}
