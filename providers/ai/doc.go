// Package ai defines the provider-agnostic chat model: messages, tool calls,
// chat requests/responses, and the Provider interface every concrete LLM
// backend implements. Concrete providers live in subpackages (gemini, openai).
package ai
