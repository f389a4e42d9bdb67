// Package openai implements the ai.Provider interface against the OpenAI
// chat completions API and compatible endpoints.
package openai
