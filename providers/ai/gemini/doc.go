// Package gemini implements the ai.Provider interface against Google's
// Gemini generateContent API, covering text generation and function calling.
package gemini
