// Package parse converts LLM-emitted strings into typed Go values, tolerating
// the malformed JSON that models occasionally produce for tool arguments.
package parse
