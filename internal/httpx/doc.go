// Package httpx holds the shared HTTP plumbing used by the LLM provider
// implementations.
package httpx
