// Package tool defines typed, schema-described tools that language models can
// invoke, plus a thread-safe [Catalog] for registering and dispatching them.
package tool
