// Package slogobs provides an observability.Provider implementation backed by
// the standard library log/slog package. Spans, metrics, and log entries are
// all rendered as structured log events. The main entry point is [New]; tune
// output with [WithLevel], [WithOutput], [WithJSON], and [WithLogger].
package slogobs
