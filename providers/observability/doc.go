// Package observability defines the interfaces and semantic conventions used
// for tracing, metrics, and structured logging throughout the library.
//
// The central entry point is [Provider], which composes [Tracer], [Metrics],
// and [Logger] into a single injectable dependency. Callers propagate an
// active [Provider] and [Span] through a [context.Context] using
// [ContextWithObserver] and [ContextWithSpan]; they can be retrieved with
// [ObserverFromContext] and [SpanFromContext].
//
// The semconv.go file holds the standard attribute-key and span-name
// constants to use when recording observations.
package observability
