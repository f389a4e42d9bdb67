package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/reagentic/reagent/providers/observability"
)

// Header is an extra request header applied by DoPostSync. Providers use it
// for their authentication schemes (Bearer tokens, x-goog-api-key, etc.).
type Header struct {
	Key   string
	Value string
}

// BearerAuth returns an Authorization header carrying the given API key.
func BearerAuth(apiKey string) Header {
	return Header{Key: "Authorization", Value: "Bearer " + apiKey}
}

// DoPostSync performs a synchronous HTTP POST with a JSON body and decodes the
// JSON response into Out.
//
// Error handling:
//   - context errors (timeout, cancellation) propagate from the HTTP client
//   - non-2xx status codes return an error carrying the response body
//   - decode errors include a response preview for debugging
//
// The response body is always closed; close errors are logged and never
// override the primary error. If a span is attached to ctx, request and
// response events are recorded on it.
func DoPostSync[Out any](ctx context.Context, client *http.Client, url string, body any, headers ...Header) (*http.Response, *Out, error) {
	span := observability.SpanFromContext(ctx)

	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, nil, fmt.Errorf("error marshaling body: %w", err)
	}

	if span != nil {
		span.AddEvent("http.request.prepared",
			observability.String(observability.AttrHTTPMethod, http.MethodPost),
			observability.String(observability.AttrHTTPURL, url),
			observability.Int(observability.AttrHTTPRequestBodySize, len(jsonBody)),
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for _, h := range headers {
		req.Header.Set(h.Key, h.Value)
	}

	requestStart := time.Now()
	res, err := httpClient.Do(req)
	requestDuration := time.Since(requestStart)

	if err != nil {
		if span != nil {
			span.AddEvent("http.request.error",
				observability.Error(err),
				observability.Duration("http.request.duration", requestDuration),
			)
		}
		return res, nil, fmt.Errorf("error sending request: %w", err)
	}
	defer func(body io.ReadCloser) {
		if closeErr := body.Close(); closeErr != nil {
			slog.Warn("failed to close response body", "error", closeErr.Error(), "url", url)
		}
	}(res.Body)

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return res, nil, fmt.Errorf("error reading response body: %w", err)
	}

	if span != nil {
		span.AddEvent("http.response.received",
			observability.Int(observability.AttrHTTPStatusCode, res.StatusCode),
			observability.Int(observability.AttrHTTPResponseBodySize, len(respBody)),
			observability.Duration("http.request.duration", requestDuration),
		)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return res, nil, fmt.Errorf("non-2xx status %d: %s", res.StatusCode, string(respBody))
	}

	var out Out
	if err = json.Unmarshal(respBody, &out); err != nil {
		return res, nil, fmt.Errorf("error unmarshaling response body (status %d): %w\nResponse preview: %s",
			res.StatusCode, err, observability.TruncateString(string(respBody), observability.DefaultMaxStringLength))
	}

	return res, &out, nil
}
