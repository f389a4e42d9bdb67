package httpx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type echoResponse struct {
	Message string `json:"message"`
}

func TestDoPostSync_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer srv.Close()

	res, out, err := DoPostSync[echoResponse](context.Background(), srv.Client(), srv.URL, map[string]string{"q": "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Errorf("unexpected status: %d", res.StatusCode)
	}
	if out == nil || out.Message != "ok" {
		t.Errorf("unexpected body: %+v", out)
	}
}

func TestDoPostSync_Headers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("unexpected auth header: %q", got)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "gkey" {
			t.Errorf("unexpected api key header: %q", got)
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, _, err := DoPostSync[echoResponse](context.Background(), srv.Client(), srv.URL, nil,
		BearerAuth("secret"), Header{Key: "x-goog-api-key", Value: "gkey"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDoPostSync_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, out, err := DoPostSync[echoResponse](context.Background(), srv.Client(), srv.URL, nil)
	if err == nil {
		t.Fatal("expected error for 429 status")
	}
	if out != nil {
		t.Errorf("expected nil body on error, got %+v", out)
	}
	if !strings.Contains(err.Error(), "429") || !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("error should carry status and body, got: %v", err)
	}
}

func TestDoPostSync_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, _, err := DoPostSync[echoResponse](context.Background(), srv.Client(), srv.URL, nil)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !strings.Contains(err.Error(), "Response preview") {
		t.Errorf("error should include response preview, got: %v", err)
	}
}

func TestDoPostSync_ContextTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server can detect client disconnect and
		// cancel the request context; otherwise Close blocks forever.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, _, err := DoPostSync[echoResponse](ctx, srv.Client(), srv.URL, nil)
	if err == nil {
		t.Fatal("expected timeout error")
	}
}
