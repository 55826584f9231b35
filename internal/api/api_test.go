package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestGETAppliesHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "test-agent" {
			t.Errorf("Expected default header to apply, got %q", r.Header.Get("User-Agent"))
		}
		if r.Header.Get("X-Custom") != "yes" {
			t.Errorf("Expected request header to apply, got %q", r.Header.Get("X-Custom"))
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewClient(
		WithTimeout(2*time.Second),
		WithHeader("User-Agent", "test-agent"),
	)
	resp, err := c.GET(context.Background(), srv.URL, map[string]string{"X-Custom": "yes"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if resp.String() != "ok" {
		t.Errorf("Expected body 'ok', got %q", resp.String())
	}
}

func TestRequestHeaderOverridesDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "override" {
			t.Errorf("Expected request header to win, got %q", r.Header.Get("User-Agent"))
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewClient(WithHeader("User-Agent", "default"))
	req := NewRequest(http.MethodGet, srv.URL).
		WithContext(context.Background()).
		WithHeader("User-Agent", "override")
	if _, err := c.Do(req); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}

func TestBaseURLJoinsPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/listing" {
			t.Errorf("Expected path /v1/listing, got %s", r.URL.Path)
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	if _, err := c.GET(context.Background(), "/v1/listing"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}

func TestDoErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient()
	if _, err := c.GET(context.Background(), srv.URL); err == nil {
		t.Error("Expected error for 404 response")
	}
}

func TestDoWithRetryRecovers(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("recovered"))
	}))
	defer srv.Close()

	c := NewClient()
	req := NewRequest(http.MethodGet, srv.URL).WithContext(context.Background())
	cfg := &RetryConfig{MaxAttempts: 3, InitialWait: 5 * time.Millisecond, MaxWait: 10 * time.Millisecond}

	resp, err := c.DoWithRetry(req, cfg)
	if err != nil {
		t.Fatalf("Expected recovery on third attempt, got %v", err)
	}
	if resp.String() != "recovered" {
		t.Errorf("Expected recovered body, got %q", resp.String())
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("Expected 3 attempts, got %d", got)
	}
}

func TestDoWithRetryExhausted(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient()
	req := NewRequest(http.MethodGet, srv.URL).WithContext(context.Background())
	cfg := &RetryConfig{MaxAttempts: 2, InitialWait: 5 * time.Millisecond, MaxWait: 10 * time.Millisecond}

	if _, err := c.DoWithRetry(req, cfg); err == nil {
		t.Fatal("Expected error after exhausting retries")
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("Expected 2 attempts, got %d", got)
	}
}

func TestNSEHeaders(t *testing.T) {
	h := NSEHeaders()
	if h["Referer"] == "" {
		t.Error("Expected NSE Referer header")
	}
	if h["User-Agent"] == "" {
		t.Error("Expected a browser user agent")
	}
}
