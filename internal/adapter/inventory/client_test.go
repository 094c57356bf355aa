package inventory

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPClient(t *testing.T) {
	if _, err := NewHTTPClient(":://bad", testLogger()); err == nil {
		t.Fatal("expected error for malformed url")
	}
	if _, err := NewHTTPClient("/relative", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
	if _, err := NewHTTPClient("http://inventory.local", testLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFetchAvailability(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/availability" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.ProductIDs) != 2 {
			t.Errorf("expected 2 product ids, got %v", req.ProductIDs)
		}
		_ = json.NewEncoder(w).Encode(response{Items: []responseItem{
			{ProductID: 1, Available: 6},
			{ProductID: 2, Available: 0},
		}})
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := client.FetchAvailability(context.Background(), []int64{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result[1] != 6 || result[2] != 0 {
		t.Fatalf("unexpected result: %v", result)
	}
}

func TestFetchAvailabilityRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = client.FetchAvailability(context.Background(), []int64{1})
	rateErr, ok := err.(TooManyRequestsError)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rateErr.RetryAfter != 7*time.Second {
		t.Fatalf("unexpected retry-after: %s", rateErr.RetryAfter)
	}
}

func TestFetchAvailabilityServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := client.FetchAvailability(context.Background(), []int64{1}); err == nil {
		t.Fatal("expected error")
	}
}

func TestParseRetryAfter(t *testing.T) {
	if d := parseRetryAfter(""); d != 5*time.Second {
		t.Fatalf("unexpected default: %s", d)
	}
	if d := parseRetryAfter("12"); d != 12*time.Second {
		t.Fatalf("unexpected seconds parse: %s", d)
	}
	if d := parseRetryAfter("garbage"); d != 5*time.Second {
		t.Fatalf("unexpected fallback: %s", d)
	}
}
