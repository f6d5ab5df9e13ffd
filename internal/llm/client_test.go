package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAsk_Success(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q; want /chat/completions", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "Priya's contract ends on 2025-12-31."}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "llama3", 5*time.Second)
	reply, err := c.Ask(context.Background(), "briefing text", "When does Priya's contract end?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if reply != "Priya's contract ends on 2025-12-31." {
		t.Errorf("reply = %q", reply)
	}

	if got.Model != "llama3" {
		t.Errorf("model = %q; want llama3", got.Model)
	}
	if got.Stream {
		t.Error("stream requested; want stream=false")
	}
	if len(got.Messages) != 2 {
		t.Fatalf("sent %d messages; want 2", len(got.Messages))
	}
	if got.Messages[0].Role != "system" || got.Messages[0].Content != "briefing text" {
		t.Errorf("system message = %+v", got.Messages[0])
	}
	if got.Messages[1].Role != "user" || got.Messages[1].Content != "When does Priya's contract end?" {
		t.Errorf("user message = %+v", got.Messages[1])
	}
}

func TestAsk_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "llama3", 5*time.Second)
	_, err := c.Ask(context.Background(), "b", "m")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Ask on 503 = %v; want ErrUnavailable", err)
	}
}

func TestAsk_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // nothing listening any more

	c := NewClient(srv.URL, "llama3", time.Second)
	_, err := c.Ask(context.Background(), "b", "m")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Ask against closed server = %v; want ErrUnavailable", err)
	}
}

func TestAsk_UpstreamErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "model not found"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "llama3", 5*time.Second)
	_, err := c.Ask(context.Background(), "b", "m")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Ask with error body = %v; want ErrUnavailable", err)
	}
}

func TestAsk_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "llama3", 5*time.Second)
	_, err := c.Ask(context.Background(), "b", "m")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Ask with empty choices = %v; want ErrUnavailable", err)
	}
}

func TestNewClient_DefaultsTimeout(t *testing.T) {
	c := NewClient("http://localhost:11434/v1", "llama3", 0)
	if c.http.Timeout != 60*time.Second {
		t.Errorf("timeout = %v; want 60s default", c.http.Timeout)
	}
	if c.baseURL != "http://localhost:11434/v1" {
		t.Errorf("baseURL = %q", c.baseURL)
	}
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	c := NewClient("http://localhost:11434/v1/", "llama3", time.Second)
	if c.baseURL != "http://localhost:11434/v1" {
		t.Errorf("baseURL = %q; want trailing slash trimmed", c.baseURL)
	}
}
