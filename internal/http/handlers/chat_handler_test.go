package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rsinha/go-contract-desk/internal/domain"
	"github.com/rsinha/go-contract-desk/internal/llm"
	"github.com/rsinha/go-contract-desk/internal/services"
)

func TestChat(t *testing.T) {
	at := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	chat := &stubChat{reply: "Priya's contract ends on 2025-12-31.", chatID: "sess-1", at: at}
	w := doJSON(t, newTestRouter(&stubContracts{}, chat), http.MethodPost, "/api/chat", ChatRequest{
		Message: "When does Priya's contract end?",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	resp := decodeBody[ChatResponse](t, w)
	if resp.Response != chat.reply {
		t.Errorf("response = %q", resp.Response)
	}
	if resp.ChatID != "sess-1" {
		t.Errorf("chat_id = %q", resp.ChatID)
	}
	if !resp.Timestamp.Equal(at) {
		t.Errorf("timestamp = %v; want %v", resp.Timestamp, at)
	}
}

func TestChat_EmptyMessage(t *testing.T) {
	chat := &stubChat{err: services.ErrEmptyMessage}
	w := doJSON(t, newTestRouter(&stubContracts{}, chat), http.MethodPost, "/api/chat", ChatRequest{Message: "   "})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
	resp := decodeBody[ErrorResponse](t, w)
	if resp.Code != ErrCodeBadRequest {
		t.Errorf("error code = %q; want %q", resp.Code, ErrCodeBadRequest)
	}
}

func TestChat_InferenceUnavailable(t *testing.T) {
	chat := &stubChat{err: llm.ErrUnavailable}
	w := doJSON(t, newTestRouter(&stubContracts{}, chat), http.MethodPost, "/api/chat", ChatRequest{Message: "hello"})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", w.Code)
	}
	resp := decodeBody[ErrorResponse](t, w)
	if resp.Code != ErrCodeUpstreamUnavailable {
		t.Errorf("error code = %q; want %q", resp.Code, ErrCodeUpstreamUnavailable)
	}
	if !strings.Contains(resp.Message, "ollama serve") {
		t.Errorf("message = %q; want remediation hint", resp.Message)
	}
}

func TestChatHistory(t *testing.T) {
	chat := &stubChat{history: []domain.Exchange{
		{Timestamp: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC), Message: "hi", Response: "hello"},
	}}
	w := doJSON(t, newTestRouter(&stubContracts{}, chat), http.MethodGet, "/api/chat/history/sess-1", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	resp := decodeBody[HistoryResponse](t, w)
	if resp.ChatID != "sess-1" {
		t.Errorf("chat_id = %q", resp.ChatID)
	}
	if len(resp.Messages) != 1 || resp.Messages[0].Message != "hi" {
		t.Errorf("messages = %+v", resp.Messages)
	}
}

func TestChatHistory_UnknownSession(t *testing.T) {
	chat := &stubChat{err: services.ErrSessionNotFound}
	w := doJSON(t, newTestRouter(&stubContracts{}, chat), http.MethodGet, "/api/chat/history/missing", nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", w.Code)
	}
	resp := decodeBody[ErrorResponse](t, w)
	if resp.Code != ErrCodeNotFound {
		t.Errorf("error code = %q; want %q", resp.Code, ErrCodeNotFound)
	}
}
