// Chat HTTP handlers.
//
// This file exposes the conversational endpoints:
//   - POST /chat                      (one chat turn)
//   - GET  /chat/history/:chat_id     (session history)
//
// The chat handler is the only place where an upstream failure is
// translated for users: when the inference service is unreachable the
// response carries a remediation hint instead of the raw error.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rsinha/go-contract-desk/internal/domain"
	"github.com/rsinha/go-contract-desk/internal/llm"
	"github.com/rsinha/go-contract-desk/internal/services"
)

// ChatService defines the conversational operations consumed by HTTP
// handlers. Implementations must be safe for concurrent use and honor
// the provided context.
type ChatService interface {
	// Answer handles one chat turn and returns the reply, the
	// effective session id, and the exchange timestamp.
	Answer(ctx context.Context, sessionID, message string) (reply, id string, at time.Time, err error)
	// History returns the ordered exchanges of a session.
	History(ctx context.Context, sessionID string) ([]domain.Exchange, error)
}

// Handlers groups the HTTP endpoints for contracts, alerts, and chat.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	contractSvc ContractService
	chatSvc     ChatService
}

// New constructs a Handlers instance bound to the given services.
func New(contractSvc ContractService, chatSvc ChatService) *Handlers {
	return &Handlers{contractSvc: contractSvc, chatSvc: chatSvc}
}

// upstreamHint is shown when the inference service cannot be reached.
const upstreamHint = "The AI assistant is unavailable. Start the local model server (for example `ollama serve`) and try again."

// ChatRequest is the JSON payload for one chat turn. ChatID is
// optional; a new session id is generated when it is empty.
type ChatRequest struct {
	Message string `json:"message" example:"When does Priya's contract end?"`
	ChatID  string `json:"chat_id,omitempty" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
}

// ChatResponse carries the assistant reply for one turn.
type ChatResponse struct {
	Response  string    `json:"response"`
	ChatID    string    `json:"chat_id"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryResponse wraps a session's ordered exchanges.
type HistoryResponse struct {
	ChatID   string            `json:"chat_id"`
	Messages []domain.Exchange `json:"messages"`
}

// Chat godoc
// @ID          chat
// @Summary     Send a chat message
// @Description Builds a briefing from all contracts, asks the local model, and appends the exchange to the session history.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.ChatRequest  true  "Chat payload"
// @Success     200  {object}  handlers.ChatResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Empty message"
// @Failure     500  {object}  handlers.ErrorResponse  "Inference service unavailable"
// @Router      /chat [post]
func (h *Handlers) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	reply, chatID, at, err := h.chatSvc.Answer(c.Request.Context(), req.ChatID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyMessage):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "message is required")
		case errors.Is(err, llm.ErrUnavailable):
			fail(c, http.StatusInternalServerError, ErrCodeUpstreamUnavailable, upstreamHint)
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, ChatResponse{Response: reply, ChatID: chatID, Timestamp: at})
}

// ChatHistory godoc
// @ID          chatHistory
// @Summary     Fetch session history
// @Tags        Chat
// @Produce     json
// @Param       chat_id  path  string  true  "Session ID"
// @Success     200  {object}  handlers.HistoryResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Session not found"
// @Router      /chat/history/{chat_id} [get]
func (h *Handlers) ChatHistory(c *gin.Context) {
	chatID := c.Param("chat_id")
	history, err := h.chatSvc.History(c.Request.Context(), chatID)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "chat session not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, HistoryResponse{ChatID: chatID, Messages: history})
}
