// Package services – ChatService
//
// This file implements the ChatService, the request/response flow of
// the conversational interface. For each message it reads the full
// contract collection, renders it into the briefing document, forwards
// briefing plus message to the inference gateway, and appends the
// exchange to the session's durable history.
//
// Session identifiers are opaque strings. When the caller supplies
// none, a UUID is generated; the timestamp-as-id scheme was dropped
// because colliding requests within the same second would share a
// session.

package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rsinha/go-contract-desk/internal/briefing"
	"github.com/rsinha/go-contract-desk/internal/domain"
	"github.com/rsinha/go-contract-desk/internal/store"
)

// Asker is the inference gateway contract consumed by ChatService.
// *llm.Client is the production implementation.
type Asker interface {
	Ask(ctx context.Context, briefing, userMessage string) (string, error)
}

// SessionRepo defines the session persistence contract required by
// ChatService. *store.SessionStore is the production implementation.
type SessionRepo interface {
	Append(ctx context.Context, sessionID string, ex domain.Exchange) error
	Get(ctx context.Context, sessionID string) ([]domain.Exchange, error)
}

// ChatService assembles contract context, queries the model, and
// persists conversation history.
type ChatService struct {
	Contracts ContractRepo
	Sessions  SessionRepo
	Model     Asker

	// Now is the clock used for exchange timestamps and briefing
	// derivation. Tests override it.
	Now func() time.Time
}

// NewChatService constructs a ChatService over the given collaborators.
func NewChatService(contracts ContractRepo, sessions SessionRepo, model Asker) *ChatService {
	return &ChatService{Contracts: contracts, Sessions: sessions, Model: model, Now: time.Now}
}

// Answer handles one chat turn. It validates the message, builds the
// briefing from the current contract collection, asks the model, and
// appends the exchange under sessionID (generating a fresh UUID when
// sessionID is empty). It returns the reply, the effective session id,
// and the exchange timestamp.
//
// llm.ErrUnavailable passes through unwrapped so the handler can attach
// a remediation hint.
func (s *ChatService) Answer(ctx context.Context, sessionID, message string) (reply, id string, at time.Time, err error) {
	tr := otel.Tracer("services/ChatService")
	ctx, span := tr.Start(ctx, "Answer",
		trace.WithAttributes(attribute.String("session.id", sessionID)),
	)
	defer span.End()

	message = strings.TrimSpace(message)
	if message == "" {
		return "", "", time.Time{}, ErrEmptyMessage
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	contracts, err := s.Contracts.ListAll(ctx)
	if err != nil {
		return "", "", time.Time{}, err
	}

	now := s.Now()
	reply, err = s.Model.Ask(ctx, briefing.Build(contracts, now), message)
	if err != nil {
		return "", "", time.Time{}, err
	}

	at = now.UTC()
	err = s.Sessions.Append(ctx, sessionID, domain.Exchange{
		Timestamp: at,
		Message:   message,
		Response:  reply,
	})
	if err != nil {
		return "", "", time.Time{}, err
	}
	return reply, sessionID, at, nil
}

// History returns the ordered exchanges of a session, or
// ErrSessionNotFound when the identifier is unknown.
func (s *ChatService) History(ctx context.Context, sessionID string) ([]domain.Exchange, error) {
	history, err := s.Sessions.Get(ctx, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	return history, err
}
