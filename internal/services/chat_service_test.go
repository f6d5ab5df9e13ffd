package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rsinha/go-contract-desk/internal/domain"
	"github.com/rsinha/go-contract-desk/internal/llm"
	"github.com/rsinha/go-contract-desk/internal/store"
)

type fakeAsker struct {
	reply       string
	err         error
	gotBriefing string
	gotMessage  string
	calls       int
}

func (f *fakeAsker) Ask(ctx context.Context, briefing, userMessage string) (string, error) {
	f.calls++
	f.gotBriefing = briefing
	f.gotMessage = userMessage
	return f.reply, f.err
}

type fakeSessionRepo struct {
	sessions map[string][]domain.Exchange
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string][]domain.Exchange{}}
}

func (f *fakeSessionRepo) Append(ctx context.Context, sessionID string, ex domain.Exchange) error {
	f.sessions[sessionID] = append(f.sessions[sessionID], ex)
	return nil
}

func (f *fakeSessionRepo) Get(ctx context.Context, sessionID string) ([]domain.Exchange, error) {
	history, ok := f.sessions[sessionID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return history, nil
}

func newChatService(contracts *fakeContractRepo, sessions *fakeSessionRepo, model *fakeAsker) *ChatService {
	s := NewChatService(contracts, sessions, model)
	s.Now = func() time.Time { return testNow }
	return s
}

func TestAnswer_RoundTrip(t *testing.T) {
	contracts := &fakeContractRepo{contracts: []domain.Contract{
		{ID: 1, Title: "Quality Assurance", Company: "Acme", ClientName: "Priya Sharma", EndDate: endIn(90)},
	}}
	sessions := newFakeSessionRepo()
	model := &fakeAsker{reply: "The contract ends in 90 days."}
	svc := newChatService(contracts, sessions, model)

	reply, id, at, err := svc.Answer(context.Background(), "sess-1", "  When does it end?  ")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if reply != "The contract ends in 90 days." {
		t.Errorf("reply = %q", reply)
	}
	if id != "sess-1" {
		t.Errorf("session id = %q; want caller's id kept", id)
	}
	if !at.Equal(testNow) {
		t.Errorf("timestamp = %v; want %v", at, testNow)
	}

	// Briefing carries the contract data; the user message is trimmed.
	if !strings.Contains(model.gotBriefing, "Quality Assurance") {
		t.Errorf("briefing missing contract data:\n%s", model.gotBriefing)
	}
	if model.gotMessage != "When does it end?" {
		t.Errorf("user message = %q; want trimmed", model.gotMessage)
	}

	history := sessions.sessions["sess-1"]
	if len(history) != 1 {
		t.Fatalf("history length = %d; want 1", len(history))
	}
	if history[0].Message != "When does it end?" || history[0].Response != reply {
		t.Errorf("persisted exchange = %+v", history[0])
	}
}

func TestAnswer_EmptyMessage(t *testing.T) {
	model := &fakeAsker{}
	svc := newChatService(&fakeContractRepo{}, newFakeSessionRepo(), model)

	for _, msg := range []string{"", "   ", "\n\t"} {
		if _, _, _, err := svc.Answer(context.Background(), "s", msg); !errors.Is(err, ErrEmptyMessage) {
			t.Errorf("Answer(%q) = %v; want ErrEmptyMessage", msg, err)
		}
	}
	if model.calls != 0 {
		t.Errorf("model called %d times for empty messages", model.calls)
	}
}

func TestAnswer_GeneratesSessionID(t *testing.T) {
	sessions := newFakeSessionRepo()
	svc := newChatService(&fakeContractRepo{}, sessions, &fakeAsker{reply: "ok"})

	_, id, _, err := svc.Answer(context.Background(), "", "hello")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("generated id %q is not a UUID: %v", id, err)
	}
	if _, ok := sessions.sessions[id]; !ok {
		t.Errorf("exchange not stored under generated id %q", id)
	}

	_, id2, _, err := svc.Answer(context.Background(), "", "hello again")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if id2 == id {
		t.Error("two empty-id requests shared a session id")
	}
}

func TestAnswer_ModelFailureNotPersisted(t *testing.T) {
	sessions := newFakeSessionRepo()
	model := &fakeAsker{err: llm.ErrUnavailable}
	svc := newChatService(&fakeContractRepo{}, sessions, model)

	_, _, _, err := svc.Answer(context.Background(), "sess-1", "hello")
	if !errors.Is(err, llm.ErrUnavailable) {
		t.Fatalf("Answer = %v; want ErrUnavailable passed through", err)
	}
	if len(sessions.sessions) != 0 {
		t.Error("failed exchange was persisted")
	}
}

func TestHistory(t *testing.T) {
	sessions := newFakeSessionRepo()
	sessions.sessions["known"] = []domain.Exchange{
		{Timestamp: testNow, Message: "hi", Response: "hello"},
	}
	svc := newChatService(&fakeContractRepo{}, sessions, &fakeAsker{})

	history, err := svc.History(context.Background(), "known")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 || history[0].Message != "hi" {
		t.Errorf("history = %+v", history)
	}

	if _, err := svc.History(context.Background(), "unknown"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("History(unknown) = %v; want ErrSessionNotFound", err)
	}
}
