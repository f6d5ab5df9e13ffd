// SessionStore: the durable chat-session map.
//
// Sessions are keyed by an opaque string identifier and hold an
// append-only ordered list of exchanges. A session is created lazily on
// the first append under its identifier and grows without bound; there
// is no expiry or eviction.

package store

import (
	"context"
	"sync"

	"github.com/rsinha/go-contract-desk/internal/domain"
)

// SessionStore persists the session-to-exchange mapping as a single
// JSON document (object keyed by session id). Safe for concurrent use.
type SessionStore struct {
	path string
	mu   sync.Mutex
}

// NewSessionStore returns a store backed by the JSON document at path.
// The document is created with an empty mapping on first access.
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

func (s *SessionStore) load() (map[string][]domain.Exchange, error) {
	sessions := map[string][]domain.Exchange{}
	if err := loadDocument(s.path, &sessions, []byte("{}")); err != nil {
		return nil, err
	}
	return sessions, nil
}

// Append adds an exchange to the end of the session's history, creating
// the session if it does not exist yet.
func (s *SessionStore) Append(ctx context.Context, sessionID string, ex domain.Exchange) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sessions, err := s.load()
	if err != nil {
		return err
	}
	sessions[sessionID] = append(sessions[sessionID], ex)
	return saveDocument(s.path, sessions)
}

// Get returns the ordered exchange history of a session, or ErrNotFound
// when no session exists under the identifier.
func (s *SessionStore) Get(ctx context.Context, sessionID string) ([]domain.Exchange, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sessions, err := s.load()
	if err != nil {
		return nil, err
	}
	history, ok := sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	return history, nil
}
