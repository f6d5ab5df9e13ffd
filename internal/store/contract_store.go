// ContractStore: the durable contract collection.
//
// The collection is an ordered JSON array; insertion order is preserved
// across loads and saves, and listing, searching, and alert generation
// all iterate in that order. Statuses are re-derived from the end date
// on every read path and never trusted from disk.

package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rsinha/go-contract-desk/internal/domain"
)

// ContractStore persists the contract collection as a single JSON
// document. All methods are safe for concurrent use; a mutex serializes
// the whole read-modify-write cycle of each operation.
type ContractStore struct {
	path string
	mu   sync.Mutex

	// Now is the clock used for status derivation and created_at
	// stamps. Tests override it for deterministic boundaries.
	Now func() time.Time
}

// NewContractStore returns a store backed by the JSON document at path.
// The document is created with an empty collection on first access.
func NewContractStore(path string) *ContractStore {
	return &ContractStore{path: path, Now: time.Now}
}

// load reads the full collection and refreshes every derived status.
// Callers must hold s.mu.
func (s *ContractStore) load() ([]domain.Contract, error) {
	var contracts []domain.Contract
	if err := loadDocument(s.path, &contracts, []byte("[]")); err != nil {
		return nil, err
	}
	now := s.Now()
	for i := range contracts {
		contracts[i].Refresh(now)
	}
	return contracts, nil
}

// ListAll returns every contract in insertion order with freshly
// derived statuses.
func (s *ContractStore) ListAll(ctx context.Context) ([]domain.Contract, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	contracts, err := s.load()
	if err != nil {
		return nil, err
	}
	if contracts == nil {
		contracts = []domain.Contract{}
	}
	return contracts, nil
}

// Get returns the contract with the given id, or ErrNotFound.
func (s *ContractStore) Get(ctx context.Context, id int) (*domain.Contract, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	contracts, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range contracts {
		if contracts[i].ID == id {
			c := contracts[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// Create validates the required fields, assigns the next id
// (max existing + 1, or 1 for an empty collection), stamps created_at,
// derives the initial status, and appends the record to the collection.
func (s *ContractStore) Create(ctx context.Context, c domain.Contract) (*domain.Contract, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"title", c.Title},
		{"company", c.Company},
		{"client_name", c.ClientName},
		{"start_date", c.StartDate},
		{"end_date", c.EndDate},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}
	if c.ContractType == "" {
		c.ContractType = domain.TypeIndividual
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	contracts, err := s.load()
	if err != nil {
		return nil, err
	}

	maxID := 0
	for i := range contracts {
		if contracts[i].ID > maxID {
			maxID = contracts[i].ID
		}
	}
	now := s.Now()
	c.ID = maxID + 1
	c.CreatedAt = now.UTC().Format(time.RFC3339)
	c.Refresh(now)

	contracts = append(contracts, c)
	if err := saveDocument(s.path, contracts); err != nil {
		return nil, err
	}
	return &c, nil
}

// Update merges the non-nil fields of upd over the stored record,
// re-derives the status, and writes the collection back. It returns
// ErrNotFound when the id is absent. ID and created_at are immutable.
func (s *ContractStore) Update(ctx context.Context, id int, upd domain.ContractUpdate) (*domain.Contract, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	contracts, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range contracts {
		if contracts[i].ID != id {
			continue
		}
		c := &contracts[i]
		if upd.Title != nil {
			c.Title = *upd.Title
		}
		if upd.Company != nil {
			c.Company = *upd.Company
		}
		if upd.ClientName != nil {
			c.ClientName = *upd.ClientName
		}
		if upd.ContractType != nil {
			c.ContractType = *upd.ContractType
		}
		if upd.StartDate != nil {
			c.StartDate = *upd.StartDate
		}
		if upd.EndDate != nil {
			c.EndDate = *upd.EndDate
		}
		if upd.Salary != nil {
			c.Salary = *upd.Salary
		}
		if upd.Notes != nil {
			c.Notes = *upd.Notes
		}
		c.Refresh(s.Now())
		if err := saveDocument(s.path, contracts); err != nil {
			return nil, err
		}
		out := *c
		return &out, nil
	}
	return nil, ErrNotFound
}

// Delete removes the contract with the given id. Deleting an id that
// does not exist is a no-op, not an error; deletion is idempotent.
func (s *ContractStore) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	contracts, err := s.load()
	if err != nil {
		return err
	}
	kept := contracts[:0]
	removed := false
	for i := range contracts {
		if contracts[i].ID == id {
			removed = true
			continue
		}
		kept = append(kept, contracts[i])
	}
	if !removed {
		return nil
	}
	return saveDocument(s.path, kept)
}

// Search returns, in insertion order, the contracts whose title,
// company, client name, or derived status contains term
// case-insensitively. An empty term matches nothing.
func (s *ContractStore) Search(ctx context.Context, term string) ([]domain.Contract, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	contracts, err := s.load()
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	results := []domain.Contract{}
	if term == "" {
		return results, nil
	}
	for i := range contracts {
		c := contracts[i]
		if strings.Contains(strings.ToLower(c.Title), term) ||
			strings.Contains(strings.ToLower(c.Company), term) ||
			strings.Contains(strings.ToLower(c.ClientName), term) ||
			strings.Contains(strings.ToLower(string(c.Status)), term) {
			results = append(results, c)
		}
	}
	return results, nil
}
