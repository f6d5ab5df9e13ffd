// Package services – ContractService
//
// This file implements the ContractService, which owns the contract
// lifecycle: CRUD over the durable collection, case-insensitive search,
// and the alerting pass that turns expiring and expired contracts into
// human-readable notices. The store guarantees fresh status derivation
// on every read, so this layer never re-checks stored statuses.
//
// Observability: collection-wide operations are OpenTelemetry-
// instrumented; spans carry the contract id or result counts.

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rsinha/go-contract-desk/internal/domain"
	"github.com/rsinha/go-contract-desk/internal/store"
)

// ContractRepo defines the persistence contract required by
// ContractService. *store.ContractStore is the production
// implementation; tests substitute fakes.
type ContractRepo interface {
	ListAll(ctx context.Context) ([]domain.Contract, error)
	Get(ctx context.Context, id int) (*domain.Contract, error)
	Create(ctx context.Context, c domain.Contract) (*domain.Contract, error)
	Update(ctx context.Context, id int, upd domain.ContractUpdate) (*domain.Contract, error)
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, term string) ([]domain.Contract, error)
}

// ContractService provides contract CRUD, search, and alert generation
// over the durable collection.
type ContractService struct {
	Repo ContractRepo

	// Now is the clock used for alert derivation. Tests override it.
	Now func() time.Time
}

// NewContractService constructs a ContractService over the given repo.
func NewContractService(repo ContractRepo) *ContractService {
	return &ContractService{Repo: repo, Now: time.Now}
}

// List returns all contracts with freshly derived statuses.
func (s *ContractService) List(ctx context.Context) ([]domain.Contract, error) {
	return s.Repo.ListAll(ctx)
}

// Get returns a single contract or ErrContractNotFound.
func (s *ContractService) Get(ctx context.Context, id int) (*domain.Contract, error) {
	c, err := s.Repo.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrContractNotFound
	}
	return c, err
}

// Create validates and persists a new contract. Validation failures are
// returned as *store.ValidationError with field-level hints.
func (s *ContractService) Create(ctx context.Context, c domain.Contract) (*domain.Contract, error) {
	tr := otel.Tracer("services/ContractService")
	ctx, span := tr.Start(ctx, "Create",
		trace.WithAttributes(attribute.String("contract.title", c.Title)),
	)
	defer span.End()

	return s.Repo.Create(ctx, c)
}

// Update applies a partial-field merge to an existing contract and
// returns the merged record with its re-derived status.
func (s *ContractService) Update(ctx context.Context, id int, upd domain.ContractUpdate) (*domain.Contract, error) {
	c, err := s.Repo.Update(ctx, id, upd)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrContractNotFound
	}
	return c, err
}

// Delete removes a contract. Deleting an absent id succeeds; the
// operation is idempotent by contract.
func (s *ContractService) Delete(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}

// Search returns contracts matching term case-insensitively against
// title, company, client name, or derived status.
func (s *ContractService) Search(ctx context.Context, term string) ([]domain.Contract, error) {
	tr := otel.Tracer("services/ContractService")
	ctx, span := tr.Start(ctx, "Search",
		trace.WithAttributes(attribute.String("search.term", term)),
	)
	defer span.End()

	return s.Repo.Search(ctx, term)
}

// Alerts walks the collection in insertion order and emits one alert
// for every contract whose derived status is expiring or expired.
func (s *ContractService) Alerts(ctx context.Context) ([]domain.Alert, error) {
	tr := otel.Tracer("services/ContractService")
	ctx, span := tr.Start(ctx, "Alerts")
	defer span.End()

	contracts, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// Status and days must come from one instant; the status the store
	// stamped on read may be from the other side of midnight.
	now := s.Now()
	alerts := []domain.Alert{}
	for _, c := range contracts {
		status := domain.DeriveStatus(c.EndDate, now)
		if status != domain.StatusExpiring && status != domain.StatusExpired {
			continue
		}
		days, ok := domain.DaysRemaining(c.EndDate, now)
		if !ok {
			// Unreadable end date; the record reports as already expired.
			days = -1
		}
		alerts = append(alerts, domain.Alert{
			ContractID:    c.ID,
			Title:         c.Title,
			Company:       c.Company,
			EndDate:       c.EndDate,
			DaysRemaining: days,
			Status:        status,
			Message:       alertMessage(c, days),
		})
	}
	span.SetAttributes(attribute.Int("alerts.count", len(alerts)))
	return alerts, nil
}

// alertMessage renders the human-readable sentence for an alert.
func alertMessage(c domain.Contract, days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("Contract %q with %s expired %d day(s) ago.", c.Title, c.Company, -days)
	case days == 0:
		return fmt.Sprintf("Contract %q with %s expires today.", c.Title, c.Company)
	default:
		return fmt.Sprintf("Contract %q with %s expires in %d day(s).", c.Title, c.Company, days)
	}
}
