package repositories

import (
	"context"

	"github.com/sidharthsanthos/PKRA/internal/core/domain"
)

// CycleReader defines read operations for association cycle data
type CycleReader interface {
	// FindCycleByID retrieves a specific cycle by its id.
	FindCycleByID(ctx context.Context, cycleID string) (*domain.AssociationCycle, error)

	// FindCycleByYear retrieves the cycle for a collection year, if any.
	FindCycleByYear(ctx context.Context, year int) (*domain.AssociationCycle, error)

	// ListCycles retrieves all cycles, newest year first.
	ListCycles(ctx context.Context) ([]domain.AssociationCycle, error)

	// CycleHasPayments reports whether any ledger entry exists for the cycle.
	CycleHasPayments(ctx context.Context, cycleID string) (bool, error)
}

// CycleWriter defines write operations for association cycle data
type CycleWriter interface {
	// SaveCycle persists a new cycle. Returns apperrors.ErrDuplicate when the
	// year is already taken.
	SaveCycle(ctx context.Context, cycle domain.AssociationCycle) error

	// UpdateCycle persists a fee/due-date correction.
	UpdateCycle(ctx context.Context, cycle domain.AssociationCycle) error
}

// CycleRepositoryFacade combines all cycle-related repository interfaces
type CycleRepositoryFacade interface {
	CycleReader
	CycleWriter
}
