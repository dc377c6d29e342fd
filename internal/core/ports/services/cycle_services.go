package services

import (
	"context"
	"time"

	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	"github.com/sidharthsanthos/PKRA/internal/dto"
)

// CycleReaderSvc defines read operations for association cycles
type CycleReaderSvc interface {
	// GetCycleByID retrieves a specific cycle.
	GetCycleByID(ctx context.Context, cycleID string) (*domain.AssociationCycle, error)

	// CurrentCycle resolves the cycle new payments default to, per the
	// fiscal-rollover calendar rule evaluated against now.
	CurrentCycle(ctx context.Context, now time.Time) (*domain.AssociationCycle, error)

	// ListCycles retrieves all cycles, newest year first.
	ListCycles(ctx context.Context) ([]domain.AssociationCycle, error)
}

// CycleWriterSvc defines write operations for association cycles
type CycleWriterSvc interface {
	// CreateCycle opens a new collection year.
	CreateCycle(ctx context.Context, req dto.CreateCycleRequest, creatorUserID string) (*domain.AssociationCycle, error)

	// UpdateCycle corrects a cycle's fee and/or due date. Existing
	// HousePaymentStatus rows are never touched by this path.
	UpdateCycle(ctx context.Context, cycleID string, req dto.UpdateCycleRequest, updaterUserID string) (*domain.AssociationCycle, error)
}

// CycleSvcFacade combines all cycle-related service interfaces
type CycleSvcFacade interface {
	CycleReaderSvc
	CycleWriterSvc
}
