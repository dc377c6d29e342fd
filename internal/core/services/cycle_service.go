package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sidharthsanthos/PKRA/internal/apperrors"
	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	portsrepo "github.com/sidharthsanthos/PKRA/internal/core/ports/repositories"
	portssvc "github.com/sidharthsanthos/PKRA/internal/core/ports/services"
	"github.com/sidharthsanthos/PKRA/internal/dto"
	"github.com/shopspring/decimal"
)

// cycleService manages the association's collection years.
type cycleService struct {
	BaseService
	cycleRepo portsrepo.CycleRepositoryFacade

	// rolloverMonth is the month in which a new collection year starts.
	rolloverMonth int
}

// NewCycleService creates a new CycleService.
func NewCycleService(cycleRepo portsrepo.CycleRepositoryFacade, rolloverMonth int) portssvc.CycleSvcFacade {
	return &cycleService{
		cycleRepo:     cycleRepo,
		rolloverMonth: rolloverMonth,
	}
}

// Ensure cycleService implements the portssvc.CycleSvcFacade interface
var _ portssvc.CycleSvcFacade = (*cycleService)(nil)

// GetCycleByID retrieves a specific cycle.
func (s *cycleService) GetCycleByID(ctx context.Context, cycleID string) (*domain.AssociationCycle, error) {
	cycle, err := s.cycleRepo.FindCycleByID(ctx, cycleID)
	if err != nil {
		return nil, err
	}
	return cycle, nil
}

// CurrentCycle resolves the cycle that new payments default to. Before the
// rollover month, "now" still belongs to the previous collection year.
func (s *cycleService) CurrentCycle(ctx context.Context, now time.Time) (*domain.AssociationCycle, error) {
	year := now.Year()
	if int(now.Month()) < s.rolloverMonth {
		year--
	}

	cycle, err := s.cycleRepo.FindCycleByYear(ctx, year)
	if err != nil {
		return nil, err
	}
	return cycle, nil
}

// ListCycles retrieves all cycles, newest year first.
func (s *cycleService) ListCycles(ctx context.Context) ([]domain.AssociationCycle, error) {
	return s.cycleRepo.ListCycles(ctx)
}

// CreateCycle opens a new collection year.
func (s *cycleService) CreateCycle(ctx context.Context, req dto.CreateCycleRequest, creatorUserID string) (*domain.AssociationCycle, error) {
	if req.AnnualFee.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("annual fee must be positive: %w", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	cycle := domain.AssociationCycle{
		CycleID:   uuid.NewString(),
		Year:      req.Year,
		AnnualFee: req.AnnualFee,
		DueDate:   req.DueDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.cycleRepo.SaveCycle(ctx, cycle); err != nil {
		s.LogError(ctx, err, "Failed to save cycle", slog.Int("year", req.Year))
		return nil, err
	}

	s.LogInfo(ctx, "Cycle created", slog.String("cycle_id", cycle.CycleID), slog.Int("year", cycle.Year))
	return &cycle, nil
}

// UpdateCycle corrects a cycle's fee and/or due date. Existing status rows
// are never touched here; a changed fee affects derivations from the next
// ledger write onward.
func (s *cycleService) UpdateCycle(ctx context.Context, cycleID string, req dto.UpdateCycleRequest, updaterUserID string) (*domain.AssociationCycle, error) {
	cycle, err := s.cycleRepo.FindCycleByID(ctx, cycleID)
	if err != nil {
		return nil, err
	}

	feeChanged := false
	if req.AnnualFee != nil {
		if req.AnnualFee.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("annual fee must be positive: %w", apperrors.ErrValidation)
		}
		feeChanged = !cycle.AnnualFee.Equal(*req.AnnualFee)
		cycle.AnnualFee = *req.AnnualFee
	}
	if req.DueDate != nil {
		cycle.DueDate = *req.DueDate
	}

	if feeChanged {
		hasPayments, err := s.cycleRepo.CycleHasPayments(ctx, cycleID)
		if err != nil {
			return nil, err
		}
		if hasPayments {
			s.LogWarn(ctx, "Annual fee changed on a cycle with recorded payments; existing statuses keep their values until their next write or reconcile",
				slog.String("cycle_id", cycleID),
				slog.String("new_fee", cycle.AnnualFee.String()),
			)
		}
	}

	now := time.Now().UTC()
	cycle.LastUpdatedAt = now
	cycle.LastUpdatedBy = updaterUserID

	if err := s.cycleRepo.UpdateCycle(ctx, *cycle); err != nil {
		s.LogError(ctx, err, "Failed to update cycle", slog.String("cycle_id", cycleID))
		return nil, err
	}

	return cycle, nil
}
