package services

import (
	"context"
	"log/slog"

	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	portsrepo "github.com/sidharthsanthos/PKRA/internal/core/ports/repositories"
	portssvc "github.com/sidharthsanthos/PKRA/internal/core/ports/services"
)

// reconcilerService repairs materialized house statuses from the ledger.
// The ledger is the source of truth; a status row is only ever a cache.
type reconcilerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
	cycleSvc   portssvc.CycleReaderSvc
	houseSvc   portssvc.HouseReaderSvc
}

// NewReconcilerService creates a new ReconcilerService.
func NewReconcilerService(ledgerRepo portsrepo.LedgerRepositoryFacade, cycleSvc portssvc.CycleReaderSvc, houseSvc portssvc.HouseReaderSvc) portssvc.ReconcilerSvc {
	return &reconcilerService{
		ledgerRepo: ledgerRepo,
		cycleSvc:   cycleSvc,
		houseSvc:   houseSvc,
	}
}

// Ensure reconcilerService implements the portssvc.ReconcilerSvc interface
var _ portssvc.ReconcilerSvc = (*reconcilerService)(nil)

// Reconcile rebuilds one (house, cycle) status row from the ledger.
// Idempotent: a second call with no intervening ledger write reports no drift.
func (s *reconcilerService) Reconcile(ctx context.Context, cycleID, houseNumber string, operatorID string) (*domain.HousePaymentStatus, error) {
	cycle, err := s.cycleSvc.GetCycleByID(ctx, cycleID)
	if err != nil {
		return nil, err
	}
	if _, err := s.houseSvc.GetHouseByNumber(ctx, houseNumber); err != nil {
		return nil, err
	}

	status, drifted, err := s.ledgerRepo.RecomputeStatus(ctx, cycleID, houseNumber, cycle.AnnualFee, operatorID)
	if err != nil {
		s.LogError(ctx, err, "Failed to reconcile status",
			slog.String("house_number", houseNumber),
			slog.String("cycle_id", cycleID),
		)
		return nil, err
	}

	if drifted {
		s.LogWarn(ctx, "Status drift repaired",
			slog.String("house_number", houseNumber),
			slog.String("cycle_id", cycleID),
			slog.String("paid_amount", status.PaidAmount.String()),
			slog.String("status", string(status.Status)),
		)
	}

	return status, nil
}

// SweepCycle verifies every status row of a cycle against the ledger,
// repairing any drift found. Returns the number of rows that had drifted.
func (s *reconcilerService) SweepCycle(ctx context.Context, cycleID string, operatorID string) (int, error) {
	cycle, err := s.cycleSvc.GetCycleByID(ctx, cycleID)
	if err != nil {
		return 0, err
	}

	rows, err := s.ledgerRepo.ListStatusesByCycle(ctx, cycleID, nil)
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, row := range rows {
		status, drifted, err := s.ledgerRepo.RecomputeStatus(ctx, cycleID, row.House.HouseNumber, cycle.AnnualFee, operatorID)
		if err != nil {
			return repaired, err
		}
		if drifted {
			repaired++
			s.LogWarn(ctx, "Status drift repaired during sweep",
				slog.String("house_number", row.House.HouseNumber),
				slog.String("cycle_id", cycleID),
				slog.String("paid_amount", status.PaidAmount.String()),
				slog.String("status", string(status.Status)),
			)
		}
	}

	s.LogInfo(ctx, "Cycle sweep completed",
		slog.String("cycle_id", cycleID),
		slog.Int("checked", len(rows)),
		slog.Int("repaired", repaired),
	)
	return repaired, nil
}
