package services

import (
	"context"

	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	portsrepo "github.com/sidharthsanthos/PKRA/internal/core/ports/repositories"
	portssvc "github.com/sidharthsanthos/PKRA/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportingService is the read-only stats engine. Totals are recomputed from
// the ledger on every call rather than maintained incrementally.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	ledgerRepo    portsrepo.LedgerReader
	houseRepo     portsrepo.HouseReader
	cycleSvc      portssvc.CycleReaderSvc
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, ledgerRepo portsrepo.LedgerReader, houseRepo portsrepo.HouseReader, cycleSvc portssvc.CycleReaderSvc) portssvc.ReportingSvc {
	return &reportingService{
		reportingRepo: reportingRepo,
		ledgerRepo:    ledgerRepo,
		houseRepo:     houseRepo,
		cycleSvc:      cycleSvc,
	}
}

// Ensure reportingService implements the portssvc.ReportingSvc interface
var _ portssvc.ReportingSvc = (*reportingService)(nil)

// CycleSummary produces the cycle-wide totals used by the dashboard.
func (s *reportingService) CycleSummary(ctx context.Context, cycleID string) (*domain.CycleSummary, error) {
	cycle, err := s.cycleSvc.GetCycleByID(ctx, cycleID)
	if err != nil {
		return nil, err
	}

	houseCount, err := s.houseRepo.CountHouses(ctx)
	if err != nil {
		return nil, err
	}

	modeTotals, err := s.reportingRepo.GetModeTotals(ctx, cycleID)
	if err != nil {
		return nil, err
	}

	divisionTotals, err := s.reportingRepo.GetDivisionTotals(ctx, cycleID)
	if err != nil {
		return nil, err
	}

	totalSpent, err := s.reportingRepo.GetExpenseTotal(ctx, cycleID)
	if err != nil {
		return nil, err
	}

	totalReceived := decimal.Zero
	for _, total := range modeTotals {
		totalReceived = totalReceived.Add(total)
	}

	// Expected collection is fee times houses; pending is what remains of it.
	totalPending := cycle.AnnualFee.Mul(decimal.NewFromInt(int64(houseCount))).Sub(totalReceived)
	if totalPending.IsNegative() {
		totalPending = decimal.Zero
	}

	return &domain.CycleSummary{
		CycleID:       cycle.CycleID,
		AnnualFee:     cycle.AnnualFee,
		HouseCount:    houseCount,
		TotalReceived: totalReceived,
		TotalPending:  totalPending,
		TotalSpent:    totalSpent,
		CashOnHand:    totalReceived.Sub(totalSpent),
		ByMode:        modeTotals,
		ByDivision:    divisionTotals,
	}, nil
}

// ListStatuses lists the per-house statuses of a cycle, joined with the house
// directory, optionally filtered by status.
func (s *reportingService) ListStatuses(ctx context.Context, cycleID string, status *domain.PaymentStatus) ([]domain.StatusWithHouse, error) {
	if _, err := s.cycleSvc.GetCycleByID(ctx, cycleID); err != nil {
		return nil, err
	}

	return s.ledgerRepo.ListStatusesByCycle(ctx, cycleID, status)
}
