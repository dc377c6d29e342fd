package services

import (
	"context"

	"github.com/sidharthsanthos/PKRA/internal/core/domain"
)

// ReportingSvc is the read-only stats engine over ledger and status data.
type ReportingSvc interface {
	// CycleSummary produces the cycle-wide totals used by reporting views.
	CycleSummary(ctx context.Context, cycleID string) (*domain.CycleSummary, error)

	// ListStatuses lists the per-house statuses of a cycle, joined with the
	// house directory, optionally filtered by status.
	ListStatuses(ctx context.Context, cycleID string, status *domain.PaymentStatus) ([]domain.StatusWithHouse, error)
}
