package repositories

import (
	"context"

	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the read-only aggregation queries behind the
// stats engine. Every call is a fresh scan of the ledger.
type ReportingRepository interface {
	// GetModeTotals returns the sum of ledger amounts per payment mode for a
	// cycle. Modes with no payments map to zero.
	GetModeTotals(ctx context.Context, cycleID string) (map[domain.PaymentMode]decimal.Decimal, error)

	// GetDivisionTotals returns the sum of ledger amounts per division for a
	// cycle, joining houses to their payments. Divisions with no payments
	// map to zero.
	GetDivisionTotals(ctx context.Context, cycleID string) (map[domain.Division]decimal.Decimal, error)

	// GetExpenseTotal returns the sum of recorded expenses for a cycle.
	GetExpenseTotal(ctx context.Context, cycleID string) (decimal.Decimal, error)
}
