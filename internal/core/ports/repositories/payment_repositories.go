package repositories

import (
	"context"

	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReader defines read operations over the payment ledger and the
// materialized house payment statuses.
type LedgerReader interface {
	// ListPaymentsByHouseAndCycle retrieves a house's ledger entries for a
	// cycle, most recent first, with cursor pagination.
	ListPaymentsByHouseAndCycle(ctx context.Context, cycleID, houseNumber string, limit int, nextToken *string) ([]domain.PaymentRecord, *string, error)

	// ListPaymentsByCycle retrieves a cycle's ledger entries, most recent
	// first, optionally filtered by mode, with cursor pagination.
	ListPaymentsByCycle(ctx context.Context, cycleID string, mode *domain.PaymentMode, limit int, nextToken *string) ([]domain.PaymentRecord, *string, error)

	// FindStatus retrieves the materialized status row for a (house, cycle)
	// pair. Returns apperrors.ErrNotFound when no payment or reconciliation
	// has touched the pair yet.
	FindStatus(ctx context.Context, cycleID, houseNumber string) (*domain.HousePaymentStatus, error)

	// ListStatusesByCycle retrieves all status rows for a cycle joined with
	// their houses, optionally filtered by status.
	ListStatusesByCycle(ctx context.Context, cycleID string, status *domain.PaymentStatus) ([]domain.StatusWithHouse, error)
}

// LedgerWriter defines the single mutating path into the ledger. Both methods
// execute append + reconcile as one database transaction; there is no way to
// write a payment without its aggregate moving in lock-step.
type LedgerWriter interface {
	// SavePayment atomically appends a ledger entry and updates the (house,
	// cycle) status row. The receipt uniqueness constraint and the
	// overpayment cap are both enforced inside the same transaction.
	// Returns apperrors.ErrDuplicateReceipt or apperrors.ErrOverpayment with
	// no partial effect.
	SavePayment(ctx context.Context, payment domain.PaymentRecord, annualFee decimal.Decimal) (*domain.HousePaymentStatus, error)

	// RecomputeStatus rebuilds the status row for a (house, cycle) pair from
	// the ledger. It reports whether the stored row disagreed with the
	// recomputed values (drift). Idempotent: with no intervening ledger
	// write, a second call returns the same status and drifted=false.
	RecomputeStatus(ctx context.Context, cycleID, houseNumber string, annualFee decimal.Decimal, updatedBy string) (*domain.HousePaymentStatus, bool, error)
}

// LedgerRepositoryFacade combines ledger read and write interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
