package services

import (
	"context"

	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	"github.com/sidharthsanthos/PKRA/internal/dto"
)

// PaymentWriterSvc defines the single write path into the ledger.
type PaymentWriterSvc interface {
	// RecordPayment validates and atomically appends a payment, returning the
	// stored record and the updated house status. Rejections
	// (apperrors.ErrValidation, ErrNotFound, ErrDuplicateReceipt,
	// ErrOverpayment) leave ledger and aggregate untouched.
	RecordPayment(ctx context.Context, cycleID string, req dto.RecordPaymentRequest, operatorID string) (*domain.PaymentRecord, *domain.HousePaymentStatus, error)
}

// PaymentReaderSvc defines read operations over the ledger and statuses.
type PaymentReaderSvc interface {
	// ListPaymentsByHouse retrieves a house's payment history for a cycle,
	// most recent first.
	ListPaymentsByHouse(ctx context.Context, cycleID, houseNumber string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error)

	// ListPaymentsByCycle retrieves a cycle's payments, optionally filtered
	// by mode.
	ListPaymentsByCycle(ctx context.Context, cycleID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error)

	// GetHouseStatus retrieves the paid/pending/status view for one house in
	// a cycle. A pair with no ledger entries reports a zeroed Pending status.
	GetHouseStatus(ctx context.Context, cycleID, houseNumber string) (*dto.HouseStatusResponse, error)
}

// PaymentSvcFacade combines payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}

// ReconcilerSvc is the repair surface for the materialized aggregates.
type ReconcilerSvc interface {
	// Reconcile rebuilds one (house, cycle) status row from the ledger.
	Reconcile(ctx context.Context, cycleID, houseNumber string, operatorID string) (*domain.HousePaymentStatus, error)

	// SweepCycle verifies every status row of a cycle against the ledger,
	// repairing and logging any drift found. Returns the number of rows that
	// had drifted.
	SweepCycle(ctx context.Context, cycleID string, operatorID string) (int, error)
}
