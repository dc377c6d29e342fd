package domain

import "github.com/shopspring/decimal"

// PaymentStatus is the completion state of a house for a cycle.
type PaymentStatus string

const (
	StatusPending   PaymentStatus = "PENDING"
	StatusPartial   PaymentStatus = "PARTIAL"
	StatusCompleted PaymentStatus = "COMPLETED"
)

// HousePaymentStatus is the materialized per-(house, cycle) summary of the
// ledger. It is a cache: paid amount must always equal the sum of the house's
// ledger entries for the cycle, and it must be rebuildable by replaying them.
type HousePaymentStatus struct {
	HouseNumber string          `json:"houseNumber"`
	CycleID     string          `json:"cycleID"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
	Status      PaymentStatus   `json:"status"`
	AuditFields
}

// DeriveStatus computes the completion status for a paid amount against the
// cycle's annual fee: Completed iff paid >= fee, Partial iff paid > 0,
// otherwise Pending.
func DeriveStatus(paidAmount, annualFee decimal.Decimal) PaymentStatus {
	switch {
	case paidAmount.GreaterThanOrEqual(annualFee):
		return StatusCompleted
	case paidAmount.GreaterThan(decimal.Zero):
		return StatusPartial
	default:
		return StatusPending
	}
}

// Remaining returns the amount still owed against the fee, never negative.
func (s HousePaymentStatus) Remaining(annualFee decimal.Decimal) decimal.Decimal {
	remaining := annualFee.Sub(s.PaidAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}
