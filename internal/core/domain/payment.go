package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMode indicates how a payment was received.
type PaymentMode string

const (
	ModeCash PaymentMode = "CASH"
	ModeUPI  PaymentMode = "UPI"
)

// IsValid reports whether m is a known payment mode.
func (m PaymentMode) IsValid() bool {
	return m == ModeCash || m == ModeUPI
}

// PaymentRecord is one entry in the append-only dues ledger. Records are never
// edited or deleted after creation; corrections are offsetting entries.
type PaymentRecord struct {
	PaymentID     string          `json:"paymentID"` // Primary Key (UUID)
	HouseNumber   string          `json:"houseNumber"`
	CycleID       string          `json:"cycleID"`
	Amount        decimal.Decimal `json:"amount"` // Positive value
	Mode          PaymentMode     `json:"mode"`
	ReceiptNumber *string         `json:"receiptNumber,omitempty"` // Unique within a cycle when present
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}
