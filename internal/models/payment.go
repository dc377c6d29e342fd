package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment mirrors the payments table. Append-only.
type Payment struct {
	PaymentID     string
	HouseNumber   string
	CycleID       string
	Amount        decimal.Decimal
	Mode          string
	ReceiptNumber *string
	Notes         string
	CreatedAt     time.Time
	CreatedBy     string
}
