package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// HousePaymentStatus mirrors the house_payment_status table.
type HousePaymentStatus struct {
	HouseNumber   string
	CycleID       string
	PaidAmount    decimal.Decimal
	Status        string
	CreatedAt     time.Time
	CreatedBy     string
	LastUpdatedAt time.Time
	LastUpdatedBy string
}
