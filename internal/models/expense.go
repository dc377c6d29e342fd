package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense mirrors the expenses table.
type Expense struct {
	ExpenseID     string
	CycleID       string
	Description   string
	Amount        decimal.Decimal
	SpentAt       time.Time
	CreatedAt     time.Time
	CreatedBy     string
	LastUpdatedAt time.Time
	LastUpdatedBy string
}
