package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is money spent by the association out of collected dues,
// recorded against a cycle.
type Expense struct {
	ExpenseID   string          `json:"expenseID"` // Primary Key (UUID)
	CycleID     string          `json:"cycleID"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // Positive value
	SpentAt     time.Time       `json:"spentAt"`
	AuditFields
}
