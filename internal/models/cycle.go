package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssociationCycle mirrors the association_cycles table.
type AssociationCycle struct {
	CycleID       string
	Year          int
	AnnualFee     decimal.Decimal
	DueDate       time.Time
	CreatedAt     time.Time
	CreatedBy     string
	LastUpdatedAt time.Time
	LastUpdatedBy string
}
