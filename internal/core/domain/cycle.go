package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssociationCycle is one collection year of membership dues, with its own
// annual fee and due date. At most one cycle exists per year.
type AssociationCycle struct {
	CycleID   string          `json:"cycleID"`
	Year      int             `json:"year"`
	AnnualFee decimal.Decimal `json:"annualFee"`
	DueDate   time.Time       `json:"dueDate"`
	AuditFields
}
