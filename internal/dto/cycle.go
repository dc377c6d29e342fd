package dto

import (
	"time"

	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCycleRequest defines the data needed to open a new collection year.
type CreateCycleRequest struct {
	Year      int             `json:"year" binding:"required,min=2000,max=2200"`
	AnnualFee decimal.Decimal `json:"annualFee" binding:"required"`
	DueDate   time.Time       `json:"dueDate" binding:"required"`
}

// UpdateCycleRequest defines fee/due-date corrections on an existing cycle.
// Use pointers to distinguish zero-value updates from fields not provided.
type UpdateCycleRequest struct {
	AnnualFee *decimal.Decimal `json:"annualFee"`
	DueDate   *time.Time       `json:"dueDate"`
}

// CycleResponse defines the data returned for a cycle.
type CycleResponse struct {
	CycleID   string          `json:"cycleID"`
	Year      int             `json:"year"`
	Label     string          `json:"label"` // e.g. "Oct 2025 - Sep 2026"
	AnnualFee decimal.Decimal `json:"annualFee"`
	DueDate   time.Time       `json:"dueDate"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToCycleResponse converts a domain AssociationCycle to a CycleResponse DTO
func ToCycleResponse(c *domain.AssociationCycle) CycleResponse {
	return CycleResponse{
		CycleID:   c.CycleID,
		Year:      c.Year,
		Label:     cycleLabel(c.Year),
		AnnualFee: c.AnnualFee,
		DueDate:   c.DueDate,
		CreatedAt: c.CreatedAt,
	}
}

// cycleLabel renders the collection window of a cycle year. The fiscal year
// runs October through September.
func cycleLabel(year int) string {
	return time.Date(year, time.October, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006") +
		" - " +
		time.Date(year+1, time.September, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
}

// ListCyclesResponse wraps the list of cycles, newest year first.
type ListCyclesResponse struct {
	Cycles []CycleResponse `json:"cycles"`
}

// ToListCyclesResponse converts domain cycles to the list DTO
func ToListCyclesResponse(cycles []domain.AssociationCycle) ListCyclesResponse {
	res := make([]CycleResponse, len(cycles))
	for i, c := range cycles {
		res[i] = ToCycleResponse(&c)
	}
	return ListCyclesResponse{Cycles: res}
}
