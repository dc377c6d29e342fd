package dto

import (
	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CycleSummaryResponse is the dashboard payload for one cycle.
type CycleSummaryResponse struct {
	CycleID       string                     `json:"cycleID"`
	AnnualFee     decimal.Decimal            `json:"annualFee"`
	HouseCount    int                        `json:"houseCount"`
	TotalReceived decimal.Decimal            `json:"totalReceived"`
	TotalPending  decimal.Decimal            `json:"totalPending"`
	TotalSpent    decimal.Decimal            `json:"totalSpent"`
	CashOnHand    decimal.Decimal            `json:"cashOnHand"`
	ByMode        map[string]decimal.Decimal `json:"byMode"`
	ByDivision    map[string]decimal.Decimal `json:"byDivision"`
}

// ToCycleSummaryResponse converts a domain CycleSummary to its DTO
func ToCycleSummaryResponse(s *domain.CycleSummary) CycleSummaryResponse {
	byMode := make(map[string]decimal.Decimal, len(s.ByMode))
	for mode, total := range s.ByMode {
		byMode[string(mode)] = total
	}
	byDivision := make(map[string]decimal.Decimal, len(s.ByDivision))
	for division, total := range s.ByDivision {
		byDivision[string(division)] = total
	}
	return CycleSummaryResponse{
		CycleID:       s.CycleID,
		AnnualFee:     s.AnnualFee,
		HouseCount:    s.HouseCount,
		TotalReceived: s.TotalReceived,
		TotalPending:  s.TotalPending,
		TotalSpent:    s.TotalSpent,
		CashOnHand:    s.CashOnHand,
		ByMode:        byMode,
		ByDivision:    byDivision,
	}
}

// ListStatusesParams filters a cycle's status listing.
type ListStatusesParams struct {
	Status string `form:"status" binding:"omitempty,oneof=PENDING PARTIAL COMPLETED"`
}

// StatusWithHouseResponse pairs a house with its status for listing views.
type StatusWithHouseResponse struct {
	House  HouseResponse  `json:"house"`
	Status StatusResponse `json:"status"`
}

// ListStatusesResponse wraps a cycle's status listing.
type ListStatusesResponse struct {
	Statuses []StatusWithHouseResponse `json:"statuses"`
}

// ToListStatusesResponse converts joined status rows to the list DTO
func ToListStatusesResponse(rows []domain.StatusWithHouse) ListStatusesResponse {
	res := make([]StatusWithHouseResponse, len(rows))
	for i, row := range rows {
		res[i] = StatusWithHouseResponse{
			House:  ToHouseResponse(&row.House),
			Status: ToStatusResponse(&row.Status),
		}
	}
	return ListStatusesResponse{Statuses: res}
}

// ReconcileResponse reports the outcome of a repair pass.
type ReconcileResponse struct {
	Status StatusResponse `json:"status"`
}

// SweepResponse reports the outcome of a full-cycle drift sweep.
type SweepResponse struct {
	CycleID       string `json:"cycleID"`
	RepairedCount int    `json:"repairedCount"`
}
