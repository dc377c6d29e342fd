package domain

import "github.com/shopspring/decimal"

// CycleSummary is the cross-cutting view of one cycle's collections,
// recomputed from the ledger on every call.
type CycleSummary struct {
	CycleID       string                       `json:"cycleID"`
	AnnualFee     decimal.Decimal              `json:"annualFee"`
	HouseCount    int                          `json:"houseCount"`
	TotalReceived decimal.Decimal              `json:"totalReceived"`
	TotalPending  decimal.Decimal              `json:"totalPending"`
	TotalSpent    decimal.Decimal              `json:"totalSpent"`
	CashOnHand    decimal.Decimal              `json:"cashOnHand"`
	ByMode        map[PaymentMode]decimal.Decimal `json:"byMode"`
	ByDivision    map[Division]decimal.Decimal    `json:"byDivision"`
}

// StatusWithHouse joins a house's directory entry with its payment status for
// one cycle, for the pending/division listing views.
type StatusWithHouse struct {
	House  House              `json:"house"`
	Status HousePaymentStatus `json:"status"`
}
