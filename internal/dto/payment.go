package dto

import (
	"time"

	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest defines the data needed to append a payment to the
// ledger. The cycle comes from the URL; it is never implicit engine state.
type RecordPaymentRequest struct {
	HouseNumber   string             `json:"houseNumber" binding:"required"`
	Amount        decimal.Decimal    `json:"amount" binding:"required"`
	Mode          domain.PaymentMode `json:"mode" binding:"required,oneof=CASH UPI"`
	ReceiptNumber *string            `json:"receiptNumber"`
	Notes         string             `json:"notes"`
}

// PaymentResponse defines the data returned for a ledger entry.
type PaymentResponse struct {
	PaymentID     string             `json:"paymentID"`
	HouseNumber   string             `json:"houseNumber"`
	CycleID       string             `json:"cycleID"`
	Amount        decimal.Decimal    `json:"amount"`
	Mode          domain.PaymentMode `json:"mode"`
	ReceiptNumber *string            `json:"receiptNumber,omitempty"`
	Notes         string             `json:"notes"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
}

// ToPaymentResponse converts a domain PaymentRecord to a PaymentResponse DTO
func ToPaymentResponse(p *domain.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		HouseNumber:   p.HouseNumber,
		CycleID:       p.CycleID,
		Amount:        p.Amount,
		Mode:          p.Mode,
		ReceiptNumber: p.ReceiptNumber,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
	}
}

// ToPaymentResponses converts a slice of domain records to DTOs
func ToPaymentResponses(payments []domain.PaymentRecord) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = ToPaymentResponse(&p)
	}
	return res
}

// ListPaymentsParams defines query parameters for ledger listings.
type ListPaymentsParams struct {
	Mode      string  `form:"mode" binding:"omitempty,oneof=CASH UPI"`
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListPaymentsResponse wraps a page of ledger entries.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// HouseStatusResponse is the paid/pending/status view for one house in a
// cycle, as shown on the payment portal screen.
type HouseStatusResponse struct {
	HouseNumber   string               `json:"houseNumber"`
	CycleID       string               `json:"cycleID"`
	AnnualFee     decimal.Decimal      `json:"annualFee"`
	PaidAmount    decimal.Decimal      `json:"paidAmount"`
	PendingAmount decimal.Decimal      `json:"pendingAmount"`
	Status        domain.PaymentStatus `json:"status"`
}

// RecordPaymentResponse returns the appended record together with the updated
// aggregate, so the client can refresh totals without a second round trip.
type RecordPaymentResponse struct {
	Payment PaymentResponse `json:"payment"`
	Status  StatusResponse  `json:"status"`
}

// StatusResponse defines the data returned for a materialized status row.
type StatusResponse struct {
	HouseNumber string               `json:"houseNumber"`
	CycleID     string               `json:"cycleID"`
	PaidAmount  decimal.Decimal      `json:"paidAmount"`
	Status      domain.PaymentStatus `json:"status"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// ToStatusResponse converts a domain HousePaymentStatus to a StatusResponse DTO
func ToStatusResponse(s *domain.HousePaymentStatus) StatusResponse {
	return StatusResponse{
		HouseNumber: s.HouseNumber,
		CycleID:     s.CycleID,
		PaidAmount:  s.PaidAmount,
		Status:      s.Status,
		UpdatedAt:   s.LastUpdatedAt,
	}
}
