package mapping

import (
	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	"github.com/sidharthsanthos/PKRA/internal/models"
)

// ToModelPayment converts a domain PaymentRecord to a model Payment
func ToModelPayment(d domain.PaymentRecord) models.Payment {
	return models.Payment{
		PaymentID:     d.PaymentID,
		HouseNumber:   d.HouseNumber,
		CycleID:       d.CycleID,
		Amount:        d.Amount,
		Mode:          string(d.Mode),
		ReceiptNumber: d.ReceiptNumber,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
	}
}

// ToDomainPayment converts a model Payment to a domain PaymentRecord
func ToDomainPayment(m models.Payment) domain.PaymentRecord {
	return domain.PaymentRecord{
		PaymentID:     m.PaymentID,
		HouseNumber:   m.HouseNumber,
		CycleID:       m.CycleID,
		Amount:        m.Amount,
		Mode:          domain.PaymentMode(m.Mode),
		ReceiptNumber: m.ReceiptNumber,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}

// ToDomainPaymentSlice converts a slice of model payments to domain records
func ToDomainPaymentSlice(ms []models.Payment) []domain.PaymentRecord {
	ds := make([]domain.PaymentRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}

// ToDomainStatus converts a model HousePaymentStatus to its domain form
func ToDomainStatus(m models.HousePaymentStatus) domain.HousePaymentStatus {
	return domain.HousePaymentStatus{
		HouseNumber: m.HouseNumber,
		CycleID:     m.CycleID,
		PaidAmount:  m.PaidAmount,
		Status:      domain.PaymentStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}
