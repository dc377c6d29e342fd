package mapping

import (
	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	"github.com/sidharthsanthos/PKRA/internal/models"
)

// ToModelCycle converts a domain AssociationCycle to a model AssociationCycle
func ToModelCycle(d domain.AssociationCycle) models.AssociationCycle {
	return models.AssociationCycle{
		CycleID:       d.CycleID,
		Year:          d.Year,
		AnnualFee:     d.AnnualFee,
		DueDate:       d.DueDate,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// ToDomainCycle converts a model AssociationCycle to a domain AssociationCycle
func ToDomainCycle(m models.AssociationCycle) domain.AssociationCycle {
	return domain.AssociationCycle{
		CycleID:   m.CycleID,
		Year:      m.Year,
		AnnualFee: m.AnnualFee,
		DueDate:   m.DueDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToDomainCycleSlice converts a slice of model cycles to domain cycles
func ToDomainCycleSlice(ms []models.AssociationCycle) []domain.AssociationCycle {
	ds := make([]domain.AssociationCycle, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCycle(m)
	}
	return ds
}
