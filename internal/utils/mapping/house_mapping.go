package mapping

import (
	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	"github.com/sidharthsanthos/PKRA/internal/models"
)

// ToModelHouse converts a domain House to a model House
func ToModelHouse(d domain.House) models.House {
	return models.House{
		HouseNumber:   d.HouseNumber,
		OwnerName:     d.OwnerName,
		Division:      string(d.Division),
		Phone:         d.Phone,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// ToDomainHouse converts a model House to a domain House
func ToDomainHouse(m models.House) domain.House {
	return domain.House{
		HouseNumber: m.HouseNumber,
		OwnerName:   m.OwnerName,
		Division:    domain.Division(m.Division),
		Phone:       m.Phone,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToDomainHouseSlice converts a slice of model houses to domain houses
func ToDomainHouseSlice(ms []models.House) []domain.House {
	ds := make([]domain.House, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainHouse(m)
	}
	return ds
}
