package services

import (
	"context"

	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	"github.com/sidharthsanthos/PKRA/internal/dto"
)

// HouseReaderSvc defines read operations for the house directory
type HouseReaderSvc interface {
	// GetHouseByNumber retrieves a specific house.
	GetHouseByNumber(ctx context.Context, houseNumber string) (*domain.House, error)

	// ListHouses retrieves houses, optionally filtered by division and owner
	// name substring.
	ListHouses(ctx context.Context, params dto.ListHousesParams) ([]domain.House, error)
}

// HouseWriterSvc defines write operations for the house directory
type HouseWriterSvc interface {
	// CreateHouse onboards a new house.
	CreateHouse(ctx context.Context, req dto.CreateHouseRequest, creatorUserID string) (*domain.House, error)

	// UpdateHouse corrects a house's owner, division or phone.
	UpdateHouse(ctx context.Context, houseNumber string, req dto.UpdateHouseRequest, updaterUserID string) (*domain.House, error)
}

// HouseSvcFacade combines all house-related service interfaces
type HouseSvcFacade interface {
	HouseReaderSvc
	HouseWriterSvc
}
