package repositories

import (
	"context"

	"github.com/sidharthsanthos/PKRA/internal/core/domain"
)

// HouseListFilter narrows a house listing. Zero values mean "no filter".
type HouseListFilter struct {
	Division  *domain.Division
	OwnerName string // case-insensitive substring match
}

// HouseReader defines read operations for the house directory
type HouseReader interface {
	// FindHouseByNumber retrieves a specific house.
	FindHouseByNumber(ctx context.Context, houseNumber string) (*domain.House, error)

	// ListHouses retrieves houses matching the filter, ordered by house number.
	ListHouses(ctx context.Context, filter HouseListFilter) ([]domain.House, error)

	// CountHouses returns the number of onboarded houses.
	CountHouses(ctx context.Context) (int, error)
}

// HouseWriter defines write operations for the house directory
type HouseWriter interface {
	// SaveHouse persists a new house. Returns apperrors.ErrDuplicate when the
	// house number is already taken.
	SaveHouse(ctx context.Context, house domain.House) error

	// UpdateHouse persists owner/division/phone corrections.
	UpdateHouse(ctx context.Context, house domain.House) error
}

// HouseRepositoryFacade combines all house-related repository interfaces
type HouseRepositoryFacade interface {
	HouseReader
	HouseWriter
}
