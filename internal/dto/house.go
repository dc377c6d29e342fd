package dto

import (
	"time"

	"github.com/sidharthsanthos/PKRA/internal/core/domain"
)

// CreateHouseRequest defines the data needed to onboard a house.
type CreateHouseRequest struct {
	HouseNumber string          `json:"houseNumber" binding:"required"`
	OwnerName   string          `json:"ownerName" binding:"required"`
	Division    domain.Division `json:"division" binding:"required,division"`
	Phone       *string         `json:"phone"`
}

// UpdateHouseRequest defines the updatable fields of a house. Nil fields are
// left unchanged.
type UpdateHouseRequest struct {
	OwnerName *string          `json:"ownerName"`
	Division  *domain.Division `json:"division" binding:"omitempty,division"`
	Phone     *string          `json:"phone"`
}

// ListHousesParams defines query parameters for listing/searching houses.
type ListHousesParams struct {
	Division string `form:"division" binding:"omitempty,division"`
	Name     string `form:"name"` // owner name substring, case-insensitive
}

// HouseResponse defines the data returned for a house.
type HouseResponse struct {
	HouseNumber string          `json:"houseNumber"`
	OwnerName   string          `json:"ownerName"`
	Division    domain.Division `json:"division"`
	Phone       *string         `json:"phone,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToHouseResponse converts a domain House to a HouseResponse DTO
func ToHouseResponse(h *domain.House) HouseResponse {
	return HouseResponse{
		HouseNumber: h.HouseNumber,
		OwnerName:   h.OwnerName,
		Division:    h.Division,
		Phone:       h.Phone,
		CreatedAt:   h.CreatedAt,
	}
}

// ListHousesResponse wraps the list of houses.
type ListHousesResponse struct {
	Houses []HouseResponse `json:"houses"`
}

// ToListHousesResponse converts domain houses to the list DTO
func ToListHousesResponse(houses []domain.House) ListHousesResponse {
	res := make([]HouseResponse, len(houses))
	for i, h := range houses {
		res[i] = ToHouseResponse(&h)
	}
	return ListHousesResponse{Houses: res}
}
