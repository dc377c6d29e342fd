package models

import "time"

// House mirrors the houses table.
type House struct {
	HouseNumber   string
	OwnerName     string
	Division      string
	Phone         *string
	CreatedAt     time.Time
	CreatedBy     string
	LastUpdatedAt time.Time
	LastUpdatedBy string
}
