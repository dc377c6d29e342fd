package domain

// Division is the fixed residential division a house belongs to.
type Division string

const (
	DivisionA Division = "A"
	DivisionB Division = "B"
	DivisionC Division = "C"
	DivisionD Division = "D"
	DivisionE Division = "E"
)

// Divisions lists every valid division, in display order.
var Divisions = []Division{DivisionA, DivisionB, DivisionC, DivisionD, DivisionE}

// IsValid reports whether d is one of the known divisions.
func (d Division) IsValid() bool {
	for _, v := range Divisions {
		if d == v {
			return true
		}
	}
	return false
}

// House is a member household, identified by its house number.
type House struct {
	HouseNumber string   `json:"houseNumber"` // Primary key, unique within the association
	OwnerName   string   `json:"ownerName"`
	Division    Division `json:"division"`
	Phone       *string  `json:"phone,omitempty"` // Nullable
	AuditFields
}
