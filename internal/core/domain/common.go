package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// The operator identity is a free-form string supplied by the client shell.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
