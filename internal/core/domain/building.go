package domain

import "time"

// Building is the insured property a report refers to.
type Building struct {
	BuildingID string `json:"buildingID"` // Primary Key (e.g., UUID)
	Name       string `json:"name"`
	Address    string `json:"address"`
	AuditFields
}

// BuildingCustomer links a building to the customer managing it for a period.
// The current customer is the row whose validity window contains "now"; the
// repository resolves it, callers never walk the management history themselves.
type BuildingCustomer struct {
	CustomerID string     `json:"customerID"` // Primary Key (e.g., UUID)
	BuildingID string     `json:"buildingID"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	ManagerID  *string    `json:"managerID,omitempty"` // User responsible for the customer
	ValidFrom  time.Time  `json:"validFrom"`
	ValidTo    *time.Time `json:"validTo,omitempty"`
}
