package models

import "time"

// Building is the database row for an insured building.
type Building struct {
	BuildingID string `json:"buildingID"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	AuditFields
}

// BuildingCustomer is the database row linking a building to a managing
// customer for a validity window.
type BuildingCustomer struct {
	CustomerID string     `json:"customerID"`
	BuildingID string     `json:"buildingID"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	ManagerID  *string    `json:"managerID"`
	ValidFrom  time.Time  `json:"validFrom"`
	ValidTo    *time.Time `json:"validTo"`
}
