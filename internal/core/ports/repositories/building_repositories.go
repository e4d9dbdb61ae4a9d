package repositories

import (
	"context"

	"github.com/szabol/damage_report_app/internal/core/domain"
)

// BuildingReader defines read operations for building data.
type BuildingReader interface {
	// FindBuildingByID retrieves a building by primary key.
	FindBuildingByID(ctx context.Context, buildingID string) (*domain.Building, error)

	// FindCurrentCustomer returns the customer currently managing the
	// building, derived from the management history's validity windows.
	// Returns ErrNotFound when the building has no current customer.
	FindCurrentCustomer(ctx context.Context, buildingID string) (*domain.BuildingCustomer, error)
}

// BuildingRepositoryFacade combines all building-related repository interfaces.
type BuildingRepositoryFacade interface {
	BuildingReader
}
