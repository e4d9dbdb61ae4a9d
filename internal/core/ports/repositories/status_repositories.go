package repositories

import (
	"context"

	"github.com/szabol/damage_report_app/internal/core/domain"
)

// StatusReader defines read operations over the status registry. The registry
// is maintained externally; the engine never writes it.
type StatusReader interface {
	// FindStatusByID retrieves a status by primary key.
	FindStatusByID(ctx context.Context, statusID string) (*domain.Status, error)

	// FindStatusByCode retrieves a status by its stable machine code.
	FindStatusByCode(ctx context.Context, code string) (*domain.Status, error)

	// FindSubStatusByID retrieves a sub-status by primary key.
	FindSubStatusByID(ctx context.Context, subStatusID string) (*domain.SubStatus, error)

	// ListStatuses returns all statuses ordered by sort order.
	ListStatuses(ctx context.Context) ([]domain.Status, error)

	// ListSubStatusesByStatusID returns the sub-statuses of a status ordered
	// by sort order.
	ListSubStatusesByStatusID(ctx context.Context, statusID string) ([]domain.SubStatus, error)
}

// StatusRepositoryFacade combines all status registry interfaces.
type StatusRepositoryFacade interface {
	StatusReader
}
