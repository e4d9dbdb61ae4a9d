package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/szabol/damage_report_app/internal/apperrors"
	"github.com/szabol/damage_report_app/internal/core/domain"
	portsrepo "github.com/szabol/damage_report_app/internal/core/ports/repositories"
	"github.com/szabol/damage_report_app/internal/models"
	"github.com/szabol/damage_report_app/internal/utils/mapping"
)

type PgxBuildingRepository struct {
	BaseRepository
}

func newPgxBuildingRepository(pool *pgxpool.Pool) portsrepo.BuildingRepositoryFacade {
	return &PgxBuildingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BuildingRepositoryFacade = (*PgxBuildingRepository)(nil)

// FindBuildingByID retrieves a building by primary key.
func (r *PgxBuildingRepository) FindBuildingByID(ctx context.Context, buildingID string) (*domain.Building, error) {
	query := `
		SELECT building_id, name, address, created_at, created_by, last_updated_at, last_updated_by
		FROM buildings WHERE building_id = $1;
	`
	var m models.Building
	err := r.Pool.QueryRow(ctx, query, buildingID).Scan(
		&m.BuildingID, &m.Name, &m.Address,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("building %s: %w", buildingID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find building %s: %w", buildingID, err)
	}
	return &domain.Building{
		BuildingID:  m.BuildingID,
		Name:        m.Name,
		Address:     m.Address,
		AuditFields: mapping.ToDomainAuditFields(m.AuditFields),
	}, nil
}

// FindCurrentCustomer resolves the customer currently managing the building
// from the management history. The current row is the one whose validity
// window contains now; with overlapping windows the latest valid_from wins.
func (r *PgxBuildingRepository) FindCurrentCustomer(ctx context.Context, buildingID string) (*domain.BuildingCustomer, error) {
	query := `
		SELECT customer_id, building_id, name, email, manager_id, valid_from, valid_to
		FROM building_customers
		WHERE building_id = $1
			AND valid_from <= now()
			AND (valid_to IS NULL OR valid_to > now())
		ORDER BY valid_from DESC
		LIMIT 1;
	`
	var m models.BuildingCustomer
	err := r.Pool.QueryRow(ctx, query, buildingID).Scan(
		&m.CustomerID, &m.BuildingID, &m.Name, &m.Email, &m.ManagerID, &m.ValidFrom, &m.ValidTo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("current customer of building %s: %w", buildingID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find current customer of building %s: %w", buildingID, err)
	}
	customer := mapping.ToDomainBuildingCustomer(m)
	return &customer, nil
}
