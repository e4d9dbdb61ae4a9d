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

type PgxStatusRepository struct {
	BaseRepository
}

func newPgxStatusRepository(pool *pgxpool.Pool) portsrepo.StatusRepositoryFacade {
	return &PgxStatusRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.StatusRepositoryFacade = (*PgxStatusRepository)(nil)

func (r *PgxStatusRepository) findStatus(ctx context.Context, where string, arg interface{}) (*domain.Status, error) {
	query := `SELECT status_id, code, name, sort_order FROM statuses WHERE ` + where + `;`
	var m models.Status
	err := r.Pool.QueryRow(ctx, query, arg).Scan(&m.StatusID, &m.Code, &m.Name, &m.SortOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("status %v: %w", arg, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find status %v: %w", arg, err)
	}
	status := mapping.ToDomainStatus(m)
	return &status, nil
}

// FindStatusByID retrieves a status by primary key.
func (r *PgxStatusRepository) FindStatusByID(ctx context.Context, statusID string) (*domain.Status, error) {
	return r.findStatus(ctx, "status_id = $1", statusID)
}

// FindStatusByCode retrieves a status by its stable machine code.
func (r *PgxStatusRepository) FindStatusByCode(ctx context.Context, code string) (*domain.Status, error) {
	return r.findStatus(ctx, "code = $1", code)
}

// FindSubStatusByID retrieves a sub-status by primary key.
func (r *PgxStatusRepository) FindSubStatusByID(ctx context.Context, subStatusID string) (*domain.SubStatus, error) {
	query := `SELECT sub_status_id, status_id, code, name, sort_order FROM sub_statuses WHERE sub_status_id = $1;`
	var m models.SubStatus
	err := r.Pool.QueryRow(ctx, query, subStatusID).Scan(&m.SubStatusID, &m.StatusID, &m.Code, &m.Name, &m.SortOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("sub-status %s: %w", subStatusID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find sub-status %s: %w", subStatusID, err)
	}
	sub := mapping.ToDomainSubStatus(m)
	return &sub, nil
}

// ListStatuses returns all statuses ordered for display.
func (r *PgxStatusRepository) ListStatuses(ctx context.Context) ([]domain.Status, error) {
	rows, err := r.Pool.Query(ctx, `SELECT status_id, code, name, sort_order FROM statuses ORDER BY sort_order ASC;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}
	defer rows.Close()

	statuses := []domain.Status{}
	for rows.Next() {
		var m models.Status
		if err := rows.Scan(&m.StatusID, &m.Code, &m.Name, &m.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan status row: %w", err)
		}
		statuses = append(statuses, mapping.ToDomainStatus(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate status rows: %w", err)
	}
	return statuses, nil
}

// ListSubStatusesByStatusID returns the sub-statuses of a status ordered for
// display.
func (r *PgxStatusRepository) ListSubStatusesByStatusID(ctx context.Context, statusID string) ([]domain.SubStatus, error) {
	query := `SELECT sub_status_id, status_id, code, name, sort_order FROM sub_statuses WHERE status_id = $1 ORDER BY sort_order ASC;`
	rows, err := r.Pool.Query(ctx, query, statusID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sub-statuses of status %s: %w", statusID, err)
	}
	defer rows.Close()

	subs := []domain.SubStatus{}
	for rows.Next() {
		var m models.SubStatus
		if err := rows.Scan(&m.SubStatusID, &m.StatusID, &m.Code, &m.Name, &m.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan sub-status row: %w", err)
		}
		subs = append(subs, mapping.ToDomainSubStatus(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sub-status rows: %w", err)
	}
	return subs, nil
}
