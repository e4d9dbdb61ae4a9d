package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/szabol/damage_report_app/internal/apperrors"
	"github.com/szabol/damage_report_app/internal/core/domain"
	portsrepo "github.com/szabol/damage_report_app/internal/core/ports/repositories"
	"github.com/szabol/damage_report_app/internal/models"
	"github.com/szabol/damage_report_app/internal/utils/mapping"
	"github.com/szabol/damage_report_app/internal/utils/pagination"
)

type PgxReportRepository struct {
	BaseRepository
}

func newPgxReportRepository(pool *pgxpool.Pool) portsrepo.ReportRepositoryFacade {
	return &PgxReportRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportRepositoryFacade = (*PgxReportRepository)(nil)

const reportColumns = `
	report_id, public_identifier, status_id, sub_status_id, description, damage_id,
	claimant_type, claimant_name, claimant_email, claimant_phone, claimant_account_number,
	building_id, notifier_id, duplicate_report_id,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanReport(row pgx.Row) (*models.Report, error) {
	var m models.Report
	err := row.Scan(
		&m.ReportID, &m.PublicIdentifier, &m.StatusID, &m.SubStatusID, &m.Description, &m.DamageID,
		&m.ClaimantType, &m.ClaimantName, &m.ClaimantEmail, &m.ClaimantPhone, &m.ClaimantAccountNumber,
		&m.BuildingID, &m.NotifierID, &m.DuplicateReportID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveReport inserts the report row and its initial history entry in one
// transaction.
func (r *PgxReportRepository) SaveReport(ctx context.Context, report domain.Report, initial domain.StatusHistoryEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelReport(report)
	reportQuery := `
		INSERT INTO reports (` + reportColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err = tx.Exec(ctx, reportQuery,
		m.ReportID, m.PublicIdentifier, m.StatusID, m.SubStatusID, m.Description, m.DamageID,
		m.ClaimantType, m.ClaimantName, m.ClaimantEmail, m.ClaimantPhone, m.ClaimantAccountNumber,
		m.BuildingID, m.NotifierID, m.DuplicateReportID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert report %s: %w", m.ReportID, err)
	}

	if err := insertHistoryEntry(ctx, tx, initial); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func insertHistoryEntry(ctx context.Context, tx pgx.Tx, entry domain.StatusHistoryEntry) error {
	query := `
		INSERT INTO report_status_histories (history_id, report_id, status_id, sub_status_id, user_id, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, query,
		entry.HistoryID, entry.ReportID, entry.StatusID, entry.SubStatusID, entry.UserID, entry.Comment, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert status history entry for report %s: %w", entry.ReportID, err)
	}
	return nil
}

// PersistStatusChange applies a transition atomically: one history row, the
// report's status columns, any rule side-effect columns and the closing
// payment rows all commit together or not at all.
func (r *PgxReportRepository) PersistStatusChange(ctx context.Context, reportID string, change portsrepo.TransitionChange) (*domain.Report, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	now := time.Now()
	entry := domain.StatusHistoryEntry{
		HistoryID:   uuid.NewString(),
		ReportID:    reportID,
		StatusID:    change.StatusID,
		SubStatusID: change.SubStatusID,
		UserID:      change.ActorID,
		Comment:     change.Comment,
		CreatedAt:   now,
	}
	if err := insertHistoryEntry(ctx, tx, entry); err != nil {
		return nil, err
	}

	updateQuery := `
		UPDATE reports SET
			status_id = $2,
			sub_status_id = $3,
			damage_id = COALESCE($4, damage_id),
			duplicate_report_id = COALESCE($5, duplicate_report_id),
			last_updated_at = $6,
			last_updated_by = $7
		WHERE report_id = $1;
	`
	tag, err := tx.Exec(ctx, updateQuery,
		reportID, change.StatusID, change.SubStatusID, change.DamageID, change.DuplicateReportID, now, change.ActorID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update report %s: %w", reportID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("report %s: %w", reportID, apperrors.ErrNotFound)
	}

	if len(change.Payments) > 0 {
		batch := &pgx.Batch{}
		paymentQuery := `
			INSERT INTO closing_payments (payment_id, report_id, recipient, amount, currency_code, payment_date, payment_time, created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
		`
		for _, payment := range change.Payments {
			p := mapping.ToModelClosingPayment(payment)
			batch.Queue(paymentQuery,
				p.PaymentID, p.ReportID, p.Recipient, p.Amount, p.CurrencyCode, p.PaymentDate, p.PaymentTime,
				p.CreatedAt, p.CreatedBy, p.LastUpdatedAt, p.LastUpdatedBy,
			)
		}
		br := tx.SendBatch(ctx, batch)
		for range change.Payments {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return nil, fmt.Errorf("failed to insert closing payment for report %s: %w", reportID, err)
			}
		}
		if err := br.Close(); err != nil {
			return nil, fmt.Errorf("failed to close payment batch for report %s: %w", reportID, err)
		}
	}

	m, err := scanReport(tx.QueryRow(ctx, `SELECT `+reportColumns+` FROM reports WHERE report_id = $1;`, reportID))
	if err != nil {
		return nil, fmt.Errorf("failed to reload report %s: %w", reportID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	report := mapping.ToDomainReport(*m)
	return &report, nil
}

// UpdateDamageID sets the insurer-assigned damage identifier.
func (r *PgxReportRepository) UpdateDamageID(ctx context.Context, reportID string, damageID string, actorID string) (*domain.Report, error) {
	query := `
		UPDATE reports SET damage_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE report_id = $1
		RETURNING ` + reportColumns + `;
	`
	m, err := scanReport(r.Pool.QueryRow(ctx, query, reportID, damageID, time.Now(), actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("report %s: %w", reportID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update damage id of report %s: %w", reportID, err)
	}
	report := mapping.ToDomainReport(*m)
	return &report, nil
}

// FindReportByID retrieves a report by primary key.
func (r *PgxReportRepository) FindReportByID(ctx context.Context, reportID string) (*domain.Report, error) {
	m, err := scanReport(r.Pool.QueryRow(ctx, `SELECT `+reportColumns+` FROM reports WHERE report_id = $1;`, reportID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("report %s: %w", reportID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find report %s: %w", reportID, err)
	}
	report := mapping.ToDomainReport(*m)
	return &report, nil
}

// FindReportByPublicIdentifier retrieves a report by its human-facing identifier.
func (r *PgxReportRepository) FindReportByPublicIdentifier(ctx context.Context, publicIdentifier string) (*domain.Report, error) {
	m, err := scanReport(r.Pool.QueryRow(ctx, `SELECT `+reportColumns+` FROM reports WHERE public_identifier = $1;`, publicIdentifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("report %s: %w", publicIdentifier, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find report %s: %w", publicIdentifier, err)
	}
	report := mapping.ToDomainReport(*m)
	return &report, nil
}

// ListReports retrieves a page of reports, newest first, with token-based
// keyset pagination over (created_at, report_id).
func (r *PgxReportRepository) ListReports(ctx context.Context, limit int, nextToken *string) ([]domain.Report, *string, error) {
	query := `SELECT ` + reportColumns + ` FROM reports`
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid pagination token: %w", apperrors.ErrValidation)
		}
		query += ` WHERE (created_at, report_id) < ($1, $2)`
		args = append(args, lastCreatedAt, lastID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, report_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	reports := make([]domain.Report, 0, limit)
	for rows.Next() {
		m, err := scanReport(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, mapping.ToDomainReport(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate report rows: %w", err)
	}

	var token *string
	if len(reports) > limit {
		reports = reports[:limit]
		last := reports[len(reports)-1]
		t := pagination.EncodeToken(last.CreatedAt, last.ReportID)
		token = &t
	}
	return reports, token, nil
}

const historyColumns = `history_id, report_id, status_id, sub_status_id, user_id, comment, created_at`

func scanHistoryEntry(row pgx.Row) (*models.StatusHistoryEntry, error) {
	var m models.StatusHistoryEntry
	err := row.Scan(&m.HistoryID, &m.ReportID, &m.StatusID, &m.SubStatusID, &m.UserID, &m.Comment, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindLatestHistoryEntry returns the newest history row of a report. The
// report's current history record is always derived this way, there is no
// stored pointer to go stale.
func (r *PgxReportRepository) FindLatestHistoryEntry(ctx context.Context, reportID string) (*domain.StatusHistoryEntry, error) {
	query := `
		SELECT ` + historyColumns + ` FROM report_status_histories
		WHERE report_id = $1
		ORDER BY created_at DESC, history_id DESC
		LIMIT 1;
	`
	m, err := scanHistoryEntry(r.Pool.QueryRow(ctx, query, reportID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("history of report %s: %w", reportID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find latest history entry of report %s: %w", reportID, err)
	}
	entry := mapping.ToDomainHistoryEntry(*m)
	return &entry, nil
}

// FindHistoryByReportID returns the full status history, oldest first.
func (r *PgxReportRepository) FindHistoryByReportID(ctx context.Context, reportID string) ([]domain.StatusHistoryEntry, error) {
	query := `
		SELECT ` + historyColumns + ` FROM report_status_histories
		WHERE report_id = $1
		ORDER BY created_at ASC, history_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to list history of report %s: %w", reportID, err)
	}
	defer rows.Close()

	entries := []models.StatusHistoryEntry{}
	for rows.Next() {
		m, err := scanHistoryEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history rows: %w", err)
	}
	return mapping.ToDomainHistoryEntrySlice(entries), nil
}

// FindClosingPaymentsByReportID returns all closing payments of a report.
func (r *PgxReportRepository) FindClosingPaymentsByReportID(ctx context.Context, reportID string) ([]domain.ClosingPayment, error) {
	query := `
		SELECT payment_id, report_id, recipient, amount, currency_code, payment_date, payment_time,
			created_at, created_by, last_updated_at, last_updated_by
		FROM closing_payments
		WHERE report_id = $1
		ORDER BY created_at ASC, payment_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to list closing payments of report %s: %w", reportID, err)
	}
	defer rows.Close()

	payments := []models.ClosingPayment{}
	for rows.Next() {
		var m models.ClosingPayment
		err := rows.Scan(
			&m.PaymentID, &m.ReportID, &m.Recipient, &m.Amount, &m.CurrencyCode, &m.PaymentDate, &m.PaymentTime,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan closing payment row: %w", err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate closing payment rows: %w", err)
	}
	return mapping.ToDomainClosingPaymentSlice(payments), nil
}
