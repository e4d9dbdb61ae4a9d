package repositories

import (
	"context"

	"github.com/szabol/damage_report_app/internal/core/domain"
)

// TransitionChange bundles everything a committed transition writes: the new
// status pair, the history entry fields and the rule-specific side effects.
// The repository applies all of it in a single database transaction; a
// failure at any step leaves no visible change.
type TransitionChange struct {
	StatusID    string
	SubStatusID *string
	ActorID     string
	Comment     *string

	// Optional side effects, set by individual transition rules.
	Payments          []domain.ClosingPayment
	DuplicateReportID *string
	DamageID          *string
}

// ReportReader defines read operations for report data.
type ReportReader interface {
	// FindReportByID retrieves a report by its primary key.
	FindReportByID(ctx context.Context, reportID string) (*domain.Report, error)

	// FindReportByPublicIdentifier retrieves a report by its human-facing identifier.
	FindReportByPublicIdentifier(ctx context.Context, publicIdentifier string) (*domain.Report, error)

	// ListReports retrieves a token-paginated list of reports, newest first.
	ListReports(ctx context.Context, limit int, nextToken *string) ([]domain.Report, *string, error)

	// FindLatestHistoryEntry returns the most recent status history entry for
	// a report. This is the report's "current" history record.
	FindLatestHistoryEntry(ctx context.Context, reportID string) (*domain.StatusHistoryEntry, error)

	// FindHistoryByReportID returns the full status history, oldest first.
	FindHistoryByReportID(ctx context.Context, reportID string) ([]domain.StatusHistoryEntry, error)

	// FindClosingPaymentsByReportID returns all closing payments of a report.
	FindClosingPaymentsByReportID(ctx context.Context, reportID string) ([]domain.ClosingPayment, error)
}

// ReportWriter defines write operations for report data.
type ReportWriter interface {
	// SaveReport persists a new report together with its initial status
	// history entry in one transaction.
	SaveReport(ctx context.Context, report domain.Report, initial domain.StatusHistoryEntry) error

	// PersistStatusChange applies a transition atomically: appends a status
	// history entry, updates the report's status/sub-status and any
	// side-effect columns, and inserts side-effect rows. Returns the
	// refreshed report.
	PersistStatusChange(ctx context.Context, reportID string, change TransitionChange) (*domain.Report, error)

	// UpdateDamageID sets the insurer-assigned damage identifier.
	UpdateDamageID(ctx context.Context, reportID string, damageID string, actorID string) (*domain.Report, error)
}

// ReportRepositoryFacade combines all report-related repository interfaces.
type ReportRepositoryFacade interface {
	ReportReader
	ReportWriter
}
