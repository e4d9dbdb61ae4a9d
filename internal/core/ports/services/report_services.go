package services

import (
	"context"

	"github.com/szabol/damage_report_app/internal/core/domain"
	"github.com/szabol/damage_report_app/internal/dto"
)

// ReportReaderSvc defines read operations for report data.
type ReportReaderSvc interface {
	// GetReportByID retrieves a report by ID.
	GetReportByID(ctx context.Context, reportID string) (*domain.Report, error)

	// ListReports retrieves a token-paginated list of reports.
	ListReports(ctx context.Context, params dto.ListReportsParams) (*dto.ListReportsResponse, error)

	// ListHistory returns a report's full status history, oldest first.
	ListHistory(ctx context.Context, reportID string) ([]domain.StatusHistoryEntry, error)

	// ListClosingPayments returns a report's closing payments.
	ListClosingPayments(ctx context.Context, reportID string) ([]domain.ClosingPayment, error)
}

// ReportWriterSvc defines write operations for report data.
type ReportWriterSvc interface {
	// CreateReport registers a new damage report in the initial status and
	// dispatches the report-created notification event.
	CreateReport(ctx context.Context, req dto.CreateReportRequest, creatorUserID string) (*domain.Report, error)

	// UpdateDamageID sets the insurer-assigned damage identifier and
	// dispatches the damage-id-updated notification event.
	UpdateDamageID(ctx context.Context, reportID string, req dto.UpdateDamageIDRequest, actorID string) (*domain.Report, error)
}

// ReportSvcFacade combines all report-related service interfaces.
type ReportSvcFacade interface {
	ReportReaderSvc
	ReportWriterSvc
}

// StatusSvcFacade exposes the read-only status registry.
type StatusSvcFacade interface {
	// ListStatuses returns every status with its sub-statuses, ordered for display.
	ListStatuses(ctx context.Context) ([]dto.StatusResponse, error)
}
