package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/szabol/damage_report_app/internal/core/domain"
	portsrepo "github.com/szabol/damage_report_app/internal/core/ports/repositories"
	portssvc "github.com/szabol/damage_report_app/internal/core/ports/services"
	"github.com/szabol/damage_report_app/internal/dto"
	"github.com/szabol/damage_report_app/internal/middleware"
	"github.com/szabol/damage_report_app/internal/utils"
)

const defaultReportPageSize = 20
const maxReportPageSize = 100

var _ portssvc.ReportSvcFacade = (*reportService)(nil)

type reportService struct {
	reportRepo      portsrepo.ReportRepositoryFacade
	statusRepo      portsrepo.StatusRepositoryFacade
	notificationSvc portssvc.NotificationDispatchSvc
}

// NewReportService creates the report service.
func NewReportService(
	reportRepo portsrepo.ReportRepositoryFacade,
	statusRepo portsrepo.StatusRepositoryFacade,
	notificationSvc portssvc.NotificationDispatchSvc,
) portssvc.ReportSvcFacade {
	return &reportService{
		reportRepo:      reportRepo,
		statusRepo:      statusRepo,
		notificationSvc: notificationSvc,
	}
}

// CreateReport registers a new damage report in the initial status, writes
// the first history entry in the same transaction and dispatches the
// report-created event.
func (s *reportService) CreateReport(ctx context.Context, req dto.CreateReportRequest, creatorUserID string) (*domain.Report, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	initialStatus, err := s.statusRepo.FindStatusByCode(ctx, domain.StatusCodeNew)
	if err != nil {
		return nil, fmt.Errorf("failed to load initial status: %w", err)
	}

	now := time.Now()
	publicIdentifier, err := utils.GeneratePublicIdentifier(now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate public identifier: %w", err)
	}

	report := domain.Report{
		ReportID:         uuid.NewString(),
		PublicIdentifier: publicIdentifier,
		StatusID:         initialStatus.StatusID,
		Description:      req.Description,
		Claimant: domain.Claimant{
			Type:          domain.ClaimantType(req.ClaimantType),
			Name:          req.ClaimantName,
			Email:         strings.TrimSpace(req.ClaimantEmail),
			Phone:         req.ClaimantPhone,
			AccountNumber: req.ClaimantAccountNumber,
		},
		BuildingID: req.BuildingID,
		NotifierID: req.NotifierID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	initial := domain.StatusHistoryEntry{
		HistoryID: uuid.NewString(),
		ReportID:  report.ReportID,
		StatusID:  initialStatus.StatusID,
		UserID:    creatorUserID,
		CreatedAt: now,
	}

	if err := s.reportRepo.SaveReport(ctx, report, initial); err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}
	logger.Info("Report created", "report_id", report.ReportID, "public_identifier", report.PublicIdentifier)

	dispatchCtx := portssvc.DispatchContext{StatusID: &initialStatus.StatusID}
	if err := s.notificationSvc.Dispatch(ctx, domain.EventReportCreated, report.ReportID, dispatchCtx); err != nil {
		return &report, fmt.Errorf("report created but notification dispatch failed: %w", err)
	}
	return &report, nil
}

// UpdateDamageID records the insurer-assigned damage identifier and
// dispatches the damage-id-updated event. The status is left untouched.
func (s *reportService) UpdateDamageID(ctx context.Context, reportID string, req dto.UpdateDamageIDRequest, actorID string) (*domain.Report, error) {
	updated, err := s.reportRepo.UpdateDamageID(ctx, reportID, req.DamageID, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to update damage identifier of report %s: %w", reportID, err)
	}

	dispatchCtx := portssvc.DispatchContext{StatusID: &updated.StatusID, SubStatusID: updated.SubStatusID}
	if err := s.notificationSvc.Dispatch(ctx, domain.EventDamageIDUpdate, reportID, dispatchCtx); err != nil {
		return updated, fmt.Errorf("damage identifier updated but notification dispatch failed: %w", err)
	}
	return updated, nil
}

// GetReportByID retrieves a single report.
func (s *reportService) GetReportByID(ctx context.Context, reportID string) (*domain.Report, error) {
	report, err := s.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to get report %s: %w", reportID, err)
	}
	return report, nil
}

// ListReports returns one page of reports, newest first.
func (s *reportService) ListReports(ctx context.Context, params dto.ListReportsParams) (*dto.ListReportsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultReportPageSize
	}
	if limit > maxReportPageSize {
		limit = maxReportPageSize
	}

	reports, nextToken, err := s.reportRepo.ListReports(ctx, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	resp := &dto.ListReportsResponse{
		Reports:   make([]dto.ReportResponse, len(reports)),
		NextToken: nextToken,
	}
	for i := range reports {
		resp.Reports[i] = dto.ToReportResponse(&reports[i])
	}
	return resp, nil
}

// ListHistory returns a report's full status history, oldest first. The
// report must exist.
func (s *reportService) ListHistory(ctx context.Context, reportID string) ([]domain.StatusHistoryEntry, error) {
	if _, err := s.reportRepo.FindReportByID(ctx, reportID); err != nil {
		return nil, fmt.Errorf("failed to get report %s: %w", reportID, err)
	}
	entries, err := s.reportRepo.FindHistoryByReportID(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to list history of report %s: %w", reportID, err)
	}
	return entries, nil
}

// ListClosingPayments returns a report's closing payments. The report must
// exist.
func (s *reportService) ListClosingPayments(ctx context.Context, reportID string) ([]domain.ClosingPayment, error) {
	if _, err := s.reportRepo.FindReportByID(ctx, reportID); err != nil {
		return nil, fmt.Errorf("failed to get report %s: %w", reportID, err)
	}
	payments, err := s.reportRepo.FindClosingPaymentsByReportID(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to list closing payments of report %s: %w", reportID, err)
	}
	return payments, nil
}
