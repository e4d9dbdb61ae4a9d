package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/szabol/damage_report_app/internal/apperrors"
	"github.com/szabol/damage_report_app/internal/core/domain"
	portsrepo "github.com/szabol/damage_report_app/internal/core/ports/repositories"
	portssvc "github.com/szabol/damage_report_app/internal/core/ports/services"
	"github.com/szabol/damage_report_app/internal/dto"
	"github.com/szabol/damage_report_app/internal/middleware"
)

var _ portssvc.TransitionSvcFacade = (*transitionService)(nil)

type transitionService struct {
	reportRepo      portsrepo.ReportRepositoryFacade
	statusRepo      portsrepo.StatusRepositoryFacade
	userRepo        portsrepo.UserRepositoryFacade
	mailer          portssvc.MailSender
	notificationSvc portssvc.NotificationDispatchSvc
}

// NewTransitionService creates the status transition service.
func NewTransitionService(
	reportRepo portsrepo.ReportRepositoryFacade,
	statusRepo portsrepo.StatusRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	mailer portssvc.MailSender,
	notificationSvc portssvc.NotificationDispatchSvc,
) portssvc.TransitionSvcFacade {
	return &transitionService{
		reportRepo:      reportRepo,
		statusRepo:      statusRepo,
		userRepo:        userRepo,
		mailer:          mailer,
		notificationSvc: notificationSvc,
	}
}

// Transition moves a report into a new status. The matching business rule
// (if any) validates the request payload and extends the change set; the
// history entry, the report update and every side-effect row are then
// persisted in a single transaction. Rule failures leave the report
// untouched.
func (s *transitionService) Transition(ctx context.Context, reportID string, req dto.TransitionRequest, actorID string) (*domain.Report, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	report, err := s.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to load report %s: %w", reportID, err)
	}

	currentStatus, err := s.statusRepo.FindStatusByID(ctx, report.StatusID)
	if err != nil {
		return nil, fmt.Errorf("failed to load current status of report %s: %w", reportID, err)
	}

	targetStatus, err := s.statusRepo.FindStatusByID(ctx, req.StatusID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("statusID", "unknown status")
		}
		return nil, fmt.Errorf("failed to load target status: %w", err)
	}

	var targetSub *domain.SubStatus
	if req.SubStatusID != nil {
		targetSub, err = s.statusRepo.FindSubStatusByID(ctx, *req.SubStatusID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewValidationError("subStatusID", "unknown sub-status")
			}
			return nil, fmt.Errorf("failed to load target sub-status: %w", err)
		}
		if targetSub.StatusID != targetStatus.StatusID {
			return nil, apperrors.NewValidationError("subStatusID", "sub-status does not belong to the target status")
		}
	}

	now := time.Now()
	change := portsrepo.TransitionChange{
		StatusID:    targetStatus.StatusID,
		SubStatusID: req.SubStatusID,
		ActorID:     actorID,
		Comment:     req.Comment,
	}

	if kind, ok := matchRule(currentStatus, targetStatus, targetSub); ok {
		switch kind {
		case ruleCloseWithPayment:
			err = s.applyCloseWithPayment(report, req, &change, now)
		case ruleCloseAsDuplicate:
			err = s.applyCloseAsDuplicate(ctx, report, req, &change)
		case ruleRequireDamageID:
			err = s.applyRequireDamageID(req, &change)
		case ruleSendDocumentRequest:
			err = s.applySendDocumentRequest(ctx, report, req)
		}
		if err != nil {
			return nil, err
		}
	}

	updated, err := s.reportRepo.PersistStatusChange(ctx, report.ReportID, change)
	if err != nil {
		return nil, fmt.Errorf("failed to persist status change for report %s: %w", reportID, err)
	}
	logger.Info("Report status changed",
		"report_id", report.ReportID,
		"from_status", currentStatus.Code,
		"to_status", targetStatus.Code,
	)

	dispatchCtx := portssvc.DispatchContext{
		StatusID:    &targetStatus.StatusID,
		SubStatusID: req.SubStatusID,
		Comment:     req.Comment,
	}
	if err := s.notificationSvc.Dispatch(ctx, domain.EventStatusChanged, report.ReportID, dispatchCtx); err != nil {
		return updated, fmt.Errorf("status change persisted but notification dispatch failed: %w", err)
	}
	if targetStatus.Code == domain.StatusCodeClosed {
		if err := s.notificationSvc.Dispatch(ctx, domain.EventReportClosed, report.ReportID, dispatchCtx); err != nil {
			return updated, fmt.Errorf("status change persisted but notification dispatch failed: %w", err)
		}
	}

	return updated, nil
}
