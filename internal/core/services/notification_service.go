package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/szabol/damage_report_app/internal/apperrors"
	"github.com/szabol/damage_report_app/internal/core/domain"
	portsrepo "github.com/szabol/damage_report_app/internal/core/ports/repositories"
	portssvc "github.com/szabol/damage_report_app/internal/core/ports/services"
	"github.com/szabol/damage_report_app/internal/middleware"
)

var _ portssvc.NotificationDispatchSvc = (*notificationService)(nil)

type notificationService struct {
	ruleRepo     portsrepo.NotificationRuleRepositoryFacade
	reportRepo   portsrepo.ReportRepositoryFacade
	statusRepo   portsrepo.StatusRepositoryFacade
	userRepo     portsrepo.UserRepositoryFacade
	buildingRepo portsrepo.BuildingRepositoryFacade
	mailer       portssvc.MailSender
}

// NewNotificationService creates the rule-driven notification dispatcher.
func NewNotificationService(
	ruleRepo portsrepo.NotificationRuleRepositoryFacade,
	reportRepo portsrepo.ReportRepositoryFacade,
	statusRepo portsrepo.StatusRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	buildingRepo portsrepo.BuildingRepositoryFacade,
	mailer portssvc.MailSender,
) portssvc.NotificationDispatchSvc {
	return &notificationService{
		ruleRepo:     ruleRepo,
		reportRepo:   reportRepo,
		statusRepo:   statusRepo,
		userRepo:     userRepo,
		buildingRepo: buildingRepo,
		mailer:       mailer,
	}
}

// notificationContext is the read model the message builders and the
// recipient resolver work from. Every relation is loaded tolerantly: a
// missing related row leaves the field nil instead of failing the dispatch.
type notificationContext struct {
	report    *domain.Report
	status    *domain.Status
	subStatus *domain.SubStatus
	creator   *domain.User
	notifier  *domain.User
	building  *domain.Building
	customer  *domain.BuildingCustomer
	manager   *domain.User
	lastActor *domain.User
	comment   *string
}

// Dispatch matches active notification rules against the event and sends at
// most one e-mail per unique resolved address. Unknown events, events with
// no matching rule and rules whose recipients all resolve to nothing are
// silent no-ops. A mail transport error aborts the dispatch and propagates.
func (s *notificationService) Dispatch(ctx context.Context, event domain.EventName, reportID string, dispatchCtx portssvc.DispatchContext) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.IsKnownEvent(event) {
		logger.Debug("Ignoring unknown notification event", "event", string(event))
		return nil
	}

	rules, err := s.ruleRepo.FindActiveRulesByEvent(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to load notification rules for event %s: %w", event, err)
	}
	matched := filterRules(rules, dispatchCtx)
	if len(matched) == 0 {
		return nil
	}

	nctx, err := s.buildNotificationContext(ctx, reportID, dispatchCtx)
	if err != nil {
		return err
	}

	subject, intro, details := buildMessage(event, nctx)

	addresses := make([]string, 0, 4)
	for _, rule := range matched {
		for _, descriptor := range rule.Recipients {
			resolved, err := s.resolveRecipient(ctx, descriptor, nctx)
			if err != nil {
				return err
			}
			addresses = append(addresses, resolved...)
		}
	}
	addresses = dedupeAddresses(addresses)

	for _, address := range addresses {
		if err := s.mailer.SendMail(ctx, address, subject, intro, details); err != nil {
			return fmt.Errorf("failed to send notification for event %s to %s: %w", event, address, err)
		}
	}
	if len(addresses) > 0 {
		logger.Info("Notifications dispatched",
			"event", string(event),
			"report_id", reportID,
			"recipient_count", len(addresses),
		)
	}
	return nil
}

// filterRules keeps the rules whose status and sub-status filters accept the
// dispatch context. A nil filter accepts any value; a set filter requires an
// exact match.
func filterRules(rules []domain.NotificationRule, dispatchCtx portssvc.DispatchContext) []domain.NotificationRule {
	matched := make([]domain.NotificationRule, 0, len(rules))
	for _, rule := range rules {
		if rule.StatusID != nil && !pointerEquals(rule.StatusID, dispatchCtx.StatusID) {
			continue
		}
		if rule.SubStatusID != nil && !pointerEquals(rule.SubStatusID, dispatchCtx.SubStatusID) {
			continue
		}
		matched = append(matched, rule)
	}
	return matched
}

func pointerEquals(want *string, got *string) bool {
	return got != nil && *want == *got
}

// buildNotificationContext assembles the read model for one dispatch. The
// report itself is mandatory; every other relation degrades to nil when its
// row is missing.
func (s *notificationService) buildNotificationContext(ctx context.Context, reportID string, dispatchCtx portssvc.DispatchContext) (*notificationContext, error) {
	report, err := s.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to load report %s for notification: %w", reportID, err)
	}

	nctx := &notificationContext{report: report, comment: dispatchCtx.Comment}

	nctx.status, err = s.findStatusTolerant(ctx, report.StatusID)
	if err != nil {
		return nil, err
	}
	if report.SubStatusID != nil {
		nctx.subStatus, err = s.findSubStatusTolerant(ctx, *report.SubStatusID)
		if err != nil {
			return nil, err
		}
	}

	nctx.creator, err = s.findUserTolerant(ctx, report.CreatedBy)
	if err != nil {
		return nil, err
	}
	if report.NotifierID != nil {
		nctx.notifier, err = s.findUserTolerant(ctx, *report.NotifierID)
		if err != nil {
			return nil, err
		}
	}

	if report.BuildingID != nil {
		nctx.building, err = s.findBuildingTolerant(ctx, *report.BuildingID)
		if err != nil {
			return nil, err
		}
		nctx.customer, err = s.findCurrentCustomerTolerant(ctx, *report.BuildingID)
		if err != nil {
			return nil, err
		}
		if nctx.customer != nil && nctx.customer.ManagerID != nil {
			nctx.manager, err = s.findUserTolerant(ctx, *nctx.customer.ManagerID)
			if err != nil {
				return nil, err
			}
		}
	}

	lastEntry, err := s.reportRepo.FindLatestHistoryEntry(ctx, reportID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to load latest history entry of report %s: %w", reportID, err)
	}
	if lastEntry != nil {
		nctx.lastActor, err = s.findUserTolerant(ctx, lastEntry.UserID)
		if err != nil {
			return nil, err
		}
	}

	return nctx, nil
}

func (s *notificationService) findUserTolerant(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load user %s for notification: %w", userID, err)
	}
	return user, nil
}

func (s *notificationService) findStatusTolerant(ctx context.Context, statusID string) (*domain.Status, error) {
	status, err := s.statusRepo.FindStatusByID(ctx, statusID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load status %s for notification: %w", statusID, err)
	}
	return status, nil
}

func (s *notificationService) findSubStatusTolerant(ctx context.Context, subStatusID string) (*domain.SubStatus, error) {
	subStatus, err := s.statusRepo.FindSubStatusByID(ctx, subStatusID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load sub-status %s for notification: %w", subStatusID, err)
	}
	return subStatus, nil
}

func (s *notificationService) findBuildingTolerant(ctx context.Context, buildingID string) (*domain.Building, error) {
	building, err := s.buildingRepo.FindBuildingByID(ctx, buildingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load building %s for notification: %w", buildingID, err)
	}
	return building, nil
}

func (s *notificationService) findCurrentCustomerTolerant(ctx context.Context, buildingID string) (*domain.BuildingCustomer, error) {
	customer, err := s.buildingRepo.FindCurrentCustomer(ctx, buildingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load current customer of building %s: %w", buildingID, err)
	}
	return customer, nil
}
