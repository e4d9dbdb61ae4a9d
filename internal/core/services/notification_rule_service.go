package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/szabol/damage_report_app/internal/apperrors"
	"github.com/szabol/damage_report_app/internal/core/domain"
	portsrepo "github.com/szabol/damage_report_app/internal/core/ports/repositories"
	portssvc "github.com/szabol/damage_report_app/internal/core/ports/services"
	"github.com/szabol/damage_report_app/internal/dto"
	"github.com/szabol/damage_report_app/internal/middleware"
)

var _ portssvc.NotificationRuleSvcFacade = (*notificationRuleService)(nil)

type notificationRuleService struct {
	ruleRepo   portsrepo.NotificationRuleRepositoryFacade
	statusRepo portsrepo.StatusRepositoryFacade
}

// NewNotificationRuleService creates the administrator-facing rule service.
func NewNotificationRuleService(
	ruleRepo portsrepo.NotificationRuleRepositoryFacade,
	statusRepo portsrepo.StatusRepositoryFacade,
) portssvc.NotificationRuleSvcFacade {
	return &notificationRuleService{ruleRepo: ruleRepo, statusRepo: statusRepo}
}

var knownRecipientTypes = map[domain.RecipientType]struct{}{
	domain.RecipientCustomAddress:           {},
	domain.RecipientRole:                    {},
	domain.RecipientReportCreator:           {},
	domain.RecipientReportNotifier:          {},
	domain.RecipientReportClaimant:          {},
	domain.RecipientBuildingCustomer:        {},
	domain.RecipientBuildingCustomerManager: {},
}

// buildRecipients validates and converts recipient inputs. CUSTOM_ADDRESS
// and ROLE require a value; the report-relative types must not carry one.
func buildRecipients(ruleID string, inputs []dto.RecipientInput) ([]domain.RecipientDescriptor, error) {
	recipients := make([]domain.RecipientDescriptor, len(inputs))
	for i, in := range inputs {
		recipientType := domain.RecipientType(in.Type)
		if _, ok := knownRecipientTypes[recipientType]; !ok {
			return nil, apperrors.NewValidationError("recipients", fmt.Sprintf("unknown recipient type %q", in.Type))
		}
		needsValue := recipientType == domain.RecipientCustomAddress || recipientType == domain.RecipientRole
		hasValue := in.Value != nil && *in.Value != ""
		if needsValue && !hasValue {
			return nil, apperrors.NewValidationError("recipients", fmt.Sprintf("recipient type %s requires a value", in.Type))
		}
		if recipientType == domain.RecipientCustomAddress && !isValidEmailAddress(*in.Value) {
			return nil, apperrors.NewValidationError("recipients", fmt.Sprintf("%q is not a valid e-mail address", *in.Value))
		}

		recipients[i] = domain.RecipientDescriptor{
			RecipientID: uuid.NewString(),
			RuleID:      ruleID,
			Type:        recipientType,
			Value:       in.Value,
			SortOrder:   i,
		}
	}
	return recipients, nil
}

// validateRuleFilters checks the optional status/sub-status filter pair.
func (s *notificationRuleService) validateRuleFilters(ctx context.Context, statusID *string, subStatusID *string) error {
	if statusID != nil {
		if _, err := s.statusRepo.FindStatusByID(ctx, *statusID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewValidationError("statusID", "unknown status")
			}
			return fmt.Errorf("failed to validate status filter: %w", err)
		}
	}
	if subStatusID != nil {
		sub, err := s.statusRepo.FindSubStatusByID(ctx, *subStatusID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewValidationError("subStatusID", "unknown sub-status")
			}
			return fmt.Errorf("failed to validate sub-status filter: %w", err)
		}
		if statusID != nil && sub.StatusID != *statusID {
			return apperrors.NewValidationError("subStatusID", "sub-status does not belong to the status filter")
		}
	}
	return nil
}

// CreateRule validates and persists a new notification rule.
func (s *notificationRuleService) CreateRule(ctx context.Context, req dto.CreateNotificationRuleRequest, creatorUserID string) (*domain.NotificationRule, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	event := domain.EventName(req.Event)
	if !domain.IsKnownEvent(event) {
		return nil, apperrors.NewValidationError("event", fmt.Sprintf("unknown event %q", req.Event))
	}
	if err := s.validateRuleFilters(ctx, req.StatusID, req.SubStatusID); err != nil {
		return nil, err
	}

	ruleID := uuid.NewString()
	recipients, err := buildRecipients(ruleID, req.Recipients)
	if err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	now := time.Now()
	rule := domain.NotificationRule{
		RuleID:      ruleID,
		Name:        req.Name,
		Event:       event,
		StatusID:    req.StatusID,
		SubStatusID: req.SubStatusID,
		IsActive:    isActive,
		Recipients:  recipients,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.ruleRepo.SaveRule(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to save notification rule: %w", err)
	}
	logger.Info("Notification rule created", "rule_id", rule.RuleID, "event", string(event))
	return &rule, nil
}

// UpdateRule applies a partial update; a non-nil recipient list replaces the
// stored one wholesale.
func (s *notificationRuleService) UpdateRule(ctx context.Context, ruleID string, req dto.UpdateNotificationRuleRequest, requestingUserID string) (*domain.NotificationRule, error) {
	rule, err := s.ruleRepo.FindRuleByID(ctx, ruleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notification rule %s: %w", ruleID, err)
	}

	if req.Name != nil {
		rule.Name = *req.Name
	}
	if req.StatusID != nil {
		rule.StatusID = req.StatusID
	}
	if req.SubStatusID != nil {
		rule.SubStatusID = req.SubStatusID
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
	if err := s.validateRuleFilters(ctx, rule.StatusID, rule.SubStatusID); err != nil {
		return nil, err
	}
	if req.Recipients != nil {
		recipients, err := buildRecipients(rule.RuleID, req.Recipients)
		if err != nil {
			return nil, err
		}
		rule.Recipients = recipients
	}
	rule.LastUpdatedAt = time.Now()
	rule.LastUpdatedBy = requestingUserID

	if err := s.ruleRepo.UpdateRule(ctx, *rule); err != nil {
		return nil, fmt.Errorf("failed to update notification rule %s: %w", ruleID, err)
	}
	return rule, nil
}

// DeleteRule removes a rule and its recipients.
func (s *notificationRuleService) DeleteRule(ctx context.Context, ruleID string) error {
	if err := s.ruleRepo.DeleteRule(ctx, ruleID); err != nil {
		return fmt.Errorf("failed to delete notification rule %s: %w", ruleID, err)
	}
	return nil
}

// GetRuleByID retrieves a single rule.
func (s *notificationRuleService) GetRuleByID(ctx context.Context, ruleID string) (*domain.NotificationRule, error) {
	rule, err := s.ruleRepo.FindRuleByID(ctx, ruleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notification rule %s: %w", ruleID, err)
	}
	return rule, nil
}

// ListRules returns every configured rule.
func (s *notificationRuleService) ListRules(ctx context.Context) ([]domain.NotificationRule, error) {
	rules, err := s.ruleRepo.ListRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notification rules: %w", err)
	}
	return rules, nil
}
