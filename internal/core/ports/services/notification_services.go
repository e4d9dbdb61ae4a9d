package services

import (
	"context"

	"github.com/szabol/damage_report_app/internal/core/domain"
	"github.com/szabol/damage_report_app/internal/dto"
)

// DispatchContext carries the event-specific values notification rules are
// filtered against and the message builder may reference.
type DispatchContext struct {
	StatusID    *string
	SubStatusID *string
	Comment     *string
}

// NotificationDispatchSvc matches notification rules against a named event
// and sends the resulting e-mails.
type NotificationDispatchSvc interface {
	// Dispatch sends at most one e-mail per unique resolved address for the
	// event. Unknown events and events with no matching active rule are
	// silent no-ops. Mail transport errors propagate unchanged.
	Dispatch(ctx context.Context, event domain.EventName, reportID string, dispatchCtx DispatchContext) error
}

// NotificationRuleSvcFacade covers administrator management of rules.
type NotificationRuleSvcFacade interface {
	// CreateRule validates and persists a new notification rule.
	CreateRule(ctx context.Context, req dto.CreateNotificationRuleRequest, creatorUserID string) (*domain.NotificationRule, error)

	// UpdateRule applies a partial update to an existing rule.
	UpdateRule(ctx context.Context, ruleID string, req dto.UpdateNotificationRuleRequest, requestingUserID string) (*domain.NotificationRule, error)

	// DeleteRule removes a rule.
	DeleteRule(ctx context.Context, ruleID string) error

	// GetRuleByID retrieves a single rule.
	GetRuleByID(ctx context.Context, ruleID string) (*domain.NotificationRule, error)

	// ListRules returns all configured rules.
	ListRules(ctx context.Context) ([]domain.NotificationRule, error)
}
