package repositories

import (
	"context"

	"github.com/szabol/damage_report_app/internal/core/domain"
)

// NotificationRuleReader defines read operations for notification rules.
type NotificationRuleReader interface {
	// FindActiveRulesByEvent returns all active rules for an event, with
	// recipients populated, ordered by rule name.
	FindActiveRulesByEvent(ctx context.Context, event domain.EventName) ([]domain.NotificationRule, error)

	// FindRuleByID retrieves a single rule with its recipients.
	FindRuleByID(ctx context.Context, ruleID string) (*domain.NotificationRule, error)

	// ListRules returns all rules with recipients, active or not.
	ListRules(ctx context.Context) ([]domain.NotificationRule, error)
}

// NotificationRuleWriter defines administrator write operations for rules.
type NotificationRuleWriter interface {
	// SaveRule persists a new rule and its recipients in one transaction.
	SaveRule(ctx context.Context, rule domain.NotificationRule) error

	// UpdateRule replaces a rule's fields and recipient list in one transaction.
	UpdateRule(ctx context.Context, rule domain.NotificationRule) error

	// DeleteRule removes a rule and its recipients.
	DeleteRule(ctx context.Context, ruleID string) error
}

// NotificationRuleRepositoryFacade combines rule reader and writer interfaces.
type NotificationRuleRepositoryFacade interface {
	NotificationRuleReader
	NotificationRuleWriter
}
