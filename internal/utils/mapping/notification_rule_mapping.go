package mapping

import (
	"github.com/szabol/damage_report_app/internal/core/domain"
	"github.com/szabol/damage_report_app/internal/models"
)

// ToModelNotificationRule converts a domain NotificationRule to its model form.
// Recipients are mapped separately because they live in their own table.
func ToModelNotificationRule(d domain.NotificationRule) models.NotificationRule {
	return models.NotificationRule{
		RuleID:      d.RuleID,
		Name:        d.Name,
		Event:       string(d.Event),
		StatusID:    d.StatusID,
		SubStatusID: d.SubStatusID,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainNotificationRule converts a model NotificationRule plus its
// recipient rows to the domain form.
func ToDomainNotificationRule(m models.NotificationRule, recipients []models.NotificationRuleRecipient) domain.NotificationRule {
	rule := domain.NotificationRule{
		RuleID:      m.RuleID,
		Name:        m.Name,
		Event:       domain.EventName(m.Event),
		StatusID:    m.StatusID,
		SubStatusID: m.SubStatusID,
		IsActive:    m.IsActive,
		Recipients:  make([]domain.RecipientDescriptor, len(recipients)),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	for i, r := range recipients {
		rule.Recipients[i] = ToDomainRecipientDescriptor(r)
	}
	return rule
}

// ToDomainRecipientDescriptor converts a recipient row to its domain form.
func ToDomainRecipientDescriptor(m models.NotificationRuleRecipient) domain.RecipientDescriptor {
	return domain.RecipientDescriptor{
		RecipientID: m.RecipientID,
		RuleID:      m.RuleID,
		Type:        domain.RecipientType(m.Type),
		Value:       m.Value,
		SortOrder:   m.SortOrder,
	}
}

// ToModelRecipientDescriptor converts a domain recipient descriptor to its row form.
func ToModelRecipientDescriptor(d domain.RecipientDescriptor) models.NotificationRuleRecipient {
	return models.NotificationRuleRecipient{
		RecipientID: d.RecipientID,
		RuleID:      d.RuleID,
		Type:        string(d.Type),
		Value:       d.Value,
		SortOrder:   d.SortOrder,
	}
}
