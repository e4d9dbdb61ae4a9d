package dto

import "github.com/szabol/damage_report_app/internal/core/domain"

// RecipientInput describes one recipient of a notification rule.
type RecipientInput struct {
	Type  string  `json:"type" binding:"required"`
	Value *string `json:"value,omitempty"`
}

// CreateNotificationRuleRequest is the admin payload for creating a rule.
type CreateNotificationRuleRequest struct {
	Name        string           `json:"name" binding:"required"`
	Event       string           `json:"event" binding:"required"`
	StatusID    *string          `json:"statusID,omitempty"`
	SubStatusID *string          `json:"subStatusID,omitempty"`
	IsActive    *bool            `json:"isActive,omitempty"`
	Recipients  []RecipientInput `json:"recipients" binding:"required,min=1"`
}

// UpdateNotificationRuleRequest is the admin payload for editing a rule.
// Nil fields are left unchanged; a non-nil Recipients replaces the whole list.
type UpdateNotificationRuleRequest struct {
	Name        *string          `json:"name,omitempty"`
	StatusID    *string          `json:"statusID,omitempty"`
	SubStatusID *string          `json:"subStatusID,omitempty"`
	IsActive    *bool            `json:"isActive,omitempty"`
	Recipients  []RecipientInput `json:"recipients,omitempty"`
}

// RecipientResponse is the data returned for one rule recipient.
type RecipientResponse struct {
	RecipientID string  `json:"recipientID"`
	Type        string  `json:"type"`
	Value       *string `json:"value,omitempty"`
}

// NotificationRuleResponse is the data returned for a notification rule.
type NotificationRuleResponse struct {
	RuleID      string              `json:"ruleID"`
	Name        string              `json:"name"`
	Event       string              `json:"event"`
	StatusID    *string             `json:"statusID,omitempty"`
	SubStatusID *string             `json:"subStatusID,omitempty"`
	IsActive    bool                `json:"isActive"`
	Recipients  []RecipientResponse `json:"recipients"`
}

// ToNotificationRuleResponse converts a domain rule to its response DTO.
func ToNotificationRuleResponse(rule *domain.NotificationRule) NotificationRuleResponse {
	resp := NotificationRuleResponse{
		RuleID:      rule.RuleID,
		Name:        rule.Name,
		Event:       string(rule.Event),
		StatusID:    rule.StatusID,
		SubStatusID: rule.SubStatusID,
		IsActive:    rule.IsActive,
		Recipients:  make([]RecipientResponse, len(rule.Recipients)),
	}
	for i, r := range rule.Recipients {
		resp.Recipients[i] = RecipientResponse{
			RecipientID: r.RecipientID,
			Type:        string(r.Type),
			Value:       r.Value,
		}
	}
	return resp
}
