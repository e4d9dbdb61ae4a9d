package models

// NotificationRule is the database row for an administrator-configured rule.
type NotificationRule struct {
	RuleID      string  `json:"ruleID"`
	Name        string  `json:"name"`
	Event       string  `json:"event"`
	StatusID    *string `json:"statusID"`
	SubStatusID *string `json:"subStatusID"`
	IsActive    bool    `json:"isActive"`
	AuditFields
}

// NotificationRuleRecipient is the database row for one recipient descriptor
// of a rule.
type NotificationRuleRecipient struct {
	RecipientID string  `json:"recipientID"`
	RuleID      string  `json:"ruleID"`
	Type        string  `json:"type"`
	Value       *string `json:"value"`
	SortOrder   int     `json:"sortOrder"`
}
