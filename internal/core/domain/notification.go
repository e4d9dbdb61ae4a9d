package domain

// EventName identifies a business occurrence that can trigger notifications.
type EventName string

const (
	EventReportCreated  EventName = "report_created"
	EventDamageIDUpdate EventName = "damage_id_updated"
	EventStatusChanged  EventName = "status_changed"
	EventReportClosed   EventName = "report_closed"
)

// KnownEventNames lists every event the notification engine understands.
// Dispatching any other name is a no-op.
var KnownEventNames = []EventName{
	EventReportCreated,
	EventDamageIDUpdate,
	EventStatusChanged,
	EventReportClosed,
}

// IsKnownEvent reports whether name is one of the built-in event kinds.
func IsKnownEvent(name EventName) bool {
	for _, e := range KnownEventNames {
		if e == name {
			return true
		}
	}
	return false
}

// RecipientType tags how a notification recipient is resolved at dispatch time.
type RecipientType string

const (
	RecipientCustomAddress           RecipientType = "CUSTOM_ADDRESS"
	RecipientRole                    RecipientType = "ROLE"
	RecipientReportCreator           RecipientType = "REPORT_CREATOR"
	RecipientReportNotifier          RecipientType = "REPORT_NOTIFIER"
	RecipientReportClaimant          RecipientType = "REPORT_CLAIMANT"
	RecipientBuildingCustomer        RecipientType = "BUILDING_CUSTOMER"
	RecipientBuildingCustomerManager RecipientType = "BUILDING_CUSTOMER_MANAGER"
)

// RecipientDescriptor is a typed reference to an e-mail recipient.
// Value is used only by RecipientCustomAddress (the literal address) and
// RecipientRole (the role name).
type RecipientDescriptor struct {
	RecipientID string        `json:"recipientID"` // Primary Key (e.g., UUID)
	RuleID      string        `json:"ruleID"`
	Type        RecipientType `json:"type"`
	Value       *string       `json:"value,omitempty"`
	SortOrder   int           `json:"sortOrder"`
}

// NotificationRule is an administrator-configured mapping from an event plus
// optional status/sub-status filters to a list of recipients. Read-only to
// the notification engine.
type NotificationRule struct {
	RuleID      string                `json:"ruleID"` // Primary Key (e.g., UUID)
	Name        string                `json:"name"`
	Event       EventName             `json:"event"`
	StatusID    *string               `json:"statusID,omitempty"`    // Optional filter
	SubStatusID *string               `json:"subStatusID,omitempty"` // Optional filter
	IsActive    bool                  `json:"isActive"`
	Recipients  []RecipientDescriptor `json:"recipients"`
	AuditFields
}
