package domain

// ClaimantType distinguishes private and company claimants.
type ClaimantType string

const (
	ClaimantPrivate ClaimantType = "PRIVATE"
	ClaimantCompany ClaimantType = "COMPANY"
)

// Claimant holds the contact block of the person or company claiming the damage.
type Claimant struct {
	Type          ClaimantType `json:"type"`
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone"`
	AccountNumber string       `json:"accountNumber"`
}

// Report is a damage report tracked through the status lifecycle.
// The "current status history" record is a derived view: it is always the
// most recently created history entry for the report, never a separately
// maintained pointer.
type Report struct {
	ReportID          string   `json:"reportID"`         // Primary Key (e.g., UUID)
	PublicIdentifier  string   `json:"publicIdentifier"` // Human-facing identifier, unique
	StatusID          string   `json:"statusID"`
	SubStatusID       *string  `json:"subStatusID,omitempty"`
	Description       string   `json:"description"`
	DamageID          *string  `json:"damageID,omitempty"` // Identifier assigned by the insurer's tracker
	Claimant          Claimant `json:"claimant"`
	BuildingID        *string  `json:"buildingID,omitempty"`
	NotifierID        *string  `json:"notifierID,omitempty"` // User who reported the damage
	DuplicateReportID *string  `json:"duplicateReportID,omitempty"`
	AuditFields
}
