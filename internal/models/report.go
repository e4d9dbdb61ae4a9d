package models

// Report is the database row for a damage report.
type Report struct {
	ReportID              string  `json:"reportID"`
	PublicIdentifier      string  `json:"publicIdentifier"`
	StatusID              string  `json:"statusID"`
	SubStatusID           *string `json:"subStatusID"`
	Description           string  `json:"description"`
	DamageID              *string `json:"damageID"`
	ClaimantType          string  `json:"claimantType"`
	ClaimantName          string  `json:"claimantName"`
	ClaimantEmail         string  `json:"claimantEmail"`
	ClaimantPhone         string  `json:"claimantPhone"`
	ClaimantAccountNumber string  `json:"claimantAccountNumber"`
	BuildingID            *string `json:"buildingID"`
	NotifierID            *string `json:"notifierID"`
	DuplicateReportID     *string `json:"duplicateReportID"`
	AuditFields
}
