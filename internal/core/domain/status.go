package domain

// Well-known status codes. The status registry itself lives in the database
// and is read-only from the engine's perspective; these codes identify the
// entries the transition rules key on.
const (
	StatusCodeNew                          = "NEW"
	StatusCodeReportedToExternalTracker    = "REPORTED_TO_EXTERNAL_TRACKER"
	StatusCodeUnderInsurerAdministration   = "UNDER_INSURER_ADMINISTRATION"
	StatusCodeDataOrDocumentDeficiency     = "DATA_OR_DOCUMENT_DEFICIENCY"
	StatusCodeClosed                       = "CLOSED"
	SubStatusCodeClosedWithPayment         = "CLOSED_WITH_PAYMENT"
	SubStatusCodeClosedDuplicateReport     = "CLOSED_DUPLICATE_REPORT"
	SubStatusCodeWaitingForClientDocuments = "WAITING_FOR_DOCUMENT_FROM_CLIENT"
)

// Status is a top-level lifecycle state of a damage report.
// Immutable once referenced by a status history entry.
type Status struct {
	StatusID  string `json:"statusID"` // Primary Key (e.g., UUID)
	Code      string `json:"code"`     // Stable machine code, unique
	Name      string `json:"name"`     // Display name
	SortOrder int    `json:"sortOrder"`
}

// SubStatus refines a Status. A sub-status always belongs to exactly one
// parent status.
type SubStatus struct {
	SubStatusID string `json:"subStatusID"` // Primary Key (e.g., UUID)
	StatusID    string `json:"statusID"`    // Owning Status
	Code        string `json:"code"`        // Stable machine code, unique
	Name        string `json:"name"`
	SortOrder   int    `json:"sortOrder"`
}
