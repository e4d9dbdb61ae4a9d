package domain

import "time"

// StatusHistoryEntry is one row of a report's append-only status audit trail.
// Exactly one entry is created per committed transition.
type StatusHistoryEntry struct {
	HistoryID   string    `json:"historyID"` // Primary Key (e.g., UUID)
	ReportID    string    `json:"reportID"`
	StatusID    string    `json:"statusID"`
	SubStatusID *string   `json:"subStatusID,omitempty"`
	UserID      string    `json:"userID"` // Acting user
	Comment     *string   `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
