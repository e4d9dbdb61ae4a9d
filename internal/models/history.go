package models

import "time"

// StatusHistoryEntry is the database row for one status transition record.
type StatusHistoryEntry struct {
	HistoryID   string    `json:"historyID"`
	ReportID    string    `json:"reportID"`
	StatusID    string    `json:"statusID"`
	SubStatusID *string   `json:"subStatusID"`
	UserID      string    `json:"userID"`
	Comment     *string   `json:"comment"`
	CreatedAt   time.Time `json:"createdAt"`
}
