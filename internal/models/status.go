package models

// Status is the database row for a lifecycle status.
type Status struct {
	StatusID  string `json:"statusID"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`
}

// SubStatus is the database row for a sub-status.
type SubStatus struct {
	SubStatusID string `json:"subStatusID"`
	StatusID    string `json:"statusID"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	SortOrder   int    `json:"sortOrder"`
}
