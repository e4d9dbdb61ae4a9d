package dto

import "github.com/szabol/damage_report_app/internal/core/domain"

// SubStatusResponse is the data returned for a sub-status.
type SubStatusResponse struct {
	SubStatusID string `json:"subStatusID"`
	Code        string `json:"code"`
	Name        string `json:"name"`
}

// StatusResponse is the data returned for a status with its sub-statuses.
type StatusResponse struct {
	StatusID    string              `json:"statusID"`
	Code        string              `json:"code"`
	Name        string              `json:"name"`
	SubStatuses []SubStatusResponse `json:"subStatuses"`
}

// ToStatusResponse converts a domain Status plus its sub-statuses to a DTO.
func ToStatusResponse(status domain.Status, subs []domain.SubStatus) StatusResponse {
	resp := StatusResponse{
		StatusID:    status.StatusID,
		Code:        status.Code,
		Name:        status.Name,
		SubStatuses: make([]SubStatusResponse, len(subs)),
	}
	for i, s := range subs {
		resp.SubStatuses[i] = SubStatusResponse{
			SubStatusID: s.SubStatusID,
			Code:        s.Code,
			Name:        s.Name,
		}
	}
	return resp
}
