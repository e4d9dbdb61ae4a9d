package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/szabol/damage_report_app/internal/core/domain"
)

// CreateReportRequest is the payload for registering a new damage report.
type CreateReportRequest struct {
	Description           string  `json:"description" binding:"required"`
	ClaimantType          string  `json:"claimantType" binding:"required,oneof=PRIVATE COMPANY"`
	ClaimantName          string  `json:"claimantName" binding:"required"`
	ClaimantEmail         string  `json:"claimantEmail" binding:"omitempty,email"`
	ClaimantPhone         string  `json:"claimantPhone"`
	ClaimantAccountNumber string  `json:"claimantAccountNumber"`
	BuildingID            *string `json:"buildingID,omitempty"`
	NotifierID            *string `json:"notifierID,omitempty"`
}

// UpdateDamageIDRequest sets the insurer-assigned damage identifier.
type UpdateDamageIDRequest struct {
	DamageID string `json:"damageID" binding:"required"`
}

// ReportResponse is the data returned for a report.
type ReportResponse struct {
	ReportID          string    `json:"reportID"`
	PublicIdentifier  string    `json:"publicIdentifier"`
	StatusID          string    `json:"statusID"`
	SubStatusID       *string   `json:"subStatusID,omitempty"`
	Description       string    `json:"description"`
	DamageID          *string   `json:"damageID,omitempty"`
	ClaimantType      string    `json:"claimantType"`
	ClaimantName      string    `json:"claimantName"`
	ClaimantEmail     string    `json:"claimantEmail,omitempty"`
	ClaimantPhone     string    `json:"claimantPhone,omitempty"`
	BuildingID        *string   `json:"buildingID,omitempty"`
	NotifierID        *string   `json:"notifierID,omitempty"`
	DuplicateReportID *string   `json:"duplicateReportID,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	CreatedBy         string    `json:"createdBy"`
}

// ListReportsParams holds parameters for listing reports.
type ListReportsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListReportsResponse is a page of reports plus the token of the next page.
type ListReportsResponse struct {
	Reports   []ReportResponse `json:"reports"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// HistoryEntryResponse is the data returned for one status history entry.
type HistoryEntryResponse struct {
	HistoryID   string    `json:"historyID"`
	StatusID    string    `json:"statusID"`
	SubStatusID *string   `json:"subStatusID,omitempty"`
	UserID      string    `json:"userID"`
	Comment     *string   `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ClosingPaymentResponse is the data returned for one closing payment.
type ClosingPaymentResponse struct {
	PaymentID    string          `json:"paymentID"`
	Recipient    string          `json:"recipient"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	PaymentDate  time.Time       `json:"paymentDate"`
	PaymentTime  *string         `json:"paymentTime,omitempty"`
}

// ToReportResponse converts a domain Report to its response DTO.
func ToReportResponse(r *domain.Report) ReportResponse {
	return ReportResponse{
		ReportID:          r.ReportID,
		PublicIdentifier:  r.PublicIdentifier,
		StatusID:          r.StatusID,
		SubStatusID:       r.SubStatusID,
		Description:       r.Description,
		DamageID:          r.DamageID,
		ClaimantType:      string(r.Claimant.Type),
		ClaimantName:      r.Claimant.Name,
		ClaimantEmail:     r.Claimant.Email,
		ClaimantPhone:     r.Claimant.Phone,
		BuildingID:        r.BuildingID,
		NotifierID:        r.NotifierID,
		DuplicateReportID: r.DuplicateReportID,
		CreatedAt:         r.CreatedAt,
		CreatedBy:         r.CreatedBy,
	}
}

// ToHistoryEntryResponses converts domain history entries to response DTOs.
func ToHistoryEntryResponses(entries []domain.StatusHistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = HistoryEntryResponse{
			HistoryID:   e.HistoryID,
			StatusID:    e.StatusID,
			SubStatusID: e.SubStatusID,
			UserID:      e.UserID,
			Comment:     e.Comment,
			CreatedAt:   e.CreatedAt,
		}
	}
	return out
}

// ToClosingPaymentResponses converts domain payments to response DTOs.
func ToClosingPaymentResponses(payments []domain.ClosingPayment) []ClosingPaymentResponse {
	out := make([]ClosingPaymentResponse, len(payments))
	for i, p := range payments {
		out[i] = ClosingPaymentResponse{
			PaymentID:    p.PaymentID,
			Recipient:    p.Recipient,
			Amount:       p.Amount,
			CurrencyCode: p.CurrencyCode,
			PaymentDate:  p.PaymentDate,
			PaymentTime:  p.PaymentTime,
		}
	}
	return out
}
