package dto

import "github.com/shopspring/decimal"

// ClosingPaymentEntry is one payment supplied with a close-with-payment
// transition. Entries failing the well-formedness checks are skipped, they
// never fail the request on their own.
type ClosingPaymentEntry struct {
	Recipient    string          `json:"recipient"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currency"`
	PaymentDate  string          `json:"paymentDate"` // "2006-01-02"
	PaymentTime  *string         `json:"paymentTime,omitempty"`
}

// DocumentRequestPayload carries the e-mail content for a transition into the
// waiting-for-client-documents sub-status.
type DocumentRequestPayload struct {
	Title              string   `json:"title" binding:"required"`
	Body               string   `json:"body" binding:"required"`
	RequestedDocuments []string `json:"requestedDocuments" binding:"required,min=1"`
	Note               *string  `json:"note,omitempty"`
	Attachments        []string `json:"attachments,omitempty"`
}

// TransitionRequest is the payload of a status transition call. Which of the
// optional fields are required depends on the matched transition rule.
type TransitionRequest struct {
	StatusID                  string                  `json:"statusID" binding:"required"`
	SubStatusID               *string                 `json:"subStatusID,omitempty"`
	Comment                   *string                 `json:"comment,omitempty"`
	DamageID                  *string                 `json:"damageID,omitempty"`
	DuplicateReportIdentifier *string                 `json:"duplicateReportIdentifier,omitempty"`
	ClosingPayments           []ClosingPaymentEntry   `json:"closingPayments,omitempty"`
	DocumentRequest           *DocumentRequestPayload `json:"documentRequest,omitempty"`
}
