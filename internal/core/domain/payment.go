package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClosingPayment records a payment made when a report is closed with payment.
// Zero to many per report; created only by the close-with-payment rule.
type ClosingPayment struct {
	PaymentID    string          `json:"paymentID"` // Primary Key (e.g., UUID)
	ReportID     string          `json:"reportID"`
	Recipient    string          `json:"recipient"`
	Amount       decimal.Decimal `json:"amount"`       // Non-negative
	CurrencyCode string          `json:"currencyCode"` // 3-letter code, upper-cased on write
	PaymentDate  time.Time       `json:"paymentDate"`
	PaymentTime  *string         `json:"paymentTime,omitempty"` // "15:04", optional
	AuditFields
}
