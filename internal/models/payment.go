package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClosingPayment is the database row for a closing payment.
type ClosingPayment struct {
	PaymentID    string          `json:"paymentID"`
	ReportID     string          `json:"reportID"`
	Recipient    string          `json:"recipient"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	PaymentDate  time.Time       `json:"paymentDate"`
	PaymentTime  *string         `json:"paymentTime"`
	AuditFields
}
