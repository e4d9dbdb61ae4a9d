package mapping

import (
	"github.com/szabol/damage_report_app/internal/core/domain"
	"github.com/szabol/damage_report_app/internal/models"
)

// ToModelClosingPayment converts a domain ClosingPayment to its model form.
func ToModelClosingPayment(d domain.ClosingPayment) models.ClosingPayment {
	return models.ClosingPayment{
		PaymentID:    d.PaymentID,
		ReportID:     d.ReportID,
		Recipient:    d.Recipient,
		Amount:       d.Amount,
		CurrencyCode: d.CurrencyCode,
		PaymentDate:  d.PaymentDate,
		PaymentTime:  d.PaymentTime,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClosingPayment converts a model ClosingPayment to its domain form.
func ToDomainClosingPayment(m models.ClosingPayment) domain.ClosingPayment {
	return domain.ClosingPayment{
		PaymentID:    m.PaymentID,
		ReportID:     m.ReportID,
		Recipient:    m.Recipient,
		Amount:       m.Amount,
		CurrencyCode: m.CurrencyCode,
		PaymentDate:  m.PaymentDate,
		PaymentTime:  m.PaymentTime,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainClosingPaymentSlice converts a slice of model closing payments.
func ToDomainClosingPaymentSlice(ms []models.ClosingPayment) []domain.ClosingPayment {
	out := make([]domain.ClosingPayment, len(ms))
	for i, m := range ms {
		out[i] = ToDomainClosingPayment(m)
	}
	return out
}
