package mapping

import (
	"github.com/szabol/damage_report_app/internal/core/domain"
	"github.com/szabol/damage_report_app/internal/models"
)

// ToModelReport converts a domain Report to a model Report.
func ToModelReport(d domain.Report) models.Report {
	return models.Report{
		ReportID:              d.ReportID,
		PublicIdentifier:      d.PublicIdentifier,
		StatusID:              d.StatusID,
		SubStatusID:           d.SubStatusID,
		Description:           d.Description,
		DamageID:              d.DamageID,
		ClaimantType:          string(d.Claimant.Type),
		ClaimantName:          d.Claimant.Name,
		ClaimantEmail:         d.Claimant.Email,
		ClaimantPhone:         d.Claimant.Phone,
		ClaimantAccountNumber: d.Claimant.AccountNumber,
		BuildingID:            d.BuildingID,
		NotifierID:            d.NotifierID,
		DuplicateReportID:     d.DuplicateReportID,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReport converts a model Report to a domain Report.
func ToDomainReport(m models.Report) domain.Report {
	return domain.Report{
		ReportID:         m.ReportID,
		PublicIdentifier: m.PublicIdentifier,
		StatusID:         m.StatusID,
		SubStatusID:      m.SubStatusID,
		Description:      m.Description,
		DamageID:         m.DamageID,
		Claimant: domain.Claimant{
			Type:          domain.ClaimantType(m.ClaimantType),
			Name:          m.ClaimantName,
			Email:         m.ClaimantEmail,
			Phone:         m.ClaimantPhone,
			AccountNumber: m.ClaimantAccountNumber,
		},
		BuildingID:        m.BuildingID,
		NotifierID:        m.NotifierID,
		DuplicateReportID: m.DuplicateReportID,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainHistoryEntry converts a model StatusHistoryEntry to its domain form.
func ToDomainHistoryEntry(m models.StatusHistoryEntry) domain.StatusHistoryEntry {
	return domain.StatusHistoryEntry{
		HistoryID:   m.HistoryID,
		ReportID:    m.ReportID,
		StatusID:    m.StatusID,
		SubStatusID: m.SubStatusID,
		UserID:      m.UserID,
		Comment:     m.Comment,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainHistoryEntrySlice converts a slice of model history entries.
func ToDomainHistoryEntrySlice(ms []models.StatusHistoryEntry) []domain.StatusHistoryEntry {
	out := make([]domain.StatusHistoryEntry, len(ms))
	for i, m := range ms {
		out[i] = ToDomainHistoryEntry(m)
	}
	return out
}
