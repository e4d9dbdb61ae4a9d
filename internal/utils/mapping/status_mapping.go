package mapping

import (
	"github.com/szabol/damage_report_app/internal/core/domain"
	"github.com/szabol/damage_report_app/internal/models"
)

// ToDomainStatus converts a model Status to a domain Status.
func ToDomainStatus(m models.Status) domain.Status {
	return domain.Status{
		StatusID:  m.StatusID,
		Code:      m.Code,
		Name:      m.Name,
		SortOrder: m.SortOrder,
	}
}

// ToDomainSubStatus converts a model SubStatus to a domain SubStatus.
func ToDomainSubStatus(m models.SubStatus) domain.SubStatus {
	return domain.SubStatus{
		SubStatusID: m.SubStatusID,
		StatusID:    m.StatusID,
		Code:        m.Code,
		Name:        m.Name,
		SortOrder:   m.SortOrder,
	}
}
