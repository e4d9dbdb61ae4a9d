package mapping

import (
	"github.com/szabol/damage_report_app/internal/core/domain"
	"github.com/szabol/damage_report_app/internal/models"
)

// ToModelUser converts a domain User to a model User.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Name:         d.Name,
		Email:        d.Email,
		Role:         string(d.Role),
		PasswordHash: d.PasswordHash,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
		DeletedAt:    d.DeletedAt,
	}
}

// ToDomainUser converts a model User to a domain User.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Name:         m.Name,
		Email:        m.Email,
		Role:         domain.UserRole(m.Role),
		PasswordHash: m.PasswordHash,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
		DeletedAt:    m.DeletedAt,
	}
}

// ToDomainUserSlice converts a slice of model users.
func ToDomainUserSlice(ms []models.User) []domain.User {
	out := make([]domain.User, len(ms))
	for i, m := range ms {
		out[i] = ToDomainUser(m)
	}
	return out
}

// ToDomainBuildingCustomer converts a model BuildingCustomer to its domain form.
func ToDomainBuildingCustomer(m models.BuildingCustomer) domain.BuildingCustomer {
	return domain.BuildingCustomer{
		CustomerID: m.CustomerID,
		BuildingID: m.BuildingID,
		Name:       m.Name,
		Email:      m.Email,
		ManagerID:  m.ManagerID,
		ValidFrom:  m.ValidFrom,
		ValidTo:    m.ValidTo,
	}
}
