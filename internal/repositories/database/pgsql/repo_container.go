package pgsql

import (
	portsrepo "github.com/szabol/damage_report_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every pgx-backed repository over one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ReportRepo:           newPgxReportRepository(dbPool),
		StatusRepo:           newPgxStatusRepository(dbPool),
		NotificationRuleRepo: newPgxNotificationRuleRepository(dbPool),
		UserRepo:             newPgxUserRepository(dbPool),
		BuildingRepo:         newPgxBuildingRepository(dbPool),
	}
}
