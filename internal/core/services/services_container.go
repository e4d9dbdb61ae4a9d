package services

import (
	portsrepo "github.com/szabol/damage_report_app/internal/core/ports/repositories"
	portssvc "github.com/szabol/damage_report_app/internal/core/ports/services"
)

// NewServiceContainer wires every service against the repository provider
// and the mail sender. Construction order matters only for the notification
// dispatcher, which the report and transition services depend on.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, mailer portssvc.MailSender) *portssvc.ServiceContainer {
	notificationSvc := NewNotificationService(
		repos.NotificationRuleRepo,
		repos.ReportRepo,
		repos.StatusRepo,
		repos.UserRepo,
		repos.BuildingRepo,
		mailer,
	)

	return &portssvc.ServiceContainer{
		Report:           NewReportService(repos.ReportRepo, repos.StatusRepo, notificationSvc),
		Transition:       NewTransitionService(repos.ReportRepo, repos.StatusRepo, repos.UserRepo, mailer, notificationSvc),
		Notification:     notificationSvc,
		NotificationRule: NewNotificationRuleService(repos.NotificationRuleRepo, repos.StatusRepo),
		Status:           NewStatusService(repos.StatusRepo),
		User:             NewUserService(repos.UserRepo),
	}
}
