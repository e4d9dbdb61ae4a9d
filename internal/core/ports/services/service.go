package services

// ServiceContainer bundles every service facade the handler layer needs.
type ServiceContainer struct {
	Report           ReportSvcFacade
	Transition       TransitionSvcFacade
	Notification     NotificationDispatchSvc
	NotificationRule NotificationRuleSvcFacade
	Status           StatusSvcFacade
	User             UserSvcFacade
}
