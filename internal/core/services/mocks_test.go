package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/szabol/damage_report_app/internal/core/domain"
	portsrepo "github.com/szabol/damage_report_app/internal/core/ports/repositories"
	portssvc "github.com/szabol/damage_report_app/internal/core/ports/services"
)

// --- Mock ReportRepository ---
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) FindReportByID(ctx context.Context, reportID string) (*domain.Report, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockReportRepository) FindReportByPublicIdentifier(ctx context.Context, publicIdentifier string) (*domain.Report, error) {
	args := m.Called(ctx, publicIdentifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockReportRepository) ListReports(ctx context.Context, limit int, nextToken *string) ([]domain.Report, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var reports []domain.Report
	if args.Get(0) != nil {
		reports = args.Get(0).([]domain.Report)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return reports, token, args.Error(2)
}

func (m *MockReportRepository) FindLatestHistoryEntry(ctx context.Context, reportID string) (*domain.StatusHistoryEntry, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatusHistoryEntry), args.Error(1)
}

func (m *MockReportRepository) FindHistoryByReportID(ctx context.Context, reportID string) ([]domain.StatusHistoryEntry, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusHistoryEntry), args.Error(1)
}

func (m *MockReportRepository) FindClosingPaymentsByReportID(ctx context.Context, reportID string) ([]domain.ClosingPayment, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClosingPayment), args.Error(1)
}

func (m *MockReportRepository) SaveReport(ctx context.Context, report domain.Report, initial domain.StatusHistoryEntry) error {
	args := m.Called(ctx, report, initial)
	return args.Error(0)
}

func (m *MockReportRepository) PersistStatusChange(ctx context.Context, reportID string, change portsrepo.TransitionChange) (*domain.Report, error) {
	args := m.Called(ctx, reportID, change)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockReportRepository) UpdateDamageID(ctx context.Context, reportID string, damageID string, actorID string) (*domain.Report, error) {
	args := m.Called(ctx, reportID, damageID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

// --- Mock StatusRepository ---
type MockStatusRepository struct {
	mock.Mock
}

func (m *MockStatusRepository) FindStatusByID(ctx context.Context, statusID string) (*domain.Status, error) {
	args := m.Called(ctx, statusID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Status), args.Error(1)
}

func (m *MockStatusRepository) FindStatusByCode(ctx context.Context, code string) (*domain.Status, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Status), args.Error(1)
}

func (m *MockStatusRepository) FindSubStatusByID(ctx context.Context, subStatusID string) (*domain.SubStatus, error) {
	args := m.Called(ctx, subStatusID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubStatus), args.Error(1)
}

func (m *MockStatusRepository) ListStatuses(ctx context.Context) ([]domain.Status, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Status), args.Error(1)
}

func (m *MockStatusRepository) ListSubStatusesByStatusID(ctx context.Context, statusID string) ([]domain.SubStatus, error) {
	args := m.Called(ctx, statusID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SubStatus), args.Error(1)
}

// --- Mock NotificationRuleRepository ---
type MockNotificationRuleRepository struct {
	mock.Mock
}

func (m *MockNotificationRuleRepository) FindActiveRulesByEvent(ctx context.Context, event domain.EventName) ([]domain.NotificationRule, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NotificationRule), args.Error(1)
}

func (m *MockNotificationRuleRepository) FindRuleByID(ctx context.Context, ruleID string) (*domain.NotificationRule, error) {
	args := m.Called(ctx, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NotificationRule), args.Error(1)
}

func (m *MockNotificationRuleRepository) ListRules(ctx context.Context) ([]domain.NotificationRule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NotificationRule), args.Error(1)
}

func (m *MockNotificationRuleRepository) SaveRule(ctx context.Context, rule domain.NotificationRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockNotificationRuleRepository) UpdateRule(ctx context.Context, rule domain.NotificationRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockNotificationRuleRepository) DeleteRule(ctx context.Context, ruleID string) error {
	args := m.Called(ctx, ruleID)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) FindActiveUsersByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Mock BuildingRepository ---
type MockBuildingRepository struct {
	mock.Mock
}

func (m *MockBuildingRepository) FindBuildingByID(ctx context.Context, buildingID string) (*domain.Building, error) {
	args := m.Called(ctx, buildingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Building), args.Error(1)
}

func (m *MockBuildingRepository) FindCurrentCustomer(ctx context.Context, buildingID string) (*domain.BuildingCustomer, error) {
	args := m.Called(ctx, buildingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BuildingCustomer), args.Error(1)
}

// --- Mock MailSender ---
type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) SendMail(ctx context.Context, to string, subject string, intro string, details []portssvc.MessageDetail) error {
	args := m.Called(ctx, to, subject, intro, details)
	return args.Error(0)
}

// --- Mock NotificationDispatchSvc ---
type MockNotificationDispatcher struct {
	mock.Mock
}

func (m *MockNotificationDispatcher) Dispatch(ctx context.Context, event domain.EventName, reportID string, dispatchCtx portssvc.DispatchContext) error {
	args := m.Called(ctx, event, reportID, dispatchCtx)
	return args.Error(0)
}
