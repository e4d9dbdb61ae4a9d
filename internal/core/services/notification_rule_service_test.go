package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/szabol/damage_report_app/internal/apperrors"
	"github.com/szabol/damage_report_app/internal/core/domain"
	portssvc "github.com/szabol/damage_report_app/internal/core/ports/services"
	"github.com/szabol/damage_report_app/internal/core/services"
	"github.com/szabol/damage_report_app/internal/dto"
)

type NotificationRuleServiceTestSuite struct {
	suite.Suite
	mockRuleRepo   *MockNotificationRuleRepository
	mockStatusRepo *MockStatusRepository
	service        portssvc.NotificationRuleSvcFacade
}

func (suite *NotificationRuleServiceTestSuite) SetupTest() {
	suite.mockRuleRepo = new(MockNotificationRuleRepository)
	suite.mockStatusRepo = new(MockStatusRepository)
	suite.service = services.NewNotificationRuleService(suite.mockRuleRepo, suite.mockStatusRepo)
}

func (suite *NotificationRuleServiceTestSuite) TestCreateRule_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	address := "ops@example.com"
	req := dto.CreateNotificationRuleRequest{
		Name:  "notify ops on creation",
		Event: "report_created",
		Recipients: []dto.RecipientInput{
			{Type: "CUSTOM_ADDRESS", Value: &address},
			{Type: "REPORT_CLAIMANT"},
		},
	}

	suite.mockRuleRepo.On("SaveRule", ctx, mock.MatchedBy(func(r domain.NotificationRule) bool {
		return r.Event == domain.EventReportCreated &&
			r.IsActive &&
			len(r.Recipients) == 2 &&
			r.Recipients[0].Type == domain.RecipientCustomAddress &&
			r.Recipients[1].SortOrder == 1 &&
			r.CreatedBy == creatorUserID
	})).Return(nil).Once()

	rule, err := suite.service.CreateRule(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(rule)
	suite.True(rule.IsActive)
	suite.mockRuleRepo.AssertExpectations(suite.T())
}

func (suite *NotificationRuleServiceTestSuite) TestCreateRule_UnknownEvent() {
	ctx := context.Background()
	req := dto.CreateNotificationRuleRequest{
		Name:       "bad",
		Event:      "report_reopened",
		Recipients: []dto.RecipientInput{{Type: "REPORT_CLAIMANT"}},
	}

	rule, err := suite.service.CreateRule(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(rule)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRuleRepo.AssertNotCalled(suite.T(), "SaveRule")
}

func (suite *NotificationRuleServiceTestSuite) TestCreateRule_CustomAddressNeedsValue() {
	ctx := context.Background()
	req := dto.CreateNotificationRuleRequest{
		Name:       "bad",
		Event:      "report_created",
		Recipients: []dto.RecipientInput{{Type: "CUSTOM_ADDRESS"}},
	}

	rule, err := suite.service.CreateRule(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(rule)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRuleRepo.AssertNotCalled(suite.T(), "SaveRule")
}

func (suite *NotificationRuleServiceTestSuite) TestCreateRule_SubStatusMustBelongToStatusFilter() {
	ctx := context.Background()
	statusID := uuid.NewString()
	subStatusID := uuid.NewString()
	req := dto.CreateNotificationRuleRequest{
		Name:        "filtered",
		Event:       "status_changed",
		StatusID:    &statusID,
		SubStatusID: &subStatusID,
		Recipients:  []dto.RecipientInput{{Type: "REPORT_CLAIMANT"}},
	}

	suite.mockStatusRepo.On("FindStatusByID", ctx, statusID).Return(&domain.Status{StatusID: statusID}, nil).Once()
	suite.mockStatusRepo.On("FindSubStatusByID", ctx, subStatusID).Return(&domain.SubStatus{SubStatusID: subStatusID, StatusID: uuid.NewString()}, nil).Once()

	rule, err := suite.service.CreateRule(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(rule)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRuleRepo.AssertNotCalled(suite.T(), "SaveRule")
}

func (suite *NotificationRuleServiceTestSuite) TestUpdateRule_ReplacesRecipients() {
	ctx := context.Background()
	requestingUserID := uuid.NewString()
	existing := &domain.NotificationRule{
		RuleID:   uuid.NewString(),
		Name:     "old",
		Event:    domain.EventReportClosed,
		IsActive: true,
		Recipients: []domain.RecipientDescriptor{
			{RecipientID: uuid.NewString(), Type: domain.RecipientReportClaimant},
		},
	}
	newName := "new name"
	req := dto.UpdateNotificationRuleRequest{
		Name:       &newName,
		Recipients: []dto.RecipientInput{{Type: "REPORT_CREATOR"}, {Type: "REPORT_NOTIFIER"}},
	}

	suite.mockRuleRepo.On("FindRuleByID", ctx, existing.RuleID).Return(existing, nil).Once()
	suite.mockRuleRepo.On("UpdateRule", ctx, mock.MatchedBy(func(r domain.NotificationRule) bool {
		return r.Name == newName && len(r.Recipients) == 2 && r.LastUpdatedBy == requestingUserID
	})).Return(nil).Once()

	rule, err := suite.service.UpdateRule(ctx, existing.RuleID, req, requestingUserID)

	suite.Require().NoError(err)
	suite.Equal(newName, rule.Name)
	suite.Len(rule.Recipients, 2)
	suite.mockRuleRepo.AssertExpectations(suite.T())
}

func TestNotificationRuleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRuleServiceTestSuite))
}
