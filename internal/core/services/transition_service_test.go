package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/szabol/damage_report_app/internal/apperrors"
	"github.com/szabol/damage_report_app/internal/core/domain"
	portsrepo "github.com/szabol/damage_report_app/internal/core/ports/repositories"
	portssvc "github.com/szabol/damage_report_app/internal/core/ports/services"
	"github.com/szabol/damage_report_app/internal/core/services"
	"github.com/szabol/damage_report_app/internal/dto"
)

type TransitionServiceTestSuite struct {
	suite.Suite
	mockReportRepo *MockReportRepository
	mockStatusRepo *MockStatusRepository
	mockUserRepo   *MockUserRepository
	mockMailer     *MockMailSender
	mockDispatcher *MockNotificationDispatcher
	service        portssvc.TransitionSvcFacade

	statusNew       *domain.Status
	statusReported  *domain.Status
	statusAdmin     *domain.Status
	statusDeficient *domain.Status
	statusClosed    *domain.Status
	subWithPayment  *domain.SubStatus
	subDuplicate    *domain.SubStatus
	subWaitingDocs  *domain.SubStatus
}

func (suite *TransitionServiceTestSuite) SetupTest() {
	suite.mockReportRepo = new(MockReportRepository)
	suite.mockStatusRepo = new(MockStatusRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockMailer = new(MockMailSender)
	suite.mockDispatcher = new(MockNotificationDispatcher)
	suite.service = services.NewTransitionService(
		suite.mockReportRepo,
		suite.mockStatusRepo,
		suite.mockUserRepo,
		suite.mockMailer,
		suite.mockDispatcher,
	)

	suite.statusNew = &domain.Status{StatusID: uuid.NewString(), Code: domain.StatusCodeNew, Name: "New"}
	suite.statusReported = &domain.Status{StatusID: uuid.NewString(), Code: domain.StatusCodeReportedToExternalTracker, Name: "Reported to external tracker"}
	suite.statusAdmin = &domain.Status{StatusID: uuid.NewString(), Code: domain.StatusCodeUnderInsurerAdministration, Name: "Under administration"}
	suite.statusDeficient = &domain.Status{StatusID: uuid.NewString(), Code: domain.StatusCodeDataOrDocumentDeficiency, Name: "Deficiency"}
	suite.statusClosed = &domain.Status{StatusID: uuid.NewString(), Code: domain.StatusCodeClosed, Name: "Closed"}
	suite.subWithPayment = &domain.SubStatus{SubStatusID: uuid.NewString(), StatusID: suite.statusClosed.StatusID, Code: domain.SubStatusCodeClosedWithPayment}
	suite.subDuplicate = &domain.SubStatus{SubStatusID: uuid.NewString(), StatusID: suite.statusClosed.StatusID, Code: domain.SubStatusCodeClosedDuplicateReport}
	suite.subWaitingDocs = &domain.SubStatus{SubStatusID: uuid.NewString(), StatusID: suite.statusDeficient.StatusID, Code: domain.SubStatusCodeWaitingForClientDocuments}
}

func (suite *TransitionServiceTestSuite) newReport(status *domain.Status) *domain.Report {
	return &domain.Report{
		ReportID:         uuid.NewString(),
		PublicIdentifier: "DR-2026-ABCDEF",
		StatusID:         status.StatusID,
		Claimant:         domain.Claimant{Type: domain.ClaimantPrivate, Name: "Jane Roe", Email: "jane@example.com"},
		AuditFields:      domain.AuditFields{CreatedBy: uuid.NewString()},
	}
}

func (suite *TransitionServiceTestSuite) expectStatuses(statuses ...*domain.Status) {
	for _, s := range statuses {
		suite.mockStatusRepo.On("FindStatusByID", mock.Anything, s.StatusID).Return(s, nil)
	}
}

func (suite *TransitionServiceTestSuite) TestTransition_DefaultPath() {
	ctx := context.Background()
	actorID := uuid.NewString()
	report := suite.newReport(suite.statusNew)
	comment := "sent to tracker"
	req := dto.TransitionRequest{StatusID: suite.statusReported.StatusID, Comment: &comment}

	suite.mockReportRepo.On("FindReportByID", ctx, report.ReportID).Return(report, nil).Once()
	suite.expectStatuses(suite.statusNew, suite.statusReported)

	updated := *report
	updated.StatusID = suite.statusReported.StatusID
	suite.mockReportRepo.On("PersistStatusChange", ctx, report.ReportID, mock.MatchedBy(func(c portsrepo.TransitionChange) bool {
		return c.StatusID == suite.statusReported.StatusID &&
			c.SubStatusID == nil &&
			c.ActorID == actorID &&
			c.Comment != nil && *c.Comment == comment &&
			len(c.Payments) == 0 && c.DamageID == nil && c.DuplicateReportID == nil
	})).Return(&updated, nil).Once()
	suite.mockDispatcher.On("Dispatch", ctx, domain.EventStatusChanged, report.ReportID, mock.Anything).Return(nil).Once()

	result, err := suite.service.Transition(ctx, report.ReportID, req, actorID)

	suite.Require().NoError(err)
	suite.Equal(suite.statusReported.StatusID, result.StatusID)
	suite.mockReportRepo.AssertExpectations(suite.T())
	suite.mockDispatcher.AssertExpectations(suite.T())
	suite.mockMailer.AssertNotCalled(suite.T(), "SendMail")
}

func (suite *TransitionServiceTestSuite) TestTransition_UnknownTargetStatus() {
	ctx := context.Background()
	report := suite.newReport(suite.statusNew)
	unknownID := uuid.NewString()
	req := dto.TransitionRequest{StatusID: unknownID}

	suite.mockReportRepo.On("FindReportByID", ctx, report.ReportID).Return(report, nil).Once()
	suite.expectStatuses(suite.statusNew)
	suite.mockStatusRepo.On("FindStatusByID", mock.Anything, unknownID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.Transition(ctx, report.ReportID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReportRepo.AssertNotCalled(suite.T(), "PersistStatusChange")
}

func (suite *TransitionServiceTestSuite) TestTransition_SubStatusOfOtherStatusRejected() {
	ctx := context.Background()
	report := suite.newReport(suite.statusNew)
	req := dto.TransitionRequest{StatusID: suite.statusClosed.StatusID, SubStatusID: &suite.subWaitingDocs.SubStatusID}

	suite.mockReportRepo.On("FindReportByID", ctx, report.ReportID).Return(report, nil).Once()
	suite.expectStatuses(suite.statusNew, suite.statusClosed)
	suite.mockStatusRepo.On("FindSubStatusByID", ctx, suite.subWaitingDocs.SubStatusID).Return(suite.subWaitingDocs, nil).Once()

	result, err := suite.service.Transition(ctx, report.ReportID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(result)
	var validationErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
	suite.Contains(validationErr.Fields, "subStatusID")
	suite.mockReportRepo.AssertNotCalled(suite.T(), "PersistStatusChange")
}

func (suite *TransitionServiceTestSuite) TestTransition_CloseWithPayment() {
	ctx := context.Background()
	actorID := uuid.NewString()
	report := suite.newReport(suite.statusAdmin)
	paymentTime := "14:30"
	req := dto.TransitionRequest{
		StatusID:    suite.statusClosed.StatusID,
		SubStatusID: &suite.subWithPayment.SubStatusID,
		ClosingPayments: []dto.ClosingPaymentEntry{
			{Recipient: "Jane Roe", Amount: decimal.NewFromInt(125000), CurrencyCode: "huf", PaymentDate: "2026-08-01", PaymentTime: &paymentTime},
			{Recipient: "", Amount: decimal.NewFromInt(10), CurrencyCode: "EUR", PaymentDate: "2026-08-01"},
			{Recipient: "Bad Date", Amount: decimal.NewFromInt(10), CurrencyCode: "EUR", PaymentDate: "01/08/2026"},
			{Recipient: "Negative", Amount: decimal.NewFromInt(-5), CurrencyCode: "EUR", PaymentDate: "2026-08-01"},
		},
	}

	suite.mockReportRepo.On("FindReportByID", ctx, report.ReportID).Return(report, nil).Once()
	suite.expectStatuses(suite.statusAdmin, suite.statusClosed)
	suite.mockStatusRepo.On("FindSubStatusByID", ctx, suite.subWithPayment.SubStatusID).Return(suite.subWithPayment, nil).Once()

	updated := *report
	updated.StatusID = suite.statusClosed.StatusID
	updated.SubStatusID = &suite.subWithPayment.SubStatusID
	suite.mockReportRepo.On("PersistStatusChange", ctx, report.ReportID, mock.MatchedBy(func(c portsrepo.TransitionChange) bool {
		if len(c.Payments) != 1 {
			return false
		}
		p := c.Payments[0]
		return p.CurrencyCode == "HUF" && p.Recipient == "Jane Roe" && p.Amount.Equal(decimal.NewFromInt(125000)) && p.ReportID == report.ReportID
	})).Return(&updated, nil).Once()
	suite.mockDispatcher.On("Dispatch", ctx, domain.EventStatusChanged, report.ReportID, mock.Anything).Return(nil).Once()
	suite.mockDispatcher.On("Dispatch", ctx, domain.EventReportClosed, report.ReportID, mock.Anything).Return(nil).Once()

	result, err := suite.service.Transition(ctx, report.ReportID, req, actorID)

	suite.Require().NoError(err)
	suite.Equal(suite.statusClosed.StatusID, result.StatusID)
	suite.mockReportRepo.AssertExpectations(suite.T())
	suite.mockDispatcher.AssertExpectations(suite.T())
}

func (suite *TransitionServiceTestSuite) TestTransition_CloseWithPayment_NoWellFormedEntry() {
	ctx := context.Background()
	report := suite.newReport(suite.statusAdmin)
	req := dto.TransitionRequest{
		StatusID:    suite.statusClosed.StatusID,
		SubStatusID: &suite.subWithPayment.SubStatusID,
		ClosingPayments: []dto.ClosingPaymentEntry{
			{Recipient: "", Amount: decimal.NewFromInt(10), CurrencyCode: "EUR", PaymentDate: "2026-08-01"},
		},
	}

	suite.mockReportRepo.On("FindReportByID", ctx, report.ReportID).Return(report, nil).Once()
	suite.expectStatuses(suite.statusAdmin, suite.statusClosed)
	suite.mockStatusRepo.On("FindSubStatusByID", ctx, suite.subWithPayment.SubStatusID).Return(suite.subWithPayment, nil).Once()

	result, err := suite.service.Transition(ctx, report.ReportID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(result)
	var validationErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
	suite.Contains(validationErr.Fields, "closingPayments")
	suite.mockReportRepo.AssertNotCalled(suite.T(), "PersistStatusChange")
}

func (suite *TransitionServiceTestSuite) TestTransition_CloseWithPayment_EmptyList() {
	ctx := context.Background()
	report := suite.newReport(suite.statusAdmin)
	req := dto.TransitionRequest{
		StatusID:    suite.statusClosed.StatusID,
		SubStatusID: &suite.subWithPayment.SubStatusID,
	}

	suite.mockReportRepo.On("FindReportByID", ctx, report.ReportID).Return(report, nil).Once()
	suite.expectStatuses(suite.statusAdmin, suite.statusClosed)
	suite.mockStatusRepo.On("FindSubStatusByID", ctx, suite.subWithPayment.SubStatusID).Return(suite.subWithPayment, nil).Once()

	_, err := suite.service.Transition(ctx, report.ReportID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReportRepo.AssertNotCalled(suite.T(), "PersistStatusChange")
}

func (suite *TransitionServiceTestSuite) TestTransition_CloseAsDuplicate() {
	ctx := context.Background()
	actorID := uuid.NewString()
	report := suite.newReport(suite.statusNew)
	original := suite.newReport(suite.statusClosed)
	original.PublicIdentifier = "DR-2026-ZZZZZZ"
	req := dto.TransitionRequest{
		StatusID:                  suite.statusClosed.StatusID,
		SubStatusID:               &suite.subDuplicate.SubStatusID,
		DuplicateReportIdentifier: &original.PublicIdentifier,
	}

	suite.mockReportRepo.On("FindReportByID", ctx, report.ReportID).Return(report, nil).Once()
	suite.expectStatuses(suite.statusNew, suite.statusClosed)
	suite.mockStatusRepo.On("FindSubStatusByID", ctx, suite.subDuplicate.SubStatusID).Return(suite.subDuplicate, nil).Once()
	suite.mockReportRepo.On("FindReportByPublicIdentifier", ctx, original.PublicIdentifier).Return(original, nil).Once()

	updated := *report
	updated.StatusID = suite.statusClosed.StatusID
	updated.DuplicateReportID = &original.ReportID
	suite.mockReportRepo.On("PersistStatusChange", ctx, report.ReportID, mock.MatchedBy(func(c portsrepo.TransitionChange) bool {
		return c.DuplicateReportID != nil && *c.DuplicateReportID == original.ReportID
	})).Return(&updated, nil).Once()
	suite.mockDispatcher.On("Dispatch", ctx, domain.EventStatusChanged, report.ReportID, mock.Anything).Return(nil).Once()
	suite.mockDispatcher.On("Dispatch", ctx, domain.EventReportClosed, report.ReportID, mock.Anything).Return(nil).Once()

	result, err := suite.service.Transition(ctx, report.ReportID, req, actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result.DuplicateReportID)
	suite.Equal(original.ReportID, *result.DuplicateReportID)
	suite.mockReportRepo.AssertExpectations(suite.T())
}

func (suite *TransitionServiceTestSuite) TestTransition_CloseAsDuplicate_SelfReference() {
	ctx := context.Background()
	report := suite.newReport(suite.statusNew)
	req := dto.TransitionRequest{
		StatusID:                  suite.statusClosed.StatusID,
		SubStatusID:               &suite.subDuplicate.SubStatusID,
		DuplicateReportIdentifier: &report.PublicIdentifier,
	}

	suite.mockReportRepo.On("FindReportByID", ctx, report.ReportID).Return(report, nil).Once()
	suite.expectStatuses(suite.statusNew, suite.statusClosed)
	suite.mockStatusRepo.On("FindSubStatusByID", ctx, suite.subDuplicate.SubStatusID).Return(suite.subDuplicate, nil).Once()
	suite.mockReportRepo.On("FindReportByPublicIdentifier", ctx, report.PublicIdentifier).Return(report, nil).Once()

	_, err := suite.service.Transition(ctx, report.ReportID, req, uuid.NewString())

	suite.Require().Error(err)
	var validationErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
	suite.Contains(validationErr.Fields, "duplicateReportIdentifier")
	suite.mockReportRepo.AssertNotCalled(suite.T(), "PersistStatusChange")
}

func (suite *TransitionServiceTestSuite) TestTransition_CloseAsDuplicate_ReferenceMissing() {
	ctx := context.Background()
	report := suite.newReport(suite.statusNew)
	missing := "DR-2026-MISSIN"
	req := dto.TransitionRequest{
		StatusID:                  suite.statusClosed.StatusID,
		SubStatusID:               &suite.subDuplicate.SubStatusID,
		DuplicateReportIdentifier: &missing,
	}

	suite.mockReportRepo.On("FindReportByID", ctx, report.ReportID).Return(report, nil).Once()
	suite.expectStatuses(suite.statusNew, suite.statusClosed)
	suite.mockStatusRepo.On("FindSubStatusByID", ctx, suite.subDuplicate.SubStatusID).Return(suite.subDuplicate, nil).Once()
	suite.mockReportRepo.On("FindReportByPublicIdentifier", ctx, missing).Return(nil, fmt.Errorf("report: %w", apperrors.ErrNotFound)).Once()

	_, err := suite.service.Transition(ctx, report.ReportID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReportRepo.AssertNotCalled(suite.T(), "PersistStatusChange")
}

func (suite *TransitionServiceTestSuite) TestTransition_DamageIDRequiredForAdministration() {
	ctx := context.Background()
	report := suite.newReport(suite.statusReported)
	req := dto.TransitionRequest{StatusID: suite.statusAdmin.StatusID}

	suite.mockReportRepo.On("FindReportByID", ctx, report.ReportID).Return(report, nil).Once()
	suite.expectStatuses(suite.statusReported, suite.statusAdmin)

	_, err := suite.service.Transition(ctx, report.ReportID, req, uuid.NewString())

	suite.Require().Error(err)
	var validationErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
	suite.Contains(validationErr.Fields, "damageID")
	suite.mockReportRepo.AssertNotCalled(suite.T(), "PersistStatusChange")
}

func (suite *TransitionServiceTestSuite) TestTransition_DamageIDAccepted() {
	ctx := context.Background()
	actorID := uuid.NewString()
	report := suite.newReport(suite.statusReported)
	damageID := "INS-778899"
	req := dto.TransitionRequest{StatusID: suite.statusAdmin.StatusID, DamageID: &damageID}

	suite.mockReportRepo.On("FindReportByID", ctx, report.ReportID).Return(report, nil).Once()
	suite.expectStatuses(suite.statusReported, suite.statusAdmin)

	updated := *report
	updated.StatusID = suite.statusAdmin.StatusID
	updated.DamageID = &damageID
	suite.mockReportRepo.On("PersistStatusChange", ctx, report.ReportID, mock.MatchedBy(func(c portsrepo.TransitionChange) bool {
		return c.DamageID != nil && *c.DamageID == damageID
	})).Return(&updated, nil).Once()
	suite.mockDispatcher.On("Dispatch", ctx, domain.EventStatusChanged, report.ReportID, mock.Anything).Return(nil).Once()

	result, err := suite.service.Transition(ctx, report.ReportID, req, actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result.DamageID)
	suite.Equal(damageID, *result.DamageID)
	suite.mockReportRepo.AssertExpectations(suite.T())
}

func (suite *TransitionServiceTestSuite) TestTransition_DocumentRequestSendsMailBeforePersist() {
	ctx := context.Background()
	actorID := uuid.NewString()
	notifierID := uuid.NewString()
	report := suite.newReport(suite.statusNew)
	report.NotifierID = &notifierID
	notifier := &domain.User{UserID: notifierID, Name: "Notifier", Email: "notifier@example.com", IsActive: true}
	req := dto.TransitionRequest{
		StatusID:    suite.statusDeficient.StatusID,
		SubStatusID: &suite.subWaitingDocs.SubStatusID,
		DocumentRequest: &dto.DocumentRequestPayload{
			Title:              "Missing documents",
			Body:               "Please send the listed documents.",
			RequestedDocuments: []string{"invoice", "photo of the damage"},
		},
	}

	suite.mockReportRepo.On("FindReportByID", ctx, report.ReportID).Return(report, nil).Once()
	suite.expectStatuses(suite.statusNew, suite.statusDeficient)
	suite.mockStatusRepo.On("FindSubStatusByID", ctx, suite.subWaitingDocs.SubStatusID).Return(suite.subWaitingDocs, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, notifierID).Return(notifier, nil).Once()

	suite.mockMailer.On("SendMail", ctx, "jane@example.com", "Missing documents", "Please send the listed documents.", mock.Anything).Return(nil).Once()
	suite.mockMailer.On("SendMail", ctx, "notifier@example.com", "Missing documents", "Please send the listed documents.", mock.Anything).Return(nil).Once()

	updated := *report
	updated.StatusID = suite.statusDeficient.StatusID
	updated.SubStatusID = &suite.subWaitingDocs.SubStatusID
	suite.mockReportRepo.On("PersistStatusChange", ctx, report.ReportID, mock.Anything).Return(&updated, nil).Once()
	suite.mockDispatcher.On("Dispatch", ctx, domain.EventStatusChanged, report.ReportID, mock.Anything).Return(nil).Once()

	result, err := suite.service.Transition(ctx, report.ReportID, req, actorID)

	suite.Require().NoError(err)
	suite.Equal(suite.statusDeficient.StatusID, result.StatusID)
	suite.mockMailer.AssertExpectations(suite.T())
	suite.mockReportRepo.AssertExpectations(suite.T())
}

func (suite *TransitionServiceTestSuite) TestTransition_DocumentRequest_MailFailureBlocksPersist() {
	ctx := context.Background()
	report := suite.newReport(suite.statusNew)
	req := dto.TransitionRequest{
		StatusID:    suite.statusDeficient.StatusID,
		SubStatusID: &suite.subWaitingDocs.SubStatusID,
		DocumentRequest: &dto.DocumentRequestPayload{
			Title:              "Missing documents",
			Body:               "Please send the listed documents.",
			RequestedDocuments: []string{"invoice"},
		},
	}

	suite.mockReportRepo.On("FindReportByID", ctx, report.ReportID).Return(report, nil).Once()
	suite.expectStatuses(suite.statusNew, suite.statusDeficient)
	suite.mockStatusRepo.On("FindSubStatusByID", ctx, suite.subWaitingDocs.SubStatusID).Return(suite.subWaitingDocs, nil).Once()

	suite.mockMailer.On("SendMail", ctx, "jane@example.com", mock.Anything, mock.Anything, mock.Anything).Return(fmt.Errorf("smtp unreachable")).Once()

	_, err := suite.service.Transition(ctx, report.ReportID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.mockReportRepo.AssertNotCalled(suite.T(), "PersistStatusChange")
}

func (suite *TransitionServiceTestSuite) TestTransition_DocumentRequest_NoResolvableRecipient() {
	ctx := context.Background()
	report := suite.newReport(suite.statusNew)
	report.Claimant.Email = "not-an-address"
	req := dto.TransitionRequest{
		StatusID:    suite.statusDeficient.StatusID,
		SubStatusID: &suite.subWaitingDocs.SubStatusID,
		DocumentRequest: &dto.DocumentRequestPayload{
			Title:              "Missing documents",
			Body:               "Please send the listed documents.",
			RequestedDocuments: []string{"invoice"},
		},
	}

	suite.mockReportRepo.On("FindReportByID", ctx, report.ReportID).Return(report, nil).Once()
	suite.expectStatuses(suite.statusNew, suite.statusDeficient)
	suite.mockStatusRepo.On("FindSubStatusByID", ctx, suite.subWaitingDocs.SubStatusID).Return(suite.subWaitingDocs, nil).Once()

	_, err := suite.service.Transition(ctx, report.ReportID, req, uuid.NewString())

	suite.Require().Error(err)
	var validationErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
	suite.Contains(validationErr.Fields, "recipients")
	suite.mockMailer.AssertNotCalled(suite.T(), "SendMail")
	suite.mockReportRepo.AssertNotCalled(suite.T(), "PersistStatusChange")
}

func (suite *TransitionServiceTestSuite) TestTransition_DocumentRequest_PayloadMissing() {
	ctx := context.Background()
	report := suite.newReport(suite.statusNew)
	req := dto.TransitionRequest{
		StatusID:    suite.statusDeficient.StatusID,
		SubStatusID: &suite.subWaitingDocs.SubStatusID,
	}

	suite.mockReportRepo.On("FindReportByID", ctx, report.ReportID).Return(report, nil).Once()
	suite.expectStatuses(suite.statusNew, suite.statusDeficient)
	suite.mockStatusRepo.On("FindSubStatusByID", ctx, suite.subWaitingDocs.SubStatusID).Return(suite.subWaitingDocs, nil).Once()

	_, err := suite.service.Transition(ctx, report.ReportID, req, uuid.NewString())

	suite.Require().Error(err)
	var validationErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
	suite.Contains(validationErr.Fields, "documentRequest")
	suite.mockReportRepo.AssertNotCalled(suite.T(), "PersistStatusChange")
}

func TestTransitionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransitionServiceTestSuite))
}
