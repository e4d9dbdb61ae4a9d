package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/szabol/damage_report_app/internal/apperrors"
	"github.com/szabol/damage_report_app/internal/core/domain"
	portsrepo "github.com/szabol/damage_report_app/internal/core/ports/repositories"
	portssvc "github.com/szabol/damage_report_app/internal/core/ports/services"
	"github.com/szabol/damage_report_app/internal/dto"
	"github.com/szabol/damage_report_app/internal/middleware"
)

// ruleKind enumerates the business rules that override the default
// transition behavior. The set is closed: adding a rule means adding a
// constant, a match arm and a handler.
type ruleKind int

const (
	ruleCloseWithPayment ruleKind = iota
	ruleCloseAsDuplicate
	ruleRequireDamageID
	ruleSendDocumentRequest
)

// rulePriority is the canonical evaluation order: the first matching rule
// wins. The match conditions are kept mutually exclusive per target pair, so
// the order never silently decides between two applicable rules; if that
// property is ever broken, only this list decides.
var rulePriority = [...]ruleKind{
	ruleCloseWithPayment,
	ruleCloseAsDuplicate,
	ruleRequireDamageID,
	ruleSendDocumentRequest,
}

// matchRule returns the first rule whose conditions hold for the current
// status and the requested target. Conditions are pure: they read only the
// status codes, never the payload.
func matchRule(current *domain.Status, target *domain.Status, targetSub *domain.SubStatus) (ruleKind, bool) {
	subCode := ""
	if targetSub != nil {
		subCode = targetSub.Code
	}

	for _, kind := range rulePriority {
		switch kind {
		case ruleCloseWithPayment:
			if target.Code == domain.StatusCodeClosed && subCode == domain.SubStatusCodeClosedWithPayment {
				return kind, true
			}
		case ruleCloseAsDuplicate:
			if target.Code == domain.StatusCodeClosed && subCode == domain.SubStatusCodeClosedDuplicateReport {
				return kind, true
			}
		case ruleRequireDamageID:
			if current.Code == domain.StatusCodeReportedToExternalTracker && target.Code == domain.StatusCodeUnderInsurerAdministration {
				return kind, true
			}
		case ruleSendDocumentRequest:
			if target.Code == domain.StatusCodeDataOrDocumentDeficiency && subCode == domain.SubStatusCodeWaitingForClientDocuments {
				return kind, true
			}
		}
	}
	return 0, false
}

const paymentDateLayout = "2006-01-02"
const paymentTimeLayout = "15:04"

// buildClosingPayments converts well-formed payment entries into domain
// payments. Malformed entries are skipped silently; an entry is well-formed
// when it has a recipient, a non-negative amount, a 3-letter currency code
// and a parseable payment date (and time, when given).
func buildClosingPayments(reportID string, entries []dto.ClosingPaymentEntry, actorID string, now time.Time) []domain.ClosingPayment {
	payments := make([]domain.ClosingPayment, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.Recipient) == "" {
			continue
		}
		if e.Amount.IsNegative() {
			continue
		}
		currency := strings.ToUpper(strings.TrimSpace(e.CurrencyCode))
		if len(currency) != 3 {
			continue
		}
		paymentDate, err := time.Parse(paymentDateLayout, e.PaymentDate)
		if err != nil {
			continue
		}
		var paymentTime *string
		if e.PaymentTime != nil {
			if _, err := time.Parse(paymentTimeLayout, *e.PaymentTime); err != nil {
				continue
			}
			paymentTime = e.PaymentTime
		}

		payments = append(payments, domain.ClosingPayment{
			PaymentID:    uuid.NewString(),
			ReportID:     reportID,
			Recipient:    e.Recipient,
			Amount:       e.Amount,
			CurrencyCode: currency,
			PaymentDate:  paymentDate,
			PaymentTime:  paymentTime,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actorID,
				LastUpdatedAt: now,
				LastUpdatedBy: actorID,
			},
		})
	}
	return payments
}

// applyCloseWithPayment validates the payment list and attaches the rows to
// the pending change.
func (s *transitionService) applyCloseWithPayment(report *domain.Report, req dto.TransitionRequest, change *portsrepo.TransitionChange, now time.Time) error {
	payments := buildClosingPayments(report.ReportID, req.ClosingPayments, change.ActorID, now)
	if len(payments) == 0 {
		return apperrors.NewValidationError("closingPayments", "at least one well-formed closing payment is required")
	}
	change.Payments = payments
	return nil
}

// applyCloseAsDuplicate resolves the referenced report and attaches the
// duplicate link to the pending change.
func (s *transitionService) applyCloseAsDuplicate(ctx context.Context, report *domain.Report, req dto.TransitionRequest, change *portsrepo.TransitionChange) error {
	if req.DuplicateReportIdentifier == nil || strings.TrimSpace(*req.DuplicateReportIdentifier) == "" {
		return apperrors.NewValidationError("duplicateReportIdentifier", "duplicate report identifier is required")
	}

	duplicate, err := s.reportRepo.FindReportByPublicIdentifier(ctx, *req.DuplicateReportIdentifier)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError("duplicateReportIdentifier", "referenced report does not exist")
		}
		return fmt.Errorf("failed to resolve duplicate report: %w", err)
	}
	if duplicate.ReportID == report.ReportID {
		return apperrors.NewValidationError("duplicateReportIdentifier", "a report cannot be a duplicate of itself")
	}

	change.DuplicateReportID = &duplicate.ReportID
	return nil
}

// applyRequireDamageID validates the damage identifier and attaches it to
// the pending change.
func (s *transitionService) applyRequireDamageID(req dto.TransitionRequest, change *portsrepo.TransitionChange) error {
	if req.DamageID == nil || strings.TrimSpace(*req.DamageID) == "" {
		return apperrors.NewValidationError("damageID", "damage identifier is required for administration by the insurer")
	}
	change.DamageID = req.DamageID
	return nil
}

// applySendDocumentRequest sends the document request e-mail to the claimant
// and the notifier before the status change is persisted, so the recipients
// know to expect the follow-up state.
func (s *transitionService) applySendDocumentRequest(ctx context.Context, report *domain.Report, req dto.TransitionRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	payload := req.DocumentRequest
	if payload == nil {
		return apperrors.NewValidationError("documentRequest", "document request content is required")
	}
	if strings.TrimSpace(payload.Title) == "" {
		return apperrors.NewValidationError("documentRequest.title", "title is required")
	}
	if strings.TrimSpace(payload.Body) == "" {
		return apperrors.NewValidationError("documentRequest.body", "body is required")
	}
	if len(payload.RequestedDocuments) == 0 {
		return apperrors.NewValidationError("documentRequest.requestedDocuments", "at least one requested document is required")
	}

	addresses := make([]string, 0, 2)
	if isValidEmailAddress(report.Claimant.Email) {
		addresses = append(addresses, report.Claimant.Email)
	}
	if report.NotifierID != nil {
		notifier, err := s.userRepo.FindUserByID(ctx, *report.NotifierID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to load notifier: %w", err)
		}
		if notifier != nil && isValidEmailAddress(notifier.Email) {
			addresses = append(addresses, notifier.Email)
		}
	}

	addresses = dedupeAddresses(addresses)
	if len(addresses) == 0 {
		return apperrors.NewValidationError("recipients", "no resolvable recipient address for the document request")
	}

	details := make([]portssvc.MessageDetail, 0, 3)
	details = append(details, portssvc.MessageDetail{Label: "Requested documents", Value: strings.Join(payload.RequestedDocuments, ", ")})
	if payload.Note != nil && *payload.Note != "" {
		details = append(details, portssvc.MessageDetail{Label: "Note", Value: *payload.Note})
	}
	if len(payload.Attachments) > 0 {
		details = append(details, portssvc.MessageDetail{Label: "Attachments", Value: strings.Join(payload.Attachments, ", ")})
	}

	for _, address := range addresses {
		if err := s.mailer.SendMail(ctx, address, payload.Title, payload.Body, details); err != nil {
			return fmt.Errorf("failed to send document request to %s: %w", address, err)
		}
		logger.Info("Document request e-mail sent", "report_id", report.ReportID, "recipient", address)
	}
	return nil
}
