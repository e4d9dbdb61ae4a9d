package services

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/szabol/damage_report_app/internal/core/domain"
)

// isValidEmailAddress reports whether s looks like a plain deliverable
// address. Display names and address groups are rejected, only the bare
// addr-spec form is accepted.
func isValidEmailAddress(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	parsed, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return parsed.Address == s
}

// dedupeAddresses drops repeated addresses, comparing case-insensitively and
// keeping first occurrence order.
func dedupeAddresses(addresses []string) []string {
	seen := make(map[string]struct{}, len(addresses))
	out := make([]string, 0, len(addresses))
	for _, a := range addresses {
		key := strings.ToLower(a)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, a)
	}
	return out
}

// resolveRecipient turns one recipient descriptor into zero or more e-mail
// addresses. Descriptors that point at a missing relation or an address that
// fails the shape check resolve to nothing; an unknown descriptor type also
// resolves to nothing. Only ROLE descriptors touch the database.
func (s *notificationService) resolveRecipient(ctx context.Context, descriptor domain.RecipientDescriptor, nctx *notificationContext) ([]string, error) {
	switch descriptor.Type {
	case domain.RecipientCustomAddress:
		if descriptor.Value != nil && isValidEmailAddress(*descriptor.Value) {
			return []string{*descriptor.Value}, nil
		}
		return nil, nil

	case domain.RecipientRole:
		if descriptor.Value == nil || *descriptor.Value == "" {
			return nil, nil
		}
		users, err := s.userRepo.FindActiveUsersByRole(ctx, domain.UserRole(*descriptor.Value))
		if err != nil {
			return nil, fmt.Errorf("failed to load users for role %s: %w", *descriptor.Value, err)
		}
		addresses := make([]string, 0, len(users))
		for _, u := range users {
			if isValidEmailAddress(u.Email) {
				addresses = append(addresses, u.Email)
			}
		}
		return addresses, nil

	case domain.RecipientReportCreator:
		if nctx.creator != nil && isValidEmailAddress(nctx.creator.Email) {
			return []string{nctx.creator.Email}, nil
		}
		return nil, nil

	case domain.RecipientReportNotifier:
		if nctx.notifier != nil && isValidEmailAddress(nctx.notifier.Email) {
			return []string{nctx.notifier.Email}, nil
		}
		return nil, nil

	case domain.RecipientReportClaimant:
		if isValidEmailAddress(nctx.report.Claimant.Email) {
			return []string{nctx.report.Claimant.Email}, nil
		}
		return nil, nil

	case domain.RecipientBuildingCustomer:
		if nctx.customer != nil && isValidEmailAddress(nctx.customer.Email) {
			return []string{nctx.customer.Email}, nil
		}
		return nil, nil

	case domain.RecipientBuildingCustomerManager:
		if nctx.manager != nil && isValidEmailAddress(nctx.manager.Email) {
			return []string{nctx.manager.Email}, nil
		}
		return nil, nil

	default:
		return nil, nil
	}
}
