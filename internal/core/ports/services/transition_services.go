package services

import (
	"context"

	"github.com/szabol/damage_report_app/internal/core/domain"
	"github.com/szabol/damage_report_app/internal/dto"
)

// TransitionSvcFacade is the single entry point for status transitions.
type TransitionSvcFacade interface {
	// Transition moves a report to the target status/sub-status. Business
	// rules matching the target may demand extra payload fields and perform
	// side effects; when none matches, a plain status change is recorded.
	// All writes of one call happen in one transaction.
	Transition(ctx context.Context, reportID string, req dto.TransitionRequest, actorID string) (*domain.Report, error)
}
