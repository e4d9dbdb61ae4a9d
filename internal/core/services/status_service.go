package services

import (
	"context"
	"fmt"

	portsrepo "github.com/szabol/damage_report_app/internal/core/ports/repositories"
	portssvc "github.com/szabol/damage_report_app/internal/core/ports/services"
	"github.com/szabol/damage_report_app/internal/dto"
)

var _ portssvc.StatusSvcFacade = (*statusService)(nil)

type statusService struct {
	statusRepo portsrepo.StatusRepositoryFacade
}

// NewStatusService creates the read-only status registry service.
func NewStatusService(statusRepo portsrepo.StatusRepositoryFacade) portssvc.StatusSvcFacade {
	return &statusService{statusRepo: statusRepo}
}

// ListStatuses returns every status with its sub-statuses, in sort order.
func (s *statusService) ListStatuses(ctx context.Context) ([]dto.StatusResponse, error) {
	statuses, err := s.statusRepo.ListStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}

	out := make([]dto.StatusResponse, len(statuses))
	for i, status := range statuses {
		subs, err := s.statusRepo.ListSubStatusesByStatusID(ctx, status.StatusID)
		if err != nil {
			return nil, fmt.Errorf("failed to list sub-statuses of %s: %w", status.Code, err)
		}
		out[i] = dto.ToStatusResponse(status, subs)
	}
	return out, nil
}
