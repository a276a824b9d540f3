package usecases

import (
	"context"
	"fmt"

	"github.com/chamados/servicedesk/internal/application/auth/dto"
	"github.com/chamados/servicedesk/internal/domain/loginguard"
	"github.com/chamados/servicedesk/internal/shared/constants"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

type ListLoginEventsQuery struct {
	// Limit of 0 means the default page size
	Limit int
}

type ListLoginEventsUseCase struct {
	audit  loginguard.AuditRepository
	logger logger.Interface
}

func NewListLoginEventsUseCase(audit loginguard.AuditRepository, logger logger.Interface) *ListLoginEventsUseCase {
	return &ListLoginEventsUseCase{
		audit:  audit,
		logger: logger,
	}
}

func (uc *ListLoginEventsUseCase) Execute(ctx context.Context, query ListLoginEventsQuery) ([]dto.LoginEventDTO, error) {
	limit := ClampEventLimit(query.Limit)

	events, err := uc.audit.Recent(ctx, limit)
	if err != nil {
		uc.logger.Errorw("failed to read login audit log", "error", err)
		return nil, fmt.Errorf("failed to read login audit log: %w", err)
	}
	return dto.ToLoginEventDTOList(events), nil
}

// ClampEventLimit applies the default to 0 and bounds everything else to [1, MaxAuditLimit].
func ClampEventLimit(limit int) int {
	switch {
	case limit == 0:
		return constants.DefaultAuditLimit
	case limit < 1:
		return 1
	case limit > constants.MaxAuditLimit:
		return constants.MaxAuditLimit
	default:
		return limit
	}
}
