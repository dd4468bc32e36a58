package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/shared/logger"
)

type GetStatisticsQuery struct{}

// GetStatisticsResult always carries every known status and priority as a
// key, zero-valued when no ticket matches, so dashboard clients never have
// to guess at missing buckets.
type GetStatisticsResult struct {
	Total      int64
	ByStatus   map[string]int64
	ByPriority map[string]int64
}

type GetStatisticsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetStatisticsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetStatisticsUseCase {
	return &GetStatisticsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetStatisticsUseCase) Execute(ctx context.Context, _ GetStatisticsQuery) (*GetStatisticsResult, error) {
	result := &GetStatisticsResult{
		ByStatus:   make(map[string]int64, len(vo.AllStatuses())),
		ByPriority: make(map[string]int64, len(vo.AllPriorities())),
	}

	for _, status := range vo.AllStatuses() {
		result.ByStatus[status.String()] = 0
	}
	for _, priority := range vo.AllPriorities() {
		result.ByPriority[priority.String()] = 0
	}

	total, err := uc.ticketRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count tickets", "error", err)
		return nil, err
	}
	result.Total = total

	byStatus, err := uc.ticketRepo.CountByStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count tickets by status", "error", err)
		return nil, err
	}
	for status, count := range byStatus {
		result.ByStatus[status.String()] = count
	}

	byPriority, err := uc.ticketRepo.CountByPriority(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count tickets by priority", "error", err)
		return nil, err
	}
	for priority, count := range byPriority {
		result.ByPriority[priority.String()] = count
	}

	return result, nil
}
