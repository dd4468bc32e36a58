package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListAnnotationsQuery struct {
	TicketID uint
}

type ListAnnotationsUseCase struct {
	ticketRepo     ticket.TicketRepository
	annotationRepo ticket.AnnotationRepository
	logger         logger.Interface
}

func NewListAnnotationsUseCase(
	ticketRepo ticket.TicketRepository,
	annotationRepo ticket.AnnotationRepository,
	logger logger.Interface,
) *ListAnnotationsUseCase {
	return &ListAnnotationsUseCase{
		ticketRepo:     ticketRepo,
		annotationRepo: annotationRepo,
		logger:         logger,
	}
}

func (uc *ListAnnotationsUseCase) Execute(ctx context.Context, query ListAnnotationsQuery) ([]dto.AnnotationDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	found, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	annotations, err := uc.annotationRepo.ListByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list annotations", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	result := make([]dto.AnnotationDTO, 0, len(annotations))
	for _, a := range annotations {
		result = append(result, dto.ToAnnotationDTO(a))
	}
	return result, nil
}
