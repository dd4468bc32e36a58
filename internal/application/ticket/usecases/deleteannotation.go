package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteAnnotationCommand struct {
	TicketID     uint
	AnnotationID uint
}

type DeleteAnnotationResult struct {
	TicketID     uint `json:"ticketId"`
	AnnotationID uint `json:"id"`
}

type DeleteAnnotationUseCase struct {
	ticketRepo     ticket.TicketRepository
	annotationRepo ticket.AnnotationRepository
	txManager      TransactionManager
	logger         logger.Interface
}

func NewDeleteAnnotationUseCase(
	ticketRepo ticket.TicketRepository,
	annotationRepo ticket.AnnotationRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteAnnotationUseCase {
	return &DeleteAnnotationUseCase{
		ticketRepo:     ticketRepo,
		annotationRepo: annotationRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *DeleteAnnotationUseCase) Execute(ctx context.Context, cmd DeleteAnnotationCommand) (*DeleteAnnotationResult, error) {
	uc.logger.Infow("executing delete annotation use case",
		"ticket_id", cmd.TicketID, "annotation_id", cmd.AnnotationID)

	if cmd.TicketID == 0 || cmd.AnnotationID == 0 {
		return nil, errors.NewValidationError("ticket ID and annotation ID are required")
	}

	found, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket for annotation delete", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if found == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	// The delete is scoped to the ticket, so an annotation belonging to a
	// different ticket reports not found instead of being removed. The row
	// delete and the parent's updatedAt bump commit together.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		rows, err := uc.annotationRepo.Delete(txCtx, cmd.TicketID, cmd.AnnotationID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return errors.NewNotFoundError("annotation not found")
		}
		found.Touch()
		return uc.ticketRepo.Update(txCtx, found)
	})
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete annotation",
				"ticket_id", cmd.TicketID, "annotation_id", cmd.AnnotationID, "error", err)
		}
		return nil, err
	}

	return &DeleteAnnotationResult{
		TicketID:     cmd.TicketID,
		AnnotationID: cmd.AnnotationID,
	}, nil
}
