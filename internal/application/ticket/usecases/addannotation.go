package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AddAnnotationCommand struct {
	TicketID uint
	Text     string
	Author   string
}

type AddAnnotationResult struct {
	AnnotationID uint      `json:"id"`
	TicketID     uint      `json:"ticketId"`
	Author       string    `json:"author"`
	CreatedAt    time.Time `json:"createdAt"`
}

type AddAnnotationUseCase struct {
	ticketRepo     ticket.TicketRepository
	annotationRepo ticket.AnnotationRepository
	txManager      TransactionManager
	logger         logger.Interface
}

func NewAddAnnotationUseCase(
	ticketRepo ticket.TicketRepository,
	annotationRepo ticket.AnnotationRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *AddAnnotationUseCase {
	return &AddAnnotationUseCase{
		ticketRepo:     ticketRepo,
		annotationRepo: annotationRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *AddAnnotationUseCase) Execute(ctx context.Context, cmd AddAnnotationCommand) (*AddAnnotationResult, error) {
	uc.logger.Infow("executing add annotation use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	found, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket for annotation", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if found == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	annotation, err := ticket.NewAnnotation(cmd.TicketID, cmd.Text, cmd.Author)
	if err != nil {
		uc.logger.Errorw("invalid annotation", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	// The annotation insert and the parent's updatedAt bump commit together.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.annotationRepo.Save(txCtx, annotation); err != nil {
			return err
		}
		found.Touch()
		return uc.ticketRepo.Update(txCtx, found)
	})
	if err != nil {
		uc.logger.Errorw("failed to save annotation", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("annotation added successfully",
		"ticket_id", cmd.TicketID, "annotation_id", annotation.ID())

	return &AddAnnotationResult{
		AnnotationID: annotation.ID(),
		TicketID:     cmd.TicketID,
		Author:       annotation.Author(),
		CreatedAt:    annotation.CreatedAt(),
	}, nil
}
