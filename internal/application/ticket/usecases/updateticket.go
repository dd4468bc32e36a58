package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// UpdateTicketCommand carries a partial update: nil fields keep their
// current value. Flat attributes are allow-listed here; annotations and
// attachments have their own endpoints.
type UpdateTicketCommand struct {
	TicketID        uint
	FirstName       *string
	LastName        *string
	Department      *string
	DestinationArea *string
	Subject         *string
	Description     *string
	Contact         *string
	Status          *string
	Priority        *string
}

type UpdateTicketResult struct {
	TicketID  uint      `json:"id"`
	Number    string    `json:"ticketNumber"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	update := ticket.Update{
		FirstName:       cmd.FirstName,
		LastName:        cmd.LastName,
		Department:      cmd.Department,
		DestinationArea: cmd.DestinationArea,
		Subject:         cmd.Subject,
		Description:     cmd.Description,
		Contact:         cmd.Contact,
	}

	if cmd.Status != nil {
		status, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		update.Status = &status
	}

	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		update.Priority = &priority
	}

	found, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket for update", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if found == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if err := found.ApplyUpdate(update); err != nil {
		uc.logger.Errorw("invalid ticket update", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, found); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket updated successfully",
		"ticket_id", found.ID(), "status", found.Status().String())

	return &UpdateTicketResult{
		TicketID:  found.ID(),
		Number:    found.Number(),
		Status:    found.Status().String(),
		Priority:  found.Priority().String(),
		UpdatedAt: found.UpdatedAt(),
	}, nil
}
