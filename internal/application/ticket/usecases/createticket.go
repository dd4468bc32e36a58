package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	FirstName       string
	LastName        string
	Department      string
	DestinationArea string
	Subject         string
	Description     string
	Contact         string
}

type CreateTicketResult struct {
	TicketID  uint      `json:"id"`
	Number    string    `json:"ticketNumber"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	numbers    ticket.NumberGenerator
	txManager  TransactionManager
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	numbers ticket.NumberGenerator,
	txManager TransactionManager,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		numbers:    numbers,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case",
		"subject", cmd.Subject, "destination_area", cmd.DestinationArea)

	newTicket, err := ticket.NewTicket(
		cmd.FirstName,
		cmd.LastName,
		cmd.Department,
		cmd.DestinationArea,
		cmd.Subject,
		cmd.Description,
		cmd.Contact,
	)
	if err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	// The number is reserved and the ticket inserted in a single
	// transaction so concurrent creations never share a number.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		number, err := uc.numbers.Next(txCtx)
		if err != nil {
			return err
		}
		if err := newTicket.SetNumber(number); err != nil {
			return err
		}
		return uc.ticketRepo.Save(txCtx, newTicket)
	})
	if err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully",
		"ticket_id", newTicket.ID(), "number", newTicket.Number())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Number:    newTicket.Number(),
		Status:    newTicket.Status().String(),
		Priority:  newTicket.Priority().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}
