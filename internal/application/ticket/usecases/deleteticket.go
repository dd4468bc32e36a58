package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
}

type DeleteTicketResult struct {
	TicketID    uint  `json:"id"`
	RowsRemoved int64 `json:"deleted"`
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	files      FileStore
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	files FileStore,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		files:      files,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	rows, fileNames, err := uc.ticketRepo.Delete(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if rows == 0 {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	// Disk cleanup happens after the commit; a leftover file is preferable
	// to a dangling attachment row.
	for _, name := range fileNames {
		if err := uc.files.Remove(name); err != nil {
			uc.logger.Warnw("failed to remove attachment file", "file", name, "error", err)
		}
	}

	uc.logger.Infow("ticket deleted successfully",
		"ticket_id", cmd.TicketID, "rows_removed", rows, "files_removed", len(fileNames))

	return &DeleteTicketResult{
		TicketID:    cmd.TicketID,
		RowsRemoved: rows,
	}, nil
}
