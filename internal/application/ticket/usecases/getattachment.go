package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetAttachmentQuery struct {
	TicketID  uint
	FileIndex int
}

// GetAttachmentResult carries the attachment metadata plus the location of
// its bytes on disk for handlers that serve the content directly.
type GetAttachmentResult struct {
	Attachment dto.AttachmentDTO
	FilePath   string
}

type GetAttachmentUseCase struct {
	ticketRepo ticket.TicketRepository
	files      FileStore
	logger     logger.Interface
}

func NewGetAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	files FileStore,
	logger logger.Interface,
) *GetAttachmentUseCase {
	return &GetAttachmentUseCase{
		ticketRepo: ticketRepo,
		files:      files,
		logger:     logger,
	}
}

func (uc *GetAttachmentUseCase) Execute(ctx context.Context, query GetAttachmentQuery) (*GetAttachmentResult, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	found, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket for attachment",
			"ticket_id", query.TicketID, "error", err)
		return nil, err
	}
	if found == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	attachment, err := found.AttachmentAt(query.FileIndex)
	if err != nil {
		return nil, errors.NewNotFoundError("attachment not found")
	}

	return &GetAttachmentResult{
		Attachment: dto.ToAttachmentDTO(attachment),
		FilePath:   uc.files.Path(attachment.FileName()),
	}, nil
}
