package usecases

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UploadAttachmentCommand struct {
	TicketID     uint
	OriginalName string
	Size         int64
	ContentType  string
	Content      io.Reader
	Uploader     string
}

type UploadAttachmentResult struct {
	AttachmentID uint      `json:"id"`
	TicketID     uint      `json:"ticketId"`
	FileName     string    `json:"fileName"`
	OriginalName string    `json:"originalName"`
	Size         int64     `json:"size"`
	Path         string    `json:"path"`
	CreatedAt    time.Time `json:"createdAt"`
}

type UploadAttachmentUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	annotationRepo ticket.AnnotationRepository
	files          FileStore
	txManager      TransactionManager
	logger         logger.Interface
}

func NewUploadAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	annotationRepo ticket.AnnotationRepository,
	files FileStore,
	txManager TransactionManager,
	logger logger.Interface,
) *UploadAttachmentUseCase {
	return &UploadAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		annotationRepo: annotationRepo,
		files:          files,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *UploadAttachmentUseCase) Execute(ctx context.Context, cmd UploadAttachmentCommand) (*UploadAttachmentResult, error) {
	uc.logger.Infow("executing upload attachment use case",
		"ticket_id", cmd.TicketID, "original_name", cmd.OriginalName, "size", cmd.Size)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if strings.TrimSpace(cmd.OriginalName) == "" {
		return nil, errors.NewValidationError("file name is required")
	}
	if cmd.Content == nil {
		return nil, errors.NewValidationError("file content is required")
	}
	// Oversized uploads are rejected before anything touches the disk.
	if cmd.Size > ticket.MaxAttachmentSize {
		return nil, errors.NewValidationError(
			fmt.Sprintf("file exceeds maximum size of %d bytes", ticket.MaxAttachmentSize))
	}

	found, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket for upload", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if found == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	fileName, err := uc.files.Store(cmd.OriginalName, cmd.Content)
	if err != nil {
		uc.logger.Errorw("failed to store attachment file",
			"ticket_id", cmd.TicketID, "original_name", cmd.OriginalName, "error", err)
		return nil, errors.NewInternalError("failed to store attachment file")
	}

	attachment, err := ticket.NewAttachment(cmd.TicketID, fileName, cmd.OriginalName, cmd.Size, cmd.ContentType)
	if err != nil {
		uc.removeStoredFile(fileName)
		return nil, errors.NewValidationError(err.Error())
	}

	uploader := strings.TrimSpace(cmd.Uploader)
	if uploader == "" {
		uploader = ticket.AnonymousAuthor
	}
	annotation, err := ticket.NewSystemAnnotation(cmd.TicketID,
		fmt.Sprintf("Arquivo anexado: %s (por %s)", cmd.OriginalName, uploader))
	if err != nil {
		uc.removeStoredFile(fileName)
		return nil, errors.NewInternalError(err.Error())
	}

	// Attachment row, trail annotation and the parent's updatedAt bump
	// commit together; the stored file is deleted when any of them fails.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.attachmentRepo.Save(txCtx, attachment); err != nil {
			return err
		}
		if err := uc.annotationRepo.Save(txCtx, annotation); err != nil {
			return err
		}
		found.Touch()
		return uc.ticketRepo.Update(txCtx, found)
	})
	if err != nil {
		uc.logger.Errorw("failed to save attachment", "ticket_id", cmd.TicketID, "error", err)
		uc.removeStoredFile(fileName)
		return nil, err
	}

	uc.logger.Infow("attachment uploaded successfully",
		"ticket_id", cmd.TicketID, "attachment_id", attachment.ID(), "file_name", fileName)

	return &UploadAttachmentResult{
		AttachmentID: attachment.ID(),
		TicketID:     cmd.TicketID,
		FileName:     fileName,
		OriginalName: cmd.OriginalName,
		Size:         cmd.Size,
		Path:         dto.UploadsURLPrefix + fileName,
		CreatedAt:    attachment.CreatedAt(),
	}, nil
}

func (uc *UploadAttachmentUseCase) removeStoredFile(fileName string) {
	if err := uc.files.Remove(fileName); err != nil {
		uc.logger.Warnw("failed to remove stored file", "file", fileName, "error", err)
	}
}
