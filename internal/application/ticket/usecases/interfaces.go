package usecases

import (
	"context"
	"io"

	"helpdesk/internal/application/ticket/dto"
)

// TransactionManager runs fn inside a database transaction carried on the
// context, so repository calls made by fn share it.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// FileStore persists uploaded attachment content on disk. Store returns the
// generated stored name the content was written under.
type FileStore interface {
	Store(originalName string, content io.Reader) (string, error)
	Remove(fileName string) error
	Path(fileName string) string
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error)
}

type GetStatisticsExecutor interface {
	Execute(ctx context.Context, query GetStatisticsQuery) (*GetStatisticsResult, error)
}

type AddAnnotationExecutor interface {
	Execute(ctx context.Context, cmd AddAnnotationCommand) (*AddAnnotationResult, error)
}

type ListAnnotationsExecutor interface {
	Execute(ctx context.Context, query ListAnnotationsQuery) ([]dto.AnnotationDTO, error)
}

type DeleteAnnotationExecutor interface {
	Execute(ctx context.Context, cmd DeleteAnnotationCommand) (*DeleteAnnotationResult, error)
}

type UploadAttachmentExecutor interface {
	Execute(ctx context.Context, cmd UploadAttachmentCommand) (*UploadAttachmentResult, error)
}

type GetAttachmentExecutor interface {
	Execute(ctx context.Context, query GetAttachmentQuery) (*GetAttachmentResult, error)
}
