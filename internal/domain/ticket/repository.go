package ticket

import (
	"context"

	vo "helpdesk/internal/domain/ticket/value_objects"
)

// TicketFilter narrows List results. Nil enum filters match everything;
// Search is a case-insensitive substring matched against the ticket number,
// requester first/last name, subject, and description.
type TicketFilter struct {
	Status   *vo.TicketStatus
	Priority *vo.Priority
	Search   string
}

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	// Delete removes the ticket and all owned annotations and attachments
	// in one transaction, returning the total rows removed (0 means the
	// ticket did not exist) plus the stored file names of the removed
	// attachments so the caller can clean up the uploads directory.
	Delete(ctx context.Context, ticketID uint) (int64, []string, error)
	// GetByID returns the full aggregate including annotations and
	// attachments.
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByNumber(ctx context.Context, number string) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[vo.TicketStatus]int64, error)
	CountByPriority(ctx context.Context) (map[vo.Priority]int64, error)
}

type AnnotationRepository interface {
	Save(ctx context.Context, annotation *Annotation) error
	// ListByTicketID returns annotations newest first.
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Annotation, error)
	// Delete removes the annotation only when it belongs to the given
	// ticket; the returned count is 0 otherwise.
	Delete(ctx context.Context, ticketID, annotationID uint) (int64, error)
}

type AttachmentRepository interface {
	Save(ctx context.Context, attachment *Attachment) error
	// ListByTicketID returns attachments in insertion order, which is the
	// order positional file indexes refer to.
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Attachment, error)
}

// NumberGenerator hands out the next human-facing ticket number. Next must be
// atomic with respect to concurrent creation: callers run it inside the same
// transaction that inserts the ticket.
type NumberGenerator interface {
	Next(ctx context.Context) (string, error)
}
