package ticket

import (
	"fmt"
	"time"

	"helpdesk/internal/shared/biztime"
)

// MaxAttachmentSize is the hard ceiling for uploaded files. Enforced before
// any bytes reach disk.
const MaxAttachmentSize = 10 << 20 // 10 MiB

// Attachment references a binary stored in the uploads directory. FileName
// is the generated on-disk name; OriginalName is display metadata only and
// is never used as a storage path.
type Attachment struct {
	id           uint
	ticketID     uint
	fileName     string
	originalName string
	size         int64
	contentType  string
	createdAt    time.Time
}

// NewAttachment builds an attachment record for already-validated content.
func NewAttachment(ticketID uint, fileName, originalName string, size int64, contentType string) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(fileName) == 0 {
		return nil, fmt.Errorf("stored file name is required")
	}
	if len(originalName) == 0 {
		return nil, fmt.Errorf("original file name is required")
	}
	if size < 0 {
		return nil, fmt.Errorf("file size cannot be negative")
	}
	if size > MaxAttachmentSize {
		return nil, fmt.Errorf("file exceeds maximum size of %d bytes", MaxAttachmentSize)
	}

	return &Attachment{
		ticketID:     ticketID,
		fileName:     fileName,
		originalName: originalName,
		size:         size,
		contentType:  contentType,
		createdAt:    biztime.Now(),
	}, nil
}

// ReconstructAttachment rebuilds an attachment from persistence.
func ReconstructAttachment(id uint, ticketID uint, fileName, originalName string, size int64, contentType string, createdAt time.Time) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Attachment{
		id:           id,
		ticketID:     ticketID,
		fileName:     fileName,
		originalName: originalName,
		size:         size,
		contentType:  contentType,
		createdAt:    createdAt,
	}, nil
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) TicketID() uint {
	return a.ticketID
}

func (a *Attachment) FileName() string {
	return a.fileName
}

func (a *Attachment) OriginalName() string {
	return a.originalName
}

func (a *Attachment) Size() int64 {
	return a.size
}

func (a *Attachment) ContentType() string {
	return a.contentType
}

func (a *Attachment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
