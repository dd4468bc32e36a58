package ticket

import (
	"fmt"
	"strings"
	"time"

	"helpdesk/internal/shared/biztime"
)

const (
	// AnonymousAuthor is used when a caller adds an annotation without
	// identifying themselves.
	AnonymousAuthor = "Anônimo"

	// SystemAuthor labels annotations emitted by the service itself
	// (attachment uploads). Stored like any other annotation; the label is
	// the only distinction.
	SystemAuthor = "Sistema"
)

// Annotation is a timestamped remark on a ticket. Immutable once created
// except for deletion.
type Annotation struct {
	id        uint
	ticketID  uint
	text      string
	author    string
	createdAt time.Time
}

// NewAnnotation validates and builds an annotation. Text must be non-empty
// after trimming; a missing author defaults to the anonymous label.
func NewAnnotation(ticketID uint, text string, author string) (*Annotation, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return nil, fmt.Errorf("annotation text cannot be empty")
	}
	author = strings.TrimSpace(author)
	if len(author) == 0 {
		author = AnonymousAuthor
	}

	return &Annotation{
		ticketID:  ticketID,
		text:      text,
		author:    author,
		createdAt: biztime.Now(),
	}, nil
}

// NewSystemAnnotation builds a service-generated annotation.
func NewSystemAnnotation(ticketID uint, text string) (*Annotation, error) {
	return NewAnnotation(ticketID, text, SystemAuthor)
}

// ReconstructAnnotation rebuilds an annotation from persistence.
func ReconstructAnnotation(id uint, ticketID uint, text string, author string, createdAt time.Time) (*Annotation, error) {
	if id == 0 {
		return nil, fmt.Errorf("annotation ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Annotation{
		id:        id,
		ticketID:  ticketID,
		text:      text,
		author:    author,
		createdAt: createdAt,
	}, nil
}

func (a *Annotation) ID() uint {
	return a.id
}

func (a *Annotation) TicketID() uint {
	return a.ticketID
}

func (a *Annotation) Text() string {
	return a.text
}

func (a *Annotation) Author() string {
	return a.author
}

func (a *Annotation) CreatedAt() time.Time {
	return a.createdAt
}

// IsSystem reports whether the annotation was emitted by the service.
func (a *Annotation) IsSystem() bool {
	return a.author == SystemAuthor
}

func (a *Annotation) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("annotation ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("annotation ID cannot be zero")
	}
	a.id = id
	return nil
}
