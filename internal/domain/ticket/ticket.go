package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/shared/biztime"
)

// Ticket is the aggregate root for a support request routed between
// departments. The human-facing number (TK + zero-padded sequence) is
// assigned by the repository at creation and never changes.
type Ticket struct {
	id              uint
	number          string
	firstName       string
	lastName        string
	department      string
	destinationArea string
	subject         string
	description     string
	contact         string
	status          vo.TicketStatus
	priority        vo.Priority
	createdAt       time.Time
	updatedAt       time.Time
	annotations     []*Annotation
	attachments     []*Attachment
}

// NewTicket builds a ticket from intake-form data. Status and priority are
// forced to their creation defaults regardless of what the caller supplied.
func NewTicket(
	firstName string,
	lastName string,
	department string,
	destinationArea string,
	subject string,
	description string,
	contact string,
) (*Ticket, error) {
	if len(strings.TrimSpace(firstName)) == 0 {
		return nil, fmt.Errorf("first name is required")
	}
	if len(strings.TrimSpace(lastName)) == 0 {
		return nil, fmt.Errorf("last name is required")
	}
	if len(strings.TrimSpace(department)) == 0 {
		return nil, fmt.Errorf("department is required")
	}
	if len(strings.TrimSpace(destinationArea)) == 0 {
		return nil, fmt.Errorf("destination area is required")
	}
	if len(strings.TrimSpace(subject)) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(strings.TrimSpace(description)) == 0 {
		return nil, fmt.Errorf("description is required")
	}

	now := biztime.Now()
	return &Ticket{
		firstName:       firstName,
		lastName:        lastName,
		department:      department,
		destinationArea: destinationArea,
		subject:         subject,
		description:     description,
		contact:         contact,
		status:          vo.StatusOpen,
		priority:        vo.PriorityMedium,
		createdAt:       now,
		updatedAt:       now,
		annotations:     []*Annotation{},
		attachments:     []*Attachment{},
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence.
func ReconstructTicket(
	id uint,
	number string,
	firstName string,
	lastName string,
	department string,
	destinationArea string,
	subject string,
	description string,
	contact string,
	status vo.TicketStatus,
	priority vo.Priority,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	return &Ticket{
		id:              id,
		number:          number,
		firstName:       firstName,
		lastName:        lastName,
		department:      department,
		destinationArea: destinationArea,
		subject:         subject,
		description:     description,
		contact:         contact,
		status:          status,
		priority:        priority,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		annotations:     []*Annotation{},
		attachments:     []*Attachment{},
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Number() string {
	return t.number
}

func (t *Ticket) FirstName() string {
	return t.firstName
}

func (t *Ticket) LastName() string {
	return t.lastName
}

func (t *Ticket) Department() string {
	return t.department
}

func (t *Ticket) DestinationArea() string {
	return t.destinationArea
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Contact() string {
	return t.contact
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) Annotations() []*Annotation {
	annotationsCopy := make([]*Annotation, len(t.annotations))
	copy(annotationsCopy, t.annotations)
	return annotationsCopy
}

func (t *Ticket) Attachments() []*Attachment {
	attachmentsCopy := make([]*Attachment, len(t.attachments))
	copy(attachmentsCopy, t.attachments)
	return attachmentsCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetNumber(number string) error {
	if len(t.number) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

// Update carries a partial field update. Nil pointers are untouched fields;
// anything outside this allow-list never reaches the storage layer.
type Update struct {
	FirstName       *string
	LastName        *string
	Department      *string
	DestinationArea *string
	Subject         *string
	Description     *string
	Contact         *string
	Status          *vo.TicketStatus
	Priority        *vo.Priority
}

// IsEmpty reports whether no recognized field is present.
func (u Update) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Department == nil &&
		u.DestinationArea == nil && u.Subject == nil && u.Description == nil &&
		u.Contact == nil && u.Status == nil && u.Priority == nil
}

// ApplyUpdate mutates the ticket with the provided fields and re-stamps
// updatedAt. An empty update is a validation failure, not a silent no-op.
// Required fields cannot be blanked; contact may be.
func (t *Ticket) ApplyUpdate(u Update) error {
	if u.IsEmpty() {
		return fmt.Errorf("no fields to update")
	}

	if u.FirstName != nil {
		if len(strings.TrimSpace(*u.FirstName)) == 0 {
			return fmt.Errorf("first name cannot be empty")
		}
		t.firstName = *u.FirstName
	}
	if u.LastName != nil {
		if len(strings.TrimSpace(*u.LastName)) == 0 {
			return fmt.Errorf("last name cannot be empty")
		}
		t.lastName = *u.LastName
	}
	if u.Department != nil {
		if len(strings.TrimSpace(*u.Department)) == 0 {
			return fmt.Errorf("department cannot be empty")
		}
		t.department = *u.Department
	}
	if u.DestinationArea != nil {
		if len(strings.TrimSpace(*u.DestinationArea)) == 0 {
			return fmt.Errorf("destination area cannot be empty")
		}
		t.destinationArea = *u.DestinationArea
	}
	if u.Subject != nil {
		if len(strings.TrimSpace(*u.Subject)) == 0 {
			return fmt.Errorf("subject cannot be empty")
		}
		t.subject = *u.Subject
	}
	if u.Description != nil {
		if len(strings.TrimSpace(*u.Description)) == 0 {
			return fmt.Errorf("description cannot be empty")
		}
		t.description = *u.Description
	}
	if u.Contact != nil {
		t.contact = *u.Contact
	}
	if u.Status != nil {
		// Transitions are unrestricted; only vocabulary membership is checked.
		if !u.Status.IsValid() {
			return fmt.Errorf("invalid status: %s", *u.Status)
		}
		t.status = *u.Status
	}
	if u.Priority != nil {
		if !u.Priority.IsValid() {
			return fmt.Errorf("invalid priority: %s", *u.Priority)
		}
		t.priority = *u.Priority
	}

	t.updatedAt = biztime.Now()
	return nil
}

// Touch re-stamps updatedAt. Called when a child record (annotation,
// attachment) changes under the ticket.
func (t *Ticket) Touch() {
	t.updatedAt = biztime.Now()
}

// AddAnnotation attaches an already-built annotation to the in-memory
// aggregate. Persistence is the repository's job.
func (t *Ticket) AddAnnotation(a *Annotation) error {
	if a == nil {
		return fmt.Errorf("annotation cannot be nil")
	}
	if a.TicketID() != t.id {
		return fmt.Errorf("annotation ticket ID mismatch")
	}
	t.annotations = append(t.annotations, a)
	return nil
}

// AddAttachment attaches an already-stored attachment to the in-memory
// aggregate.
func (t *Ticket) AddAttachment(a *Attachment) error {
	if a == nil {
		return fmt.Errorf("attachment cannot be nil")
	}
	if a.TicketID() != t.id {
		return fmt.Errorf("attachment ticket ID mismatch")
	}
	t.attachments = append(t.attachments, a)
	return nil
}

// AttachmentAt returns the attachment at the given positional index, in
// insertion order.
func (t *Ticket) AttachmentAt(index int) (*Attachment, error) {
	if index < 0 || index >= len(t.attachments) {
		return nil, fmt.Errorf("attachment index %d out of range", index)
	}
	return t.attachments[index], nil
}

// RequesterName returns the display name of the requester.
func (t *Ticket) RequesterName() string {
	return strings.TrimSpace(t.firstName + " " + t.lastName)
}
