// Package dto holds the transport representations of the ticket aggregate.
// Field names follow the JSON contract the browser clients already consume.
package dto

import (
	"time"

	"helpdesk/internal/domain/ticket"
)

type TicketDTO struct {
	ID              uint            `json:"id"`
	Number          string          `json:"ticketNumber"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	Department      string          `json:"department"`
	DestinationArea string          `json:"destinationArea"`
	Subject         string          `json:"subject"`
	Description     string          `json:"description"`
	Contact         string          `json:"contact,omitempty"`
	Status          string          `json:"status"`
	Priority        string          `json:"priority"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	Annotations     []AnnotationDTO `json:"annotations"`
	Attachments     []AttachmentDTO `json:"attachments"`
}

type TicketListItemDTO struct {
	ID              uint      `json:"id"`
	Number          string    `json:"ticketNumber"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Department      string    `json:"department"`
	DestinationArea string    `json:"destinationArea"`
	Subject         string    `json:"subject"`
	Description     string    `json:"description"`
	Contact         string    `json:"contact,omitempty"`
	Status          string    `json:"status"`
	Priority        string    `json:"priority"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	AnnotationCount int       `json:"annotationCount"`
	AttachmentCount int       `json:"attachmentCount"`
}

type AnnotationDTO struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticketId"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

type AttachmentDTO struct {
	ID           uint      `json:"id"`
	TicketID     uint      `json:"ticketId"`
	FileName     string    `json:"fileName"`
	OriginalName string    `json:"originalName"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"contentType,omitempty"`
	Path         string    `json:"path"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UploadsURLPrefix is the public mount point of the uploads directory.
const UploadsURLPrefix = "/uploads/"

func ToTicketDTO(t *ticket.Ticket) TicketDTO {
	annotations := t.Annotations()
	annotationDTOs := make([]AnnotationDTO, 0, len(annotations))
	for _, a := range annotations {
		annotationDTOs = append(annotationDTOs, ToAnnotationDTO(a))
	}

	attachments := t.Attachments()
	attachmentDTOs := make([]AttachmentDTO, 0, len(attachments))
	for _, a := range attachments {
		attachmentDTOs = append(attachmentDTOs, ToAttachmentDTO(a))
	}

	return TicketDTO{
		ID:              t.ID(),
		Number:          t.Number(),
		FirstName:       t.FirstName(),
		LastName:        t.LastName(),
		Department:      t.Department(),
		DestinationArea: t.DestinationArea(),
		Subject:         t.Subject(),
		Description:     t.Description(),
		Contact:         t.Contact(),
		Status:          t.Status().String(),
		Priority:        t.Priority().String(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
		Annotations:     annotationDTOs,
		Attachments:     attachmentDTOs,
	}
}

func ToTicketListItemDTO(t *ticket.Ticket) TicketListItemDTO {
	return TicketListItemDTO{
		ID:              t.ID(),
		Number:          t.Number(),
		FirstName:       t.FirstName(),
		LastName:        t.LastName(),
		Department:      t.Department(),
		DestinationArea: t.DestinationArea(),
		Subject:         t.Subject(),
		Description:     t.Description(),
		Contact:         t.Contact(),
		Status:          t.Status().String(),
		Priority:        t.Priority().String(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
		AnnotationCount: len(t.Annotations()),
		AttachmentCount: len(t.Attachments()),
	}
}

func ToAnnotationDTO(a *ticket.Annotation) AnnotationDTO {
	return AnnotationDTO{
		ID:        a.ID(),
		TicketID:  a.TicketID(),
		Text:      a.Text(),
		Author:    a.Author(),
		CreatedAt: a.CreatedAt(),
	}
}

func ToAttachmentDTO(a *ticket.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:           a.ID(),
		TicketID:     a.TicketID(),
		FileName:     a.FileName(),
		OriginalName: a.OriginalName(),
		Size:         a.Size(),
		ContentType:  a.ContentType(),
		Path:         UploadsURLPrefix + a.FileName(),
		CreatedAt:    a.CreatedAt(),
	}
}
