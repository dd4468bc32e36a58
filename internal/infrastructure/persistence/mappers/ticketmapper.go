package mappers

import (
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/biztime"
)

// TicketMapper handles the conversion between ticket domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	AnnotationToModel(a *ticket.Annotation) *models.AnnotationModel
	AnnotationToDomain(model *models.AnnotationModel) (*ticket.Annotation, error)
	AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel
	AttachmentToDomain(model *models.AttachmentModel) (*ticket.Attachment, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
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
		CreatedAt:       t.CreatedAt().UnixMilli(),
		UpdatedAt:       t.UpdatedAt().UnixMilli(),
	}
}

// ToDomain converts only the flat ticket fields. Annotations and attachments
// are loaded separately by the repository.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.FirstName,
		model.LastName,
		model.Department,
		model.DestinationArea,
		model.Subject,
		model.Description,
		model.Contact,
		vo.TicketStatus(model.Status),
		vo.Priority(model.Priority),
		biztime.FromUnixMilli(model.CreatedAt),
		biztime.FromUnixMilli(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) AnnotationToModel(a *ticket.Annotation) *models.AnnotationModel {
	return &models.AnnotationModel{
		ID:        a.ID(),
		TicketID:  a.TicketID(),
		Text:      a.Text(),
		Author:    a.Author(),
		CreatedAt: a.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) AnnotationToDomain(model *models.AnnotationModel) (*ticket.Annotation, error) {
	return ticket.ReconstructAnnotation(
		model.ID,
		model.TicketID,
		model.Text,
		model.Author,
		biztime.FromUnixMilli(model.CreatedAt),
	)
}

func (m *TicketMapperImpl) AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:           a.ID(),
		TicketID:     a.TicketID(),
		FileName:     a.FileName(),
		OriginalName: a.OriginalName(),
		Size:         a.Size(),
		ContentType:  a.ContentType(),
		CreatedAt:    a.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) AttachmentToDomain(model *models.AttachmentModel) (*ticket.Attachment, error) {
	return ticket.ReconstructAttachment(
		model.ID,
		model.TicketID,
		model.FileName,
		model.OriginalName,
		model.Size,
		model.ContentType,
		biztime.FromUnixMilli(model.CreatedAt),
	)
}
