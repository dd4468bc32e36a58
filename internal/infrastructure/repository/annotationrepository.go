package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	db "helpdesk/internal/shared/db"
)

type AnnotationRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewAnnotationRepository(db *gorm.DB) *AnnotationRepository {
	return &AnnotationRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *AnnotationRepository) Save(ctx context.Context, annotation *ticket.Annotation) error {
	model := r.mapper.AnnotationToModel(annotation)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save annotation: %w", err)
	}

	return annotation.SetID(model.ID)
}

func (r *AnnotationRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Annotation, error) {
	var annotationModels []models.AnnotationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at DESC, id DESC").
		Find(&annotationModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list annotations: %w", err)
	}

	annotations := make([]*ticket.Annotation, len(annotationModels))
	for i, model := range annotationModels {
		annotation, err := r.mapper.AnnotationToDomain(&model)
		if err != nil {
			return nil, err
		}
		annotations[i] = annotation
	}

	return annotations, nil
}

// Delete is scoped to the owning ticket; an annotation ID belonging to
// another ticket is reported as zero rows.
func (r *AnnotationRepository) Delete(ctx context.Context, ticketID, annotationID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("id = ? AND ticket_id = ?", annotationID, ticketID).
		Delete(&models.AnnotationModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete annotation: %w", result.Error)
	}

	return result.RowsAffected, nil
}
