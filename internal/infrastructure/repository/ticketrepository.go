package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	db "helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select forces zero values through, so a blanked contact persists.
	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("first_name", "last_name", "department", "destination_area",
			"subject", "description", "contact", "status", "priority", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

// Delete removes the ticket together with its annotations and attachment
// rows in one transaction. It reports the total rows removed plus the stored
// file names of the removed attachments.
func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) (int64, []string, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var (
		total     int64
		fileNames []string
	)

	err := tx.Transaction(func(inner *gorm.DB) error {
		var attachmentModels []models.AttachmentModel
		if err := inner.
			Where("ticket_id = ?", ticketID).
			Find(&attachmentModels).Error; err != nil {
			return fmt.Errorf("failed to load attachments: %w", err)
		}
		for _, am := range attachmentModels {
			fileNames = append(fileNames, am.FileName)
		}

		result := inner.Where("ticket_id = ?", ticketID).Delete(&models.AnnotationModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete annotations: %w", result.Error)
		}
		total += result.RowsAffected

		result = inner.Where("ticket_id = ?", ticketID).Delete(&models.AttachmentModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete attachments: %w", result.Error)
		}
		total += result.RowsAffected

		result = inner.Delete(&models.TicketModel{}, ticketID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete ticket: %w", result.Error)
		}
		total += result.RowsAffected

		return nil
	})
	if err != nil {
		return 0, nil, err
	}

	if total == 0 {
		fileNames = nil
	}
	return total, fileNames, nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	t, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadChildren(ctx, t, model.ID); err != nil {
		return nil, err
	}

	return t, nil
}

func (r *TicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("number = ?", number).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	t, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadChildren(ctx, t, model.ID); err != nil {
		return nil, err
	}

	return t, nil
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Search != "" {
		// LOWER on both sides keeps the match case-insensitive on sqlite
		// and mysql alike.
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"LOWER(number) LIKE LOWER(?) OR LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(subject) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)",
			pattern, pattern, pattern, pattern, pattern,
		)
	}

	var ticketModels []models.TicketModel
	if err := query.Order("created_at DESC").Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		if err := r.loadChildren(ctx, t, model.ID); err != nil {
			return nil, err
		}
		tickets[i] = t
	}

	return tickets, nil
}

func (r *TicketRepository) Count(ctx context.Context) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.TicketModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return total, nil
}

func (r *TicketRepository) CountByStatus(ctx context.Context) (map[vo.TicketStatus]int64, error) {
	rows, err := r.countGrouped(ctx, "status")
	if err != nil {
		return nil, err
	}

	counts := make(map[vo.TicketStatus]int64, len(rows))
	for _, row := range rows {
		counts[vo.TicketStatus(row.Value)] = row.Count
	}
	return counts, nil
}

func (r *TicketRepository) CountByPriority(ctx context.Context) (map[vo.Priority]int64, error) {
	rows, err := r.countGrouped(ctx, "priority")
	if err != nil {
		return nil, err
	}

	counts := make(map[vo.Priority]int64, len(rows))
	for _, row := range rows {
		counts[vo.Priority(row.Value)] = row.Count
	}
	return counts, nil
}

type groupedCount struct {
	Value string
	Count int64
}

func (r *TicketRepository) countGrouped(ctx context.Context, column string) ([]groupedCount, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []groupedCount
	if err := tx.
		Model(&models.TicketModel{}).
		Select(column+" AS value, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by %s: %w", column, err)
	}
	return rows, nil
}

// loadChildren queries annotations and attachments for a ticket and adds
// them to the domain entity. Annotations come newest first, attachments in
// insertion order so positional file indexes stay stable.
func (r *TicketRepository) loadChildren(ctx context.Context, t *ticket.Ticket, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var annotationModels []models.AnnotationModel
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at DESC, id DESC").
		Find(&annotationModels).Error; err != nil {
		return fmt.Errorf("failed to load annotations: %w", err)
	}
	for _, am := range annotationModels {
		annotation, err := r.mapper.AnnotationToDomain(&am)
		if err != nil {
			return err
		}
		if err := t.AddAnnotation(annotation); err != nil {
			return err
		}
	}

	var attachmentModels []models.AttachmentModel
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("id ASC").
		Find(&attachmentModels).Error; err != nil {
		return fmt.Errorf("failed to load attachments: %w", err)
	}
	for _, am := range attachmentModels {
		attachment, err := r.mapper.AttachmentToDomain(&am)
		if err != nil {
			return err
		}
		if err := t.AddAttachment(attachment); err != nil {
			return err
		}
	}

	return nil
}
