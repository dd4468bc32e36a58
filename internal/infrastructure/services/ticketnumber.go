// Package services hosts infrastructure-side domain service implementations.
package services

import (
	"context"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/biztime"
	db "helpdesk/internal/shared/db"
)

// TicketNumberGenerator hands out sequential TK-prefixed numbers backed by
// the settings table. Next must run inside the transaction that inserts the
// ticket, so a rolled-back creation does not burn a number and concurrent
// creations cannot collide.
type TicketNumberGenerator struct {
	db *gorm.DB
}

func NewTicketNumberGenerator(db *gorm.DB) *TicketNumberGenerator {
	return &TicketNumberGenerator{db: db}
}

func (g *TicketNumberGenerator) Next(ctx context.Context) (string, error) {
	tx := db.GetTxFromContext(ctx, g.db)

	// Advance first with a single in-place increment. Overlapping creations
	// serialize on the row lock instead of racing a read-then-write, so both
	// get distinct numbers rather than one of them failing.
	result := tx.
		Model(&models.SettingModel{}).
		Where(&models.SettingModel{Key: models.TicketNextIDKey}).
		Updates(map[string]interface{}{
			"value":      gorm.Expr("value + 1"),
			"updated_at": biztime.Now().UnixMilli(),
		})
	if result.Error != nil {
		return "", fmt.Errorf("failed to advance ticket sequence: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return "", fmt.Errorf("ticket sequence row is missing")
	}

	var setting models.SettingModel
	if err := tx.
		Where(&models.SettingModel{Key: models.TicketNextIDKey}).
		First(&setting).Error; err != nil {
		return "", fmt.Errorf("failed to read ticket sequence: %w", err)
	}

	advanced, err := strconv.Atoi(setting.Value)
	if err != nil {
		return "", fmt.Errorf("corrupt ticket sequence value %q: %w", setting.Value, err)
	}

	// The row holds the next unused value; the increment above reserved the
	// previous one for this creation.
	return fmt.Sprintf("TK%04d", advanced-1), nil
}
