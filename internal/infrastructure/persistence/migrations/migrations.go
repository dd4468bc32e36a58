package migrations

import (
	"errors"

	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/biztime"
)

// Migrate brings the schema up to date and seeds the ticket number sequence.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.TicketModel{},
		&models.AnnotationModel{},
		&models.AttachmentModel{},
		&models.UserModel{},
		&models.SettingModel{},
	); err != nil {
		return err
	}
	return seedTicketSequence(db)
}

func seedTicketSequence(db *gorm.DB) error {
	var existing models.SettingModel
	err := db.Where(&models.SettingModel{Key: models.TicketNextIDKey}).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(&models.SettingModel{
		Key:       models.TicketNextIDKey,
		Value:     "1",
		UpdatedAt: biztime.Now().UnixMilli(),
	}).Error
}
