package models

// Timestamps are unix milliseconds. The mappers stamp CreatedAt from the
// domain entities (gorm keeps a provided non-zero value on insert); UpdatedAt
// is auto-tracked in milliseconds so Updates calls cannot degrade it to
// seconds.

type TicketModel struct {
	ID              uint   `gorm:"primaryKey"`
	Number          string `gorm:"uniqueIndex;size:50;not null"`
	FirstName       string `gorm:"size:100;not null"`
	LastName        string `gorm:"size:100;not null"`
	Department      string `gorm:"size:100;not null"`
	DestinationArea string `gorm:"size:100;not null;index"`
	Subject         string `gorm:"size:200;not null"`
	Description     string `gorm:"type:text;not null"`
	Contact         string `gorm:"size:200"`
	Status          string `gorm:"size:20;not null;index"`
	Priority        string `gorm:"size:20;not null;index"`
	CreatedAt       int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type AnnotationModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	Text      string `gorm:"type:text;not null"`
	Author    string `gorm:"size:100;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (AnnotationModel) TableName() string {
	return "ticket_annotations"
}

type AttachmentModel struct {
	ID           uint   `gorm:"primaryKey"`
	TicketID     uint   `gorm:"not null;index"`
	FileName     string `gorm:"size:255;not null;uniqueIndex"`
	OriginalName string `gorm:"size:255;not null"`
	Size         int64  `gorm:"not null"`
	ContentType  string `gorm:"size:100"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
}

func (AttachmentModel) TableName() string {
	return "ticket_attachments"
}
