package models

// SettingModel is a small key/value table for operational counters, most
// importantly the ticket number sequence.
type SettingModel struct {
	ID        uint   `gorm:"primaryKey"`
	Key       string `gorm:"uniqueIndex;size:100;not null;column:key"`
	Value     string `gorm:"size:255;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (SettingModel) TableName() string {
	return "settings"
}

// TicketNextIDKey is the settings row holding the next ticket sequence value.
const TicketNextIDKey = "ticket_next_id"
