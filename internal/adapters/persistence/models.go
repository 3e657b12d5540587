package persistence

import (
	"time"
)

// NotificationJournalModel represents the notification_journal table
type NotificationJournalModel struct {
	ID             int       `gorm:"column:id;primaryKey;autoIncrement"`
	NotificationID string    `gorm:"column:notification_id;not null;index"`
	Name           string    `gorm:"column:name;not null;index"`
	Type           string    `gorm:"column:type"`
	Body           string    `gorm:"column:body;type:text"` // JSON stored as string
	RecordedAt     time.Time `gorm:"column:recorded_at;not null;index"`
}

func (NotificationJournalModel) TableName() string {
	return "notification_journal"
}
