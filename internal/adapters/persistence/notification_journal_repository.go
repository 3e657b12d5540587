package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"gorm.io/gorm"

	"github.com/andrescamacho/puremvc-go/pkg/mvc"
)

// JournalRepository persists dispatched notifications
type JournalRepository interface {
	// Record appends a notification to the journal
	Record(ctx context.Context, notification mvc.Notification) error

	// FindByName returns the most recent entries for a notification name, newest first
	FindByName(ctx context.Context, name string, limit int) ([]JournalEntry, error)

	// Count returns how many entries exist for a notification name
	Count(ctx context.Context, name string) (int64, error)
}

// JournalEntry represents a recorded notification
type JournalEntry struct {
	ID             int
	NotificationID string
	Name           string
	Type           string
	Body           any
	RecordedAt     time.Time
}

// GormJournalRepository is a GORM-based implementation
type GormJournalRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormJournalRepository creates a new journal repository
// If now is nil, uses the system clock in UTC
func NewGormJournalRepository(db *gorm.DB, now func() time.Time) *GormJournalRepository {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &GormJournalRepository{db: db, now: now}
}

// Record writes a journal entry; bodies that cannot be encoded are stored as their %v text
func (r *GormJournalRepository) Record(ctx context.Context, notification mvc.Notification) error {
	body, err := encodeBody(notification.Body())
	if err != nil {
		return err
	}

	model := &NotificationJournalModel{
		NotificationID: notification.ID(),
		Name:           notification.Name(),
		Type:           notification.Type(),
		Body:           body,
		RecordedAt:     r.now(),
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to record notification %q: %w", notification.Name(), err)
	}
	return nil
}

// FindByName retrieves journal entries for a notification name
func (r *GormJournalRepository) FindByName(ctx context.Context, name string, limit int) ([]JournalEntry, error) {
	var models []NotificationJournalModel

	query := r.db.WithContext(ctx).
		Where("name = ?", name).
		Order("recorded_at DESC").
		Order("id DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}

	entries := make([]JournalEntry, len(models))
	for i, model := range models {
		entries[i] = JournalEntry{
			ID:             model.ID,
			NotificationID: model.NotificationID,
			Name:           model.Name,
			Type:           model.Type,
			Body:           decodeBody(model.Body),
			RecordedAt:     model.RecordedAt,
		}
	}

	return entries, nil
}

// Count returns the number of entries recorded for name
func (r *GormJournalRepository) Count(ctx context.Context, name string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&NotificationJournalModel{}).
		Where("name = ?", name).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count journal entries: %w", err)
	}
	return count, nil
}

func encodeBody(body any) (string, error) {
	if body == nil {
		return "", nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		data, err = json.Marshal(fmt.Sprintf("%v", body))
		if err != nil {
			return "", fmt.Errorf("failed to encode notification body: %w", err)
		}
	}
	return string(data), nil
}

func decodeBody(raw string) any {
	if raw == "" {
		return nil
	}
	var body any
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		// If unmarshal fails, return the raw text
		return raw
	}
	return body
}

var _ JournalRepository = (*GormJournalRepository)(nil)
