package helpers

import (
	"context"
	"sync"
	"time"

	"github.com/andrescamacho/puremvc-go/internal/adapters/persistence"
	"github.com/andrescamacho/puremvc-go/pkg/mvc"
)

// MockJournalRepository is an in-memory JournalRepository for testing
type MockJournalRepository struct {
	mu        sync.Mutex
	Entries   []persistence.JournalEntry
	RecordErr error
}

func NewMockJournalRepository() *MockJournalRepository {
	return &MockJournalRepository{}
}

func (m *MockJournalRepository) Record(ctx context.Context, notification mvc.Notification) error {
	if m.RecordErr != nil {
		return m.RecordErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, persistence.JournalEntry{
		ID:             len(m.Entries) + 1,
		NotificationID: notification.ID(),
		Name:           notification.Name(),
		Type:           notification.Type(),
		Body:           notification.Body(),
		RecordedAt:     time.Now().UTC(),
	})
	return nil
}

func (m *MockJournalRepository) FindByName(ctx context.Context, name string, limit int) ([]persistence.JournalEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var found []persistence.JournalEntry
	for i := len(m.Entries) - 1; i >= 0; i-- {
		if m.Entries[i].Name != name {
			continue
		}
		found = append(found, m.Entries[i])
		if limit > 0 && len(found) == limit {
			break
		}
	}
	return found, nil
}

func (m *MockJournalRepository) Count(ctx context.Context, name string) (int64, error) {
	entries, _ := m.FindByName(ctx, name, 0)
	return int64(len(entries)), nil
}

var _ persistence.JournalRepository = (*MockJournalRepository)(nil)
