package journal

import (
	"context"
	"fmt"

	"github.com/andrescamacho/puremvc-go/internal/adapters/persistence"
	"github.com/andrescamacho/puremvc-go/pkg/mvc"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/logging"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/mediator"
)

// MediatorName is the name the journal registers under
const MediatorName = "JournalMediator"

// Mediator records every notification it is interested in to a
// JournalRepository. The repository is its view component.
type Mediator struct {
	*mediator.BaseMediator
	interests []string
	logger    logging.Logger
}

// NewMediator creates a journal mediator for the given notification names
func NewMediator(repo persistence.JournalRepository, interests []string, logger logging.Logger) *Mediator {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Mediator{
		BaseMediator: mediator.New(MediatorName, repo),
		interests:    append([]string(nil), interests...),
		logger:       logger,
	}
}

// Repository returns the view component as a JournalRepository, or nil
func (m *Mediator) Repository() persistence.JournalRepository {
	repo, _ := m.ViewComponent().(persistence.JournalRepository)
	return repo
}

func (m *Mediator) ListNotificationInterests() []string {
	return append([]string(nil), m.interests...)
}

func (m *Mediator) OnRegister() {
	m.logger.Log(logging.LevelInfo, "Notification journal attached", map[string]interface{}{
		"interests": m.interests,
	})
}

func (m *Mediator) OnRemove() {
	m.logger.Log(logging.LevelInfo, "Notification journal detached", nil)
}

// HandleNotification records the notification; without a repository it does nothing
func (m *Mediator) HandleNotification(ctx context.Context, notification mvc.Notification) error {
	repo := m.Repository()
	if repo == nil {
		return nil
	}
	if err := repo.Record(ctx, notification); err != nil {
		return fmt.Errorf("journal: %w", err)
	}
	return nil
}

var (
	_ mvc.Mediator            = (*Mediator)(nil)
	_ mvc.NotificationHandler = (*Mediator)(nil)
)
