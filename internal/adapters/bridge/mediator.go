package bridge

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"

	"github.com/andrescamacho/puremvc-go/pkg/mvc"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/logging"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/mediator"
)

// MediatorName is the name the relay registers under
const MediatorName = "NATSBridgeMediator"

// Publisher is the part of *nats.Conn the relay needs
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Payload is the wire form of a relayed notification
type Payload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
	Body any    `json:"body,omitempty"`
}

// Mediator relays notifications to NATS subjects "<prefix>.<name>".
// Its view component is the Publisher, which stays owned by the caller.
type Mediator struct {
	*mediator.BaseMediator
	prefix    string
	interests []string
	logger    logging.Logger
}

// NewMediator creates a relay for the given notification names
func NewMediator(publisher Publisher, prefix string, interests []string, logger logging.Logger) *Mediator {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Mediator{
		BaseMediator: mediator.New(MediatorName, publisher),
		prefix:       strings.TrimSuffix(prefix, "."),
		interests:    append([]string(nil), interests...),
		logger:       logger,
	}
}

// Connect opens a NATS connection suitable for use as the relay's publisher
func Connect(url string) (*nats.Conn, error) {
	conn, err := nats.Connect(url, nats.Name("puremvc-bridge"), nats.MaxReconnects(-1))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
	}
	return conn, nil
}

// Subject returns the subject a notification name is relayed on
func (m *Mediator) Subject(notificationName string) string {
	if m.prefix == "" {
		return notificationName
	}
	return m.prefix + "." + notificationName
}

func (m *Mediator) ListNotificationInterests() []string {
	return append([]string(nil), m.interests...)
}

// HandleNotification encodes and publishes the notification
func (m *Mediator) HandleNotification(ctx context.Context, notification mvc.Notification) error {
	publisher, ok := m.ViewComponent().(Publisher)
	if !ok || publisher == nil {
		return nil
	}

	data, err := json.Marshal(Payload{
		ID:   notification.ID(),
		Name: notification.Name(),
		Type: notification.Type(),
		Body: notification.Body(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode notification %q: %w", notification.Name(), err)
	}

	subject := m.Subject(notification.Name())
	if err := publisher.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}

	m.logger.Log(logging.LevelDebug, "Notification relayed", map[string]interface{}{
		"subject":         subject,
		"notification_id": notification.ID(),
	})
	return nil
}

var (
	_ mvc.Mediator            = (*Mediator)(nil)
	_ mvc.NotificationHandler = (*Mediator)(nil)
	_ Publisher               = (*nats.Conn)(nil)
)
