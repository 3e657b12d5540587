package console

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"

	"github.com/andrescamacho/puremvc-go/pkg/mvc"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/mediator"
)

// MediatorName is the name the console mediator registers under
const MediatorName = "ConsoleMediator"

// Mediator prints the notifications it is interested in to its view
// component, an io.Writer
type Mediator struct {
	*mediator.BaseMediator
	interests []string
}

func NewMediator(out io.Writer, interests []string) *Mediator {
	return &Mediator{
		BaseMediator: mediator.New(MediatorName, out),
		interests:    append([]string(nil), interests...),
	}
}

func (m *Mediator) ListNotificationInterests() []string {
	return append([]string(nil), m.interests...)
}

// HandleNotification writes one line: "<name> [<type>] <json body>"
func (m *Mediator) HandleNotification(ctx context.Context, notification mvc.Notification) error {
	out, ok := m.ViewComponent().(io.Writer)
	if !ok {
		return nil
	}

	line, err := FormatLine(notification)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(out, line+"\n"); err != nil {
		return fmt.Errorf("console: %w", err)
	}
	return nil
}

// FormatLine renders a notification the way the console prints it
func FormatLine(notification mvc.Notification) (string, error) {
	parts := []string{notification.Name()}
	if t := notification.Type(); t != "" {
		parts = append(parts, "["+t+"]")
	}
	if body := notification.Body(); body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return "", fmt.Errorf("console: failed to encode body of %q: %w", notification.Name(), err)
		}
		parts = append(parts, string(encoded))
	}
	return strings.Join(parts, " "), nil
}

var (
	_ mvc.Mediator            = (*Mediator)(nil)
	_ mvc.NotificationHandler = (*Mediator)(nil)
)
