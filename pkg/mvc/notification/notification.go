package notification

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/andrescamacho/puremvc-go/pkg/mvc"
)

// Notification is the default mvc.Notification value
type Notification struct {
	id               string
	name             string
	body             any
	notificationType string
}

// New creates a notification with a fresh correlation ID
func New(name string, body any, notificationType string) *Notification {
	return &Notification{
		id:               uuid.New().String(),
		name:             name,
		body:             body,
		notificationType: notificationType,
	}
}

// Named creates a notification carrying only a name
func Named(name string) *Notification {
	return New(name, nil, "")
}

func (n *Notification) ID() string   { return n.id }
func (n *Notification) Name() string { return n.name }
func (n *Notification) Body() any    { return n.body }
func (n *Notification) Type() string { return n.notificationType }

func (n *Notification) SetBody(body any) {
	n.body = body
}

func (n *Notification) SetType(notificationType string) {
	n.notificationType = notificationType
}

func (n *Notification) String() string {
	body := "null"
	if n.body != nil {
		body = fmt.Sprintf("%v", n.body)
	}
	notificationType := "null"
	if n.notificationType != "" {
		notificationType = n.notificationType
	}
	return fmt.Sprintf("Notification Name: %s\nBody: %s\nType: %s", n.name, body, notificationType)
}

var _ mvc.Notification = (*Notification)(nil)
