package mediator

import (
	"github.com/google/uuid"

	"github.com/andrescamacho/puremvc-go/pkg/mvc"
)

// DefaultName is used when a mediator is constructed without a name
const DefaultName = "Mediator"

// notifyContext is the identifier a BaseMediator hands to the View.
// It is a value, so holding it never keeps the mediator alive.
type notifyContext struct {
	id string
}

// BaseMediator is the default adapter for mvc.Mediator.
//
// It stores the name and view component and provides no interests and no-op
// lifecycle hooks. It does not implement mvc.NotificationHandler; types that
// embed it opt in to receiving notifications by defining HandleNotification.
type BaseMediator struct {
	name          string
	viewComponent any
	context       notifyContext
}

// New creates a base mediator, falling back to DefaultName for an empty name
func New(name string, viewComponent any) *BaseMediator {
	if name == "" {
		name = DefaultName
	}
	return &BaseMediator{
		name:          name,
		viewComponent: viewComponent,
		context:       notifyContext{id: uuid.New().String()},
	}
}

func (m *BaseMediator) Name() string {
	return m.name
}

func (m *BaseMediator) ViewComponent() any {
	return m.viewComponent
}

func (m *BaseMediator) SetViewComponent(viewComponent any) {
	m.viewComponent = viewComponent
}

func (m *BaseMediator) Context() any {
	return m.context
}

func (m *BaseMediator) ListNotificationInterests() []string {
	return nil
}

func (m *BaseMediator) OnRegister() {}

func (m *BaseMediator) OnRemove() {}

var _ mvc.Mediator = (*BaseMediator)(nil)
