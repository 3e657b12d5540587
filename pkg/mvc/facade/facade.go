package facade

import (
	"context"

	"github.com/andrescamacho/puremvc-go/pkg/mvc"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/core"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/notification"
)

// Facade is the single entry point of an application: it owns the View and
// the Controller and forwards to them
type Facade struct {
	view       *core.View
	controller *core.Controller
}

// New creates a facade; opts are shared by the View and the Controller
func New(opts ...core.Option) *Facade {
	view := core.NewView(opts...)
	return &Facade{
		view:       view,
		controller: core.NewController(view, opts...),
	}
}

func (f *Facade) View() *core.View {
	return f.view
}

func (f *Facade) Controller() *core.Controller {
	return f.controller
}

// Use appends command middleware
func (f *Facade) Use(middleware ...mvc.Middleware) {
	f.controller.Use(middleware...)
}

func (f *Facade) RegisterCommand(notificationName string, factory mvc.CommandFactory) error {
	return f.controller.RegisterCommand(notificationName, factory)
}

func (f *Facade) RemoveCommand(notificationName string) {
	f.controller.RemoveCommand(notificationName)
}

func (f *Facade) HasCommand(notificationName string) bool {
	return f.controller.HasCommand(notificationName)
}

func (f *Facade) RegisterMediator(m mvc.Mediator) error {
	return f.view.RegisterMediator(m)
}

func (f *Facade) RetrieveMediator(mediatorName string) (mvc.Mediator, bool) {
	return f.view.RetrieveMediator(mediatorName)
}

func (f *Facade) RemoveMediator(mediatorName string) (mvc.Mediator, bool) {
	return f.view.RemoveMediator(mediatorName)
}

func (f *Facade) HasMediator(mediatorName string) bool {
	return f.view.HasMediator(mediatorName)
}

// NotifyObservers dispatches an existing notification
func (f *Facade) NotifyObservers(ctx context.Context, n mvc.Notification) error {
	return f.view.NotifyObservers(ctx, n)
}

// SendNotification builds and dispatches a notification
func (f *Facade) SendNotification(ctx context.Context, name string, body any, notificationType string) error {
	return f.view.NotifyObservers(ctx, notification.New(name, body, notificationType))
}

// Notifier is embedded by commands and mediators that need to send notifications
type Notifier struct {
	Facade *Facade
}

func NewNotifier(f *Facade) Notifier {
	return Notifier{Facade: f}
}

// SendNotification forwards to the facade; it is a no-op before the facade is set
func (n Notifier) SendNotification(ctx context.Context, name string, body any, notificationType string) error {
	if n.Facade == nil {
		return nil
	}
	return n.Facade.SendNotification(ctx, name, body, notificationType)
}
