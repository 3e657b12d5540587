package mvc

import "context"

// View is the registry that owns Mediators and delivers notifications to
// Observers
type View interface {
	RegisterObserver(notificationName string, observer Observer) error
	RemoveObserver(notificationName string, notifyContext any)
	NotifyObservers(ctx context.Context, notification Notification) error

	RegisterMediator(mediator Mediator) error
	RetrieveMediator(mediatorName string) (Mediator, bool)
	RemoveMediator(mediatorName string) (Mediator, bool)
	HasMediator(mediatorName string) bool
}
