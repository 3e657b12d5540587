package mvc

import "context"

// Mediator bridges one or more view components to the notification system.
//
// When a Mediator is registered with the View, the View calls
// ListNotificationInterests once and subscribes the Mediator to each returned
// name. The list is snapshotted at that point; later changes are ignored until
// the Mediator is removed and registered again.
//
// Receiving notifications is an optional capability: a Mediator that also
// implements NotificationHandler is called once per matching dispatch, while
// one that does not is registered normally and dispatch to it is a no-op.
type Mediator interface {
	// ViewComponent returns the externally owned UI object, or nil
	ViewComponent() any
	SetViewComponent(viewComponent any)

	// Name is the immutable identity used by the View for lookup and removal
	Name() string

	// Context returns the notify context the View attaches to this
	// Mediator's observers. It must be a comparable, non-owning identifier;
	// the View rejects slices, maps and funcs with ErrIncomparableContext.
	Context() any

	ListNotificationInterests() []string

	// OnRegister is called exactly once when the View adds this Mediator
	OnRegister()

	// OnRemove is called exactly once when the View removes this Mediator
	OnRemove()
}

// NotificationHandler is the optional notification callback of a Mediator
type NotificationHandler interface {
	HandleNotification(ctx context.Context, notification Notification) error
}

// HandlerOf reports the notification callback of m, if it has one
func HandlerOf(m Mediator) (NotificationHandler, bool) {
	h, ok := m.(NotificationHandler)
	return h, ok
}
