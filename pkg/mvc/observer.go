package mvc

import "context"

// Observer pairs a notification callback with the context of its registrant
type Observer interface {
	NotifyObserver(ctx context.Context, notification Notification) error

	// NotifyContext identifies who registered the observer
	NotifyContext() any

	// CompareNotifyContext reports whether other is this observer's context
	CompareNotifyContext(other any) bool
}
