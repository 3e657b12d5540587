package observer

import (
	"context"

	"github.com/andrescamacho/puremvc-go/pkg/mvc"
)

// NotifyFunc is the callback an Observer invokes
type NotifyFunc func(ctx context.Context, notification mvc.Notification) error

// Observer is the default mvc.Observer
type Observer struct {
	notify        NotifyFunc
	notifyContext any
}

// New creates an observer; notifyContext must be comparable
func New(notify NotifyFunc, notifyContext any) *Observer {
	return &Observer{notify: notify, notifyContext: notifyContext}
}

// NotifyObserver invokes the callback, nil callbacks are a no-op
func (o *Observer) NotifyObserver(ctx context.Context, notification mvc.Notification) error {
	if o.notify == nil {
		return nil
	}
	return o.notify(ctx, notification)
}

func (o *Observer) NotifyContext() any {
	return o.notifyContext
}

func (o *Observer) CompareNotifyContext(other any) bool {
	return o.notifyContext == other
}

var _ mvc.Observer = (*Observer)(nil)
