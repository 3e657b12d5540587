package core

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/andrescamacho/puremvc-go/pkg/mvc"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/logging"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/observer"
)

// registration is the View's record of one registered mediator
type registration struct {
	mediator      mvc.Mediator
	notifyContext any
	interests     []string
	active        atomic.Bool
}

// View is the default mvc.View.
//
// Observers are stored per notification name in registration order.
// NotifyObservers works on a snapshot taken under the read lock, so
// observers may register or remove observers and mediators while handling
// a notification. No lock is held while user code runs.
type View struct {
	mu        sync.RWMutex
	observers map[string][]mvc.Observer
	mediators map[string]*registration
	logger    logging.Logger
}

// NewView creates an empty View
func NewView(opts ...Option) *View {
	o := buildOptions(opts)
	return &View{
		observers: make(map[string][]mvc.Observer),
		mediators: make(map[string]*registration),
		logger:    o.logger,
	}
}

// RegisterObserver appends an observer for notificationName
func (v *View) RegisterObserver(notificationName string, obs mvc.Observer) error {
	if notificationName == "" {
		return mvc.ErrEmptyNotificationName
	}
	if obs == nil {
		return mvc.ErrNilObserver
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.observers[notificationName] = append(v.observers[notificationName], obs)
	return nil
}

// RemoveObserver removes the observer for notificationName registered with notifyContext
func (v *View) RemoveObserver(notificationName string, notifyContext any) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.removeObserverLocked(notificationName, notifyContext)
}

// removeObserverLocked must be called while holding mu
func (v *View) removeObserverLocked(notificationName string, notifyContext any) {
	observers := v.observers[notificationName]
	for i, obs := range observers {
		if obs.CompareNotifyContext(notifyContext) {
			// Copy so snapshots taken by in-flight dispatches stay intact
			remaining := make([]mvc.Observer, 0, len(observers)-1)
			remaining = append(remaining, observers[:i]...)
			remaining = append(remaining, observers[i+1:]...)
			observers = remaining
			break
		}
	}

	if len(observers) == 0 {
		delete(v.observers, notificationName)
		return
	}
	v.observers[notificationName] = observers
}

// NotifyObservers delivers the notification to every observer of its name.
// All observers are notified even if some fail; their errors are joined.
func (v *View) NotifyObservers(ctx context.Context, notification mvc.Notification) error {
	if notification == nil {
		return mvc.ErrNilNotification
	}
	name := notification.Name()
	if name == "" {
		return mvc.ErrEmptyNotificationName
	}

	v.mu.RLock()
	snapshot := append([]mvc.Observer(nil), v.observers[name]...)
	v.mu.RUnlock()

	if len(snapshot) == 0 {
		v.logger.Log(logging.LevelDebug, "No observers for notification", map[string]interface{}{
			"notification":    name,
			"notification_id": notification.ID(),
		})
		return nil
	}

	ctx = logging.EnsureLogger(ctx, v.logger)

	var errs []error
	for _, obs := range snapshot {
		if err := obs.NotifyObserver(ctx, notification); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		err := errors.Join(errs...)
		v.logger.Log(logging.LevelError, "Notification delivery failed", map[string]interface{}{
			"notification":    name,
			"notification_id": notification.ID(),
			"error":           err.Error(),
		})
		return fmt.Errorf("notify %q: %w", name, err)
	}
	return nil
}

// RegisterMediator adds a mediator and subscribes it to its interests.
//
// Interests are read once and deduplicated. OnRegister runs before the
// observers are attached, so it always precedes the first HandleNotification.
// A mediator without HandleNotification is registered without observers.
func (v *View) RegisterMediator(m mvc.Mediator) error {
	if m == nil {
		return mvc.ErrNilMediator
	}
	name := m.Name()
	if name == "" {
		return mvc.ErrEmptyMediatorName
	}

	notifyContext := m.Context()
	if notifyContext != nil && !reflect.ValueOf(notifyContext).Comparable() {
		return fmt.Errorf("%w: mediator %q has context of type %T", mvc.ErrIncomparableContext, name, notifyContext)
	}

	reg := &registration{
		mediator:      m,
		notifyContext: notifyContext,
		interests:     uniqueInterests(m.ListNotificationInterests()),
	}
	reg.active.Store(true)

	v.mu.Lock()
	if _, exists := v.mediators[name]; exists {
		v.mu.Unlock()
		return mvc.NewMediatorExistsError(name)
	}
	v.mediators[name] = reg
	v.mu.Unlock()

	m.OnRegister()

	handler, ok := mvc.HandlerOf(m)
	if !ok {
		v.logger.Log(logging.LevelDebug, "Mediator registered without notification handler", map[string]interface{}{
			"mediator":  name,
			"interests": reg.interests,
		})
		return nil
	}

	notify := func(ctx context.Context, notification mvc.Notification) error {
		if !reg.active.Load() {
			return nil
		}
		return handler.HandleNotification(ctx, notification)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	// Removed while OnRegister was running
	if v.mediators[name] != reg {
		return nil
	}
	for _, interest := range reg.interests {
		v.observers[interest] = append(v.observers[interest], observer.New(notify, reg.notifyContext))
	}

	v.logger.Log(logging.LevelDebug, "Mediator registered", map[string]interface{}{
		"mediator":  name,
		"interests": reg.interests,
	})
	return nil
}

// RetrieveMediator looks up a mediator by name
func (v *View) RetrieveMediator(mediatorName string) (mvc.Mediator, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	reg, ok := v.mediators[mediatorName]
	if !ok {
		return nil, false
	}
	return reg.mediator, true
}

// HasMediator reports whether a mediator is registered under mediatorName
func (v *View) HasMediator(mediatorName string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()

	_, ok := v.mediators[mediatorName]
	return ok
}

// RemoveMediator unsubscribes and removes a mediator, then calls its OnRemove.
// Removing an unknown name returns false.
func (v *View) RemoveMediator(mediatorName string) (mvc.Mediator, bool) {
	v.mu.Lock()
	reg, ok := v.mediators[mediatorName]
	if !ok {
		v.mu.Unlock()
		return nil, false
	}

	delete(v.mediators, mediatorName)
	reg.active.Store(false)
	for _, interest := range reg.interests {
		v.removeObserverLocked(interest, reg.notifyContext)
	}
	v.mu.Unlock()

	reg.mediator.OnRemove()

	v.logger.Log(logging.LevelDebug, "Mediator removed", map[string]interface{}{
		"mediator": mediatorName,
	})
	return reg.mediator, true
}

func uniqueInterests(interests []string) []string {
	seen := make(map[string]bool, len(interests))
	unique := make([]string, 0, len(interests))
	for _, interest := range interests {
		if interest == "" || seen[interest] {
			continue
		}
		seen[interest] = true
		unique = append(unique, interest)
	}
	return unique
}

var _ mvc.View = (*View)(nil)
