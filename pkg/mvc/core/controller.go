package core

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/andrescamacho/puremvc-go/pkg/mvc"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/logging"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/observer"
)

type controllerContext struct {
	id string
}

// Controller is the default mvc.Controller.
//
// The first mapping for a notification name subscribes the Controller to
// that name on its View; the observer forwards to ExecuteCommand. Removing
// the mapping unsubscribes it again. Lock order is Controller then View.
type Controller struct {
	mu            sync.RWMutex
	view          mvc.View
	commands      map[string]mvc.CommandFactory
	middleware    []mvc.Middleware
	policy        DuplicatePolicy
	logger        logging.Logger
	notifyContext controllerContext
}

// NewController creates a Controller bound to view
func NewController(view mvc.View, opts ...Option) *Controller {
	o := buildOptions(opts)
	return &Controller{
		view:          view,
		commands:      make(map[string]mvc.CommandFactory),
		middleware:    append([]mvc.Middleware(nil), o.middleware...),
		policy:        o.duplicatePolicy,
		logger:        o.logger,
		notifyContext: controllerContext{id: uuid.New().String()},
	}
}

// Use appends middleware; it applies to executions started afterwards
func (c *Controller) Use(middleware ...mvc.Middleware) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.middleware = append(c.middleware, middleware...)
}

// RegisterCommand maps notificationName to factory
func (c *Controller) RegisterCommand(notificationName string, factory mvc.CommandFactory) error {
	if notificationName == "" {
		return mvc.ErrEmptyNotificationName
	}
	if factory == nil {
		return mvc.ErrNilCommandFactory
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, exists := c.commands[notificationName]
	if exists {
		if c.policy == DuplicateReject {
			return mvc.NewCommandExistsError(notificationName)
		}
		c.logger.Log(logging.LevelWarn, "Replacing command mapping", map[string]interface{}{
			"notification": notificationName,
		})
		c.commands[notificationName] = factory
		return nil
	}

	obs := observer.New(c.ExecuteCommand, c.notifyContext)
	if err := c.view.RegisterObserver(notificationName, obs); err != nil {
		return fmt.Errorf("failed to observe %q: %w", notificationName, err)
	}
	c.commands[notificationName] = factory

	c.logger.Log(logging.LevelDebug, "Command registered", map[string]interface{}{
		"notification": notificationName,
	})
	return nil
}

// HasCommand reports whether notificationName is mapped
func (c *Controller) HasCommand(notificationName string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.commands[notificationName]
	return ok
}

// RemoveCommand deletes the mapping for notificationName, if any
func (c *Controller) RemoveCommand(notificationName string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.commands[notificationName]; !ok {
		return
	}
	delete(c.commands, notificationName)
	c.view.RemoveObserver(notificationName, c.notifyContext)

	c.logger.Log(logging.LevelDebug, "Command removed", map[string]interface{}{
		"notification": notificationName,
	})
}

// ExecuteCommand builds a fresh command for the notification and runs it
// through the middleware chain. Unmapped notifications are ignored.
func (c *Controller) ExecuteCommand(ctx context.Context, notification mvc.Notification) error {
	if notification == nil {
		return mvc.ErrNilNotification
	}
	name := notification.Name()

	c.mu.RLock()
	factory, ok := c.commands[name]
	middleware := c.middleware
	c.mu.RUnlock()

	if !ok {
		c.logger.Log(logging.LevelDebug, "No command registered for notification", map[string]interface{}{
			"notification": name,
		})
		return nil
	}

	execute := func(ctx context.Context, notification mvc.Notification) error {
		cmd := factory()
		if cmd == nil {
			return fmt.Errorf("command factory for %q returned nil", notification.Name())
		}
		return cmd.Execute(ctx, notification)
	}

	return chain(execute, middleware)(logging.EnsureLogger(ctx, c.logger), notification)
}

// chain wraps execute so that middleware[0] runs outermost
func chain(execute mvc.ExecuteFunc, middleware []mvc.Middleware) mvc.ExecuteFunc {
	for i := len(middleware) - 1; i >= 0; i-- {
		mw := middleware[i]
		next := execute
		execute = func(ctx context.Context, notification mvc.Notification) error {
			return mw(ctx, notification, next)
		}
	}
	return execute
}

var _ mvc.Controller = (*Controller)(nil)
