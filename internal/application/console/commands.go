package console

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/andrescamacho/puremvc-go/pkg/mvc"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/command"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/facade"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/logging"
)

// Notification names the console application reacts to
const (
	StartupNotification  = "startup"
	ReadyNotification    = "ready"
	ShutdownNotification = "shutdown"
	StoppingNotification = "stopping"
)

// ReadyBody is the body of the ready notification
type ReadyBody struct {
	Mediators []string `json:"mediators"`
}

// Dependencies are what the startup and shutdown commands operate on
type Dependencies struct {
	Out io.Writer

	// ConsoleInterests are printed in addition to ready and stopping
	ConsoleInterests []string

	// Extra mediators registered after the console, in order
	Extra []mvc.Mediator

	Logger logging.Logger
}

// Registry maps the console application's commands onto a facade and tracks
// which mediators startup attached
type Registry struct {
	facade *facade.Facade
	deps   Dependencies

	mu         sync.Mutex
	registered []string
}

func NewRegistry(f *facade.Facade, deps Dependencies) *Registry {
	if deps.Out == nil {
		deps.Out = io.Discard
	}
	if deps.Logger == nil {
		deps.Logger = logging.NoOp()
	}
	return &Registry{facade: f, deps: deps}
}

// RegisterCommands maps startup and shutdown
//
// startup runs as a macro:
//  1. register the console mediator
//  2. register each extra mediator
//  3. send ready with the registered mediator names
func (r *Registry) RegisterCommands() error {
	startup := []mvc.CommandFactory{r.registerFactory(r.consoleMediator)}
	for _, m := range r.deps.Extra {
		startup = append(startup, r.registerFactory(constant(m)))
	}
	startup = append(startup, r.readyFactory())

	if err := r.facade.RegisterCommand(StartupNotification, command.Macro(startup...)); err != nil {
		return fmt.Errorf("failed to register %s command: %w", StartupNotification, err)
	}
	if err := r.facade.RegisterCommand(ShutdownNotification, r.shutdownFactory()); err != nil {
		return fmt.Errorf("failed to register %s command: %w", ShutdownNotification, err)
	}
	return nil
}

// Registered returns the names of mediators attached by startup, in order
func (r *Registry) Registered() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.registered...)
}

func (r *Registry) consoleMediator() mvc.Mediator {
	interests := append([]string{ReadyNotification, StoppingNotification}, r.deps.ConsoleInterests...)
	return NewMediator(r.deps.Out, interests)
}

func constant(m mvc.Mediator) func() mvc.Mediator {
	return func() mvc.Mediator { return m }
}

// registerMediatorCommand attaches one mediator; a second startup skips it
type registerMediatorCommand struct {
	facade.Notifier
	registry *Registry
	build    func() mvc.Mediator
}

func (r *Registry) registerFactory(build func() mvc.Mediator) mvc.CommandFactory {
	return func() mvc.Command {
		return &registerMediatorCommand{Notifier: facade.NewNotifier(r.facade), registry: r, build: build}
	}
}

func (c *registerMediatorCommand) Execute(ctx context.Context, notification mvc.Notification) error {
	m := c.build()
	if c.Facade.HasMediator(m.Name()) {
		return nil
	}
	if err := c.Facade.RegisterMediator(m); err != nil {
		return err
	}

	c.registry.mu.Lock()
	c.registry.registered = append(c.registry.registered, m.Name())
	c.registry.mu.Unlock()

	logging.LoggerFromContext(ctx).Log(logging.LevelDebug, "Mediator registered", map[string]interface{}{
		"mediator": m.Name(),
	})
	return nil
}

type readyCommand struct {
	facade.Notifier
	registry *Registry
}

func (r *Registry) readyFactory() mvc.CommandFactory {
	return func() mvc.Command {
		return &readyCommand{Notifier: facade.NewNotifier(r.facade), registry: r}
	}
}

func (c *readyCommand) Execute(ctx context.Context, notification mvc.Notification) error {
	return c.SendNotification(ctx, ReadyNotification, ReadyBody{Mediators: c.registry.Registered()}, "")
}

// shutdownCommand announces stopping, then removes mediators newest first
type shutdownCommand struct {
	facade.Notifier
	registry *Registry
}

func (r *Registry) shutdownFactory() mvc.CommandFactory {
	return func() mvc.Command {
		return &shutdownCommand{Notifier: facade.NewNotifier(r.facade), registry: r}
	}
}

func (c *shutdownCommand) Execute(ctx context.Context, notification mvc.Notification) error {
	if err := c.SendNotification(ctx, StoppingNotification, notification.Body(), notification.Type()); err != nil {
		return err
	}

	c.registry.mu.Lock()
	names := c.registry.registered
	c.registry.registered = nil
	c.registry.mu.Unlock()

	for i := len(names) - 1; i >= 0; i-- {
		c.Facade.RemoveMediator(names[i])
	}
	return nil
}
