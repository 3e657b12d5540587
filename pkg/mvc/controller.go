package mvc

import "context"

// Command is a unit of behavior executed in response to a notification
type Command interface {
	Execute(ctx context.Context, notification Notification) error
}

// CommandFactory builds a fresh Command for every execution
type CommandFactory func() Command

// Controller maps notification names to command factories.
//
// At most one factory is mapped per name. Registering a name that is already
// mapped follows the host's duplicate policy (overwrite by default).
type Controller interface {
	// ExecuteCommand builds and runs the command mapped to the notification
	// name. A notification with no mapping is a silent no-op.
	ExecuteCommand(ctx context.Context, notification Notification) error

	HasCommand(notificationName string) bool

	RegisterCommand(notificationName string, factory CommandFactory) error

	// RemoveCommand deletes the mapping; removing an unmapped name is a no-op
	RemoveCommand(notificationName string)
}

// ExecuteFunc runs a command for a notification
type ExecuteFunc func(ctx context.Context, notification Notification) error

// Middleware wraps command execution with cross-cutting concerns
// Examples: logging, metrics, panic recovery, rate limiting
type Middleware func(ctx context.Context, notification Notification, next ExecuteFunc) error
