package mvc

import (
	"errors"
	"fmt"
)

// FrameworkError is the base error type for framework errors
type FrameworkError struct {
	Message string
}

func (e *FrameworkError) Error() string {
	return e.Message
}

func NewFrameworkError(message string) *FrameworkError {
	return &FrameworkError{Message: message}
}

var (
	ErrEmptyNotificationName = errors.New("notification name cannot be empty")
	ErrEmptyMediatorName     = errors.New("mediator name cannot be empty")
	ErrNilMediator           = errors.New("mediator cannot be nil")
	ErrNilCommandFactory     = errors.New("command factory cannot be nil")
	ErrNilObserver           = errors.New("observer cannot be nil")
	ErrNilNotification       = errors.New("notification cannot be nil")
	ErrIncomparableContext   = errors.New("mediator context must be comparable")
)

// Registration errors

type CommandExistsError struct {
	*FrameworkError
	Name string
}

func NewCommandExistsError(name string) *CommandExistsError {
	return &CommandExistsError{
		FrameworkError: NewFrameworkError(fmt.Sprintf("command already registered for notification %q", name)),
		Name:           name,
	}
}

type MediatorExistsError struct {
	*FrameworkError
	Name string
}

func NewMediatorExistsError(name string) *MediatorExistsError {
	return &MediatorExistsError{
		FrameworkError: NewFrameworkError(fmt.Sprintf("mediator %q already registered", name)),
		Name:           name,
	}
}

// Execution errors

type CommandPanicError struct {
	*FrameworkError
	Name  string
	Value any
}

func NewCommandPanicError(name string, value any) *CommandPanicError {
	return &CommandPanicError{
		FrameworkError: NewFrameworkError(fmt.Sprintf("command for notification %q panicked: %v", name, value)),
		Name:           name,
		Value:          value,
	}
}
