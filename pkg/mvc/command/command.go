package command

import (
	"context"
	"fmt"

	"github.com/andrescamacho/puremvc-go/pkg/mvc"
)

// Func adapts a plain function to mvc.Command
type Func func(ctx context.Context, notification mvc.Notification) error

func (f Func) Execute(ctx context.Context, notification mvc.Notification) error {
	return f(ctx, notification)
}

// FuncFactory returns a factory that always yields f
func FuncFactory(f Func) mvc.CommandFactory {
	return func() mvc.Command { return f }
}

// MacroCommand executes its sub-commands in the order they were added.
// Every sub-command is built fresh from its factory and receives the same
// notification. Execution stops at the first failing sub-command.
type MacroCommand struct {
	subCommands []mvc.CommandFactory
}

func NewMacroCommand(subCommands ...mvc.CommandFactory) *MacroCommand {
	return &MacroCommand{subCommands: append([]mvc.CommandFactory(nil), subCommands...)}
}

// AddSubCommand appends a sub-command factory
func (m *MacroCommand) AddSubCommand(factory mvc.CommandFactory) {
	m.subCommands = append(m.subCommands, factory)
}

func (m *MacroCommand) Execute(ctx context.Context, notification mvc.Notification) error {
	for i, factory := range m.subCommands {
		if err := ctx.Err(); err != nil {
			return err
		}
		if factory == nil {
			return fmt.Errorf("sub-command %d: %w", i, mvc.ErrNilCommandFactory)
		}
		cmd := factory()
		if cmd == nil {
			return fmt.Errorf("sub-command %d: factory returned nil command", i)
		}
		if err := cmd.Execute(ctx, notification); err != nil {
			return fmt.Errorf("sub-command %d failed: %w", i, err)
		}
	}
	return nil
}

// Macro returns a factory building a new MacroCommand per execution
func Macro(subCommands ...mvc.CommandFactory) mvc.CommandFactory {
	return func() mvc.Command {
		return NewMacroCommand(subCommands...)
	}
}

var (
	_ mvc.Command = Func(nil)
	_ mvc.Command = (*MacroCommand)(nil)
)
