package steps

import (
	"errors"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/puremvc-go/pkg/mvc"
)

func registerCommandSteps(sc *godog.ScenarioContext, ctx *frameworkContext) {
	sc.Step(`^the command "([^"]*)" is mapped to "([^"]*)"$`, ctx.theCommandIsMappedTo)
	sc.Step(`^the failing command "([^"]*)" is mapped to "([^"]*)"$`, ctx.theFailingCommandIsMappedTo)
	sc.Step(`^mapping the command "([^"]*)" to "([^"]*)" should fail$`, ctx.mappingTheCommandShouldFail)
	sc.Step(`^I remove the command for "([^"]*)"$`, ctx.iRemoveTheCommandFor)
	sc.Step(`^a command should be registered for "([^"]*)"$`, ctx.aCommandShouldBeRegisteredFor)
	sc.Step(`^no command should be registered for "([^"]*)"$`, ctx.noCommandShouldBeRegisteredFor)
	sc.Step(`^the following commands should have run:$`, ctx.theFollowingCommandsShouldHaveRun)
	sc.Step(`^no commands should have run$`, ctx.noCommandsShouldHaveRun)
	sc.Step(`^(\d+) command instances? should have been created$`, ctx.commandInstancesShouldHaveBeenCreated)
}

func (ctx *frameworkContext) theCommandIsMappedTo(tag, notificationName string) error {
	return ctx.facade.RegisterCommand(notificationName, ctx.commands.Factory(tag, nil))
}

func (ctx *frameworkContext) theFailingCommandIsMappedTo(tag, notificationName string) error {
	return ctx.facade.RegisterCommand(notificationName, ctx.commands.Factory(tag, errors.New(tag+" failed")))
}

func (ctx *frameworkContext) mappingTheCommandShouldFail(tag, notificationName string) error {
	err := ctx.facade.RegisterCommand(notificationName, ctx.commands.Factory(tag, nil))
	if err == nil {
		return fmt.Errorf("expected mapping %q to %q to fail", tag, notificationName)
	}
	var exists *mvc.CommandExistsError
	if !errors.As(err, &exists) {
		return fmt.Errorf("expected CommandExistsError, got %T: %v", err, err)
	}
	return nil
}

func (ctx *frameworkContext) iRemoveTheCommandFor(notificationName string) error {
	ctx.facade.RemoveCommand(notificationName)
	return nil
}

func (ctx *frameworkContext) aCommandShouldBeRegisteredFor(notificationName string) error {
	if !ctx.facade.HasCommand(notificationName) {
		return fmt.Errorf("expected a command for %q", notificationName)
	}
	return nil
}

func (ctx *frameworkContext) noCommandShouldBeRegisteredFor(notificationName string) error {
	if ctx.facade.HasCommand(notificationName) {
		return fmt.Errorf("expected no command for %q", notificationName)
	}
	return nil
}

func (ctx *frameworkContext) theFollowingCommandsShouldHaveRun(table *godog.Table) error {
	return equalStrings(columnValues(table, "call"), ctx.commands.GetCalls())
}

func (ctx *frameworkContext) noCommandsShouldHaveRun() error {
	if calls := ctx.commands.GetCalls(); len(calls) != 0 {
		return fmt.Errorf("expected no commands to run, got %v", calls)
	}
	return nil
}

func (ctx *frameworkContext) commandInstancesShouldHaveBeenCreated(count int) error {
	if got := ctx.commands.Instances(); got != count {
		return fmt.Errorf("expected %d command instances, got %d", count, got)
	}
	return nil
}
