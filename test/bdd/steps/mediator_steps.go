package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/puremvc-go/pkg/mvc"
	"github.com/andrescamacho/puremvc-go/test/helpers"
)

func registerMediatorSteps(sc *godog.ScenarioContext, ctx *frameworkContext) {
	sc.Step(`^a mediator named "([^"]*)" interested in "([^"]*)"$`, ctx.aMediatorInterestedIn)
	sc.Step(`^a mediator named "([^"]*)" with no interests$`, ctx.aMediatorWithNoInterests)
	sc.Step(`^a mediator named "([^"]*)" without a notification handler interested in "([^"]*)"$`, ctx.aSilentMediator)
	sc.Step(`^registering another mediator named "([^"]*)" should fail$`, ctx.registeringAnotherMediatorShouldFail)
	sc.Step(`^I remove the mediator "([^"]*)"$`, ctx.iRemoveTheMediator)
	sc.Step(`^the mediator "([^"]*)" should be registered$`, ctx.theMediatorShouldBeRegistered)
	sc.Step(`^the mediator "([^"]*)" should not be registered$`, ctx.theMediatorShouldNotBeRegistered)
	sc.Step(`^the mediator "([^"]*)" should have handled "([^"]*)" (\d+) times?$`, ctx.theMediatorShouldHaveHandled)
	sc.Step(`^the mediator "([^"]*)" should have been registered (\d+) times?$`, ctx.theMediatorShouldHaveBeenRegistered)
	sc.Step(`^the mediator "([^"]*)" call log should be:$`, ctx.theMediatorCallLogShouldBe)
	sc.Step(`^the mediator "([^"]*)" removes itself when handling "([^"]*)"$`, ctx.theMediatorRemovesItself)
}

func (ctx *frameworkContext) aMediatorInterestedIn(name, interests string) error {
	m := helpers.NewMockMediator(name, splitNames(interests)...)
	if err := ctx.facade.RegisterMediator(m); err != nil {
		return fmt.Errorf("failed to register mediator %s: %w", name, err)
	}
	ctx.mediators[name] = m
	return nil
}

func (ctx *frameworkContext) aMediatorWithNoInterests(name string) error {
	return ctx.aMediatorInterestedIn(name, "")
}

func (ctx *frameworkContext) aSilentMediator(name, interests string) error {
	m := helpers.NewSilentMediator(name, splitNames(interests)...)
	if err := ctx.facade.RegisterMediator(m); err != nil {
		return fmt.Errorf("failed to register mediator %s: %w", name, err)
	}
	ctx.silent[name] = m
	return nil
}

func (ctx *frameworkContext) registeringAnotherMediatorShouldFail(name string) error {
	err := ctx.facade.RegisterMediator(helpers.NewMockMediator(name))
	if err == nil {
		return fmt.Errorf("expected registering a second %q to fail", name)
	}
	var exists *mvc.MediatorExistsError
	if !errors.As(err, &exists) {
		return fmt.Errorf("expected MediatorExistsError, got %T: %v", err, err)
	}
	return nil
}

func (ctx *frameworkContext) iRemoveTheMediator(name string) error {
	ctx.facade.RemoveMediator(name)
	return nil
}

func (ctx *frameworkContext) theMediatorShouldBeRegistered(name string) error {
	if !ctx.facade.HasMediator(name) {
		return fmt.Errorf("expected mediator %q to be registered", name)
	}
	return nil
}

func (ctx *frameworkContext) theMediatorShouldNotBeRegistered(name string) error {
	if ctx.facade.HasMediator(name) {
		return fmt.Errorf("expected mediator %q not to be registered", name)
	}
	if _, ok := ctx.facade.RetrieveMediator(name); ok {
		return fmt.Errorf("mediator %q can still be retrieved", name)
	}
	return nil
}

func (ctx *frameworkContext) theMediatorShouldHaveHandled(name, notificationName string, times int) error {
	m, err := ctx.mockMediator(name)
	if err != nil {
		return err
	}
	if got := m.HandledCount(notificationName); got != times {
		return fmt.Errorf("expected %s to handle %q %d times, got %d", name, notificationName, times, got)
	}
	return nil
}

func (ctx *frameworkContext) theMediatorShouldHaveBeenRegistered(name string, times int) error {
	m, ok := ctx.silent[name]
	if !ok {
		return fmt.Errorf("no silent mediator named %q", name)
	}
	if m.Registered != times {
		return fmt.Errorf("expected %s to be registered %d times, got %d", name, times, m.Registered)
	}
	return nil
}

func (ctx *frameworkContext) theMediatorCallLogShouldBe(name string, table *godog.Table) error {
	m, err := ctx.mockMediator(name)
	if err != nil {
		return err
	}
	return equalStrings(columnValues(table, "call"), m.GetCallLog())
}

func (ctx *frameworkContext) theMediatorRemovesItself(name, notificationName string) error {
	m, err := ctx.mockMediator(name)
	if err != nil {
		return err
	}
	f := ctx.facade
	m.SetHandleFunc(func(c context.Context, n mvc.Notification) error {
		if n.Name() == notificationName {
			f.RemoveMediator(name)
		}
		return nil
	})
	return nil
}

func (ctx *frameworkContext) mockMediator(name string) (*helpers.MockMediator, error) {
	m, ok := ctx.mediators[name]
	if !ok {
		return nil, fmt.Errorf("no mediator named %q in this scenario", name)
	}
	return m, nil
}
