package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"

	"github.com/andrescamacho/puremvc-go/internal/adapters/persistence"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/core"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/facade"
	"github.com/andrescamacho/puremvc-go/test/helpers"
)

// frameworkContext is the state shared by mediator, command and journal steps
type frameworkContext struct {
	facade    *facade.Facade
	mediators map[string]*helpers.MockMediator
	silent    map[string]*helpers.SilentMediator
	commands  *helpers.CommandRecorder
	journal   persistence.JournalRepository
	lastErr   error
}

func (ctx *frameworkContext) reset() {
	ctx.facade = facade.New()
	ctx.mediators = make(map[string]*helpers.MockMediator)
	ctx.silent = make(map[string]*helpers.SilentMediator)
	ctx.commands = helpers.NewCommandRecorder()
	ctx.journal = nil
	ctx.lastErr = nil
}

// InitializeFrameworkScenario registers every step definition of the suite
func InitializeFrameworkScenario(sc *godog.ScenarioContext) {
	fwCtx := &frameworkContext{}

	sc.Before(func(c context.Context, s *godog.Scenario) (context.Context, error) {
		fwCtx.reset()
		if helpers.SharedTestDB != nil {
			if err := helpers.TruncateAllTables(); err != nil {
				return c, err
			}
		}
		return c, nil
	})

	sc.Step(`^a new facade$`, fwCtx.aNewFacade)
	sc.Step(`^a new facade rejecting duplicate commands$`, fwCtx.aNewFacadeRejectingDuplicates)
	sc.Step(`^I send the notification "([^"]*)"$`, fwCtx.iSendTheNotification)
	sc.Step(`^I send the notification "([^"]*)" with body "([^"]*)"$`, fwCtx.iSendTheNotificationWithBody)
	sc.Step(`^the dispatch should succeed$`, fwCtx.theDispatchShouldSucceed)
	sc.Step(`^the dispatch should fail with "([^"]*)"$`, fwCtx.theDispatchShouldFailWith)

	registerMediatorSteps(sc, fwCtx)
	registerCommandSteps(sc, fwCtx)
	registerJournalSteps(sc, fwCtx)
}

func (ctx *frameworkContext) aNewFacade() error {
	ctx.facade = facade.New()
	return nil
}

func (ctx *frameworkContext) aNewFacadeRejectingDuplicates() error {
	ctx.facade = facade.New(core.WithDuplicatePolicy(core.DuplicateReject))
	return nil
}

func (ctx *frameworkContext) iSendTheNotification(name string) error {
	ctx.lastErr = ctx.facade.SendNotification(context.Background(), name, nil, "")
	return nil
}

func (ctx *frameworkContext) iSendTheNotificationWithBody(name, body string) error {
	ctx.lastErr = ctx.facade.SendNotification(context.Background(), name, body, "")
	return nil
}

func (ctx *frameworkContext) theDispatchShouldSucceed() error {
	if ctx.lastErr != nil {
		return fmt.Errorf("expected dispatch to succeed, got: %w", ctx.lastErr)
	}
	return nil
}

func (ctx *frameworkContext) theDispatchShouldFailWith(fragment string) error {
	if ctx.lastErr == nil {
		return fmt.Errorf("expected dispatch to fail with %q, but it succeeded", fragment)
	}
	if !strings.Contains(ctx.lastErr.Error(), fragment) {
		return fmt.Errorf("expected error containing %q, got %q", fragment, ctx.lastErr.Error())
	}
	return nil
}

// splitNames parses a comma-separated list, keeping duplicates
func splitNames(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// columnValues returns every value of a column, header excluded
func columnValues(table *godog.Table, columnName string) []string {
	values := []string{}
	if len(table.Rows) < 2 {
		return values
	}
	for _, row := range table.Rows[1:] {
		values = append(values, getCellValue(table, row, columnName))
	}
	return values
}

// getCellValue finds a cell by its header name
func getCellValue(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	if len(table.Rows) == 0 {
		return ""
	}

	headerRow := table.Rows[0]
	for i, headerCell := range headerRow.Cells {
		if headerCell.Value == columnName {
			if i < len(row.Cells) {
				return row.Cells[i].Value
			}
			return ""
		}
	}

	return ""
}

func equalStrings(expected, actual []string) error {
	if len(expected) != len(actual) {
		return fmt.Errorf("expected %v, got %v", expected, actual)
	}
	for i := range expected {
		if expected[i] != actual[i] {
			return fmt.Errorf("expected %v, got %v (first difference at %d)", expected, actual, i)
		}
	}
	return nil
}
