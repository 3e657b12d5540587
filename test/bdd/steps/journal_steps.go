package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/puremvc-go/internal/adapters/journal"
	"github.com/andrescamacho/puremvc-go/internal/adapters/persistence"
	"github.com/andrescamacho/puremvc-go/test/helpers"
)

func registerJournalSteps(sc *godog.ScenarioContext, ctx *frameworkContext) {
	sc.Step(`^the journal records "([^"]*)"$`, ctx.theJournalRecords)
	sc.Step(`^the journal should contain (\d+) entr(?:y|ies) for "([^"]*)"$`, ctx.theJournalShouldContain)
	sc.Step(`^the latest journal entry for "([^"]*)" should have body "([^"]*)"$`, ctx.theLatestJournalEntryShouldHaveBody)
}

func (ctx *frameworkContext) theJournalRecords(interests string) error {
	if helpers.SharedTestDB == nil {
		return fmt.Errorf("shared test database not initialized")
	}
	ctx.journal = persistence.NewGormJournalRepository(helpers.SharedTestDB, nil)
	return ctx.facade.RegisterMediator(journal.NewMediator(ctx.journal, splitNames(interests), nil))
}

func (ctx *frameworkContext) theJournalShouldContain(count int, name string) error {
	if ctx.journal == nil {
		return fmt.Errorf("no journal in this scenario")
	}
	got, err := ctx.journal.Count(context.Background(), name)
	if err != nil {
		return err
	}
	if got != int64(count) {
		return fmt.Errorf("expected %d journal entries for %q, got %d", count, name, got)
	}
	return nil
}

func (ctx *frameworkContext) theLatestJournalEntryShouldHaveBody(name, body string) error {
	if ctx.journal == nil {
		return fmt.Errorf("no journal in this scenario")
	}
	entries, err := ctx.journal.FindByName(context.Background(), name, 1)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no journal entries for %q", name)
	}
	if entries[0].Body != body {
		return fmt.Errorf("expected latest body %q, got %v", body, entries[0].Body)
	}
	return nil
}
