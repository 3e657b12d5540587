package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/puremvc-go/internal/adapters/persistence"
	"github.com/andrescamacho/puremvc-go/pkg/mvc/notification"
	"github.com/andrescamacho/puremvc-go/test/helpers"
)

func fixedClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func TestJournalRepository_RecordAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormJournalRepository(db, fixedClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	note := notification.New("UserSaved", map[string]interface{}{"id": 7}, "update")

	// Act
	err := repo.Record(context.Background(), note)
	require.NoError(t, err)
	entries, err := repo.FindByName(context.Background(), "UserSaved", 10)

	// Assert
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, note.ID(), entries[0].NotificationID)
	assert.Equal(t, "UserSaved", entries[0].Name)
	assert.Equal(t, "update", entries[0].Type)
	assert.Equal(t, map[string]interface{}{"id": float64(7)}, entries[0].Body)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 1, 0, time.UTC), entries[0].RecordedAt.UTC())
}

func TestJournalRepository_NewestFirstWithLimit(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormJournalRepository(db, fixedClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	for _, body := range []string{"one", "two", "three"} {
		require.NoError(t, repo.Record(context.Background(), notification.New("Tick", body, "")))
	}
	require.NoError(t, repo.Record(context.Background(), notification.Named("Other")))

	entries, err := repo.FindByName(context.Background(), "Tick", 2)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "three", entries[0].Body)
	assert.Equal(t, "two", entries[1].Body)
}

func TestJournalRepository_Count(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormJournalRepository(db, nil)
	require.NoError(t, repo.Record(context.Background(), notification.Named("Tick")))
	require.NoError(t, repo.Record(context.Background(), notification.Named("Tick")))

	count, err := repo.Count(context.Background(), "Tick")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.Count(context.Background(), "Missing")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestJournalRepository_NilBodyRoundTrip(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormJournalRepository(db, nil)
	require.NoError(t, repo.Record(context.Background(), notification.Named("Empty")))

	entries, err := repo.FindByName(context.Background(), "Empty", 0)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].Body)
}

func TestJournalRepository_UnencodableBodyStoredAsText(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormJournalRepository(db, nil)
	require.NoError(t, repo.Record(context.Background(), notification.New("Chan", make(chan int), "")))

	entries, err := repo.FindByName(context.Background(), "Chan", 1)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.IsType(t, "", entries[0].Body)
}
