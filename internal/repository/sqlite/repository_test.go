package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epsommer/becky-mobile-sub003/internal/errors"
)

func setupTestDB(t *testing.T) *SQLiteRepository {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "becky.db")
	repo, err := New(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		repo.Close()
	})

	return repo
}

func testEntry(id, clientID string, start time.Time, end *time.Time) *TimeEntry {
	return &TimeEntry{
		EntryID:    id,
		ClientID:   clientID,
		ClientName: "Acme Corp",
		StartTime:  start,
		EndTime:    end,
		CreatedAt:  start,
	}
}

func TestSaveActiveEntry(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	start := time.Now()
	entry := testEntry("e1", "c1", start, nil)

	err := repo.SaveActiveEntry(ctx, entry)
	require.NoError(t, err)

	retrieved, err := repo.GetActiveEntry(ctx)
	require.NoError(t, err)
	assert.Equal(t, "e1", retrieved.EntryID)
	assert.Equal(t, "c1", retrieved.ClientID)
	assert.True(t, retrieved.StartTime.Equal(start))
	assert.Nil(t, retrieved.EndTime)
}

func TestSaveActiveEntry_Replaces(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveActiveEntry(ctx, testEntry("e1", "c1", time.Now(), nil)))
	require.NoError(t, repo.SaveActiveEntry(ctx, testEntry("e2", "c2", time.Now(), nil)))

	retrieved, err := repo.GetActiveEntry(ctx)
	require.NoError(t, err)
	assert.Equal(t, "e2", retrieved.EntryID)
}

func TestGetActiveEntry_Absent(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetActiveEntry(context.Background())
	assert.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestClearActiveEntry(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveActiveEntry(ctx, testEntry("e1", "c1", time.Now(), nil)))
	require.NoError(t, repo.ClearActiveEntry(ctx))

	_, err := repo.GetActiveEntry(ctx)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	// Clearing an absent record is not an error
	assert.NoError(t, repo.ClearActiveEntry(ctx))
}

func TestAppendEntry(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	start := time.Now().Add(-time.Hour)
	end := time.Now()
	entry := testEntry("e1", "c1", start, &end)

	err := repo.AppendEntry(ctx, entry)
	require.NoError(t, err)
	assert.Greater(t, entry.Seq, int64(0))

	retrieved, err := repo.GetEntry(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, entry.Seq, retrieved.Seq)
	assert.True(t, retrieved.StartTime.Equal(start))
	require.NotNil(t, retrieved.EndTime)
	assert.True(t, retrieved.EndTime.Equal(end))
}

func TestListEntries_MostRecentFirst(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	// Second entry is backdated: log order follows append order, not start time.
	end1 := time.Now()
	end2 := time.Now().Add(-24 * time.Hour)
	require.NoError(t, repo.AppendEntry(ctx, testEntry("e1", "c1", end1.Add(-time.Hour), &end1)))
	require.NoError(t, repo.AppendEntry(ctx, testEntry("e2", "c1", end2.Add(-time.Hour), &end2)))

	entries, err := repo.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "e2", entries[0].EntryID)
	assert.Equal(t, "e1", entries[1].EntryID)
}

func TestListEntries_RoundTrip(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	start := time.Date(2026, 2, 1, 10, 30, 0, 123456789, time.UTC)
	end := start.Add(90 * time.Minute)
	rate := 35.5
	serviceLine := "sl-2"
	entry := &TimeEntry{
		EntryID:       "e1",
		ClientID:      "c1",
		ClientName:    "Acme Corp",
		ServiceType:   "cleaning",
		ServiceLineID: &serviceLine,
		Notes:         "deep clean",
		HourlyRate:    &rate,
		Billable:      true,
		StartTime:     start,
		EndTime:       &end,
		CreatedAt:     end,
	}
	require.NoError(t, repo.AppendEntry(ctx, entry))

	entries, err := repo.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.Equal(t, entry.EntryID, got.EntryID)
	assert.Equal(t, entry.ClientID, got.ClientID)
	assert.Equal(t, entry.ClientName, got.ClientName)
	assert.Equal(t, entry.ServiceType, got.ServiceType)
	assert.Equal(t, *entry.ServiceLineID, *got.ServiceLineID)
	assert.Equal(t, entry.Notes, got.Notes)
	assert.Equal(t, *entry.HourlyRate, *got.HourlyRate)
	assert.Equal(t, entry.Billable, got.Billable)
	assert.True(t, got.StartTime.Equal(start))
	assert.True(t, got.EndTime.Equal(end))
	assert.True(t, got.CreatedAt.Equal(end))
}

func TestUpdateEntry(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	end := time.Now()
	entry := testEntry("e1", "c1", end.Add(-time.Hour), &end)
	require.NoError(t, repo.AppendEntry(ctx, entry))

	rate := 50.0
	entry.Notes = "amended"
	entry.Billable = true
	entry.HourlyRate = &rate
	require.NoError(t, repo.UpdateEntry(ctx, entry))

	retrieved, err := repo.GetEntry(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "amended", retrieved.Notes)
	assert.True(t, retrieved.Billable)
	assert.Equal(t, rate, *retrieved.HourlyRate)
	assert.Equal(t, entry.Seq, retrieved.Seq)

	// Updating an unknown entry reports not found
	missing := testEntry("nope", "c1", end.Add(-time.Hour), &end)
	err = repo.UpdateEntry(ctx, missing)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestDeleteEntry(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	end := time.Now()
	require.NoError(t, repo.AppendEntry(ctx, testEntry("e1", "c1", end.Add(-time.Hour), &end)))

	require.NoError(t, repo.DeleteEntry(ctx, "e1"))

	_, err := repo.GetEntry(ctx, "e1")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	err = repo.DeleteEntry(ctx, "e1")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestDeleteAllEntries(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	end := time.Now()
	require.NoError(t, repo.AppendEntry(ctx, testEntry("e1", "c1", end.Add(-time.Hour), &end)))
	require.NoError(t, repo.AppendEntry(ctx, testEntry("e2", "c2", end.Add(-time.Hour), &end)))
	require.NoError(t, repo.SaveActiveEntry(ctx, testEntry("e3", "c3", time.Now(), nil)))

	require.NoError(t, repo.DeleteAllEntries(ctx))

	entries, err := repo.ListEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// The active-entry record survives a log reset
	active, err := repo.GetActiveEntry(ctx)
	require.NoError(t, err)
	assert.Equal(t, "e3", active.EntryID)
}
