package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/epsommer/becky-mobile-sub003/internal/repository/sqlite"
)

func TestTimeEntryMapper_RoundTrip(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	rate := 45.0
	serviceLine := "sl-3"

	domainEntry := TimeEntry{
		ID:            "entry-1",
		ClientID:      "client-7",
		ClientName:    "Acme Corp",
		ServiceType:   "consulting",
		ServiceLineID: &serviceLine,
		Notes:         "quarterly review",
		HourlyRate:    &rate,
		Billable:      true,
		StartTime:     start,
		EndTime:       &end,
		CreatedAt:     end,
	}

	mapper := NewTimeEntryMapper()

	dbEntry := mapper.ToDatabase(domainEntry)
	assert.Equal(t, "entry-1", dbEntry.EntryID)
	assert.Equal(t, int64(0), dbEntry.Seq)

	back := mapper.FromDatabase(dbEntry)
	assert.Equal(t, domainEntry, back)
}

func TestTimeEntryMapper_FromDatabase_OptionalFields(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	dbEntry := sqlite.TimeEntry{
		Seq:       12,
		EntryID:   "entry-2",
		ClientID:  "client-1",
		StartTime: start,
		CreatedAt: start,
	}

	result := NewTimeEntryMapper().FromDatabase(dbEntry)

	assert.Equal(t, "entry-2", result.ID)
	assert.Nil(t, result.EndTime)
	assert.Nil(t, result.HourlyRate)
	assert.Nil(t, result.ServiceLineID)
	assert.True(t, result.IsRunning())
}

func TestTimeEntryMapper_FromDatabaseSlice(t *testing.T) {
	start := time.Now()
	dbEntries := []*sqlite.TimeEntry{
		{EntryID: "e1", ClientID: "c1", StartTime: start, CreatedAt: start},
		{EntryID: "e2", ClientID: "c2", StartTime: start, CreatedAt: start},
	}

	result := NewTimeEntryMapper().FromDatabaseSlice(dbEntries)

	assert.Len(t, result, 2)
	assert.Equal(t, "e1", result[0].ID)
	assert.Equal(t, "e2", result[1].ID)
}

func TestNewMapper(t *testing.T) {
	mapper := NewMapper()
	assert.NotNil(t, mapper.TimeEntry)
}
