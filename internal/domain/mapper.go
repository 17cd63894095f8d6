package domain

import (
	"github.com/epsommer/becky-mobile-sub003/internal/repository/sqlite"
)

// TimeEntryMapper handles conversion between domain and database TimeEntry models.
type TimeEntryMapper struct{}

// NewTimeEntryMapper creates a new TimeEntryMapper instance.
func NewTimeEntryMapper() *TimeEntryMapper {
	return &TimeEntryMapper{}
}

// ToDatabase converts a domain TimeEntry to a database TimeEntry.
// The database Seq is assigned on append and is not part of the domain model.
func (m *TimeEntryMapper) ToDatabase(domainEntry TimeEntry) sqlite.TimeEntry {
	return sqlite.TimeEntry{
		EntryID:       domainEntry.ID,
		ClientID:      domainEntry.ClientID,
		ClientName:    domainEntry.ClientName,
		ServiceType:   domainEntry.ServiceType,
		ServiceLineID: domainEntry.ServiceLineID,
		Notes:         domainEntry.Notes,
		HourlyRate:    domainEntry.HourlyRate,
		Billable:      domainEntry.Billable,
		StartTime:     domainEntry.StartTime,
		EndTime:       domainEntry.EndTime,
		CreatedAt:     domainEntry.CreatedAt,
	}
}

// FromDatabase converts a database TimeEntry to a domain TimeEntry.
func (m *TimeEntryMapper) FromDatabase(dbEntry sqlite.TimeEntry) TimeEntry {
	return TimeEntry{
		ID:            dbEntry.EntryID,
		ClientID:      dbEntry.ClientID,
		ClientName:    dbEntry.ClientName,
		ServiceType:   dbEntry.ServiceType,
		ServiceLineID: dbEntry.ServiceLineID,
		Notes:         dbEntry.Notes,
		HourlyRate:    dbEntry.HourlyRate,
		Billable:      dbEntry.Billable,
		StartTime:     dbEntry.StartTime,
		EndTime:       dbEntry.EndTime,
		CreatedAt:     dbEntry.CreatedAt,
	}
}

// FromDatabaseSlice converts a slice of database TimeEntries to domain TimeEntries.
func (m *TimeEntryMapper) FromDatabaseSlice(dbEntries []*sqlite.TimeEntry) []TimeEntry {
	domainEntries := make([]TimeEntry, len(dbEntries))
	for i, entry := range dbEntries {
		domainEntries[i] = m.FromDatabase(*entry)
	}
	return domainEntries
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	TimeEntry *TimeEntryMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		TimeEntry: NewTimeEntryMapper(),
	}
}
