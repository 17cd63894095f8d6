package domain

import "time"

// EntryPatch describes a partial amendment to a completed time entry.
// Nil fields are left untouched by Apply.
type EntryPatch struct {
	ClientID      *string
	ClientName    *string
	ServiceType   *string
	ServiceLineID *string
	Notes         *string
	HourlyRate    *float64
	Billable      *bool
	StartTime     *time.Time
	EndTime       *time.Time
}

// TouchesTimes reports whether the patch modifies the entry's time bounds.
// Time-range invariants only need re-validation when this is true.
func (p EntryPatch) TouchesTimes() bool {
	return p.StartTime != nil || p.EndTime != nil
}

// Apply merges the patch into a copy of the given entry and returns it.
// The entry's ID and CreatedAt are never modified.
func (p EntryPatch) Apply(entry TimeEntry) TimeEntry {
	if p.ClientID != nil {
		entry.ClientID = *p.ClientID
	}
	if p.ClientName != nil {
		entry.ClientName = *p.ClientName
	}
	if p.ServiceType != nil {
		entry.ServiceType = *p.ServiceType
	}
	if p.ServiceLineID != nil {
		entry.ServiceLineID = p.ServiceLineID
	}
	if p.Notes != nil {
		entry.Notes = *p.Notes
	}
	if p.HourlyRate != nil {
		entry.HourlyRate = p.HourlyRate
	}
	if p.Billable != nil {
		entry.Billable = *p.Billable
	}
	if p.StartTime != nil {
		entry.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		entry.EndTime = p.EndTime
	}
	return entry
}
