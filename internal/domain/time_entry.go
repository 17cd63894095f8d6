package domain

import (
	"time"
)

// TimeEntry represents one tracked work session in the domain model.
// This is a pure domain model without database-specific concerns.
type TimeEntry struct {
	ID            string
	ClientID      string
	ClientName    string // display cache, not authoritative
	ServiceType   string
	ServiceLineID *string
	Notes         string
	HourlyRate    *float64
	Billable      bool
	StartTime     time.Time
	EndTime       *time.Time
	CreatedAt     time.Time
}

// NewTimeEntry creates a new running TimeEntry for the given client.
func NewTimeEntry(id string, clientID string, startTime time.Time) TimeEntry {
	return TimeEntry{
		ID:        id,
		ClientID:  clientID,
		StartTime: startTime,
		CreatedAt: startTime,
	}
}

// IsRunning returns true if the time entry is currently running (no end time).
func (te TimeEntry) IsRunning() bool {
	return te.EndTime == nil
}

// Stop sets the end time for the time entry.
func (te TimeEntry) Stop(endTime time.Time) TimeEntry {
	te.EndTime = &endTime
	return te
}

// Duration returns the duration of the time entry.
// If the entry is still running, it returns the duration up to now.
func (te TimeEntry) Duration() time.Duration {
	if te.EndTime == nil {
		return time.Since(te.StartTime)
	}
	return te.EndTime.Sub(te.StartTime)
}

// IsValid checks if the time entry has valid data.
func (te TimeEntry) IsValid() bool {
	if te.ID == "" {
		return false
	}
	if te.StartTime.IsZero() {
		return false
	}
	if te.EndTime != nil && !te.EndTime.After(te.StartTime) {
		return false
	}
	if te.HourlyRate != nil && *te.HourlyRate < 0 {
		return false
	}
	return true
}
