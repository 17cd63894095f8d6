package sqlite

import "time"

// TimeEntry represents a tracked work session as stored in the database.
// Seq is the append-order sequence for log entries; it is zero for the
// active-entry record, which lives in its own table.
type TimeEntry struct {
	Seq           int64
	EntryID       string
	ClientID      string
	ClientName    string
	ServiceType   string
	ServiceLineID *string // Using pointer to allow NULL values
	Notes         string
	HourlyRate    *float64
	Billable      bool
	StartTime     time.Time
	EndTime       *time.Time
	CreatedAt     time.Time
}
