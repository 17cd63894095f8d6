package domain

import "time"

// StartInput carries the form data captured when the user starts the timer.
type StartInput struct {
	ClientID      string `validate:"required"`
	ClientName    string
	ServiceType   string
	ServiceLineID *string
	Notes         string
	HourlyRate    *float64 `validate:"omitempty,gte=0"`
	Billable      bool
}

// ManualEntryInput carries the form data for a backdated entry that is born
// already completed.
type ManualEntryInput struct {
	StartInput
	StartTime time.Time `validate:"required"`
	EndTime   time.Time `validate:"required"`
}
