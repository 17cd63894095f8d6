// Package billing derives display and monetary values from completed time
// entries. All functions are pure; nothing here reads or writes state.
package billing

import (
	"fmt"
	"time"

	"github.com/epsommer/becky-mobile-sub003/internal/domain"
)

const millisPerHour = float64(time.Hour / time.Millisecond)

// FormatDuration renders a duration as zero-padded HH:MM:SS. The hours
// component is unbounded rather than wrapped at 24.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalSeconds := int64(d / time.Second)
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// FormatHours renders a duration as decimal hours with two decimal places.
func FormatHours(d time.Duration) string {
	return fmt.Sprintf("%.2f", Hours(d))
}

// Hours converts a duration to unrounded decimal hours.
func Hours(d time.Duration) float64 {
	return float64(d/time.Millisecond) / millisPerHour
}

// FormatAmount renders a dollar amount for display. Amounts are accumulated
// unrounded and rounded only here.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// EntryCost returns the cost of a single entry. It is defined only when the
// entry has both an hourly rate and an end time; otherwise ok is false and
// the entry is "not computable", not zero.
func EntryCost(entry domain.TimeEntry) (float64, bool) {
	if entry.HourlyRate == nil || entry.EndTime == nil {
		return 0, false
	}
	return Hours(entry.EndTime.Sub(entry.StartTime)) * *entry.HourlyRate, true
}

// TotalHours sums the duration of all completed entries, in decimal hours.
// Entries without an end time contribute zero.
func TotalHours(entries []domain.TimeEntry) float64 {
	var total time.Duration
	for _, entry := range entries {
		if entry.EndTime == nil {
			continue
		}
		total += entry.EndTime.Sub(entry.StartTime)
	}
	return Hours(total)
}

// TotalAmount sums the cost of entries that are billable, have an hourly
// rate, and are completed. Everything else contributes zero, not an error.
func TotalAmount(entries []domain.TimeEntry) float64 {
	var total float64
	for _, entry := range entries {
		if !entry.Billable {
			continue
		}
		if cost, ok := EntryCost(entry); ok {
			total += cost
		}
	}
	return total
}
