package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/epsommer/becky-mobile-sub003/internal/domain"
)

func completedEntry(duration time.Duration, rate *float64, billable bool) domain.TimeEntry {
	start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(duration)
	return domain.TimeEntry{
		ID:         "e1",
		ClientID:   "c1",
		HourlyRate: rate,
		Billable:   billable,
		StartTime:  start,
		EndTime:    &end,
		CreatedAt:  end,
	}
}

func runningEntry(rate *float64, billable bool) domain.TimeEntry {
	return domain.TimeEntry{
		ID:         "e2",
		ClientID:   "c1",
		HourlyRate: rate,
		Billable:   billable,
		StartTime:  time.Now().Add(-time.Hour),
	}
}

func ratePtr(r float64) *float64 {
	return &r
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{
			name:     "one hour thirty minutes twenty-five seconds",
			duration: 5425000 * time.Millisecond,
			expected: "01:30:25",
		},
		{
			name:     "zero",
			duration: 0,
			expected: "00:00:00",
		},
		{
			name:     "sub-second truncates to zero",
			duration: 999 * time.Millisecond,
			expected: "00:00:00",
		},
		{
			name:     "negative clamps to zero",
			duration: -time.Minute,
			expected: "00:00:00",
		},
		{
			name:     "hours beyond 24 are not wrapped",
			duration: 26*time.Hour + 5*time.Minute + 3*time.Second,
			expected: "26:05:03",
		},
		{
			name:     "hours beyond 100 keep growing",
			duration: 125 * time.Hour,
			expected: "125:00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.duration))
		})
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"ninety minutes", 90 * time.Minute, "1.50"},
		{"one hour", time.Hour, "1.00"},
		{"fifteen minutes", 15 * time.Minute, "0.25"},
		{"zero", 0, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatHours(tt.duration))
		})
	}
}

func TestEntryCost(t *testing.T) {
	t.Run("computable entry", func(t *testing.T) {
		cost, ok := EntryCost(completedEntry(2*time.Hour, ratePtr(20), true))
		assert.True(t, ok)
		assert.InDelta(t, 40.0, cost, 0.0001)
	})

	t.Run("fractional hours", func(t *testing.T) {
		cost, ok := EntryCost(completedEntry(90*time.Minute, ratePtr(30), true))
		assert.True(t, ok)
		assert.InDelta(t, 45.0, cost, 0.0001)
	})

	t.Run("no hourly rate is not computable", func(t *testing.T) {
		_, ok := EntryCost(completedEntry(2*time.Hour, nil, true))
		assert.False(t, ok)
	})

	t.Run("running entry is not computable", func(t *testing.T) {
		_, ok := EntryCost(runningEntry(ratePtr(20), true))
		assert.False(t, ok)
	})
}

func TestTotalHours(t *testing.T) {
	entries := []domain.TimeEntry{
		completedEntry(2*time.Hour, ratePtr(20), true),
		completedEntry(30*time.Minute, nil, false),
		runningEntry(ratePtr(20), true), // contributes zero
	}

	assert.InDelta(t, 2.5, TotalHours(entries), 0.0001)
	assert.Equal(t, 0.0, TotalHours(nil))
}

func TestTotalAmount(t *testing.T) {
	t.Run("non-billable entries are excluded entirely", func(t *testing.T) {
		entries := []domain.TimeEntry{
			completedEntry(2*time.Hour, ratePtr(20), true), // 40.00
			completedEntry(time.Hour, ratePtr(50), false),  // excluded
		}

		total := TotalAmount(entries)
		assert.InDelta(t, 40.0, total, 0.0001)
		assert.Equal(t, "40.00", FormatAmount(total))
	})

	t.Run("rate-less and running entries contribute zero", func(t *testing.T) {
		entries := []domain.TimeEntry{
			completedEntry(time.Hour, nil, true),
			runningEntry(ratePtr(100), true),
		}

		assert.Equal(t, 0.0, TotalAmount(entries))
	})

	t.Run("empty set", func(t *testing.T) {
		assert.Equal(t, 0.0, TotalAmount(nil))
	})
}
