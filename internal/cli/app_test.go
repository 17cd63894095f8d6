package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epsommer/becky-mobile-sub003/internal/config"
	"github.com/epsommer/becky-mobile-sub003/internal/engine"
)

// setupTestApp creates an App over an in-memory store with captured output.
func setupTestApp(t *testing.T) (*App, *engine.Tracker, *bytes.Buffer) {
	t.Helper()

	repo, err := config.CreateTestRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	tracker := engine.New(context.Background(), repo, config.NewConfig())
	t.Cleanup(tracker.Close)

	app := NewApp(tracker, config.NewConfig())
	buf := &bytes.Buffer{}
	app.SetOutput(buf)

	return app, tracker, buf
}

func TestParseTimeShorthand(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"30m", 30 * time.Minute, false},
		{"2h", 2 * time.Hour, false},
		{"1d", 24 * time.Hour, false},
		{"2w", 14 * 24 * time.Hour, false},
		{"3mo", 90 * 24 * time.Hour, false},
		{"1y", 365 * 24 * time.Hour, false},
		{"", 0, true},
		{"abc", 0, true},
		{"5x", 0, true},
		{"h2", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := parseTimeShorthand(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseEntryTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"RFC3339", "2026-08-29T09:00:00Z", false},
		{"date and time", "2026-08-29 09:00:00", false},
		{"date and minutes", "2026-08-29 09:00", false},
		{"garbage", "yesterday", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseEntryTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2026, result.Year())
			assert.Equal(t, 9, result.Hour())
		})
	}
}
