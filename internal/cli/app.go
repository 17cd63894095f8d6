// Package cli wires the tracking engine to a cobra command tree. Each
// subcommand has a small handler struct so the parsing and printing logic
// can be tested without going through cobra.
package cli

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/epsommer/becky-mobile-sub003/internal/config"
	"github.com/epsommer/becky-mobile-sub003/internal/engine"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App bundles the command handlers' shared dependencies.
type App struct {
	tracker *engine.Tracker
	config  *config.Config
	out     io.Writer
}

// NewApp creates a CLI application over the given tracker.
func NewApp(tracker *engine.Tracker, cfg *config.Config) *App {
	return &App{
		tracker: tracker,
		config:  cfg,
		out:     os.Stdout,
	}
}

// SetOutput redirects command output, used by tests.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// parseTimeShorthand parses window shorthand like "30m", "2h", "1d", "1w".
func parseTimeShorthand(shorthand string) (time.Duration, error) {
	re := regexp.MustCompile(`^(\d+)(m|h|d|w|mo|y)$`)
	matches := re.FindStringSubmatch(shorthand)
	if matches == nil {
		return 0, fmt.Errorf("invalid time format: %s", shorthand)
	}

	value, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("invalid number in time format: %s", shorthand)
	}

	var duration time.Duration
	switch matches[2] {
	case "m":
		duration = time.Duration(value) * time.Minute
	case "h":
		duration = time.Duration(value) * time.Hour
	case "d":
		duration = time.Duration(value) * 24 * time.Hour
	case "w":
		duration = time.Duration(value) * 7 * 24 * time.Hour
	case "mo":
		duration = time.Duration(value) * 30 * 24 * time.Hour
	case "y":
		duration = time.Duration(value) * 365 * 24 * time.Hour
	}

	return duration, nil
}

// acceptedTimeLayouts are the formats the add command accepts for
// start/end times, tried in order.
var acceptedTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// parseEntryTime parses a user-supplied timestamp in any accepted layout,
// interpreting layouts without a zone as local time.
func parseEntryTime(value string) (time.Time, error) {
	for _, layout := range acceptedTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q (expected e.g. \"2006-01-02 15:04\")", value)
}
