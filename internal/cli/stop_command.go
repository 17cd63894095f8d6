package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/epsommer/becky-mobile-sub003/internal/billing"
	"github.com/epsommer/becky-mobile-sub003/internal/engine"
)

// StopCommand handles the stop command
type StopCommand struct {
	tracker      *engine.Tracker
	errorHandler *ErrorHandler
	out          io.Writer
}

// NewStopCommand creates a new stop command handler
func NewStopCommand(app *App) *StopCommand {
	return &StopCommand{
		tracker:      app.tracker,
		errorHandler: NewErrorHandler(),
		out:          app.out,
	}
}

// Execute completes the active session and prints its logged summary.
func (c *StopCommand) Execute(ctx context.Context) error {
	entry, err := c.tracker.Stop(ctx)
	if err != nil {
		return c.errorHandler.Handle("stop session", err)
	}
	if entry == nil {
		fmt.Fprintln(c.out, "No active session")
		return nil
	}

	duration := entry.EndTime.Sub(entry.StartTime)
	fmt.Fprintf(c.out, "Stopped: %s logged for %s\n", billing.FormatDuration(duration), entry.ClientID)
	if cost, ok := billing.EntryCost(*entry); ok {
		fmt.Fprintf(c.out, "Amount: %s (%s h at %s/h)\n",
			billing.FormatAmount(cost),
			billing.FormatHours(duration),
			billing.FormatAmount(*entry.HourlyRate))
	}

	if storageErr := c.tracker.Err(); storageErr != nil {
		fmt.Fprintf(c.out, "warning: entry not saved to disk: %v\n", c.errorHandler.HandleSimple(storageErr))
		c.tracker.ClearErr()
	}
	return nil
}
