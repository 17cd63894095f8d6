package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/epsommer/becky-mobile-sub003/internal/billing"
	"github.com/epsommer/becky-mobile-sub003/internal/domain"
	"github.com/epsommer/becky-mobile-sub003/internal/engine"
)

// AddCommand handles the add command
type AddCommand struct {
	tracker      *engine.Tracker
	errorHandler *ErrorHandler
	out          io.Writer
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		tracker:      app.tracker,
		errorHandler: NewErrorHandler(),
		out:          app.out,
	}
}

// Execute records a backdated, already-completed entry.
func (c *AddCommand) Execute(ctx context.Context, input domain.ManualEntryInput) error {
	entry, err := c.tracker.AddManualEntry(ctx, input)
	if err != nil {
		return c.errorHandler.Handle("add entry", err)
	}

	duration := entry.EndTime.Sub(entry.StartTime)
	fmt.Fprintf(c.out, "Added entry %s: %s for %s\n", entry.ID, billing.FormatDuration(duration), entry.ClientID)
	return nil
}
