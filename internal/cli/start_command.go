package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/epsommer/becky-mobile-sub003/internal/domain"
	"github.com/epsommer/becky-mobile-sub003/internal/engine"
)

// StartCommand handles the start command
type StartCommand struct {
	tracker      *engine.Tracker
	errorHandler *ErrorHandler
	out          io.Writer
}

// NewStartCommand creates a new start command handler
func NewStartCommand(app *App) *StartCommand {
	return &StartCommand{
		tracker:      app.tracker,
		errorHandler: NewErrorHandler(),
		out:          app.out,
	}
}

// Execute begins a new timing session for the given client.
func (c *StartCommand) Execute(ctx context.Context, input domain.StartInput) error {
	entry, err := c.tracker.Start(ctx, input)
	if err != nil {
		if c.errorHandler.GetErrorCode(err) == "ALREADY_RUNNING" {
			return fmt.Errorf("a session is already running; stop or discard it first")
		}
		return c.errorHandler.Handle("start session", err)
	}

	label := entry.ClientName
	if label == "" {
		label = entry.ClientID
	}
	fmt.Fprintf(c.out, "Started timing for %s (entry %s)\n", label, entry.ID)

	c.reportStorageFailure()
	return nil
}

// reportStorageFailure warns when the session started but could not be
// persisted, since a crash before stop would then lose it.
func (c *StartCommand) reportStorageFailure() {
	if err := c.tracker.Err(); err != nil {
		fmt.Fprintf(c.out, "warning: session not saved to disk: %v\n", c.errorHandler.HandleSimple(err))
		c.tracker.ClearErr()
	}
}
