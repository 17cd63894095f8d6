package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/epsommer/becky-mobile-sub003/internal/engine"
	"github.com/epsommer/becky-mobile-sub003/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	tracker      *engine.Tracker
	errorHandler *ErrorHandler
	out          io.Writer
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		tracker:      app.tracker,
		errorHandler: NewErrorHandler(),
		out:          app.out,
	}
}

// Execute removes an entry from the log by id. The tracker treats unknown
// ids as a no-op, so the command checks existence first to give feedback.
func (c *DeleteCommand) Execute(ctx context.Context, entryID string) error {
	if entryID == "" {
		return errors.NewInvalidInputError("entry_id", entryID, "usage: tk delete <entry-id>")
	}

	known := false
	for _, entry := range c.tracker.Entries() {
		if entry.ID == entryID {
			known = true
			break
		}
	}
	if !known {
		fmt.Fprintf(c.out, "No entry with id %s\n", entryID)
		return nil
	}

	if err := c.tracker.DeleteEntry(ctx, entryID); err != nil {
		return c.errorHandler.Handle("delete entry", err)
	}
	fmt.Fprintf(c.out, "Deleted entry %s\n", entryID)
	return nil
}
