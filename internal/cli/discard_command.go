package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/epsommer/becky-mobile-sub003/internal/engine"
)

// DiscardCommand handles the discard command
type DiscardCommand struct {
	tracker *engine.Tracker
	out     io.Writer
}

// NewDiscardCommand creates a new discard command handler
func NewDiscardCommand(app *App) *DiscardCommand {
	return &DiscardCommand{tracker: app.tracker, out: app.out}
}

// Execute abandons the active session without logging an entry.
func (c *DiscardCommand) Execute(ctx context.Context) error {
	if c.tracker.CurrentEntry() == nil {
		fmt.Fprintln(c.out, "No active session")
		return nil
	}

	c.tracker.Discard(ctx)
	fmt.Fprintln(c.out, "Session discarded")
	return nil
}
