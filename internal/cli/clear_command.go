package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/epsommer/becky-mobile-sub003/internal/engine"
	"github.com/epsommer/becky-mobile-sub003/internal/errors"
)

// ClearCommand handles the clear command
type ClearCommand struct {
	tracker *engine.Tracker
	out     io.Writer
}

// NewClearCommand creates a new clear command handler
func NewClearCommand(app *App) *ClearCommand {
	return &ClearCommand{tracker: app.tracker, out: app.out}
}

// Execute wipes the completed-entry log. The active session, if any,
// survives. Requires explicit confirmation since it cannot be undone.
func (c *ClearCommand) Execute(ctx context.Context, force bool) error {
	if !force {
		return errors.NewInvalidInputError("force", force, "clearing the log cannot be undone; re-run with --force")
	}

	count := len(c.tracker.Entries())
	c.tracker.ClearEntries(ctx)
	fmt.Fprintf(c.out, "Cleared %d entries\n", count)
	return nil
}
