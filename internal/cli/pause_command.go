package cli

import (
	"fmt"
	"io"

	"github.com/epsommer/becky-mobile-sub003/internal/billing"
	"github.com/epsommer/becky-mobile-sub003/internal/engine"
)

// PauseCommand handles the pause command
type PauseCommand struct {
	tracker *engine.Tracker
	out     io.Writer
}

// NewPauseCommand creates a new pause command handler
func NewPauseCommand(app *App) *PauseCommand {
	return &PauseCommand{tracker: app.tracker, out: app.out}
}

// Execute freezes the running display clock. The session keeps its start
// time, so paused wall-clock time still counts when the session is stopped.
func (c *PauseCommand) Execute() error {
	if c.tracker.State() != engine.StateRunning {
		fmt.Fprintln(c.out, "No running session to pause")
		return nil
	}

	c.tracker.Pause()
	fmt.Fprintf(c.out, "Paused at %s\n", billing.FormatDuration(c.tracker.Elapsed()))
	return nil
}
