package cli

import (
	"fmt"
	"io"

	"github.com/epsommer/becky-mobile-sub003/internal/engine"
)

// ResumeCommand handles the resume command
type ResumeCommand struct {
	tracker *engine.Tracker
	out     io.Writer
}

// NewResumeCommand creates a new resume command handler
func NewResumeCommand(app *App) *ResumeCommand {
	return &ResumeCommand{tracker: app.tracker, out: app.out}
}

// Execute unfreezes a paused session's display clock.
func (c *ResumeCommand) Execute() error {
	if c.tracker.State() != engine.StatePaused {
		fmt.Fprintln(c.out, "No paused session to resume")
		return nil
	}

	c.tracker.Resume()
	fmt.Fprintln(c.out, "Resumed")
	return nil
}
