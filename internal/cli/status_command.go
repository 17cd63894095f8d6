package cli

import (
	"fmt"
	"io"

	"github.com/epsommer/becky-mobile-sub003/internal/billing"
	"github.com/epsommer/becky-mobile-sub003/internal/engine"
)

// StatusCommand handles the status command
type StatusCommand struct {
	tracker *engine.Tracker
	out     io.Writer
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(app *App) *StatusCommand {
	return &StatusCommand{tracker: app.tracker, out: app.out}
}

// Execute prints the timer state and, when a session exists, its details.
func (c *StatusCommand) Execute() error {
	state := c.tracker.State()
	current := c.tracker.CurrentEntry()

	if current == nil {
		fmt.Fprintln(c.out, "Status: idle")
		fmt.Fprintf(c.out, "Logged entries: %d\n", len(c.tracker.Entries()))
		return nil
	}

	fmt.Fprintf(c.out, "Status: %s\n", state)
	label := current.ClientName
	if label == "" {
		label = current.ClientID
	}
	fmt.Fprintf(c.out, "Client: %s\n", label)
	if current.ServiceType != "" {
		fmt.Fprintf(c.out, "Service: %s\n", current.ServiceType)
	}
	fmt.Fprintf(c.out, "Started: %s\n", current.StartTime.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(c.out, "Elapsed: %s\n", billing.FormatDuration(c.tracker.Elapsed()))
	if current.HourlyRate != nil {
		cost := billing.Hours(c.tracker.Elapsed()) * *current.HourlyRate
		fmt.Fprintf(c.out, "Running amount: %s\n", billing.FormatAmount(cost))
	}
	return nil
}
