package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/epsommer/becky-mobile-sub003/internal/billing"
	"github.com/epsommer/becky-mobile-sub003/internal/domain"
	"github.com/epsommer/becky-mobile-sub003/internal/engine"
)

// ListOptions filters the entry log for the list command.
type ListOptions struct {
	ClientID string
	// Since restricts the listing to entries started within the window,
	// expressed as time shorthand like "2h" or "1w". Empty means no limit.
	Since string
}

// ListCommand handles the list command
type ListCommand struct {
	tracker *engine.Tracker
	out     io.Writer
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{tracker: app.tracker, out: app.out}
}

// Execute prints the completed-entry log, most recent first.
func (c *ListCommand) Execute(opts ListOptions) error {
	entries, err := c.selectEntries(opts)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(c.out, "No entries found")
		return nil
	}

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCLIENT\tSTART\tDURATION\tAMOUNT\tNOTES")
	for _, entry := range entries {
		duration := "-"
		if entry.EndTime != nil {
			duration = billing.FormatDuration(entry.EndTime.Sub(entry.StartTime))
		}
		amount := "-"
		if cost, ok := billing.EntryCost(entry); ok {
			amount = billing.FormatAmount(cost)
		}
		label := entry.ClientName
		if label == "" {
			label = entry.ClientID
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			entry.ID, label, entry.StartTime.Format("2006-01-02 15:04"), duration, amount, entry.Notes)
	}
	return w.Flush()
}

// selectEntries applies the list filters against the in-memory log.
func (c *ListCommand) selectEntries(opts ListOptions) ([]domain.TimeEntry, error) {
	if opts.Since != "" {
		window, err := parseTimeShorthand(opts.Since)
		if err != nil {
			return nil, err
		}
		now := timeNow()
		entries := c.tracker.EntriesByDateRange(now.Add(-window), now)
		if opts.ClientID != "" {
			filtered := entries[:0]
			for _, entry := range entries {
				if entry.ClientID == opts.ClientID {
					filtered = append(filtered, entry)
				}
			}
			entries = filtered
		}
		return entries, nil
	}

	if opts.ClientID != "" {
		return c.tracker.EntriesByClient(opts.ClientID), nil
	}
	return c.tracker.Entries(), nil
}
