package cli

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/epsommer/becky-mobile-sub003/internal/billing"
	"github.com/epsommer/becky-mobile-sub003/internal/domain"
	"github.com/epsommer/becky-mobile-sub003/internal/engine"
)

// SummaryCommand handles the summary command
type SummaryCommand struct {
	tracker *engine.Tracker
	out     io.Writer
}

// NewSummaryCommand creates a new summary command handler
func NewSummaryCommand(app *App) *SummaryCommand {
	return &SummaryCommand{tracker: app.tracker, out: app.out}
}

// clientSummary aggregates one client's completed entries.
type clientSummary struct {
	clientID string
	label    string
	entries  int
	hours    float64
	amount   float64
}

// Execute prints per-client totals, optionally restricted to a window
// expressed as time shorthand like "1w".
func (c *SummaryCommand) Execute(since string) error {
	entries := c.tracker.Entries()
	if since != "" {
		window, err := parseTimeShorthand(since)
		if err != nil {
			return err
		}
		now := timeNow()
		entries = c.tracker.EntriesByDateRange(now.Add(-window), now)
	}

	if len(entries) == 0 {
		fmt.Fprintln(c.out, "No entries found")
		return nil
	}

	summaries := summarizeByClient(entries)

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CLIENT\tENTRIES\tHOURS\tAMOUNT")
	var totalHours, totalAmount float64
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%s\n", s.label, s.entries, s.hours, billing.FormatAmount(s.amount))
		totalHours += s.hours
		totalAmount += s.amount
	}
	fmt.Fprintf(w, "TOTAL\t%d\t%.2f\t%s\n", len(entries), totalHours, billing.FormatAmount(totalAmount))
	return w.Flush()
}

// summarizeByClient groups entries per client, ordered by client id for
// stable output.
func summarizeByClient(entries []domain.TimeEntry) []*clientSummary {
	byClient := make(map[string]*clientSummary)
	for _, entry := range entries {
		s, ok := byClient[entry.ClientID]
		if !ok {
			label := entry.ClientName
			if label == "" {
				label = entry.ClientID
			}
			s = &clientSummary{clientID: entry.ClientID, label: label}
			byClient[entry.ClientID] = s
		}
		s.entries++
		if entry.EndTime != nil {
			s.hours += billing.Hours(entry.EndTime.Sub(entry.StartTime))
		}
		if cost, ok := billing.EntryCost(entry); ok && entry.Billable {
			s.amount += cost
		}
	}

	result := make([]*clientSummary, 0, len(byClient))
	for _, s := range byClient {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].clientID < result[j].clientID })
	return result
}
