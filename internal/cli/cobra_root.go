package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/epsommer/becky-mobile-sub003/internal/config"
	"github.com/epsommer/becky-mobile-sub003/internal/domain"
	"github.com/epsommer/becky-mobile-sub003/internal/engine"
	"github.com/epsommer/becky-mobile-sub003/internal/errors"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	app     *App
	tracker *engine.Tracker
	config  *config.Config
}

// NewRootCommand creates the root cobra command with all subcommands attached.
func NewRootCommand(tracker *engine.Tracker, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app:     NewApp(tracker, cfg),
		tracker: tracker,
		config:  cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "tk",
		Short: "Track billable time per client",
		Long: `tk tracks billable time against clients.

A single session can be active at a time. Sessions survive process
restarts: an in-flight session is recovered from disk on startup.

EXAMPLES:
  tk start acme --name "Acme Corp" --rate 85 --billable   # Begin timing
  tk status                                               # Show the active session
  tk pause                                                # Freeze the display clock
  tk stop                                                 # Complete and log the session
  tk add acme --from "2026-08-29 09:00" --to "2026-08-29 10:30"
  tk list --client acme --since 1w                        # Filter the log
  tk summary 1mo                                          # Per-client hours and amounts

CONFIGURATION:
  BM_DB_DIR                   Database directory (default: ~/.becky)
  BM_DB_FILENAME              Database filename (default: becky.db)
  BM_DB_QUERY_TIMEOUT         Query timeout (default: 10s)
  BM_DB_WRITE_TIMEOUT         Write timeout (default: 5s)
  BM_TIMER_SAMPLER_INTERVAL   Elapsed-time sampling interval (default: 100ms)
  BM_APP_TIMEOUT              Command timeout (default: 60s)
  BM_DEBUG                    Enable debug logging (default: false)

TIME WINDOWS:
  list --since and summary accept shorthand: 30m, 2h, 1d, 2w, 3mo, 1y`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addSubcommands()
	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// SetArgs overrides os.Args parsing, used by tests.
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	var startInput domain.StartInput
	startCmd := &cobra.Command{
		Use:   "start <client-id>",
		Short: "Start timing a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			startInput.ClientID = args[0]
			return NewStartCommand(r.app).Execute(ctx, startInput)
		},
	}
	bindSessionFlags(startCmd, &startInput)

	stopCmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the active session and log it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewStopCommand(r.app).Execute(ctx)
		},
	}

	pauseCmd := &cobra.Command{
		Use:   "pause",
		Short: "Freeze the running clock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewPauseCommand(r.app).Execute()
		},
	}

	resumeCmd := &cobra.Command{
		Use:   "resume",
		Short: "Unfreeze a paused session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewResumeCommand(r.app).Execute()
		},
	}

	discardCmd := &cobra.Command{
		Use:   "discard",
		Short: "Abandon the active session without logging it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewDiscardCommand(r.app).Execute(ctx)
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the timer state and active session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewStatusCommand(r.app).Execute()
		},
	}

	var addInput domain.ManualEntryInput
	var addFrom, addTo string
	addCmd := &cobra.Command{
		Use:   "add <client-id> --from <time> --to <time>",
		Short: "Record a backdated, completed entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			start, err := parseEntryTime(addFrom)
			if err != nil {
				return errors.NewInvalidInputError("from", addFrom, err.Error())
			}
			end, err := parseEntryTime(addTo)
			if err != nil {
				return errors.NewInvalidInputError("to", addTo, err.Error())
			}

			addInput.ClientID = args[0]
			addInput.StartTime = start
			addInput.EndTime = end
			return NewAddCommand(r.app).Execute(ctx, addInput)
		},
	}
	bindSessionFlags(addCmd, &addInput.StartInput)
	addCmd.Flags().StringVar(&addFrom, "from", "", "Start time, e.g. \"2026-08-29 09:00\"")
	addCmd.Flags().StringVar(&addTo, "to", "", "End time, must be after --from")
	addCmd.MarkFlagRequired("from")
	addCmd.MarkFlagRequired("to")

	var listOpts ListOptions
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List logged entries, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewListCommand(r.app).Execute(listOpts)
		},
	}
	listCmd.Flags().StringVar(&listOpts.ClientID, "client", "", "Only entries for this client id")
	listCmd.Flags().StringVar(&listOpts.Since, "since", "", "Only entries within a window, e.g. 2h, 1d, 1w")

	deleteCmd := &cobra.Command{
		Use:   "delete <entry-id>",
		Short: "Delete a logged entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewDeleteCommand(r.app).Execute(ctx, args[0])
		},
	}

	var clearForce bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all logged entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewClearCommand(r.app).Execute(ctx, clearForce)
		},
	}
	clearCmd.Flags().BoolVar(&clearForce, "force", false, "Confirm the irreversible wipe")

	summaryCmd := &cobra.Command{
		Use:   "summary [window]",
		Short: "Per-client hours and billable amounts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			since := ""
			if len(args) == 1 {
				since = args[0]
			}
			return NewSummaryCommand(r.app).Execute(since)
		},
	}

	r.cmd.AddCommand(
		startCmd,
		stopCmd,
		pauseCmd,
		resumeCmd,
		discardCmd,
		statusCmd,
		addCmd,
		listCmd,
		deleteCmd,
		clearCmd,
		summaryCmd,
	)
}

// bindSessionFlags attaches the session attribute flags shared by the start
// and add commands.
func bindSessionFlags(cmd *cobra.Command, input *domain.StartInput) {
	flags := cmd.Flags()
	flags.StringVar(&input.ClientName, "name", "", "Client display name")
	flags.StringVar(&input.ServiceType, "service", "", "Service type, e.g. consulting")
	flags.StringVar(&input.Notes, "notes", "", "Free-form notes")
	flags.BoolVar(&input.Billable, "billable", false, "Mark the session billable")

	var rate float64
	var serviceLine string
	flags.Float64Var(&rate, "rate", 0, "Hourly rate")
	flags.StringVar(&serviceLine, "service-line", "", "Service line id")
	existing := cmd.PreRunE
	cmd.PreRunE = func(c *cobra.Command, args []string) error {
		if existing != nil {
			if err := existing(c, args); err != nil {
				return err
			}
		}
		if c.Flags().Changed("rate") {
			input.HourlyRate = &rate
		}
		if c.Flags().Changed("service-line") {
			input.ServiceLineID = &serviceLine
		}
		return nil
	}
}

// commandContext returns the bounded context commands run under.
func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	timeout := 60 * time.Second
	if r.config != nil {
		timeout = r.config.Application.Timeout
	}
	return context.WithTimeout(context.Background(), timeout)
}
