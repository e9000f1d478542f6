// Package cli exposes the jobclock commands. Each command is a thin
// cobra wrapper around a handler that talks to the API; the handlers own
// the output formatting and error mapping.
package cli

import (
	"github.com/spf13/cobra"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command and wires all subcommands
func NewRootCommand(app *App) *RootCommand {
	root := &RootCommand{app: app}

	root.cmd = &cobra.Command{
		Use:   "jobclock",
		Short: "A command-line job time clock",
		Long: `jobclock tracks working time per job: live timers, manual entries,
and per-day and per-week totals.

EXAMPLES:
  jobclock job add "Warehouse"              # Create a job
  jobclock job ls                           # List jobs
  jobclock start "Warehouse"                # Start the timer
  jobclock status "Warehouse" --watch       # Live elapsed clock
  jobclock stop "Warehouse"                 # Stop the timer
  jobclock add "Warehouse" 22:00 06:00      # Manual overnight entry (today)
  jobclock add "Warehouse" 09:00 17:00 --date 2024-05-01
  jobclock days "Warehouse"                 # Entries grouped by day
  jobclock report "Warehouse"               # Weekly timesheet

CONFIGURATION:
  Settings load from ~/.jobclock/config.yaml, then environment variables:
    JC_DB_DIR          Database directory (default: ~/.jobclock)
    JC_DB_FILENAME     Database filename (default: jobclock.db)
    JC_TIME_FORMAT     Display format, 24h or 12h (default: 24h)
    JC_OWNER           Owner id the store is scoped to
    JC_TICK_INTERVAL   Watch-mode tick period (default: 1s)
    JC_DEBUG           Enable debug logging to stderr`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addJobCommands()
	root.addTimerCommands()
	root.addEntryCommands()
	root.addReportCommand()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

func (r *RootCommand) addJobCommands() {
	handler := NewJobCommand(r.app)

	jobCmd := &cobra.Command{
		Use:   "job",
		Short: "Manage jobs",
	}

	jobCmd.AddCommand(
		&cobra.Command{
			Use:   "add <name>",
			Short: "Create a new job",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return handler.Add(cmd.Context(), args)
			},
		},
		&cobra.Command{
			Use:   "ls",
			Short: "List jobs",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return handler.List(cmd.Context(), args)
			},
		},
		&cobra.Command{
			Use:   "rename <job> <new name>",
			Short: "Rename a job",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return handler.Rename(cmd.Context(), args)
			},
		},
		&cobra.Command{
			Use:   "rm <job>",
			Short: "Delete a job and all of its time entries",
			Long: `Delete a job and all of its time entries in one atomic step.
This operation cannot be undone.`,
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return handler.Remove(cmd.Context(), args)
			},
		},
	)

	r.cmd.AddCommand(jobCmd)
}

func (r *RootCommand) addTimerCommands() {
	handler := NewTimerCommand(r.app)

	startCmd := &cobra.Command{
		Use:   "start <job>",
		Short: "Start the timer for a job",
		Long:  "Start tracking time for a job. Fails if a timer is already running for it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handler.Start(cmd.Context(), args)
		},
	}

	stopCmd := &cobra.Command{
		Use:   "stop <job>",
		Short: "Stop the running timer for a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handler.Stop(cmd.Context(), args)
		},
	}

	var watch bool
	statusCmd := &cobra.Command{
		Use:   "status <job>",
		Short: "Show the timer status for a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handler.Status(cmd.Context(), args, watch)
		},
	}
	statusCmd.Flags().BoolVar(&watch, "watch", false, "keep the elapsed clock updating until interrupted")

	r.cmd.AddCommand(startCmd, stopCmd, statusCmd)
}

func (r *RootCommand) addEntryCommands() {
	handler := NewEntryCommand(r.app)

	var date string
	addCmd := &cobra.Command{
		Use:   "add <job> <start> <end>",
		Short: "Add a manual time entry",
		Long: `Add a closed time entry with start and end times of day.
An end time earlier than the start rolls over into the next day.

Examples:
  jobclock add "Warehouse" 09:00 17:30
  jobclock add "Warehouse" 22:00 06:00            # overnight shift
  jobclock add "Warehouse" "9:00 AM" "5:30 PM"    # with JC_TIME_FORMAT=12h`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handler.Add(cmd.Context(), args, date)
		},
	}
	addCmd.Flags().StringVar(&date, "date", "", "entry date as YYYY-MM-DD (default: today)")

	daysCmd := &cobra.Command{
		Use:   "days <job>",
		Short: "List entries grouped by day, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handler.Days(cmd.Context(), args)
		},
	}

	r.cmd.AddCommand(addCmd, daysCmd)
}

func (r *RootCommand) addReportCommand() {
	handler := NewReportCommand(r.app)

	r.cmd.AddCommand(&cobra.Command{
		Use:   "report <job>",
		Short: "Render a weekly timesheet for a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handler.Execute(cmd.Context(), args)
		},
	})
}
