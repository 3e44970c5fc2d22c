package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"wakatime-tracker/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd   *cobra.Command
	build AppBuilder
	app   *App

	reportProject string
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(build AppBuilder) *RootCommand {
	root := &RootCommand{
		build: build,
	}

	root.cmd = &cobra.Command{
		Use:   "wakatrack",
		Short: "Collect and query WakaTime coding activity",
		Long: `wakatrack pulls per-day, per-project coding activity summaries from the
WakaTime API and stores them in a local SQLite database for reporting.

EXAMPLES:
  wakatrack collect                        # Collect yesterday's activity
  wakatrack collect 2024-03-01             # Collect a specific date
  wakatrack backfill 2024-01-01 2024-03-01 # Collect every day in a range
  wakatrack import backup.json             # Seed the database from a bundle
  wakatrack report 2024-03-01 2024-03-31   # Activity within a range
  wakatrack report 2024-03-01 2024-03-31 --project my-app
  wakatrack projects                       # Distinct project names seen
  wakatrack run                            # Scheduled daily collection loop

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  WakaTime API:
    WAKA_API_KEY                           API key (required for collection)
    WAKA_USER_ID                           User identifier (default: current)
    WAKA_BASE_URL                          API base URL (default: https://wakatime.com/api/v1)
    WAKA_REQUEST_TIMEOUT                   HTTP request timeout (default: 30s)

  Database:
    WAKA_DB_DIR                            Database directory (default: ~/.wakatrack)
    WAKA_DB_FILENAME                       Database filename (default: wakatrack.db)
    WAKA_DB_CONNECT_ATTEMPTS               Connection attempts (default: 5)
    WAKA_DB_CONNECT_DELAY                  Delay between attempts (default: 5s)

  Notifications:
    WAKA_TELEGRAM_BOT_TOKEN                Telegram bot token (optional)
    WAKA_TELEGRAM_CHAT_ID                  Telegram chat ID (optional)

  Scheduler:
    WAKA_CRON_SCHEDULE                     Cron expression (default: 0 13 * * *)
    WAKA_RUN_ON_STARTUP                    Collect immediately on start (default: true)
    WAKA_IMPORT_INITIAL_DATA               Seed empty database on start (default: true)
    WAKA_INITIAL_DATA_PATH                 Seed bundle path (default: initial_data.json)
    WAKA_RATE_LIMIT_DELAY                  Pause between backfill days (default: 1s)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.buildApp()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command and releases the App afterwards. Post-run
// hooks are skipped by cobra when a command fails, so the store is closed
// here to cover failure paths too.
func (r *RootCommand) Execute() error {
	defer func() {
		if r.app != nil {
			r.app.Close()
		}
	}()
	return r.cmd.Execute()
}

// buildApp loads configuration, applies flag overrides and wires the App
func (r *RootCommand) buildApp() error {
	cfg, err := config.NewLoader().LoadWithOverrides(r.overridesFromFlags())
	if err != nil {
		return err
	}

	app, err := r.build(cfg)
	if err != nil {
		return err
	}
	r.app = app
	return nil
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides WAKA_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides WAKA_DB_FILENAME)")

	// WakaTime API configuration
	flags.String("api-key", "", "WakaTime API key (overrides WAKA_API_KEY)")
	flags.String("user-id", "", "WakaTime user ID (overrides WAKA_USER_ID)")
	flags.String("base-url", "", "WakaTime API base URL (overrides WAKA_BASE_URL)")
	flags.Duration("request-timeout", 0, "HTTP request timeout (overrides WAKA_REQUEST_TIMEOUT)")

	// Scheduler configuration
	flags.String("cron-schedule", "", "Cron expression for daily collection (overrides WAKA_CRON_SCHEDULE)")
	flags.Bool("run-on-startup", false, "Collect immediately when the loop starts (overrides WAKA_RUN_ON_STARTUP)")
	flags.String("initial-data", "", "Seed bundle path (overrides WAKA_INITIAL_DATA_PATH)")

	// Collection configuration
	flags.Duration("rate-limit-delay", 0, "Pause between backfill days (overrides WAKA_RATE_LIMIT_DELAY)")
}

// overridesFromFlags collects changed flag values as configuration overrides
func (r *RootCommand) overridesFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("db-dir") {
		v, _ := flags.GetString("db-dir")
		overrides.DBDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		overrides.DBFilename = &v
	}
	if flags.Changed("api-key") {
		v, _ := flags.GetString("api-key")
		overrides.APIKey = &v
	}
	if flags.Changed("user-id") {
		v, _ := flags.GetString("user-id")
		overrides.UserID = &v
	}
	if flags.Changed("base-url") {
		v, _ := flags.GetString("base-url")
		overrides.BaseURL = &v
	}
	if flags.Changed("request-timeout") {
		v, _ := flags.GetDuration("request-timeout")
		overrides.RequestTimeout = &v
	}
	if flags.Changed("cron-schedule") {
		v, _ := flags.GetString("cron-schedule")
		overrides.CronSchedule = &v
	}
	if flags.Changed("run-on-startup") {
		v, _ := flags.GetBool("run-on-startup")
		overrides.RunOnStartup = &v
	}
	if flags.Changed("initial-data") {
		v, _ := flags.GetString("initial-data")
		overrides.InitialDataPath = &v
	}
	if flags.Changed("rate-limit-delay") {
		v, _ := flags.GetDuration("rate-limit-delay")
		overrides.RateLimitDelay = &v
	}

	return overrides
}

// commandTimeout bounds single-shot commands. Backfill and the scheduler
// loop manage their own lifetimes.
const commandTimeout = 5 * time.Minute

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	collectCmd := &cobra.Command{
		Use:   "collect [date]",
		Short: "Collect one day's activity from the WakaTime API",
		Long: `Collect per-project activity for a single date (YYYY-MM-DD) and store it
in the local database. With no date, yesterday (UTC) is collected.
Re-collecting a date replaces its previous rows.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			return NewCollectCommand(r.app).Execute(ctx, args)
		},
	}

	backfillCmd := &cobra.Command{
		Use:   "backfill <start-date> <end-date>",
		Short: "Collect every day in an inclusive date range",
		Long: `Collect activity for every calendar day between start-date and end-date
inclusive. Individual day failures are reported and skipped; rerun the
same range to retry them. A short pause between days avoids API rate
limits.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewBackfillCommand(r.app).Execute(context.Background(), args)
		},
	}

	importCmd := &cobra.Command{
		Use:   "import <bundle-file>",
		Short: "Import activity from an exported JSON bundle",
		Long: `Import per-day, per-project activity from a JSON bundle file, for seeding
a fresh database from a backup. Malformed entries are skipped and
counted. Importing the same bundle twice is safe.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			return NewImportCommand(r.app).Execute(ctx, args)
		},
	}

	reportCmd := &cobra.Command{
		Use:   "report <start-date> <end-date>",
		Short: "Show stored activity for a date range",
		Long: `Show stored per-project activity for every day between start-date and
end-date inclusive, newest day first.

Examples:
  wakatrack report 2024-03-01 2024-03-31
  wakatrack report 2024-03-01 2024-03-31 --project my-app`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			return NewReportCommand(r.app).Execute(ctx, args, r.reportProject)
		},
	}
	reportCmd.Flags().StringVar(&r.reportProject, "project", "", "Limit the report to one project")

	projectsCmd := &cobra.Command{
		Use:   "projects",
		Short: "List distinct project names seen so far",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			return NewProjectsCommand(r.app).Execute(ctx, args)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the scheduled daily collection loop",
		Long: `Run the long-lived collection loop: optionally seed an empty database
from a bundle, optionally collect immediately, then collect yesterday's
activity every time the cron schedule fires. Stops on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewRunCommand(r.app).Execute(context.Background(), args)
		},
	}

	r.cmd.AddCommand(collectCmd, backfillCmd, importCmd, reportCmd, projectsCmd, runCmd)
}
