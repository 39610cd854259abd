package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"work-tracker/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	loader *config.Loader
	config *config.Config
	app    *App
}

// NewRootCommand creates the root cobra command with global flags. The
// configuration is loaded from loader once the flags are parsed.
func NewRootCommand(loader *config.Loader) *RootCommand {
	root := &RootCommand{
		loader: loader,
	}

	root.cmd = &cobra.Command{
		Use:   "wt",
		Short: "Track work time per project",
		Long: `Work Tracker (wt) times work sessions for a project and keeps two records of them:
a raw log with one entry per session and a daily summary table.

FEATURES:
  • Live timer with pause/resume; saving ends the session and starts the next one
  • Raw log as JSON (work-logs.json) or SQLite (work-logs.db)
  • Daily table as a styled xlsx workbook, csv, json or yaml (<project>.<ext>)
  • Rebuild the daily table from the raw log at any time
  • Export the daily table to csv, json, yaml, xlsx or pdf

EXAMPLES:
  wt track                                 # Track the project named after the current directory
  wt track --project acme                  # Track another project
  wt show                                  # Print the daily table
  wt rebuild                               # Rewrite the daily table from the raw log
  wt export --format pdf --out acme.pdf    # Export the daily table as pdf
  wt import                                # Copy the JSON raw log into SQLite
  wt files                                 # Show where everything is stored

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults

  The config file is YAML, read from WT_CONFIG or ~/.config/wt/config.yaml.
  A .env file in the working directory is loaded into the environment.

  Storage Configuration:
    WT_STORAGE_DIR                         Storage directory (default: ~/.wt)
    WT_RAW_LOG_FILENAME                    Raw log file name (default: work-logs.json)
    WT_RAW_LOG_BACKEND                     json or sqlite (default: json)
    WT_TABLE_FORMAT                        xlsx, csv, json or yaml (default: xlsx)
    WT_STORAGE_DIR_PERMISSIONS             Octal permissions of created directories (default: 0755)

  Project Configuration:
    WT_PROJECT                             Project name (default: current directory name)
    WT_PROJECT_MAX_NAME_LENGTH             Max project name length (default: 100)

  Time Configuration:
    WT_DATE_LAYOUT                         Go layout of record dates (default: 02/01/2006)
    WT_CLOCK_LAYOUT                        Go layout of start/end times (default: 15:04:05)
    WT_GENERATED_LAYOUT                    Go layout of the "Generated on" line

  Display Configuration:
    WT_TITLE                               Table title after the project name
    WT_REFRESH_INTERVAL                    Status line refresh interval (default: 1s)

  Application Configuration:
    WT_APP_TIMEOUT                         Timeout of non-interactive commands (default: 60s)
    WT_APP_VERBOSE                         Enable verbose output (default: false)
    WT_SAVE_ON_QUIT                        Save the running session on quit (default: true)
    WT_DEBUG                               Print debug output to stderr

GETTING HELP:
  wt [command] --help                      # Get help for any specific command
  wt completion bash                       # Generate bash completion script`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadConfig(cmd)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Config returns the configuration loaded for the last run, or nil before one
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "Config file (overrides WT_CONFIG)")

	// Storage configuration
	flags.String("dir", "", "Storage directory (overrides WT_STORAGE_DIR)")
	flags.String("backend", "", "Raw log backend: json or sqlite (overrides WT_RAW_LOG_BACKEND)")
	flags.String("table-format", "", "Daily table format: xlsx, csv, json or yaml (overrides WT_TABLE_FORMAT)")
	flags.String("dir-permissions", "", "Octal permissions of created directories (overrides WT_STORAGE_DIR_PERMISSIONS)")

	// Project configuration
	flags.StringP("project", "p", "", "Project name (overrides WT_PROJECT)")

	// Time configuration
	flags.String("date-layout", "", "Go layout of record dates (overrides WT_DATE_LAYOUT)")
	flags.String("clock-layout", "", "Go layout of start and end times (overrides WT_CLOCK_LAYOUT)")

	// Display configuration
	flags.Duration("refresh-interval", 0, "Status line refresh interval (overrides WT_REFRESH_INTERVAL)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Timeout of non-interactive commands (overrides WT_APP_TIMEOUT)")
	flags.BoolP("verbose", "v", false, "Enable verbose output (overrides WT_APP_VERBOSE)")
	flags.Bool("save-on-quit", true, "Save the running session on quit (overrides WT_SAVE_ON_QUIT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	trackCmd := &cobra.Command{
		Use:   "track",
		Short: "Track a work session",
		Long: `Start a work session for the project and show a live status line.

Keys:
  p   pause or resume
  s   save the session and immediately start the next one
  q   quit (saves the running session unless --save-on-quit=false)

When input is not a terminal, the same commands are read one per line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Tracking runs until the user quits, so no application timeout
			return NewTrackCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the daily table",
		Long: `Print the daily table of the project: one row per date with the total duration and every work session.

With --from or --to, the table is built from the raw log sessions in that date
range (both inclusive) instead of read from the table file.

Examples:
  wt show
  wt show --from 03/03/2025 --to 09/03/2025`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeoutContext(cmd)
			defer cancel()

			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")
			return NewShowCommand(r.app, from, to).Execute(ctx, args)
		},
	}
	showCmd.Flags().String("from", "", "First date to include, in the configured date layout")
	showCmd.Flags().String("to", "", "Last date to include, in the configured date layout")

	rebuildCmd := &cobra.Command{
		Use:   "rebuild",
		Short: "Rewrite the daily table from the raw log",
		Long: `Fold every session of the raw log into a fresh daily table and overwrite the table file.

Use this after the table failed to save or was edited by hand.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeoutContext(cmd)
			defer cancel()

			return NewRebuildCommand(r.app).Execute(ctx, args)
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the daily table in another format",
		Long: `Render the current daily table in another format.

Supported formats:
  csv, json, yaml, xlsx, pdf

Examples:
  wt export --format csv                   # Writes <project>.csv in the current directory
  wt export --format pdf --out report.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeoutContext(cmd)
			defer cancel()

			format, _ := cmd.Flags().GetString("format")
			out, _ := cmd.Flags().GetString("out")
			return NewExportCommand(r.app, format, out).Execute(ctx, args)
		},
	}
	exportCmd.Flags().StringP("format", "f", "csv", "Export format: csv, json, yaml, xlsx or pdf")
	exportCmd.Flags().StringP("out", "o", "", "Output file (default: <project>.<ext> in the current directory)")

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Copy the JSON raw log into the SQLite raw log",
		Long: `Copy every session of a JSON raw log into the SQLite raw log (work-logs.db).

The SQLite raw log must be empty. Sessions that fail validation are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeoutContext(cmd)
			defer cancel()

			from, _ := cmd.Flags().GetString("from")
			return NewImportCommand(r.app, from).Execute(ctx, args)
		},
	}
	importCmd.Flags().String("from", "", "JSON raw log to import (default: the configured work-logs.json)")

	filesCmd := &cobra.Command{
		Use:   "files",
		Short: "Show where the raw log and daily table are stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeoutContext(cmd)
			defer cancel()

			return NewFilesCommand(r.app).Execute(ctx, args)
		},
	}

	r.cmd.AddCommand(
		trackCmd,
		showCmd,
		rebuildCmd,
		exportCmd,
		importCmd,
		filesCmd,
	)
}

// timeoutContext bounds a command by the configured application timeout
func (r *RootCommand) timeoutContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, r.getAppTimeout())
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// loadConfig loads the configuration with the flags the user set applied on top
func (r *RootCommand) loadConfig(cmd *cobra.Command) error {
	if r.loader == nil {
		return fmt.Errorf("configuration loader not initialized")
	}

	overrides, err := r.overridesFromFlags(cmd)
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		r.loader.WithConfigFile(path)
	}

	cfg, err := r.loader.LoadWithOverrides(overrides)
	if err != nil {
		return err
	}

	r.config = cfg
	r.app = NewApp(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	return nil
}

// overridesFromFlags collects the global flags that were set on the command line
func (r *RootCommand) overridesFromFlags(cmd *cobra.Command) (*config.ConfigOverrides, error) {
	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	// Storage configuration
	overrides.StorageDir = changedString(flags, "dir")
	overrides.RawLogBackend = changedString(flags, "backend")
	overrides.TableFormat = changedString(flags, "table-format")
	if perm := changedString(flags, "dir-permissions"); perm != nil {
		value, err := strconv.ParseUint(*perm, 8, 32)
		if err != nil {
			return nil, &config.ConfigError{Field: "storage.dir_permissions", Message: fmt.Sprintf("invalid octal permissions %q", *perm)}
		}
		mode := uint32(value)
		overrides.DirPermissions = &mode
	}

	// Project configuration
	overrides.Project = changedString(flags, "project")

	// Time configuration
	overrides.DateLayout = changedString(flags, "date-layout")
	overrides.ClockLayout = changedString(flags, "clock-layout")

	// Display configuration
	overrides.RefreshInterval = changedDuration(flags, "refresh-interval")

	// Application configuration
	overrides.Timeout = changedDuration(flags, "app-timeout")
	overrides.Verbose = changedBool(flags, "verbose")
	overrides.SaveOnQuit = changedBool(flags, "save-on-quit")

	return overrides, nil
}

// changedString returns the flag's value if it was set on the command line
func changedString(flags *pflag.FlagSet, name string) *string {
	if !flags.Changed(name) {
		return nil
	}
	value, _ := flags.GetString(name)
	return &value
}

func changedDuration(flags *pflag.FlagSet, name string) *time.Duration {
	if !flags.Changed(name) {
		return nil
	}
	value, _ := flags.GetDuration(name)
	return &value
}

func changedBool(flags *pflag.FlagSet, name string) *bool {
	if !flags.Changed(name) {
		return nil
	}
	value, _ := flags.GetBool(name)
	return &value
}
