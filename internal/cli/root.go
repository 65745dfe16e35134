package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lms-hub/internal/domain"
	"lms-hub/internal/fixture"
	"lms-hub/internal/infrastructure/kvstore"
	"lms-hub/internal/screen"
	"lms-hub/internal/usecase"
	"lms-hub/utils/logger"
	"lms-hub/utils/validator"
)

// app carries the state shared by every lmsctl command.
type app struct {
	v       *viper.Viper
	cfgFile string
	noColor bool
	verbose bool

	cfg     *Config
	logger  *slog.Logger
	printer *Printer
}

// NewRootCmd builds the lmsctl command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "lmsctl",
		Short: "Powergrid LMS dashboard in the terminal",
		Long: `lmsctl signs into the learning dashboard and renders its screens as tables.

The signed-in identity is cached in a local SQLite file, so it survives
between invocations until you log out.

Example usage:
  lmsctl accounts                                   # Demo accounts
  lmsctl login --email atharva.vaidya@powergridindia.com --password password123
  lmsctl view                                       # Your dashboard
  lmsctl view courses --category "Technical Skills" # Filtered course library
  lmsctl logout`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is .lmsctl.yaml)")
	flags.String("cache", "", "path of the local session cache")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	_ = a.v.BindPFlag("cache.path", flags.Lookup("cache"))

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newMenuCmd(a),
		newViewCmd(a),
		newAccountsCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs lmsctl with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.v, a.cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg

	level := logger.ParseLevel(cfg.Logging.Level)
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.printer = NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Output.Colors && !a.noColor)

	a.logger.Debug("configuration loaded", "cache_path", cfg.Cache.Path)
	return nil
}

// openShell opens the local cache and boots a shell on it. The returned
// func releases the cache.
func (a *app) openShell(ctx context.Context) (*usecase.AppShell, func(), error) {
	path, err := a.cfg.CachePath()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, fmt.Errorf("create cache directory: %w", err)
	}

	store, err := kvstore.Open(ctx, kvstore.Options{
		Backend:    kvstore.BackendSQLite,
		SQLitePath: path,
	}, a.logger)
	if err != nil {
		return nil, nil, err
	}

	sessions := usecase.NewSessionStore(fixture.DefaultRoster(), store, validator.New(), a.logger)
	shell := usecase.NewAppShell(sessions, usecase.NewViewRouter(), screen.NewComposer(fixture.Default()), a.logger)
	shell.Boot(ctx)

	return shell, func() { _ = store.Close() }, nil
}

func errNotSignedIn() error {
	return fmt.Errorf("%w: run lmsctl login first", domain.ErrNotAuthenticated)
}
