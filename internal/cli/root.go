// Package cli provides the command-line interface for the trade tracker.
package cli

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"daytrade-tracker/internal/analytics"
	"daytrade-tracker/internal/config"
	"daytrade-tracker/internal/errors"
	"daytrade-tracker/internal/logging"
	"daytrade-tracker/internal/models"
	"daytrade-tracker/internal/store"
	"daytrade-tracker/pkg/utils"
)

// Version information
const (
	Version   = "0.1.0"
	BuildDate = "2025-08-01"
)

// errNoStore is returned when the SQLite store failed to initialize.
var errNoStore = errors.Wrap(errors.ErrDatabaseError, "store unavailable")

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Store  store.DataStore
	Engine *analytics.Engine
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
		Engine: analytics.NewEngine(),
	}

	// Initialize SQLite store
	dbPath := cfg.Database.Path
	if dbPath == "" {
		dbPath = config.DefaultConfigDir() + "/tracker.db"
	}
	dataStore, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize store, some features may be unavailable")
	} else {
		app.Store = dataStore
		logger.Debug().Str("path", dbPath).Msg("SQLite store initialized")
	}

	rootCmd := &cobra.Command{
		Use:   "tracker",
		Short: "Day Trade Tracker - trade journal and performance analytics CLI",
		Long: `Day Trade Tracker is a personal trade journal with performance analytics.

Record closed trades, then explore win rate, volatility, drawdown, equity
curves, long-horizon projections and behavioral patterns over your history.

Use 'tracker help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/daytrade-tracker)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	addCoreCommands(rootCmd, app)
	addTradeCommands(rootCmd, app)
	addImportCommands(rootCmd, app)
	addJournalCommands(rootCmd, app)
	addStatsCommands(rootCmd, app)
	addCurveCommands(rootCmd, app)
	addProjectCommands(rootCmd, app)
	addInsightsCommands(rootCmd, app)
	addTickerCommands(rootCmd, app)
	addCalendarCommands(rootCmd, app)

	return rootCmd
}

// loadEngine pulls the full trade history into the analytics engine.
// Every read command goes through here so the memoized engine sees a
// consistent snapshot for the duration of one invocation.
func (app *App) loadEngine(ctx context.Context) ([]models.Trade, error) {
	if app.Store == nil {
		return nil, errNoStore
	}
	trades, err := app.Store.GetTrades(ctx, store.TradeFilter{})
	if err != nil {
		return nil, err
	}
	app.Engine.SetTrades(trades)
	return trades, nil
}

// commandContext returns the context for a single command invocation.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), 30*time.Second)
}

// addCoreCommands adds core utility commands.
func addCoreCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			} else {
				output.Printf("Day Trade Tracker v%s\n", Version)
				output.Dim("Build date: %s", BuildDate)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			showConfig(output, app.Config)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) {
	output.Bold("Capital")
	output.Printf("  Initial Capital:      %s\n", utils.FormatCurrency(cfg.Capital.InitialCapital))
	output.Printf("  Monthly Contribution: %s\n", utils.FormatCurrency(cfg.Capital.MonthlyContribution))
	output.Printf("  Conservative Mode:    %v\n", cfg.Capital.ConservativeProjections)
	output.Println()

	output.Bold("Database")
	output.Printf("  Path: %s\n", cfg.Database.Path)
	output.Println()

	output.Bold("Logging")
	output.Printf("  Level:   %s\n", cfg.Logging.Level)
	output.Printf("  Console: %v\n", cfg.Logging.Console)
	output.Printf("  File:    %v\n", cfg.Logging.File)
}
