// Package cli provides the command-line interface for the trade tracker.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"daytrade-tracker/internal/logging"
	"daytrade-tracker/internal/models"
	"daytrade-tracker/internal/store"
)

// addTradeCommands adds trade recording commands.
func addTradeCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Record and review trades",
		Long:  "Add, list, and delete closed trades in the journal.",
	}

	cmd.AddCommand(newTradeAddCmd(app))
	cmd.AddCommand(newTradeListCmd(app))
	cmd.AddCommand(newTradeDeleteCmd(app))

	rootCmd.AddCommand(cmd)
}

func newTradeAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <ticker>",
		Short: "Record a closed trade",
		Long: `Record a completed round-trip trade.

Realized P&L is derived from direction, quantity, and the entry/exit
prices. The timestamp defaults to now.`,
		Example: `  tracker trade add AAPL --qty 10 --entry 150 --exit 155
  tracker trade add TSLA --short --qty 5 --entry 250 --exit 240 --at "2025-06-12 10:30"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext(cmd)
			defer cancel()

			if app.Store == nil {
				return errNoStore
			}

			qty, _ := cmd.Flags().GetInt("qty")
			entry, _ := cmd.Flags().GetFloat64("entry")
			exit, _ := cmd.Flags().GetFloat64("exit")
			short, _ := cmd.Flags().GetBool("short")
			at, _ := cmd.Flags().GetString("at")
			notes, _ := cmd.Flags().GetString("notes")

			direction := models.Long
			if short {
				direction = models.Short
			}

			timestamp := time.Now()
			if at != "" {
				parsed, err := parseUserTime(at)
				if err != nil {
					return err
				}
				timestamp = parsed
			}

			trade, err := models.NewTrade(args[0], direction, qty, entry, exit, timestamp, notes)
			if err != nil {
				return err
			}

			if err := app.Store.SaveTrade(ctx, trade); err != nil {
				app.Logger.Error().Err(err).Str("ticker", trade.Ticker).Msg("Failed to save trade")
				return err
			}
			logging.LogTrade(app.Logger, trade.Ticker, string(trade.Direction), trade.Quantity, trade.RealizedPL)

			if output.IsJSON() {
				return output.JSON(trade)
			}
			output.Success("Recorded %s %s x%d: %s", trade.Ticker, trade.Direction, trade.Quantity, output.FormatPnL(trade.RealizedPL))
			output.Dim("ID: %s", trade.ID)
			return nil
		},
	}

	cmd.Flags().Int("qty", 0, "number of shares (required)")
	cmd.Flags().Float64("entry", 0, "entry price (required)")
	cmd.Flags().Float64("exit", 0, "exit price (required)")
	cmd.Flags().Bool("short", false, "short trade (default long)")
	cmd.Flags().String("at", "", "trade time (e.g. \"2025-06-12 10:30\", defaults to now)")
	cmd.Flags().String("notes", "", "freeform notes")
	cmd.MarkFlagRequired("qty")
	cmd.MarkFlagRequired("entry")
	cmd.MarkFlagRequired("exit")

	return cmd
}

func newTradeListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded trades",
		Long:  "List trades, newest first, with optional ticker and date filters.",
		Example: `  tracker trade list
  tracker trade list --ticker AAPL --limit 20
  tracker trade list --from 2025-06-01 --to 2025-07-01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext(cmd)
			defer cancel()

			if app.Store == nil {
				return errNoStore
			}

			ticker, _ := cmd.Flags().GetString("ticker")
			limit, _ := cmd.Flags().GetInt("limit")
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")

			filter := store.TradeFilter{
				Ticker: strings.ToUpper(strings.TrimSpace(ticker)),
				Limit:  limit,
			}
			if from != "" {
				start, err := parseUserTime(from)
				if err != nil {
					return err
				}
				filter.StartDate = start
			}
			if to != "" {
				end, err := parseUserTime(to)
				if err != nil {
					return err
				}
				filter.EndDate = end
			}

			trades, err := app.Store.GetTrades(ctx, filter)
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(trades)
			}

			if len(trades) == 0 {
				output.Info("No trades recorded.")
				return nil
			}

			table := NewTable(output, "Time", "Ticker", "Dir", "Qty", "Entry", "Exit", "P&L", "ID")
			for _, t := range trades {
				table.AddRow(
					FormatDateTime(t.Timestamp),
					t.Ticker,
					string(t.Direction),
					fmt.Sprintf("%d", t.Quantity),
					FormatPrice(t.EntryPrice),
					FormatPrice(t.ExitPrice),
					output.FormatPnL(t.RealizedPL),
					TruncateString(t.ID, 24),
				)
			}
			table.Render()
			output.Println()
			output.Dim("%d trade(s)", len(trades))
			return nil
		},
	}

	cmd.Flags().String("ticker", "", "filter by ticker symbol")
	cmd.Flags().Int("limit", 50, "maximum rows (0 for all)")
	cmd.Flags().String("from", "", "start date (inclusive)")
	cmd.Flags().String("to", "", "end date (exclusive)")

	return cmd
}

func newTradeDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <trade-id>",
		Short: "Delete a recorded trade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext(cmd)
			defer cancel()

			if app.Store == nil {
				return errNoStore
			}

			id := args[0]
			if err := app.Store.DeleteTrade(ctx, id); err != nil {
				return err
			}
			app.Logger.Info().Str("trade_id", id).Msg("Trade deleted")

			if output.IsJSON() {
				return output.JSON(map[string]string{"deleted": id})
			}
			output.Success("Deleted trade %s", id)
			return nil
		},
	}
}

// parseUserTime accepts the date and datetime layouts users type at the
// command line, interpreted in local time.
func parseUserTime(value string) (time.Time, error) {
	layouts := []string{
		"2006-01-02 15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, layout := range layouts {
		if ts, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q (use YYYY-MM-DD or \"YYYY-MM-DD HH:MM\")", value)
}
