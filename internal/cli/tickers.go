// Package cli provides the command-line interface for the trade tracker.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"daytrade-tracker/internal/analytics"
	"daytrade-tracker/pkg/utils"
)

// addTickerCommands adds the per-ticker breakdown command.
func addTickerCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "tickers [query]",
		Short: "Per-ticker performance breakdown",
		Long: `Break performance down by ticker, ranked by total P&L.

An optional query filters the list to tickers containing the text.`,
		Example: `  tracker tickers
  tracker tickers AAP`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext(cmd)
			defer cancel()

			if _, err := app.loadEngine(ctx); err != nil {
				return err
			}

			stats := app.Engine.Tickers()
			if len(args) == 1 {
				stats = filterTickers(stats, args[0])
			}

			if output.IsJSON() {
				return output.JSON(stats)
			}

			if len(stats) == 0 {
				output.Info("No matching tickers.")
				return nil
			}

			table := NewTable(output, "Ticker", "Trades", "P&L", "Win %", "Avg Win", "Avg Loss", "Best", "Worst", "Last Traded")
			for _, s := range stats {
				table.AddRow(
					s.Ticker,
					fmt.Sprintf("%d", s.Trades),
					output.FormatPnL(s.TotalPL),
					fmt.Sprintf("%.0f%%", s.WinRate),
					utils.FormatCurrency(s.AvgWin),
					utils.FormatCurrency(s.AvgLoss),
					output.FormatPnL(s.BestTrade),
					output.FormatPnL(s.WorstTrade),
					FormatDate(s.LastTraded),
				)
			}
			table.Render()
			return nil
		},
	}

	rootCmd.AddCommand(cmd)
}

func filterTickers(stats []analytics.TickerStats, query string) []analytics.TickerStats {
	query = strings.ToUpper(strings.TrimSpace(query))
	if query == "" {
		return stats
	}
	var matched []analytics.TickerStats
	for _, s := range stats {
		if strings.Contains(s.Ticker, query) {
			matched = append(matched, s)
		}
	}
	return matched
}
