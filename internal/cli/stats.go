// Package cli provides the command-line interface for the trade tracker.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"daytrade-tracker/internal/analytics"
	"daytrade-tracker/internal/models"
	"daytrade-tracker/pkg/utils"
)

// addStatsCommands adds the performance statistics command.
func addStatsCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Performance statistics",
		Long: `Summarize trading performance over the full history.

Covers totals and win rate, average P&L per day/month/year, volatility,
risk-adjusted return, maximum drawdown, profit factor and monthly
consistency.`,
		Example: `  tracker stats
  tracker stats --range 1m`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext(cmd)
			defer cancel()

			rangeFlag, _ := cmd.Flags().GetString("range")
			timeRange, err := parseTimeRange(rangeFlag)
			if err != nil {
				return err
			}

			trades, err := app.loadEngine(ctx)
			if err != nil {
				return err
			}

			capital := app.Config.Capital.InitialCapital
			metrics := app.Engine.Metrics(capital)
			if timeRange != analytics.RangeAll {
				windowed := tradesSince(trades, rangeStart(timeRange, time.Now()))
				metrics = analytics.ComputeMetrics(windowed, capital)
			}

			if output.IsJSON() {
				return output.JSON(metrics)
			}

			if len(trades) == 0 {
				output.Info("No trades recorded. Add trades with 'tracker trade add' or 'tracker import'.")
				return nil
			}

			output.Bold("Performance (%s)", timeRange)
			output.Printf("  Total P&L:      %s\n", output.FormatPnL(metrics.TotalPL))
			output.Printf("  Trades:         %d (%d wins, %.1f%% win rate)\n", metrics.TradeCount, metrics.WinCount, metrics.WinRate)
			output.Printf("  Trading Days:   %d\n", metrics.TradingDays)
			output.Println()

			output.Bold("Averages")
			output.Printf("  Per Day:        %s\n", output.FormatPnL(metrics.AvgDailyPL))
			output.Printf("  Per Month:      %s\n", output.FormatPnL(metrics.AvgMonthlyPL))
			output.Printf("  Per Year:       %s\n", output.FormatPnL(metrics.AvgAnnualPL))
			output.Printf("  Annual Return:  %s\n", output.FormatPercent(metrics.AnnualReturnRate))
			output.Println()

			output.Bold("Risk")
			output.Printf("  Daily Vol:      %s\n", utils.FormatCurrency(metrics.DailyVolatility))
			output.Printf("  Monthly Vol:    %s\n", utils.FormatCurrency(metrics.MonthlyVolatility))
			output.Printf("  Sharpe Ratio:   %.2f\n", metrics.SharpeRatio)
			output.Printf("  Max Drawdown:   %s\n", output.Red(utils.FormatCurrency(metrics.MaxDrawdown)))
			output.Printf("  Profit Factor:  %s\n", formatProfitFactor(metrics.ProfitFactor))
			output.Printf("  Consistency:    %.0f%% of months positive\n", metrics.Consistency)

			return nil
		},
	}

	cmd.Flags().String("range", "all", "window: today, 7d, 1m, 3m, 1y, all")
	rootCmd.AddCommand(cmd)
}

// rangeStart is the inclusive lower bound for a trailing window.
func rangeStart(r analytics.TimeRange, now time.Time) time.Time {
	switch r {
	case analytics.RangeToday:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case analytics.Range7D:
		return now.AddDate(0, 0, -7)
	case analytics.Range1M:
		return now.AddDate(0, -1, 0)
	case analytics.Range3M:
		return now.AddDate(0, -3, 0)
	case analytics.Range1Y:
		return now.AddDate(-1, 0, 0)
	default:
		return time.Time{}
	}
}

func tradesSince(trades []models.Trade, start time.Time) []models.Trade {
	var windowed []models.Trade
	for _, t := range trades {
		if !t.Timestamp.Before(start) {
			windowed = append(windowed, t)
		}
	}
	return windowed
}

// formatProfitFactor renders the capped all-win sentinel as an infinity
// marker instead of the raw cap value.
func formatProfitFactor(pf float64) string {
	if pf >= 999 {
		return "∞ (no losses)"
	}
	return fmt.Sprintf("%.2f", pf)
}
