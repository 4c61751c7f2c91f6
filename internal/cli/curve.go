// Package cli provides the command-line interface for the trade tracker.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"daytrade-tracker/internal/analytics"
	"daytrade-tracker/pkg/utils"
)

// addCurveCommands adds the equity curve command.
func addCurveCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Cumulative P&L or portfolio value curve",
		Long: `Render the cumulative curve for a trailing window.

By default the curve accumulates trading P&L from zero. With --portfolio
it starts from initial capital plus all P&L realized before the window,
showing portfolio value instead.`,
		Example: `  tracker curve --range 1m
  tracker curve --range all --portfolio`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext(cmd)
			defer cancel()

			rangeFlag, _ := cmd.Flags().GetString("range")
			portfolio, _ := cmd.Flags().GetBool("portfolio")

			timeRange, err := parseTimeRange(rangeFlag)
			if err != nil {
				return err
			}
			mode := analytics.BaselineZero
			if portfolio {
				mode = analytics.BaselinePortfolio
			}

			if _, err := app.loadEngine(ctx); err != nil {
				return err
			}

			series := app.Engine.Series(timeRange, time.Now(), mode, app.Config.Capital.InitialCapital)

			if output.IsJSON() {
				return output.JSON(series)
			}

			label := "Cumulative P&L"
			if portfolio {
				label = "Portfolio Value"
			}
			output.Bold("%s (%s)", label, timeRange)
			output.Println()
			renderSparkline(output, series.Points)
			output.Println()

			output.Printf("  Current: %s\n", utils.FormatCurrency(series.Stats.CurrentValue))
			change := fmt.Sprintf("%s (%s)",
				output.FormatPnL(series.Stats.Change),
				output.FormatPercent(series.Stats.ChangePercent))
			output.Printf("  Change:  %s\n", change)
			return nil
		},
	}

	cmd.Flags().String("range", "1m", "window: today, 7d, 1m, 3m, 1y, all")
	cmd.Flags().Bool("portfolio", false, "show portfolio value instead of P&L")

	rootCmd.AddCommand(cmd)
}

func parseTimeRange(value string) (analytics.TimeRange, error) {
	candidate := analytics.TimeRange(strings.ToLower(strings.TrimSpace(value)))
	for _, r := range analytics.TimeRanges {
		if candidate == r {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown range %q (use today, 7d, 1m, 3m, 1y, all)", value)
}

// renderSparkline draws a coarse text chart of the series.
func renderSparkline(output *Output, points []analytics.SeriesPoint) {
	if len(points) == 0 {
		output.Info("No data in this window.")
		return
	}

	min, max := points[0].Value, points[0].Value
	for _, p := range points {
		if p.Value < min {
			min = p.Value
		}
		if p.Value > max {
			max = p.Value
		}
	}

	blocks := []rune("▁▂▃▄▅▆▇█")
	span := max - min
	var sb strings.Builder
	for _, p := range points {
		idx := 0
		if span > 0 {
			idx = int((p.Value - min) / span * float64(len(blocks)-1))
		}
		sb.WriteRune(blocks[idx])
	}

	output.Printf("  %s\n", sb.String())
	output.Dim("  %s .. %s", utils.FormatCurrency(min), utils.FormatCurrency(max))
}
