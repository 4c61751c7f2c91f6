// Package cli provides the command-line interface for the trade tracker.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"daytrade-tracker/internal/analytics"
)

// addCalendarCommands adds the calendar-bucket breakdown command.
func addCalendarCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "P&L by hour, day, week, month or year",
		Long: `Break P&L down by calendar bucket.

Weeks start on Monday. Hour buckets pool the same hour across all days,
exposing intraday timing patterns.`,
		Example: `  tracker calendar --by month
  tracker calendar --by hour`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext(cmd)
			defer cancel()

			byFlag, _ := cmd.Flags().GetString("by")
			granularity, err := parseGranularity(byFlag)
			if err != nil {
				return err
			}

			if _, err := app.loadEngine(ctx); err != nil {
				return err
			}

			stats := app.Engine.Buckets(granularity)

			if output.IsJSON() {
				return output.JSON(stats)
			}

			if len(stats) == 0 {
				output.Info("No trades recorded.")
				return nil
			}

			output.Bold("P&L by %s", granularity)
			output.Println()

			table := NewTable(output, bucketHeader(granularity), "Trades", "P&L", "Win %", "Best", "Worst")
			for _, s := range stats {
				table.AddRow(
					formatBucket(s.Bucket, granularity),
					fmt.Sprintf("%d", s.Trades),
					output.FormatPnL(s.TotalPL),
					fmt.Sprintf("%.0f%%", s.WinRate),
					output.FormatPnL(s.BestTrade),
					output.FormatPnL(s.WorstTrade),
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().String("by", "day", "bucket: hour, day, week, month, year")
	rootCmd.AddCommand(cmd)
}

func parseGranularity(value string) (analytics.Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "hour":
		return analytics.ByHour, nil
	case "day":
		return analytics.ByDay, nil
	case "week":
		return analytics.ByWeek, nil
	case "month":
		return analytics.ByMonth, nil
	case "year":
		return analytics.ByYear, nil
	default:
		return 0, fmt.Errorf("unknown bucket %q (use hour, day, week, month, year)", value)
	}
}

func bucketHeader(g analytics.Granularity) string {
	switch g {
	case analytics.ByHour:
		return "Hour"
	case analytics.ByWeek:
		return "Week of"
	case analytics.ByMonth:
		return "Month"
	case analytics.ByYear:
		return "Year"
	default:
		return "Day"
	}
}

func formatBucket(bucket string, g analytics.Granularity) string {
	if g == analytics.ByHour {
		return bucket + ":00"
	}
	return bucket
}
