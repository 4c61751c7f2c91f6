// Package cli provides the command-line interface for the trade tracker.
package cli

import (
	"time"

	"github.com/spf13/cobra"

	"daytrade-tracker/internal/analytics"
)

// addInsightsCommands adds the behavioral pattern command.
func addInsightsCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Behavioral patterns from recent trading",
		Long: `Scan the last four weeks of trades for behavioral patterns.

Detectors cover overtrading, strong and weak hours, weekday edges, hot
and cold tickers, losing streaks, and overall trade quality. At most
five findings are shown, ranked by confidence. At least 5 trades in
the window are required.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext(cmd)
			defer cancel()

			if _, err := app.loadEngine(ctx); err != nil {
				return err
			}

			patterns := app.Engine.Patterns(time.Now())

			if output.IsJSON() {
				return output.JSON(patterns)
			}

			if len(patterns) == 0 {
				output.Info("Not enough recent trades for pattern detection (need 5 in the last 4 weeks).")
				return nil
			}

			output.Bold("Insights - last 4 weeks")
			output.Println()
			for _, p := range patterns {
				tag := patternTag(output, p.Type)
				output.Printf("%s %s %s\n", tag, output.BoldText(p.Title), output.DimText("("+FormatConfidence(p.Confidence)+")"))
				output.Printf("   %s\n", p.Description)
				if p.Recommendation != "" {
					output.Printf("   %s\n", output.Cyan("→ "+p.Recommendation))
				}
				output.Println()
			}
			return nil
		},
	}

	rootCmd.AddCommand(cmd)
}

func patternTag(output *Output, t analytics.PatternType) string {
	switch t {
	case analytics.PatternSuccess:
		return output.Green("●")
	case analytics.PatternWarning:
		return output.Yellow("●")
	case analytics.PatternDanger:
		return output.Red("●")
	default:
		return output.Cyan("●")
	}
}
