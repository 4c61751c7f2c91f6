// Package cli provides the command-line interface for the trade tracker.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"daytrade-tracker/internal/analytics"
	"daytrade-tracker/pkg/utils"
)

// addProjectCommands adds the portfolio projection command.
func addProjectCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Long-horizon portfolio projections",
		Long: `Project portfolio value over 1, 3, 5, 10 and 15 years.

The projection compounds monthly, using the historical annual return
rate derived from your trades, initial capital, and the configured
monthly contribution. Conservative mode scales the rate down.`,
		Example: `  tracker project
  tracker project --conservative
  tracker project --rate 8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext(cmd)
			defer cancel()

			conservative, _ := cmd.Flags().GetBool("conservative")
			rateOverride, _ := cmd.Flags().GetFloat64("rate")

			trades, err := app.loadEngine(ctx)
			if err != nil {
				return err
			}

			capital := app.Config.Capital.InitialCapital
			contribution := app.Config.Capital.MonthlyContribution
			if !cmd.Flags().Changed("conservative") {
				conservative = app.Config.Capital.ConservativeProjections
			}

			rate := app.Engine.Metrics(capital).AnnualReturnRate
			if cmd.Flags().Changed("rate") {
				rate = rateOverride
			}

			periods := app.Engine.Projections(capital, contribution, conservative)
			if cmd.Flags().Changed("rate") {
				periods = analytics.ProjectPortfolio(rate, capital, contribution, conservative)
			}

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"annual_return_rate": rate,
					"conservative":       conservative,
					"periods":            periods,
				})
			}

			if len(trades) == 0 && !cmd.Flags().Changed("rate") {
				output.Info("No trade history; projecting at a 0%% return rate.")
				output.Println()
			}

			mode := "historical"
			if conservative {
				mode = "conservative"
			}
			output.Bold("Projections (%s rate: %s, %s/month)", mode, utils.FormatPercent(rate), utils.FormatCurrency(contribution))
			output.Println()

			table := NewTable(output, "Years", "Projected Value", "Growth", "Growth %", "CAGR")
			for _, p := range periods {
				table.AddRow(
					fmt.Sprintf("%d", p.Years),
					utils.FormatCurrency(p.ProjectedValue),
					output.FormatPnL(p.TotalGrowth),
					utils.FormatPercent(p.GrowthPercentage),
					utils.FormatPercent(p.CAGR),
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().Bool("conservative", false, "scale the return rate down")
	cmd.Flags().Float64("rate", 0, "override the annual return rate (percent)")

	rootCmd.AddCommand(cmd)
}
