// Package cli provides the command-line interface for the trade tracker.
package cli

import (
	"github.com/spf13/cobra"

	"daytrade-tracker/internal/importer"
	"daytrade-tracker/internal/models"
	"daytrade-tracker/internal/performance"
)

// importBatchSize is the number of rows inserted per transaction.
const importBatchSize = 100

// addImportCommands adds the CSV import command.
func addImportCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import trades from a CSV file",
		Long: `Import closed trades from a CSV file.

Expected header: ticker,direction,quantity,entry_price,exit_price,timestamp,notes
Malformed rows are skipped and reported; valid rows are saved.`,
		Example: `  tracker import trades.csv
  tracker import trades.csv --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext(cmd)
			defer cancel()

			if app.Store == nil {
				return errNoStore
			}

			dryRun, _ := cmd.Flags().GetBool("dry-run")

			result, err := importer.ReadFile(args[0])
			if err != nil {
				return err
			}

			saved := 0
			if !dryRun {
				batcher := performance.NewBatchProcessor(importBatchSize, func(batch []models.Trade) error {
					if err := app.Store.SaveTrades(ctx, batch); err != nil {
						return err
					}
					saved += len(batch)
					return nil
				})
				for _, trade := range result.Trades {
					if err := batcher.Add(trade); err != nil {
						app.Logger.Error().Err(err).Msg("Failed to save imported trades")
						return err
					}
				}
				if err := batcher.Flush(); err != nil {
					app.Logger.Error().Err(err).Msg("Failed to save imported trades")
					return err
				}
			}

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"parsed":  len(result.Trades),
					"saved":   saved,
					"skipped": result.Skipped,
					"dry_run": dryRun,
				})
			}

			if dryRun {
				output.Info("Dry run: %d row(s) parsed, nothing saved.", len(result.Trades))
			} else {
				output.Success("Imported %d trade(s).", saved)
			}
			if len(result.Skipped) > 0 {
				output.Println()
				output.Warning("Skipped %d row(s):", len(result.Skipped))
				for _, skip := range result.Skipped {
					output.Printf("  row %d: %s\n", skip.Line, skip.Reason)
				}
			}
			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "parse and report without saving")
	rootCmd.AddCommand(cmd)
}
