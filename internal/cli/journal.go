// Package cli provides the command-line interface for the trade tracker.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"daytrade-tracker/internal/models"
	"daytrade-tracker/internal/store"
)

// addJournalCommands adds journal note commands.
func addJournalCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Journal notes",
		Long:  "Attach freeform notes to trades or trading days and review them.",
	}

	cmd.AddCommand(newJournalAddCmd(app))
	cmd.AddCommand(newJournalListCmd(app))

	rootCmd.AddCommand(cmd)
}

func newJournalAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <note>",
		Short: "Add a journal note",
		Long: `Add a freeform journal note.

Notes can stand alone or reference a trade by ID, and carry tags for
later filtering.`,
		Example: `  tracker journal add "Chased momentum into the close, stop was too tight"
  tracker journal add "Good patience on the pullback entry" --trade T12345 --tags discipline,entry`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext(cmd)
			defer cancel()

			if app.Store == nil {
				return errNoStore
			}

			tradeID, _ := cmd.Flags().GetString("trade")
			tagsFlag, _ := cmd.Flags().GetString("tags")

			var tags []string
			for _, tag := range strings.Split(tagsFlag, ",") {
				tag = strings.TrimSpace(tag)
				if tag != "" {
					tags = append(tags, tag)
				}
			}

			now := time.Now()
			entry := &models.JournalEntry{
				ID:        fmt.Sprintf("J%d", now.UnixNano()),
				TradeID:   tradeID,
				Date:      now,
				Content:   args[0],
				Tags:      tags,
				CreatedAt: now,
				UpdatedAt: now,
			}

			if err := app.Store.SaveJournalEntry(ctx, entry); err != nil {
				return err
			}
			app.Logger.Debug().Str("entry_id", entry.ID).Msg("Journal entry saved")

			if output.IsJSON() {
				return output.JSON(entry)
			}
			output.Success("Note saved.")
			return nil
		},
	}

	cmd.Flags().String("trade", "", "trade ID this note refers to")
	cmd.Flags().String("tags", "", "comma-separated tags")

	return cmd
}

func newJournalListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := commandContext(cmd)
			defer cancel()

			if app.Store == nil {
				return errNoStore
			}

			tradeID, _ := cmd.Flags().GetString("trade")
			limit, _ := cmd.Flags().GetInt("limit")

			entries, err := app.Store.GetJournal(ctx, store.JournalFilter{
				TradeID: tradeID,
				Limit:   limit,
			})
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(entries)
			}

			if len(entries) == 0 {
				output.Info("No journal notes.")
				return nil
			}

			for _, e := range entries {
				header := FormatDateTime(e.Date)
				if e.TradeID != "" {
					header += "  " + output.Cyan(e.TradeID)
				}
				if len(e.Tags) > 0 {
					header += "  " + output.DimText("["+strings.Join(e.Tags, ", ")+"]")
				}
				output.Bold("%s", header)
				output.Printf("  %s\n\n", e.Content)
			}
			return nil
		},
	}

	cmd.Flags().String("trade", "", "filter by trade ID")
	cmd.Flags().Int("limit", 20, "maximum entries (0 for all)")

	return cmd
}
