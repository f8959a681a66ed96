package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <BotName>",
	Short: "List archived exports of a bot",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

var historyLimit int

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of snapshots to show (0 for all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if snapshotService == nil {
		return errors.New("snapshot service not configured")
	}

	botName := args[0]
	snapshots, err := snapshotService.List(context.Background(), botName, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}

	if len(snapshots) == 0 {
		cmd.Printf("No snapshots found for bot: %s\n", botName)
		return nil
	}

	cmd.Printf("Snapshots for %s:\n\n", botName)
	for i := range snapshots {
		s := &snapshots[i]
		cmd.Printf("  %s\n", s.ID)
		cmd.Printf("    Exported: %s (%s)\n", s.ExportedAt.Local().Format(time.RFC3339), humanize.Time(s.ExportedAt))
		cmd.Printf("    Version: %s\n", s.BotVersion)
		if s.Checksum != "" {
			cmd.Printf("    Checksum: %s\n", s.Checksum)
		}
		cmd.Printf("    Intents: %d, Slot types: %d\n", s.IntentCount, s.SlotTypeCount)
		cmd.Println()
	}

	cmd.Printf("Total: %d snapshots\n", len(snapshots))
	return nil
}
