package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Inspect archived exports",
}

var snapshotShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print an archived export",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotShow,
}

func init() {
	snapshotCmd.AddCommand(snapshotShowCmd)
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshotShow(cmd *cobra.Command, args []string) error {
	if snapshotService == nil {
		return errors.New("snapshot service not configured")
	}

	snapshot, err := snapshotService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get snapshot: %w", err)
	}

	out := cmd.OutOrStdout()
	if _, err := out.Write(snapshot.Document); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out)
	return err
}
