package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lexport/internal/adapters/driven/config/file"
	"github.com/custodia-labs/lexport/internal/core/domain"
	"github.com/custodia-labs/lexport/internal/core/ports/driving"
	"github.com/custodia-labs/lexport/internal/logger"
)

var exportCmd = &cobra.Command{
	Use:   "export <BotName>",
	Short: "Export a bot definition as JSON",
	Long: `Fetches a bot, every intent it references and every custom slot type those
intents use, then prints the combined definition to stdout.

Use --file and/or --dir to write it to <dir>/<file> instead. --dir and --save
imply --file with the default name <BotName>.json; the default directory is the
current one, or export.dir when set.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

// Export flags.
var (
	exportVersion string
	exportFile    string
	exportDir     string
	exportSave    bool
	exportPretty  bool
	exportRaw     bool
	exportArchive bool
)

func init() {
	flags := exportCmd.Flags()
	flags.StringVarP(&exportVersion, "version", "v", domain.LatestVersion, "Bot version or alias")
	flags.StringVarP(&exportFile, "file", "f", "", "Write to the named file instead of stdout")
	flags.StringVarP(&exportDir, "dir", "d", "", "Output directory (implies --file)")
	flags.BoolVarP(&exportSave, "save", "s", false, "Write to <BotName>.json instead of stdout")
	flags.BoolVarP(&exportPretty, "pretty", "p", false, "Indent output and sort keys")
	flags.BoolVar(&exportRaw, "raw", false, "Keep lists in service order")
	flags.BoolVar(&exportArchive, "archive", false, "Record the export in the snapshot archive")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportService == nil {
		return errors.New("export service not configured")
	}

	botName := args[0]
	ctx := context.Background()

	req := driving.ExportRequest{
		BotName: botName,
		Version: exportVersion,
		Pretty:  exportPretty || configBool("export.pretty"),
		Raw:     exportRaw,
	}

	result, err := exportService.Export(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to export bot: %w", err)
	}

	if path, ok := outputPath(cmd, botName); ok {
		if docWriter == nil {
			return errors.New("document writer not configured")
		}
		if err := docWriter.Write(path, result.Document); err != nil {
			return err
		}
		cmd.Printf("Definition saved to %s\n", path)
	} else {
		out := cmd.OutOrStdout()
		if _, err := out.Write(result.Document); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}

	if !archiveEnabled(cmd) {
		return nil
	}

	snapshot, err := exportService.Archive(ctx, result)
	if err != nil {
		return fmt.Errorf("failed to archive export: %w", err)
	}
	logger.Info("archived snapshot %s", snapshot.ID)
	cmd.PrintErrf("Snapshot: %s\n", snapshot.ID)

	return nil
}

// outputPath reports where the document should be written.
// ok is false when it goes to stdout.
func outputPath(cmd *cobra.Command, botName string) (string, bool) {
	fileSet := cmd.Flags().Changed("file")
	dirSet := cmd.Flags().Changed("dir")
	if !fileSet && !dirSet && !exportSave {
		return "", false
	}

	dir := exportDir
	if !dirSet {
		dir = configString("export.dir")
	}

	return file.OutputPath(dir, exportFile, botName), true
}

func archiveEnabled(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("archive") {
		return exportArchive
	}
	return configBool("export.archive")
}

func configBool(key string) bool {
	if configStore == nil {
		return false
	}
	return configStore.GetBool(key)
}

func configString(key string) string {
	if configStore == nil {
		return ""
	}
	return configStore.GetString(key)
}
