// Package cli provides the command-line interface for lexport.
package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lexport/internal/adapters/driven/config/file"
	"github.com/custodia-labs/lexport/internal/adapters/driven/lex"
	"github.com/custodia-labs/lexport/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/lexport/internal/core/ports/driven"
	"github.com/custodia-labs/lexport/internal/core/ports/driving"
	"github.com/custodia-labs/lexport/internal/core/services"
	"github.com/custodia-labs/lexport/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services used by commands. Set by wireServices, or directly by tests.
var (
	exportService   driving.ExportService
	snapshotService driving.SnapshotService
	configStore     driven.ConfigStore
	docWriter       driven.DocumentWriter
)

// autoWire builds real adapters before each command. Tests turn it off.
var autoWire = true

// closers release resources opened by wireServices.
var closers []func() error

// Persistent flags.
var (
	verbose   bool
	region    string
	profile   string
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "lexport",
	Short: "Export Amazon Lex bot definitions",
	Long: `lexport reads a Lex bot together with every intent and custom slot type it
references and writes the whole definition as a single JSON document.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Print progress to stderr")
	rootCmd.PersistentFlags().StringVar(&region, "region", "", "AWS region (default from config, then "+lex.DefaultRegion+")")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "", "AWS shared config profile")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default ~/.lexport)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command and releases anything it opened,
// whether or not the command succeeded.
func Execute() error {
	err := rootCmd.Execute()
	return errors.Join(err, teardown())
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetVerbose(verbose)

	if !autoWire {
		return nil
	}
	return wireServices(cmd)
}

func teardown() error {
	var errs []error
	for _, c := range closers {
		errs = append(errs, c())
	}
	closers = nil
	return errors.Join(errs...)
}

// wireServices builds the adapters the invoked command needs.
// The snapshot database is opened only when a command reads or writes it.
func wireServices(cmd *cobra.Command) error {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	configStore = store
	docWriter = file.NewDocumentWriter()

	if !needsModels(cmd) && !needsSnapshots(cmd) {
		return nil
	}

	var snapshots driven.SnapshotStore
	if needsSnapshots(cmd) {
		dataDir := ""
		if configDir != "" {
			dataDir = filepath.Join(configDir, "data")
		}
		db, err := sqlite.NewStore(dataDir)
		if err != nil {
			return fmt.Errorf("failed to open snapshot archive: %w", err)
		}
		closers = append(closers, db.Close)
		snapshots = db.SnapshotStore()
		snapshotService = services.NewSnapshotService(snapshots)
		logger.Debug("snapshot archive: %s", db.Path())
	}

	if needsModels(cmd) {
		opts := lex.Options{
			Region:            firstNonEmpty(region, store.GetString("aws.region"), lex.DefaultRegion),
			Profile:           firstNonEmpty(profile, store.GetString("aws.profile")),
			RequestsPerSecond: store.GetFloat("lex.requests_per_second"),
		}
		logger.Debug("region: %s", opts.Region)

		client, err := lex.NewClient(context.Background(), opts)
		if err != nil {
			return err
		}
		exportService = services.NewExportService(client, snapshots, store.GetInt("export.concurrency"))
	}

	return nil
}

func needsModels(cmd *cobra.Command) bool {
	return cmd == exportCmd
}

func needsSnapshots(cmd *cobra.Command) bool {
	switch cmd {
	case historyCmd, snapshotShowCmd:
		return true
	case exportCmd:
		return archiveEnabled(cmd)
	default:
		return false
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
