package cli

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lexport/internal/adapters/driven/config/file"
	"github.com/custodia-labs/lexport/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/lexport/internal/core/domain"
	"github.com/custodia-labs/lexport/internal/core/services"
)

func TestMain(m *testing.M) {
	autoWire = false
	os.Exit(m.Run())
}

// testEnv holds the fakes installed by setupTestServices.
type testEnv struct {
	models    *memory.ModelService
	snapshots *memory.SnapshotStore
	config    *memory.ConfigStore
}

// setupTestServices installs in-memory services and returns a cleanup func.
func setupTestServices() (*testEnv, func()) {
	oldExport, oldSnapshot := exportService, snapshotService
	oldConfig, oldWriter := configStore, docWriter

	env := &testEnv{
		models:    newTestModels(),
		snapshots: memory.NewSnapshotStore(),
		config:    memory.NewConfigStore(),
	}
	exportService = services.NewExportService(env.models, env.snapshots, 0)
	snapshotService = services.NewSnapshotService(env.snapshots)
	configStore = env.config
	docWriter = file.NewDocumentWriter()

	return env, func() {
		exportService, snapshotService = oldExport, oldSnapshot
		configStore, docWriter = oldConfig, oldWriter
		resetFlags(rootCmd)
	}
}

// resetFlags restores every flag to its default so tests do not leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// runCmd executes rootCmd with args and returns stdout and stderr.
func runCmd(args ...string) (string, string, error) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func newTestModels() *memory.ModelService {
	models := memory.NewModelService()
	models.AddBot(domain.Bot{
		Name:     "PressoBot",
		Version:  domain.LatestVersion,
		Checksum: "bot-sum",
		Intents: []domain.IntentReference{
			{IntentName: "OrderCoffee", IntentVersion: "1"},
			{IntentName: "Cancel", IntentVersion: "1"},
		},
	})
	models.AddBot(domain.Bot{Name: "PressoBot", Version: "3", Checksum: "v3-sum"})
	models.AddIntent(domain.Intent{
		Name:             "OrderCoffee",
		Version:          "1",
		SampleUtterances: []string{"coffee please", "I want coffee"},
		Slots: []domain.Slot{
			{Name: "size", SlotType: "CoffeeSize", SlotTypeVersion: "1"},
		},
	})
	models.AddIntent(domain.Intent{Name: "Cancel", Version: "1"})
	models.AddSlotType(domain.SlotType{
		Name:              "CoffeeSize",
		Version:           "1",
		EnumerationValues: []domain.EnumerationValue{{Value: "tall"}, {Value: "grande"}},
	})
	return models
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "lexport", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.Contains(t, names, "export")
	assert.Contains(t, names, "history")
	assert.Contains(t, names, "snapshot")
	assert.Contains(t, names, "config")
	assert.Contains(t, names, "version")
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"verbose", "region", "profile", "config-dir"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_VerboseLogsToStderr(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	stdout, stderr, err := runCmd("export", "PressoBot", "--verbose")

	require.NoError(t, err)
	assert.Contains(t, stderr, "[DEBUG]")
	assert.NotContains(t, stdout, "[DEBUG]")
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", firstNonEmpty("", "b", "c"))
	assert.Equal(t, "", firstNonEmpty("", ""))
	assert.Equal(t, "a", firstNonEmpty("a"))
}

func TestNeedsSnapshots(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	assert.True(t, needsSnapshots(historyCmd))
	assert.True(t, needsSnapshots(snapshotShowCmd))
	assert.False(t, needsSnapshots(versionCmd))
	assert.False(t, needsSnapshots(exportCmd))

	require.NoError(t, configStore.Set("export.archive", true))
	assert.True(t, needsSnapshots(exportCmd))
}

func TestNeedsModels(t *testing.T) {
	assert.True(t, needsModels(exportCmd))
	assert.False(t, needsModels(configGetCmd))
}

func TestExecute_ClosesResourcesWhenCommandFails(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	closed := 0
	closers = []func() error{func() error {
		closed++
		return nil
	}}
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"snapshot", "show", "missing"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := Execute()

	require.Error(t, err)
	assert.Equal(t, 1, closed)
	assert.Nil(t, closers)
}

func TestExecute_ReportsCloseError(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	closers = []func() error{func() error { return errors.New("close failed") }}
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"version"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	}()

	err := Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "close failed")
}
