package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lexport/internal/core/domain"
)

func seedSnapshots(t *testing.T, env *testEnv) {
	t.Helper()
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"snap-old", "snap-mid", "snap-new"} {
		require.NoError(t, env.snapshots.Save(t.Context(), &domain.Snapshot{
			ID:          id,
			BotName:     "PressoBot",
			BotVersion:  domain.LatestVersion,
			Checksum:    "sum-" + id,
			IntentCount: i,
			ExportedAt:  base.Add(time.Duration(i) * time.Hour),
			Document:    []byte(`{"name":"PressoBot","id":"` + id + `"}`),
		}))
	}
}

func TestHistoryCmd_Use(t *testing.T) {
	assert.Equal(t, "history <BotName>", historyCmd.Use)
}

func TestHistoryCmd_RequiresExactlyOneArg(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, _, err := runCmd("history")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestHistoryCmd_ErrorsWithoutServices(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	snapshotService = nil

	_, _, err := runCmd("history", "PressoBot")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestHistoryCmd_Empty(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	stdout, _, err := runCmd("history", "PressoBot")

	require.NoError(t, err)
	assert.Contains(t, stdout, "No snapshots found for bot: PressoBot")
}

func TestHistoryCmd_ListsNewestFirst(t *testing.T) {
	env, cleanup := setupTestServices()
	defer cleanup()
	seedSnapshots(t, env)

	stdout, _, err := runCmd("history", "PressoBot")
	require.NoError(t, err)

	newIdx := strings.Index(stdout, "snap-new")
	oldIdx := strings.Index(stdout, "snap-old")
	require.GreaterOrEqual(t, newIdx, 0)
	require.GreaterOrEqual(t, oldIdx, 0)
	assert.Less(t, newIdx, oldIdx)
	assert.Contains(t, stdout, "Checksum: sum-snap-new")
	assert.Contains(t, stdout, "Total: 3 snapshots")
}

func TestHistoryCmd_Limit(t *testing.T) {
	env, cleanup := setupTestServices()
	defer cleanup()
	seedSnapshots(t, env)

	stdout, _, err := runCmd("history", "PressoBot", "--limit", "1")
	require.NoError(t, err)

	assert.Contains(t, stdout, "snap-new")
	assert.NotContains(t, stdout, "snap-old")
	assert.Contains(t, stdout, "Total: 1 snapshots")
}
