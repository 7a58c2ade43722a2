package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agencyflow/agency-manager-api/infrastructure/database/jsonfile"
	"github.com/agencyflow/agency-manager-api/internal/config"
)

func openTestDatabase(t *testing.T) *jsonfile.Database {
	t.Helper()

	db, err := jsonfile.Open(config.Database{
		DataDir:  t.TempDir(),
		DataFile: "data.json",
	})
	require.NoError(t, err)

	return db
}

func TestSnapshotRunOnce(t *testing.T) {
	db := openTestDatabase(t)
	dir := t.TempDir()

	service := NewSnapshotService(db, &config.Config{
		Snapshot: config.Snapshot{
			CronSchedule: "0 2 * * *",
			Enabled:      true,
			Dir:          dir,
			Keep:         7,
		},
	})

	service.RunOnce()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "data-")
}

func TestSnapshotPruneKeepsNewest(t *testing.T) {
	db := openTestDatabase(t)
	dir := t.TempDir()

	// Snapshots antigos pré-existentes; o nome carrega o timestamp
	for _, name := range []string{
		"data-20240101-020000.json",
		"data-20240102-020000.json",
		"data-20240103-020000.json",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644))
	}

	service := NewSnapshotService(db, &config.Config{
		Snapshot: config.Snapshot{
			Enabled: true,
			Dir:     dir,
			Keep:    2,
		},
	})

	service.RunOnce()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	_, err = os.Stat(filepath.Join(dir, "data-20240101-020000.json"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "data-20240102-020000.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestSnapshotDisabledDoesNotSchedule(t *testing.T) {
	db := openTestDatabase(t)

	service := NewSnapshotService(db, &config.Config{
		Snapshot: config.Snapshot{Enabled: false},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, service.Start(ctx))
}
