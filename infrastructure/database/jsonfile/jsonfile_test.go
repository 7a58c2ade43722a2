package jsonfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agencyflow/agency-manager-api/internal/config"
	"github.com/agencyflow/agency-manager-api/internal/domain"
)

func testConfig(t *testing.T) config.Database {
	t.Helper()

	return config.Database{
		DataDir:  t.TempDir(),
		DataFile: "data.json",
	}
}

func TestOpenCreatesDataFile(t *testing.T) {
	cfg := testConfig(t)

	db, err := Open(cfg)
	require.NoError(t, err)

	info, err := os.Stat(cfg.DataPath())
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	db.Read(func(data *Data) {
		assert.Empty(t, data.Clients)
		assert.Empty(t, data.Users)
	})
}

func TestWritePersistsAcrossReopen(t *testing.T) {
	cfg := testConfig(t)

	db, err := Open(cfg)
	require.NoError(t, err)

	client := &domain.Client{
		ID:        "client-1",
		Name:      "Acme Corp",
		Status:    domain.ClientStatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	db.Write(func(data *Data) {
		data.Clients[client.ID] = client
	})

	reopened, err := Open(cfg)
	require.NoError(t, err)

	reopened.Read(func(data *Data) {
		require.Contains(t, data.Clients, "client-1")
		assert.Equal(t, "Acme Corp", data.Clients["client-1"].Name)
	})
}

func TestOpenResetsCorruptFile(t *testing.T) {
	cfg := testConfig(t)

	require.NoError(t, os.MkdirAll(cfg.DataDir, 0o755))
	require.NoError(t, os.WriteFile(cfg.DataPath(), []byte("{not json"), 0o644))

	db, err := Open(cfg)
	require.NoError(t, err)

	db.Read(func(data *Data) {
		assert.Empty(t, data.Clients)
		assert.Empty(t, data.Strategies)
		assert.Empty(t, data.Campaigns)
		assert.Empty(t, data.Activities)
		assert.Empty(t, data.ClientAssets)
		assert.Empty(t, data.Users)
	})
}

func TestSnapshotWritesDatedCopy(t *testing.T) {
	cfg := testConfig(t)

	db, err := Open(cfg)
	require.NoError(t, err)

	db.Write(func(data *Data) {
		data.Clients["client-1"] = &domain.Client{ID: "client-1", Name: "Acme Corp"}
	})

	dir := t.TempDir()
	path, err := db.Snapshot(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.Contains(t, filepath.Base(path), "data-")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Acme Corp")
}
