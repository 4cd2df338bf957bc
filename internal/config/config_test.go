package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.FileExists(t, path)
	assert.Equal(t, Default(), cfg, "freshly written file must parse back to defaults")
}

func TestLoadFromReadsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
db_path = "/tmp/test.db"
rows_per_page = 40

[preview]
steps = 64
seed = 99
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, 40, cfg.RowsPerPage)
	assert.Equal(t, 64, cfg.Preview.Steps)
	assert.Equal(t, uint64(99), cfg.Preview.Seed)
}

func TestLoadFromBrokenFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("rows_per_page = [broken"), 0644))

	cfg, err := LoadFrom(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestNormalizeClampsNonsense(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
rows_per_page = 1

[preview]
steps = 4000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.RowsPerPage)
	assert.Equal(t, 32, cfg.Preview.Steps)
}

func TestResolvePathsDefaults(t *testing.T) {
	cfg := Default()

	dbPath, err := cfg.ResolveDBPath()
	require.NoError(t, err)
	assert.Contains(t, dbPath, ".arpeggio")

	logPath, err := cfg.ResolveLogPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Dir(dbPath), filepath.Dir(logPath))

	cfg.DBPath = "/custom/arp.db"
	dbPath, err = cfg.ResolveDBPath()
	require.NoError(t, err)
	assert.Equal(t, "/custom/arp.db", dbPath)
}
