package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jot/internal/notes"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jot", "config.toml")

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Equal(t, filepath.Join(dir, "jot", DefaultDBName), cfg.DBPath)
	assert.Equal(t, notes.DefaultKey, cfg.StorageKey)
	assert.Equal(t, notes.Personal, cfg.Category())
	assert.Equal(t, "ctrl+s", cfg.Keys.Save)

	again, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadOrCreateReadsOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
db_path = "/var/lib/jot/notes.db"
storage_key = "notes"
default_category = "Work"
log_path = "jot.log"
log_level = "debug"

[keys]
quit = "x"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/jot/notes.db", cfg.DBPath)
	assert.Equal(t, "notes", cfg.StorageKey)
	assert.Equal(t, notes.Work, cfg.Category())
	assert.Equal(t, filepath.Join(dir, "jot.log"), cfg.LogPath)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, "x", cfg.Keys.Quit)
	assert.Equal(t, "a", cfg.Keys.Add, "unset keys keep their defaults")
}

func TestLoadOrCreateFallbacks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`default_category = "groceries"
log_level = "loud"
`), 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, string(notes.Personal), cfg.DefaultCategory)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	assert.Equal(t, filepath.Join(dir, DefaultDBName), cfg.DBPath)
}

func TestLoadOrCreateBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("db_path = ["), 0o644))
	_, err := LoadOrCreate(path)
	require.Error(t, err)
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "jot", "config.toml"), ResolveConfigPath())
}
