package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, DefaultConfig().Save(path))

	reloaded := make(chan *Config, 8)
	w, err := NewWatcher(path, func(cfg *Config) { reloaded <- cfg }, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	content := "[widget]\ncounter_template = \"Vistas: {{.Count}}\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-reloaded:
			if cfg.Widget.CounterTemplate == "Vistas: {{.Count}}" {
				return
			}
		case <-deadline:
			t.Fatal("config change was not delivered")
		}
	}
}

func TestWatcher_SkipsInvalidAndOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, DefaultConfig().Save(path))

	reloaded := make(chan *Config, 8)
	w, err := NewWatcher(path, func(cfg *Config) { reloaded <- cfg }, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1"), 0644))
	// Replace atomically so the watcher never reads a half-written file
	tmp := filepath.Join(dir, "config.toml.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("not toml ["), 0644))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case cfg := <-reloaded:
		t.Fatalf("unexpected reload: %+v", cfg)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "config.toml"), nil, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())

	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}

func TestWatcher_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animo", "config.toml")

	w, err := NewWatcher(path, nil, nil)
	require.NoError(t, err)

	err = w.Start()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoConfigDir)
	assert.Contains(t, err.Error(), filepath.Dir(path))
	assert.NoError(t, w.Stop())
}

func TestWatcher_StartsAfterDirectoryIsCreated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animo", "config.toml")

	w, err := NewWatcher(path, nil, nil)
	require.NoError(t, err)
	defer w.Stop()

	require.ErrorIs(t, w.Start(), ErrNoConfigDir)

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	assert.NoError(t, w.Start(), "a failed start can be retried")
}
