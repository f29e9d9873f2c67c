package scenario

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcher(t *testing.T) {
	dir := t.TempDir()

	watcher, err := NewWatcher(dir)
	require.NoError(t, err)

	defer func() { _ = watcher.Close() }()

	// not a scenario, must be ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644))

	target := filepath.Join(dir, "arena.yaml")
	require.NoError(t, os.WriteFile(target, []byte("name: test\n"), 0o644))

	select {
	case name := <-watcher.Events:
		require.Equal(t, target, name)
	case err := <-watcher.Errors:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event received")
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestIsScenarioFile(t *testing.T) {
	require.True(t, isScenarioFile("arena.yaml"))
	require.True(t, isScenarioFile("ARENA.YML"))
	require.False(t, isScenarioFile("arena.json"))
}
