package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sportsdb/gridstats/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnsureDirs_CreatesDirectories verifies all required
// directories are created.
func TestEnsureDirs_CreatesDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	dirs := []string{
		filepath.Join(tmpDir, ".config", "gridstats"),
		filepath.Join(tmpDir, ".local", "share", "gridstats", "data"),
		filepath.Join(tmpDir, ".local", "share", "gridstats", "logs"),
	}
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir(), "%s should be a directory", dir)
	}
}

// TestEnsureDirs_Idempotent verifies multiple calls work.
func TestEnsureDirs_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()

	for range 3 {
		err := EnsureDirs(tmpDir)
		require.NoError(t, err)
	}
}

func TestEnsureConfigFile(t *testing.T) {
	t.Run("writes embedded default", func(t *testing.T) {
		tmpDir := t.TempDir()
		require.NoError(t, EnsureDirs(tmpDir))

		err := EnsureConfigFile(tmpDir)
		require.NoError(t, err)

		data, err := os.ReadFile(config.ConfigFilePath(tmpDir))
		require.NoError(t, err)
		assert.Equal(t, ConfigYAML, string(data))
		assert.Contains(t, string(data), "database:")
	})

	t.Run("keeps existing file", func(t *testing.T) {
		tmpDir := t.TempDir()
		require.NoError(t, EnsureDirs(tmpDir))

		path := config.ConfigFilePath(tmpDir)
		custom := "database:\n  host: custom.example.com\n"
		require.NoError(t, os.WriteFile(path, []byte(custom), 0644))

		err := EnsureConfigFile(tmpDir)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, custom, string(data))
	})
}
