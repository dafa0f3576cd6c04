package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, cfg.Version)
	assert.Empty(t, cfg.SchemaPath)
	assert.True(t, cfg.UISettings.ShowDescriptions)
	assert.True(t, cfg.UISettings.WatchSchema)
	assert.True(t, cfg.UISettings.RememberSchema)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	svc := NewConfigService()
	path := filepath.Join(t.TempDir(), "gqldoc", "config.toml")

	cfg := DefaultConfig()
	cfg.SchemaPath = "/home/dev/api/schema.graphql"
	cfg.UISettings.ShowDescriptions = false

	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.SchemaPath, loaded.SchemaPath)
	assert.False(t, loaded.UISettings.ShowDescriptions)
	assert.True(t, loaded.UISettings.WatchSchema)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigService()

	cfg, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadMalformedFile(t *testing.T) {
	svc := NewConfigService()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("schema_path = [broken"), 0644))

	_, err := svc.LoadFromPath(path)
	assert.Error(t, err)
}
