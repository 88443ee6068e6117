package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("APPFORGE_CONFIG", filepath.Join(dir, "missing.yaml"))
	t.Setenv("APPFORGE_DATA_DIR", filepath.Join(dir, "data"))
	t.Setenv("OPENAI_API_KEY", "test-key")
	for _, env := range []string{"APPFORGE_LOG_PATH", "APPFORGE_AI_ENDPOINT", "APPFORGE_AI_MODEL", "APPFORGE_AI_TEMPERATURE"} {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.openai.com/v1", cfg.AI.Endpoint)
	assert.Equal(t, "gpt-4o", cfg.AI.Model)
	assert.InDelta(t, 0.2, cfg.AI.Temperature, 0.001)
	assert.Equal(t, "test-key", cfg.AI.APIKey)
	assert.Equal(t, filepath.Join(dir, "data", "appforge.log"), cfg.LogPath)
	assert.Equal(t, filepath.Join(dir, "data", "history.db"), cfg.DatabasePath())

	// the data directory must exist after a successful load
	info, err := os.Stat(cfg.DataDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "ai:\n  endpoint: http://localhost:11434/v1\n  model: llama3\ndata_dir: " + filepath.Join(dir, "data") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	t.Setenv("APPFORGE_CONFIG", path)
	for _, env := range []string{"APPFORGE_AI_ENDPOINT", "APPFORGE_AI_MODEL", "OPENAI_API_KEY"} {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:11434/v1", cfg.AI.Endpoint)
	assert.Equal(t, "llama3", cfg.AI.Model)
	assert.Empty(t, cfg.AI.APIKey)
}
