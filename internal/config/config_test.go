package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultStateDir, cfg.StateDir)
	assert.Equal(t, "all", cfg.DefaultFilter)
	assert.NotEmpty(t, cfg.Keys.Quit)

	// the file now exists and loads back identically
	_, err = os.Stat(path)
	require.NoError(t, err)
	again, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadOrCreateReadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte("state_dir = \"/tmp/remind\"\ndefault_filter = \"overdue\"\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/remind", cfg.StateDir)
	assert.Equal(t, "overdue", cfg.DefaultFilter)
	// unspecified values fall back
	assert.Greater(t, cfg.Insights.TimeoutSeconds, 0)
}

func TestLoadOrCreateRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("state_dir = ["), 0o644))

	_, err := LoadOrCreate(path)
	assert.Error(t, err)
}

func TestResolveConfigPath(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	t.Setenv("HOME", base)

	path := ResolveConfigPath()
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, filepath.Join(appDirName, DefaultConfigFileName),
		filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path)))
}

func TestLoadOrCreateMakesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), appDirName, "config.toml")

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultStateDir, cfg.StateDir)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestReadEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("GEMINI_MODEL", "gemini-test")

	env, err := ReadEnv()
	require.NoError(t, err)
	assert.Equal(t, "secret", env.GeminiAPIKey)
	assert.Equal(t, "gemini-test", env.GeminiModel)
}
