package config

import (
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "/data")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data", "foodpick"), cfg.DataDir)
	assert.Equal(t, filepath.Join("/data", "foodpick", "foodpick.db"), cfg.DBPath())
	assert.Equal(t, 250*time.Millisecond, cfg.SaveDebounce)
	assert.Equal(t, 300*time.Millisecond, cfg.DoubleTapWindow)
	assert.Equal(t, 5, cfg.Log.MaxSizeMB)
	assert.Equal(t, filepath.Join("/data", "foodpick", "foodpick.log"), cfg.Log.File)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.toml")
	content := `
data_dir = "/srv/food"
double_tap_window = "450ms"

[lookup]
map_command = "gnome-maps --search"
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))
	t.Setenv("FOODPICK_SAVE_DEBOUNCE", "2s")
	t.Setenv("FOODPICK_LOG_MAX_BACKUPS", "9")

	cfg, err := Load(viper.New(), file)
	require.NoError(t, err)
	assert.Equal(t, "/srv/food", cfg.DataDir)
	assert.Equal(t, 450*time.Millisecond, cfg.DoubleTapWindow)
	assert.Equal(t, 2*time.Second, cfg.SaveDebounce)
	assert.Equal(t, "gnome-maps --search", cfg.Lookup.MapCommand)
	assert.Equal(t, 9, cfg.Log.MaxBackups)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSetupLogging(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	file := filepath.Join(t.TempDir(), "logs", "foodpick.log")
	closer, err := SetupLogging(LogConfig{File: file, MaxSizeMB: 1, MaxBackups: 1})
	require.NoError(t, err)

	log.Printf("hello %s", "log")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello log")
}
