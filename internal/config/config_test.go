package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "npm", cfg.Scaffold.PackageManager)
	assert.Equal(t, DefaultDevDependencies, cfg.Scaffold.DevDependencies)
	assert.Equal(t, DefaultScripts, cfg.Scaffold.Scripts)
	assert.Equal(t, "src", cfg.Scaffold.SourceDir)
	assert.False(t, cfg.Scaffold.SkipInstall)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadViperOverrides(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("scaffold.package_manager", "pnpm")
	viper.Set("scaffold.skip_install", true)
	viper.Set("logging.level", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "pnpm", cfg.Scaffold.PackageManager)
	assert.True(t, cfg.Scaffold.SkipInstall)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched settings keep their defaults.
	assert.Equal(t, DefaultScripts, cfg.Scaffold.Scripts)
}

func TestLoadLogLevelFlagBinding(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("log-level", "warn")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadAcceptsWarningAlias(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	// ParseLevel treats "warning" as warn, so validation must too.
	viper.Set("log-level", "warning")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warning", cfg.Logging.Level)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("scaffold.package_manager", "cargo")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package manager")
}

func TestWriteFile(t *testing.T) {
	viper.Reset()

	cfg, err := Load()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, cfg.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# tsforge configuration file")

	var roundTrip Config
	require.NoError(t, yaml.Unmarshal(data, &roundTrip))
	assert.Equal(t, cfg.Scaffold.PackageManager, roundTrip.Scaffold.PackageManager)
	assert.Equal(t, cfg.Scaffold.Scripts, roundTrip.Scaffold.Scripts)
}
