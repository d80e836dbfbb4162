package config

import (
	"testing"

	"github.com/forgelabs/tsforge/internal/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilderFluent(t *testing.T) {
	viper.Reset()

	cfg, err := NewConfigBuilder().
		WithDefaults().
		WithPackageManager("yarn").
		WithDevDependencies("typescript").
		WithScript("lint", "eslint .").
		WithSkipInstall(true).
		WithLogging("debug", "json").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "yarn", cfg.Scaffold.PackageManager)
	assert.Equal(t, []string{"typescript"}, cfg.Scaffold.DevDependencies)
	assert.Equal(t, "eslint .", cfg.Scaffold.Scripts["lint"])
	assert.True(t, cfg.Scaffold.SkipInstall)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestConfigBuilderWithScriptWithoutDefaults(t *testing.T) {
	viper.Reset()

	// WithScript before any defaults must allocate the table.
	cb := NewConfigBuilder().WithScript("dev", "ts-node src/index.ts")
	assert.Equal(t, "ts-node src/index.ts", cb.config.Scaffold.Scripts["dev"])
}

func TestConfigBuilderValidation(t *testing.T) {
	viper.Reset()

	tests := []struct {
		name  string
		build func() (*Config, error)
	}{
		{
			name: "bad package manager",
			build: func() (*Config, error) {
				return NewConfigBuilder().WithDefaults().WithPackageManager("cargo").Build()
			},
		},
		{
			name: "bad log level",
			build: func() (*Config, error) {
				return NewConfigBuilder().WithDefaults().WithLogging("verbose", "text").Build()
			},
		},
		{
			name: "bad log format",
			build: func() (*Config, error) {
				return NewConfigBuilder().WithDefaults().WithLogging("info", "xml").Build()
			},
		},
		{
			name: "unsafe script name",
			build: func() (*Config, error) {
				return NewConfigBuilder().WithDefaults().WithScript("evil;rm", "x").Build()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			assert.Error(t, err)
		})
	}
}

func TestConfigBuilderCustomValidator(t *testing.T) {
	viper.Reset()

	_, err := NewConfigBuilder().
		WithDefaults().
		AddValidator(func(c *Config) error {
			return errors.NewConfigError("CUSTOM", "rejected by custom validator")
		}).
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rejected by custom validator")
}

func TestConfigBuilderDefaultsAreCopies(t *testing.T) {
	viper.Reset()

	cfg, err := NewConfigBuilder().WithDefaults().WithScript("extra", "x").Build()
	require.NoError(t, err)

	// Mutating the built config must not leak into the package defaults.
	assert.NotContains(t, DefaultScripts, "extra")
	assert.Contains(t, cfg.Scaffold.Scripts, "extra")
}
