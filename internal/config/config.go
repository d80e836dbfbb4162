// Package config manages tsforge configuration loaded from .tsforge.yml,
// TSFORGE_* environment variables, and command-line flags via viper.
package config

import (
	"os"
	"path/filepath"

	"github.com/forgelabs/tsforge/internal/errors"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the configuration file written into scaffolded projects.
const DefaultFileName = ".tsforge.yml"

// Config is the root configuration structure
type Config struct {
	Scaffold ScaffoldConfig `mapstructure:"scaffold" yaml:"scaffold"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// ScaffoldConfig controls project generation
type ScaffoldConfig struct {
	PackageManager  string            `mapstructure:"package_manager" yaml:"package_manager"`
	DevDependencies []string          `mapstructure:"dev_dependencies" yaml:"dev_dependencies"`
	Scripts         map[string]string `mapstructure:"scripts" yaml:"scripts"`
	SkipInstall     bool              `mapstructure:"skip_install" yaml:"skip_install"`
	SourceDir       string            `mapstructure:"source_dir" yaml:"source_dir"`
}

// LoggingConfig controls log output
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Load builds the effective configuration from defaults, the config file,
// and environment overrides.
func Load() (*Config, error) {
	return NewConfigBuilder().
		WithDefaults().
		FromViper().
		Build()
}

// WriteFile writes the configuration as YAML, creating parent directories as
// needed. Used by init to drop a .tsforge.yml into new projects.
func (c *Config) WriteFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.NewInternalError("CONFIG_ENCODE_FAILED", "failed to encode configuration", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.WrapIO(err, "CONFIG_WRITE_FAILED", "failed to create config directory").WithPath(path)
	}

	header := []byte("# tsforge configuration file\n")
	if err := os.WriteFile(path, append(header, data...), 0644); err != nil {
		return errors.WrapIO(err, "CONFIG_WRITE_FAILED", "failed to write config file").WithPath(path)
	}

	return nil
}

// DefaultDevDependencies are the TypeScript tooling packages installed into
// new projects.
var DefaultDevDependencies = []string{"typescript", "ts-node", "@types/node"}

// DefaultScripts are the manifest scripts configured for new projects.
var DefaultScripts = map[string]string{
	"dev":       "ts-node src/index.ts",
	"build":     "tsc",
	"typecheck": "tsc --noEmit",
	"start":     "node dist/index.js",
}
