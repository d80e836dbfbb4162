package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ConfigBuilder provides a fluent interface for building configurations.
//
// Usage:
//
//	config, err := NewConfigBuilder().
//	    WithDefaults().
//	    WithPackageManager("pnpm").
//	    FromViper().
//	    Build()
type ConfigBuilder struct {
	config     *Config
	validators []ValidatorFunc
}

// ValidatorFunc represents a configuration validation function
type ValidatorFunc func(*Config) error

// NewConfigBuilder creates a new configuration builder
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config:     &Config{},
		validators: []ValidatorFunc{},
	}
}

// WithDefaults applies the stock scaffold and logging settings
func (cb *ConfigBuilder) WithDefaults() *ConfigBuilder {
	cb.config.Scaffold = ScaffoldConfig{
		PackageManager:  "npm",
		DevDependencies: append([]string(nil), DefaultDevDependencies...),
		Scripts:         copyScripts(DefaultScripts),
		SourceDir:       "src",
	}
	cb.config.Logging = LoggingConfig{
		Level:  "info",
		Format: "text",
	}
	return cb
}

// WithPackageManager sets the package manager used for install steps
func (cb *ConfigBuilder) WithPackageManager(name string) *ConfigBuilder {
	cb.config.Scaffold.PackageManager = name
	return cb
}

// WithDevDependencies replaces the dev dependency list
func (cb *ConfigBuilder) WithDevDependencies(deps ...string) *ConfigBuilder {
	cb.config.Scaffold.DevDependencies = deps
	return cb
}

// WithScript adds or overrides one default manifest script
func (cb *ConfigBuilder) WithScript(name, command string) *ConfigBuilder {
	if cb.config.Scaffold.Scripts == nil {
		cb.config.Scaffold.Scripts = make(map[string]string)
	}
	cb.config.Scaffold.Scripts[name] = command
	return cb
}

// WithSkipInstall disables the dependency install step
func (cb *ConfigBuilder) WithSkipInstall(skip bool) *ConfigBuilder {
	cb.config.Scaffold.SkipInstall = skip
	return cb
}

// WithLogging sets log level and format
func (cb *ConfigBuilder) WithLogging(level, format string) *ConfigBuilder {
	cb.config.Logging = LoggingConfig{Level: level, Format: format}
	return cb
}

// FromViper merges settings from viper over the builder state
func (cb *ConfigBuilder) FromViper() *ConfigBuilder {
	var viperConfig Config
	if err := viper.Unmarshal(&viperConfig); err == nil {
		cb.mergeViperConfig(&viperConfig)
	}

	// log-level is bound to the root persistent flag, outside the
	// scaffold/logging sections.
	if viper.IsSet("log-level") {
		if level := viper.GetString("log-level"); level != "" {
			cb.config.Logging.Level = level
		}
	}

	return cb
}

// AddValidator adds a custom validation function
func (cb *ConfigBuilder) AddValidator(validator ValidatorFunc) *ConfigBuilder {
	cb.validators = append(cb.validators, validator)
	return cb
}

// Build creates the final configuration after applying all settings and validations
func (cb *ConfigBuilder) Build() (*Config, error) {
	for _, validator := range cb.validators {
		if err := validator(cb.config); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	if err := validateConfig(cb.config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cb.config, nil
}

// mergeViperConfig merges non-zero viper values into the current config
func (cb *ConfigBuilder) mergeViperConfig(viperConfig *Config) {
	if viperConfig.Scaffold.PackageManager != "" {
		cb.config.Scaffold.PackageManager = viperConfig.Scaffold.PackageManager
	}
	if len(viperConfig.Scaffold.DevDependencies) > 0 {
		cb.config.Scaffold.DevDependencies = viperConfig.Scaffold.DevDependencies
	}
	if len(viperConfig.Scaffold.Scripts) > 0 {
		cb.config.Scaffold.Scripts = copyScripts(viperConfig.Scaffold.Scripts)
	}
	if viperConfig.Scaffold.SourceDir != "" {
		cb.config.Scaffold.SourceDir = viperConfig.Scaffold.SourceDir
	}
	if viper.IsSet("scaffold.skip_install") {
		cb.config.Scaffold.SkipInstall = viperConfig.Scaffold.SkipInstall
	}
	if viperConfig.Logging.Level != "" {
		cb.config.Logging.Level = viperConfig.Logging.Level
	}
	if viperConfig.Logging.Format != "" {
		cb.config.Logging.Format = viperConfig.Logging.Format
	}
}

func copyScripts(scripts map[string]string) map[string]string {
	result := make(map[string]string, len(scripts))
	for name, command := range scripts {
		result[name] = command
	}
	return result
}
