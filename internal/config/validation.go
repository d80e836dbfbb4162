package config

import (
	"github.com/forgelabs/tsforge/internal/errors"
	"github.com/forgelabs/tsforge/internal/validation"
)

var supportedPackageManagers = map[string]bool{
	"npm":  true,
	"pnpm": true,
	"yarn": true,
	"bun":  true,
}

// "warning" is accepted as an alias for warn, matching logging.ParseLevel.
var supportedLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// validateConfig checks the full configuration for consistency
func validateConfig(cfg *Config) error {
	if !supportedPackageManagers[cfg.Scaffold.PackageManager] {
		return errors.NewConfigError("UNSUPPORTED_PACKAGE_MANAGER",
			"package manager must be one of npm, pnpm, yarn, bun").
			WithContext("package_manager", cfg.Scaffold.PackageManager)
	}

	for name := range cfg.Scaffold.Scripts {
		if err := validation.ValidateScriptName(name); err != nil {
			return err
		}
	}

	for _, dep := range cfg.Scaffold.DevDependencies {
		if dep == "" {
			return errors.NewConfigError("EMPTY_DEV_DEPENDENCY",
				"dev dependency names cannot be empty")
		}
	}

	if !supportedLogLevels[cfg.Logging.Level] {
		return errors.NewConfigError("INVALID_LOG_LEVEL",
			"log level must be one of debug, info, warn, error").
			WithContext("level", cfg.Logging.Level)
	}

	if cfg.Logging.Format != "text" && cfg.Logging.Format != "json" {
		return errors.NewConfigError("INVALID_LOG_FORMAT",
			"log format must be text or json").
			WithContext("format", cfg.Logging.Format)
	}

	if cfg.Scaffold.SourceDir == "" {
		return errors.NewConfigError("EMPTY_SOURCE_DIR", "source directory cannot be empty")
	}

	return nil
}
