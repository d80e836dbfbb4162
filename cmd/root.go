// Package cmd provides the command-line interface for tsforge with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration through multiple sources with clear precedence:
//	1. Command-line flags (--config, --project-dir, etc.) - highest priority
//	2. TSFORGE_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (TSFORGE_SCAFFOLD_PACKAGE_MANAGER, etc.)
//	4. Configuration files (.tsforge.yml) - lowest priority
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/forgelabs/tsforge/internal/config"
	"github.com/forgelabs/tsforge/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tsforge",
	Short: "Scaffold TypeScript projects and manage package.json scripts",
	Long: `tsforge scaffolds TypeScript projects and manages the scripts table
of their package.json manifests.

Key Features:
  • One-command project scaffolding (tsconfig, gitignore, src layout)
  • Dev dependency installation through npm, pnpm, yarn, or bun
  • Safe add/remove/clear of package.json scripts
  • Environment diagnosis for Node tooling

Quick Start:
  tsforge init my-project         Scaffold a new TypeScript project
  tsforge scripts add dev "ts-node src/index.ts"
  tsforge scripts list            Show configured scripts
  tsforge doctor                  Check your Node environment

Command Aliases (for faster typing):
  init (i, create), scripts (s)`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .tsforge.yml, can also use TSFORGE_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig initializes the configuration system.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. TSFORGE_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .tsforge.yml in current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("TSFORGE_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tsforge")
	}

	// Enable automatic environment variable binding with TSFORGE_ prefix
	// Examples: TSFORGE_SCAFFOLD_PACKAGE_MANAGER, TSFORGE_LOGGING_LEVEL
	viper.SetEnvPrefix("TSFORGE")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing or malformed config file degrades to defaults rather than failing.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the CLI logger from the effective configuration
func newLogger(cfg *config.Config) logging.Logger {
	return logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(cfg.Logging.Level),
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	})
}
