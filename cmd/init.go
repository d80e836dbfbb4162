package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/forgelabs/tsforge/internal/config"
	"github.com/forgelabs/tsforge/internal/manifest"
	"github.com/forgelabs/tsforge/internal/scaffolding"
	"github.com/forgelabs/tsforge/internal/validation"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:     "init [name]",
	Aliases: []string{"i", "create"},
	Short:   "Scaffold a new TypeScript project",
	Long: `Scaffold a new TypeScript project with source layout, tsconfig,
gitignore, a package manifest, dev dependencies, and default scripts.
If no name is provided, initializes in the current directory.

Examples:
  tsforge init my-project              # Scaffold in new directory 'my-project'
  tsforge init                         # Scaffold in the current directory
  tsforge init my-project --minimal    # Skip the sample source and config file
  tsforge init my-project --skip-install  # No npm calls, write manifest directly
  tsforge init my-project --force      # Reuse an existing directory

The default scripts (dev, build, typecheck, start), dev dependencies, and
package manager can be overridden in .tsforge.yml or via TSFORGE_* variables.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

var (
	initForce       bool
	initMinimal     bool
	initSkipInstall bool
)

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initForce, "force", false, "Allow scaffolding into an existing directory")
	initCmd.Flags().BoolVar(&initMinimal, "minimal", false, "Minimal setup without sample source or config file")
	initCmd.Flags().BoolVar(&initSkipInstall, "skip-install", false, "Skip package manager init and install steps")
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var projectDir, projectName string

	if len(args) == 0 {
		// Initialize in the current directory, which necessarily exists.
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		projectDir = cwd
		projectName = filepath.Base(cwd)
		initForce = true
	} else {
		projectName = args[0]
		if err := validation.ValidateProjectName(projectName); err != nil {
			return err
		}
		projectDir = projectName
	}

	logger := newLogger(cfg)

	var runner scaffolding.Runner
	if initSkipInstall {
		runner = scaffolding.NewNopRunner()
	} else {
		runner = scaffolding.NewExecRunner(logger)
	}

	generator := scaffolding.NewGenerator(cfg, manifest.NewManager(), runner, logger)

	fmt.Printf("Initializing TypeScript project in %s\n", projectDir)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	err = generator.Create(ctx, scaffolding.Options{
		ProjectDir:  projectDir,
		ProjectName: projectName,
		Force:       initForce,
		Minimal:     initMinimal,
		SkipInstall: initSkipInstall,
	})
	if err != nil {
		return err
	}

	fmt.Println("✓ Project initialized successfully!")
	fmt.Println("\nNext steps:")
	if len(args) > 0 {
		fmt.Println("  1. cd " + projectDir)
		fmt.Println("  2. " + cfg.Scaffold.PackageManager + " run dev")
	} else {
		fmt.Println("  1. " + cfg.Scaffold.PackageManager + " run dev")
	}

	return nil
}
