// Package scaffolding creates new TypeScript project skeletons: directory
// layout, baseline files, dependency installation, and manifest scripts.
package scaffolding

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/forgelabs/tsforge/internal/config"
	"github.com/forgelabs/tsforge/internal/errors"
	"github.com/forgelabs/tsforge/internal/logging"
	"github.com/forgelabs/tsforge/internal/manifest"
)

// Generator coordinates creation of a TypeScript project
type Generator struct {
	cfg      *config.Config
	manifest *manifest.Manager
	runner   Runner
	logger   logging.Logger
}

// Options holds per-invocation scaffolding settings
type Options struct {
	ProjectDir  string
	ProjectName string
	Force       bool
	Minimal     bool
	SkipInstall bool
}

// NewGenerator creates a project generator
func NewGenerator(cfg *config.Config, mgr *manifest.Manager, runner Runner, logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Generator{
		cfg:      cfg,
		manifest: mgr,
		runner:   runner,
		logger:   logger.WithComponent("scaffolding"),
	}
}

// Create scaffolds a new TypeScript project
func (g *Generator) Create(ctx context.Context, opts Options) error {
	if opts.ProjectName == "" {
		opts.ProjectName = filepath.Base(opts.ProjectDir)
	}

	if err := g.ensureProjectDir(opts); err != nil {
		return err
	}

	if err := g.initManifest(ctx, opts); err != nil {
		return err
	}

	if err := g.installDevDependencies(ctx, opts); err != nil {
		return err
	}

	if err := g.writeProjectFiles(opts); err != nil {
		return err
	}

	if err := g.configureScripts(ctx, opts); err != nil {
		return err
	}

	g.logger.Info(ctx, "project created", "project", opts.ProjectName, "dir", opts.ProjectDir)

	return nil
}

// ensureProjectDir validates and creates the target directory
func (g *Generator) ensureProjectDir(opts Options) error {
	info, err := os.Stat(opts.ProjectDir)
	switch {
	case err == nil && !info.IsDir():
		return errors.NewValidationError("PROJECT_PATH_NOT_DIR",
			"path exists and is not a directory").WithPath(opts.ProjectDir)
	case err == nil && !opts.Force:
		return errors.NewValidationError("PROJECT_DIR_EXISTS",
			"directory already exists, use --force to reuse").WithPath(opts.ProjectDir)
	case err == nil:
		return nil
	case os.IsNotExist(err):
		if mkErr := os.MkdirAll(opts.ProjectDir, 0755); mkErr != nil {
			return errors.WrapIO(mkErr, "PROJECT_DIR_CREATE_FAILED",
				"failed to create project directory").WithPath(opts.ProjectDir)
		}
		return nil
	default:
		return errors.WrapIO(err, "PROJECT_DIR_STAT_FAILED",
			"failed to inspect project directory").WithPath(opts.ProjectDir)
	}
}

// initManifest produces the initial package.json, either through the package
// manager's init step or from the fallback template when installs are skipped
func (g *Generator) initManifest(ctx context.Context, opts Options) error {
	if opts.SkipInstall {
		content, err := renderTemplate("package.json", packageJSONTemplate, g.templateContext(opts))
		if err != nil {
			return err
		}
		return g.writeFile(filepath.Join(opts.ProjectDir, manifest.FileName), content)
	}

	pm := g.cfg.Scaffold.PackageManager
	return g.runner.Run(ctx, opts.ProjectDir, pm, initArgs(pm)...)
}

// installDevDependencies installs the TypeScript tooling packages
func (g *Generator) installDevDependencies(ctx context.Context, opts Options) error {
	if opts.SkipInstall || g.cfg.Scaffold.SkipInstall {
		g.logger.Debug(ctx, "skipping dependency install")
		return nil
	}

	deps := g.cfg.Scaffold.DevDependencies
	if len(deps) == 0 {
		return nil
	}

	pm := g.cfg.Scaffold.PackageManager
	args := append(installDevArgs(pm), deps...)

	return g.runner.Run(ctx, opts.ProjectDir, pm, args...)
}

// writeProjectFiles writes the baseline project files
func (g *Generator) writeProjectFiles(opts Options) error {
	ctx := g.templateContext(opts)

	files := map[string]string{
		".gitignore":    gitignoreTemplate,
		"tsconfig.json": tsconfigTemplate,
	}

	if !opts.Minimal {
		files[filepath.Join(g.cfg.Scaffold.SourceDir, "index.ts")] = indexTsTemplate
	}

	for relPath, tmpl := range files {
		content, err := renderTemplate(relPath, tmpl, ctx)
		if err != nil {
			return err
		}
		if err := g.writeFile(filepath.Join(opts.ProjectDir, relPath), content); err != nil {
			return err
		}
	}

	if !opts.Minimal {
		configPath := filepath.Join(opts.ProjectDir, config.DefaultFileName)
		if err := g.cfg.WriteFile(configPath); err != nil {
			return err
		}
	}

	return nil
}

// configureScripts resets the manifest scripts table to the configured set
func (g *Generator) configureScripts(ctx context.Context, opts Options) error {
	if err := g.manifest.ClearScripts(opts.ProjectDir); err != nil {
		return err
	}

	names := make([]string, 0, len(g.cfg.Scaffold.Scripts))
	for name := range g.cfg.Scaffold.Scripts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := g.manifest.AddScript(opts.ProjectDir, name, g.cfg.Scaffold.Scripts[name]); err != nil {
			return err
		}
		g.logger.Debug(ctx, "script configured", "script", name)
	}

	return nil
}

func (g *Generator) templateContext(opts Options) TemplateContext {
	return TemplateContext{
		ProjectName: opts.ProjectName,
		SourceDir:   g.cfg.Scaffold.SourceDir,
	}
}

func (g *Generator) writeFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.WrapIO(err, "FILE_WRITE_FAILED",
			fmt.Sprintf("failed to create directory for %s", filepath.Base(path))).WithPath(path)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return errors.WrapIO(err, "FILE_WRITE_FAILED",
			fmt.Sprintf("failed to write %s", filepath.Base(path))).WithPath(path)
	}

	return nil
}

// initArgs returns the manifest initialization arguments for a package manager
func initArgs(pm string) []string {
	switch pm {
	case "pnpm":
		return []string{"init"}
	default:
		return []string{"init", "-y"}
	}
}

// installDevArgs returns the dev-dependency install arguments for a package manager
func installDevArgs(pm string) []string {
	switch pm {
	case "yarn":
		return []string{"add", "--dev"}
	case "pnpm":
		return []string{"add", "-D"}
	case "bun":
		return []string{"add", "-d"}
	default:
		return []string{"install", "--save-dev"}
	}
}
