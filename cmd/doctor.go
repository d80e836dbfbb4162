package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"

	"github.com/forgelabs/tsforge/internal/config"
	"github.com/forgelabs/tsforge/internal/manifest"
	"github.com/forgelabs/tsforge/internal/validation"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the Node development environment",
	Long: `Check tool availability and project state and report problems.

The doctor command checks for:
- node and the configured package manager on PATH
- a readable, valid package.json in the target directory

Examples:
  tsforge doctor                    # Diagnose the current directory
  tsforge doctor --project-dir app  # Diagnose another project
  tsforge doctor --format json      # Output as JSON for tooling`,
	RunE: runDoctor,
}

var (
	doctorProjectDir string
	doctorFormat     string
)

// DiagnosticResult represents the result of one diagnostic check
type DiagnosticResult struct {
	Name       string `json:"name"`
	Status     string `json:"status"` // "ok", "warning", "error"
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

func init() {
	rootCmd.AddCommand(doctorCmd)

	doctorCmd.Flags().StringVarP(&doctorProjectDir, "project-dir", "d", ".", "Directory to diagnose")
	AddFlagValidation(doctorCmd, "project-dir", validation.ValidateProjectDir)
	doctorCmd.Flags().StringVarP(&doctorFormat, "format", "f", "text", "Output format (text, json)")
	AddFlagValidation(doctorCmd, "format", ValidateOutputFormat("text", "json"))
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	results := []DiagnosticResult{
		checkBinary("node", "install Node.js from https://nodejs.org"),
		checkBinary(cfg.Scaffold.PackageManager, "install it or set scaffold.package_manager in .tsforge.yml"),
		checkManifest(doctorProjectDir),
	}

	switch doctorFormat {
	case "json":
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "text":
		printDoctorResults(results)
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", doctorFormat)
	}

	for _, result := range results {
		if result.Status == "error" {
			return fmt.Errorf("%d check(s) failed", countStatus(results, "error"))
		}
	}

	return nil
}

func checkBinary(name, suggestion string) DiagnosticResult {
	path, err := exec.LookPath(name)
	if err != nil {
		return DiagnosticResult{
			Name:       name,
			Status:     "error",
			Message:    name + " not found on PATH",
			Suggestion: suggestion,
		}
	}

	return DiagnosticResult{
		Name:    name,
		Status:  "ok",
		Message: "found at " + path,
	}
}

func checkManifest(projectDir string) DiagnosticResult {
	result := DiagnosticResult{Name: "package.json"}

	_, err := manifest.NewManager().Load(projectDir)
	switch {
	case err == nil:
		result.Status = "ok"
		result.Message = "valid manifest in " + projectDir
	case errors.Is(err, fs.ErrNotExist):
		result.Status = "warning"
		result.Message = "no package.json in " + projectDir
		result.Suggestion = "run 'tsforge init' to scaffold a project"
	default:
		result.Status = "error"
		result.Message = err.Error()
		result.Suggestion = "fix the JSON syntax in package.json"
	}

	return result
}

func printDoctorResults(results []DiagnosticResult) {
	for _, result := range results {
		marker := "✓"
		switch result.Status {
		case "warning":
			marker = "⚠"
		case "error":
			marker = "✗"
		}
		fmt.Printf("%s %s: %s\n", marker, result.Name, result.Message)
		if result.Suggestion != "" {
			fmt.Printf("  → %s\n", result.Suggestion)
		}
	}

	fmt.Printf("\n%d ok, %d warning(s), %d error(s)\n",
		countStatus(results, "ok"), countStatus(results, "warning"), countStatus(results, "error"))
}

func countStatus(results []DiagnosticResult, status string) int {
	count := 0
	for _, result := range results {
		if result.Status == status {
			count++
		}
	}
	return count
}
