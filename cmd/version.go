package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/forgelabs/tsforge/internal/version"
	"github.com/spf13/cobra"
)

var versionFormat string

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information for tsforge including:

- Semantic version number
- Git commit hash
- Go version used for compilation
- Target platform (OS/architecture)

Examples:
  tsforge version               # Show version summary
  tsforge version --format json # Output as JSON`,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionFormat, "format", "f", "text", "Output format (text, json)")
	AddFlagValidation(versionCmd, "format", ValidateOutputFormat("text", "json"))
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.GetBuildInfo()

	switch versionFormat {
	case "json":
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "text":
		fmt.Println(info.String())
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", versionFormat)
	}

	return nil
}
