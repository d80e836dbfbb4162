package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/forgelabs/tsforge/internal/manifest"
	"github.com/forgelabs/tsforge/internal/validation"
	"github.com/spf13/cobra"
)

var scriptsCmd = &cobra.Command{
	Use:     "scripts",
	Aliases: []string{"s"},
	Short:   "Manage package.json scripts",
	Long: `Manage the scripts table of a project's package.json.

Examples:
  tsforge scripts add dev "ts-node src/index.ts"
  tsforge scripts add build tsc --project-dir my-project
  tsforge scripts remove build
  tsforge scripts list --format json
  tsforge scripts clear`,
}

var scriptsAddCmd = &cobra.Command{
	Use:   "add <name> <command>",
	Short: "Add or overwrite one scripts entry",
	Args:  cobra.ExactArgs(2),
	RunE:  runScriptsAdd,
}

var scriptsRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove one scripts entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runScriptsRemove,
}

var scriptsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the scripts table",
	Args:  cobra.NoArgs,
	RunE:  runScriptsClear,
}

var scriptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the scripts table",
	Args:  cobra.NoArgs,
	RunE:  runScriptsList,
}

var (
	scriptsProjectDir string
	scriptsListFormat string
)

func init() {
	rootCmd.AddCommand(scriptsCmd)

	scriptsCmd.PersistentFlags().StringVarP(&scriptsProjectDir, "project-dir", "d", ".", "Directory containing package.json")
	AddFlagValidation(scriptsCmd, "project-dir", validation.ValidateProjectDir)

	scriptsListCmd.Flags().StringVarP(&scriptsListFormat, "format", "f", "table", "Output format (table, json)")
	AddFlagValidation(scriptsListCmd, "format", ValidateOutputFormat("table", "json"))

	scriptsCmd.AddCommand(scriptsAddCmd)
	scriptsCmd.AddCommand(scriptsRemoveCmd)
	scriptsCmd.AddCommand(scriptsClearCmd)
	scriptsCmd.AddCommand(scriptsListCmd)
}

func runScriptsAdd(cmd *cobra.Command, args []string) error {
	name, command := args[0], args[1]

	if err := validation.ValidateProjectDir(scriptsProjectDir); err != nil {
		return err
	}
	if err := validation.ValidateScriptName(name); err != nil {
		return err
	}

	if err := manifest.NewManager().AddScript(scriptsProjectDir, name, command); err != nil {
		return err
	}

	fmt.Printf("✓ Script added: %q: %q\n", name, command)
	return nil
}

func runScriptsRemove(cmd *cobra.Command, args []string) error {
	name := args[0]

	if err := validation.ValidateProjectDir(scriptsProjectDir); err != nil {
		return err
	}

	if err := manifest.NewManager().RemoveScript(scriptsProjectDir, name); err != nil {
		return err
	}

	fmt.Printf("✓ Script removed: %q\n", name)
	return nil
}

func runScriptsClear(cmd *cobra.Command, args []string) error {
	if err := validation.ValidateProjectDir(scriptsProjectDir); err != nil {
		return err
	}

	if err := manifest.NewManager().ClearScripts(scriptsProjectDir); err != nil {
		return err
	}

	fmt.Println("✓ All scripts cleared.")
	return nil
}

func runScriptsList(cmd *cobra.Command, args []string) error {
	if err := validation.ValidateProjectDir(scriptsProjectDir); err != nil {
		return err
	}

	scripts, err := manifest.NewManager().ListScripts(scriptsProjectDir)
	if err != nil {
		return err
	}

	switch scriptsListFormat {
	case "json":
		data, err := json.MarshalIndent(scripts, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "table":
		if len(scripts) == 0 {
			fmt.Println("No scripts configured.")
			return nil
		}

		names := make([]string, 0, len(scripts))
		for name := range scripts {
			names = append(names, name)
		}
		sort.Strings(names)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCOMMAND")
		for _, name := range names {
			fmt.Fprintf(w, "%s\t%s\n", name, scripts[name])
		}
		w.Flush()
	default:
		return fmt.Errorf("unsupported format: %s (supported: table, json)", scriptsListFormat)
	}

	return nil
}
