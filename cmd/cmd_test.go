package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()

	oldDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { os.Chdir(oldDir) })

	require.NoError(t, os.Chdir(tempDir))
	return tempDir
}

func resetInitFlags() {
	initForce = false
	initMinimal = false
	initSkipInstall = true // tests never shell out to npm
	viper.Reset()
}

func TestInitCommand(t *testing.T) {
	chdirTemp(t)
	resetInitFlags()

	err := runInit(&cobra.Command{}, []string{"my-project"})
	require.NoError(t, err)

	assert.DirExists(t, "my-project")
	assert.FileExists(t, "my-project/package.json")
	assert.FileExists(t, "my-project/tsconfig.json")
	assert.FileExists(t, "my-project/.gitignore")
	assert.FileExists(t, "my-project/src/index.ts")
	assert.FileExists(t, "my-project/.tsforge.yml")

	data, err := os.ReadFile("my-project/package.json")
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "my-project", doc["name"])

	scripts, ok := doc["scripts"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ts-node src/index.ts", scripts["dev"])
	assert.Equal(t, "tsc", scripts["build"])
}

func TestInitCommandCurrentDirectory(t *testing.T) {
	chdirTemp(t)
	resetInitFlags()

	err := runInit(&cobra.Command{}, []string{})
	require.NoError(t, err)

	assert.FileExists(t, "package.json")
	assert.FileExists(t, "tsconfig.json")
}

func TestInitCommandMinimal(t *testing.T) {
	chdirTemp(t)
	resetInitFlags()
	initMinimal = true

	err := runInit(&cobra.Command{}, []string{"bare"})
	require.NoError(t, err)

	assert.FileExists(t, "bare/tsconfig.json")
	assert.NoFileExists(t, "bare/src/index.ts")
	assert.NoFileExists(t, "bare/.tsforge.yml")
}

func TestInitCommandExistingDirectory(t *testing.T) {
	chdirTemp(t)
	resetInitFlags()

	require.NoError(t, os.Mkdir("taken", 0755))

	err := runInit(&cobra.Command{}, []string{"taken"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	initForce = true
	err = runInit(&cobra.Command{}, []string{"taken"})
	require.NoError(t, err)
}

func TestInitCommandInvalidName(t *testing.T) {
	chdirTemp(t)
	resetInitFlags()

	tests := []string{"Bad Name", "UPPER", "../escape", "with/slash"}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			err := runInit(&cobra.Command{}, []string{name})
			assert.Error(t, err)
		})
	}
}

func writeTestManifest(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0644))
}

func TestScriptsAddCommand(t *testing.T) {
	dir := chdirTemp(t)
	viper.Reset()
	writeTestManifest(t, dir, `{"name": "demo"}`)
	scriptsProjectDir = "."

	err := runScriptsAdd(&cobra.Command{}, []string{"foo", "bar"})
	require.NoError(t, err)

	data, err := os.ReadFile("package.json")
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	scripts, ok := doc["scripts"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "bar", scripts["foo"])
}

func TestScriptsAddCommandRequiresTwoArgs(t *testing.T) {
	err := scriptsAddCmd.Args(scriptsAddCmd, []string{"only-one"})
	assert.Error(t, err)
}

func TestScriptsAddCommandMissingManifest(t *testing.T) {
	chdirTemp(t)
	viper.Reset()
	scriptsProjectDir = "."

	err := runScriptsAdd(&cobra.Command{}, []string{"foo", "bar"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package.json not found")

	// Nothing may be written on failure.
	assert.NoFileExists(t, "package.json")
}

func TestScriptsAddCommandUnsafeName(t *testing.T) {
	dir := chdirTemp(t)
	viper.Reset()
	writeTestManifest(t, dir, `{"scripts": {}}`)
	scriptsProjectDir = "."

	err := runScriptsAdd(&cobra.Command{}, []string{"evil;rm", "x"})
	require.Error(t, err)

	data, err := os.ReadFile("package.json")
	require.NoError(t, err)
	assert.NotContains(t, string(data), "evil")
}

func TestScriptsClearCommand(t *testing.T) {
	dir := chdirTemp(t)
	viper.Reset()
	writeTestManifest(t, dir, `{"scripts": {"dev": "x", "build": "y"}}`)
	scriptsProjectDir = "."

	err := runScriptsClear(&cobra.Command{}, nil)
	require.NoError(t, err)

	data, err := os.ReadFile("package.json")
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, map[string]interface{}{}, doc["scripts"])
}

func TestScriptsRemoveCommand(t *testing.T) {
	dir := chdirTemp(t)
	viper.Reset()
	writeTestManifest(t, dir, `{"scripts": {"dev": "x", "build": "y"}}`)
	scriptsProjectDir = "."

	err := runScriptsRemove(&cobra.Command{}, []string{"dev"})
	require.NoError(t, err)

	data, err := os.ReadFile("package.json")
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"dev"`)
	assert.Contains(t, string(data), `"build"`)
}

func TestScriptsListCommand(t *testing.T) {
	dir := chdirTemp(t)
	viper.Reset()
	writeTestManifest(t, dir, `{"scripts": {"dev": "ts-node src/index.ts"}}`)
	scriptsProjectDir = "."

	scriptsListFormat = "table"
	require.NoError(t, runScriptsList(&cobra.Command{}, nil))

	scriptsListFormat = "json"
	require.NoError(t, runScriptsList(&cobra.Command{}, nil))

	scriptsListFormat = "yaml"
	assert.Error(t, runScriptsList(&cobra.Command{}, nil))
}

func TestScriptsProjectDirTraversalRejected(t *testing.T) {
	chdirTemp(t)
	viper.Reset()
	scriptsProjectDir = "../outside"

	err := runScriptsClear(&cobra.Command{}, nil)
	assert.Error(t, err)
}

func TestDemoUsersCommand(t *testing.T) {
	viper.Reset()

	err := runDemoUsers(&cobra.Command{}, nil)
	require.NoError(t, err)
}

func TestVersionCommand(t *testing.T) {
	versionFormat = "text"
	require.NoError(t, runVersion(&cobra.Command{}, nil))

	versionFormat = "json"
	require.NoError(t, runVersion(&cobra.Command{}, nil))

	versionFormat = "xml"
	assert.Error(t, runVersion(&cobra.Command{}, nil))
}
