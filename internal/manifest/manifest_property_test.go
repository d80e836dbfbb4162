//go:build property
// +build property

package manifest

import (
	"os"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

// TestManifestProperties tests scripts-table invariants over arbitrary inputs
func TestManifestProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: after AddScript, the entry is always present with the exact command
	properties.Property("add then list round trip", prop.ForAll(
		func(name, command string) bool {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(NewManager().Path(dir), []byte(`{"name":"demo"}`), 0644))

			mgr := NewManager()
			if err := mgr.AddScript(dir, name, command); err != nil {
				return false
			}

			scripts, err := mgr.ListScripts(dir)
			return err == nil && scripts[name] == command
		},
		gen.RegexMatch(`^[a-z][a-z0-9:-]{0,20}$`),
		gen.RegexMatch(`^[a-zA-Z0-9 ./_-]{1,40}$`),
	))

	// Property: ClearScripts always yields an empty table, whatever was there before
	properties.Property("clear empties any table", prop.ForAll(
		func(names []string) bool {
			dir := t.TempDir()
			mgr := NewManager()
			require.NoError(t, os.WriteFile(mgr.Path(dir), []byte(`{}`), 0644))

			for _, name := range names {
				if strings.TrimSpace(name) == "" {
					continue
				}
				if err := mgr.AddScript(dir, name, "echo "+name); err != nil {
					return false
				}
			}

			if err := mgr.ClearScripts(dir); err != nil {
				return false
			}

			scripts, err := mgr.ListScripts(dir)
			return err == nil && len(scripts) == 0
		},
		gen.SliceOfN(5, gen.RegexMatch(`^[a-z]{1,10}$`)),
	))

	// Property: a load/save round trip never loses unrelated top-level fields
	properties.Property("save preserves unrelated fields", prop.ForAll(
		func(version string) bool {
			dir := t.TempDir()
			mgr := NewManager()
			content := `{"name":"demo","version":"` + version + `"}`
			require.NoError(t, os.WriteFile(mgr.Path(dir), []byte(content), 0644))

			if err := mgr.AddScript(dir, "build", "tsc"); err != nil {
				return false
			}

			doc, err := mgr.Load(dir)
			return err == nil && doc["version"] == version
		},
		gen.RegexMatch(`^[0-9]{1,2}\.[0-9]{1,2}\.[0-9]{1,2}$`),
	))

	properties.TestingRun(t)
}
