// Package manifest reads and rewrites the scripts table of a package.json
// file while leaving every other field of the document untouched.
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/forgelabs/tsforge/internal/errors"
)

// FileName is the package manifest file name inside a project directory.
const FileName = "package.json"

// Document is a parsed package.json. Unknown top-level fields are preserved
// across a load/save round trip.
type Document map[string]interface{}

// Scripts returns the scripts table of the document. A missing or malformed
// scripts field yields an empty table.
func (d Document) Scripts() map[string]string {
	scripts := make(map[string]string)

	raw, ok := d["scripts"].(map[string]interface{})
	if !ok {
		return scripts
	}

	for name, value := range raw {
		if command, ok := value.(string); ok {
			scripts[name] = command
		}
	}

	return scripts
}

// SetScripts replaces the scripts table of the document.
func (d Document) SetScripts(scripts map[string]string) {
	table := make(map[string]interface{}, len(scripts))
	for name, command := range scripts {
		table[name] = command
	}
	d["scripts"] = table
}

// SetScript inserts or overwrites one entry in the scripts table, creating
// the table when it is absent or not an object. Other entries are left as
// they are, whatever their type.
func (d Document) SetScript(name, command string) {
	table, ok := d["scripts"].(map[string]interface{})
	if !ok {
		table = make(map[string]interface{})
		d["scripts"] = table
	}
	table[name] = command
}

// RemoveScript deletes one entry from the scripts table, leaving the rest
// of the table untouched.
func (d Document) RemoveScript(name string) {
	if table, ok := d["scripts"].(map[string]interface{}); ok {
		delete(table, name)
	}
}

// Manager reads and updates package.json files.
type Manager struct{}

// NewManager creates a new manifest manager.
func NewManager() *Manager {
	return &Manager{}
}

// Path returns the manifest path inside a project directory.
func (m *Manager) Path(projectDir string) string {
	return filepath.Join(projectDir, FileName)
}

// Load reads and parses the manifest of a project directory.
func (m *Manager) Load(projectDir string) (Document, error) {
	path := m.Path(projectDir)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewManifestError("MANIFEST_NOT_FOUND",
				"package.json not found", err).WithPath(projectDir)
		}
		return nil, errors.WrapIO(err, "MANIFEST_READ_FAILED", "failed to read package.json").WithPath(path)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapManifest(err, "MANIFEST_INVALID",
			"package.json is not valid JSON", path)
	}
	if doc == nil {
		// A bare `null` unmarshals into a nil map without an error.
		return nil, errors.NewManifestError("MANIFEST_INVALID",
			"package.json must be a JSON object", nil).WithPath(path)
	}

	return doc, nil
}

// Save writes the manifest back with two-space indentation and a trailing
// newline.
func (m *Manager) Save(projectDir string, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.NewInternalError("MANIFEST_ENCODE_FAILED", "failed to encode package.json", err)
	}

	path := m.Path(projectDir)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return errors.WrapIO(err, "MANIFEST_WRITE_FAILED", "failed to write package.json").WithPath(path)
	}

	return nil
}

// ClearScripts empties the scripts table.
func (m *Manager) ClearScripts(projectDir string) error {
	doc, err := m.Load(projectDir)
	if err != nil {
		return err
	}

	doc.SetScripts(map[string]string{})

	return m.Save(projectDir, doc)
}

// AddScript inserts or overwrites one scripts entry, creating the scripts
// table when absent.
func (m *Manager) AddScript(projectDir, name, command string) error {
	doc, err := m.Load(projectDir)
	if err != nil {
		return err
	}

	doc.SetScript(name, command)

	return m.Save(projectDir, doc)
}

// RemoveScript deletes one scripts entry. Removing an entry that does not
// exist is not an error.
func (m *Manager) RemoveScript(projectDir, name string) error {
	doc, err := m.Load(projectDir)
	if err != nil {
		return err
	}

	doc.RemoveScript(name)

	return m.Save(projectDir, doc)
}

// ListScripts returns the scripts table of a project directory.
func (m *Manager) ListScripts(projectDir string) (map[string]string, error) {
	doc, err := m.Load(projectDir)
	if err != nil {
		return nil, err
	}

	return doc.Scripts(), nil
}
