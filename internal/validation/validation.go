// Package validation provides input validation for project names, script
// names, and user-supplied paths, preventing path traversal and shell
// injection in scaffolded projects.
package validation

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/forgelabs/tsforge/internal/errors"
)

// npm package name rules, restricted to the safe subset tsforge scaffolds.
var projectNamePattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9._-]*[a-z0-9])?$`)

// ValidateProjectName checks that a name is usable as both a directory name
// and an npm package name.
func ValidateProjectName(name string) error {
	if name == "" {
		return errors.NewValidationError("EMPTY_PROJECT_NAME", "project name cannot be empty")
	}

	if len(name) > 214 {
		return errors.NewValidationError("PROJECT_NAME_TOO_LONG", "project name exceeds 214 characters")
	}

	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return errors.NewValidationError("PROJECT_NAME_TRAVERSAL",
			"project name must not contain path separators or '..'").WithContext("name", name)
	}

	if !projectNamePattern.MatchString(name) {
		return errors.NewValidationError("INVALID_PROJECT_NAME",
			"project name must be lowercase letters, digits, '.', '_' or '-', starting and ending with a letter or digit").
			WithContext("name", name)
	}

	return nil
}

// ValidateScriptName checks a package manifest script name.
func ValidateScriptName(name string) error {
	if name == "" {
		return errors.NewValidationError("EMPTY_SCRIPT_NAME", "script name cannot be empty")
	}

	// Shell metacharacters in a script name would end up inside package.json
	// keys that npm later interprets.
	if strings.ContainsAny(name, ";&|$`<>\"'\\") {
		return errors.NewValidationError("UNSAFE_SCRIPT_NAME",
			"script name contains shell metacharacters").WithContext("name", name)
	}

	if strings.ContainsAny(name, " \t\n") {
		return errors.NewValidationError("INVALID_SCRIPT_NAME",
			"script name must not contain whitespace").WithContext("name", name)
	}

	return nil
}

// ValidateProjectDir checks a user-supplied --project-dir value. Relative
// paths are resolved against the working directory by the caller; here we
// reject traversal outside of it and null bytes.
func ValidateProjectDir(dir string) error {
	if dir == "" {
		return errors.NewValidationError("EMPTY_PROJECT_DIR", "project directory cannot be empty")
	}

	if strings.ContainsRune(dir, 0) {
		return errors.NewValidationError("INVALID_PROJECT_DIR", "project directory contains a null byte")
	}

	cleaned := filepath.Clean(dir)
	if !filepath.IsAbs(cleaned) && (cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator))) {
		return errors.NewValidationError("PROJECT_DIR_TRAVERSAL",
			"project directory escapes the working directory").WithContext("dir", dir)
	}

	return nil
}
