// Package workspace provides rooted filesystem access for the scaffolder.
// All paths are resolved relative to a base directory and traversal outside
// the base is rejected.
package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotDirectory indicates a path that must be a directory already exists
// as something else. The conflicting entry is left untouched.
var ErrNotDirectory = errors.New("path exists and is not a directory")

// Dir writes scaffold output under a base directory.
type Dir struct {
	base string
}

// New creates a workspace rooted at the given base directory.
func New(base string) *Dir {
	if base == "" {
		base = "."
	}
	return &Dir{base: base}
}

// Base returns the base directory the workspace writes under.
func (d *Dir) Base() string {
	return d.base
}

// EnsureRoot creates the project root directory if it is absent. A root that
// already exists as a directory is accepted as-is; a root that exists as a
// regular file (or anything else) is an error.
func (d *Dir) EnsureRoot(name string) error {
	resolved, err := d.resolve(name)
	if err != nil {
		return err
	}

	info, err := os.Stat(resolved)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("project root %s: %w", resolved, ErrNotDirectory)
		}
		return nil
	case os.IsNotExist(err):
		if err := os.Mkdir(resolved, 0o755); err != nil {
			return fmt.Errorf("create project root: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("stat project root: %w", err)
	}
}

// MakeDir creates a directory (and any missing parents) under the base.
// Succeeds silently when the directory already exists.
func (d *Dir) MakeDir(rel string) error {
	resolved, err := d.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(resolved, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", rel, err)
	}
	return nil
}

// WriteFile writes content to a file under the base with the given mode,
// overwriting any existing file at that path.
func (d *Dir) WriteFile(rel string, content []byte, mode fs.FileMode) error {
	resolved, err := d.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.WriteFile(resolved, content, mode); err != nil {
		return fmt.Errorf("write file %s: %w", rel, err)
	}
	// WriteFile's mode only applies on creation; enforce it on overwrite too
	// so re-runs keep the executable bit stable.
	if err := os.Chmod(resolved, mode); err != nil {
		return fmt.Errorf("chmod %s: %w", rel, err)
	}
	return nil
}

// resolve joins a relative path onto the base and rejects attempts to
// escape it.
func (d *Dir) resolve(rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("absolute path %q not allowed", rel)
	}
	cleaned := filepath.Clean(filepath.Join(d.base, filepath.FromSlash(rel)))

	check, err := filepath.Rel(filepath.Clean(d.base), cleaned)
	if err != nil || check == ".." || strings.HasPrefix(check, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes workspace", rel)
	}
	return cleaned, nil
}
