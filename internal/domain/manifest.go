package domain

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// File is a single manifest entry: a relative path inside the project root,
// the literal content to write, and the file mode to apply.
type File struct {
	Path    string
	Content string
	Mode    fs.FileMode
}

// Executable reports whether the file carries an executable bit.
func (f File) Executable() bool {
	return f.Mode&0o111 != 0
}

// Manifest is the fixed set of directories and files a scaffold run
// materializes. Both lists are ordered: directories are created first,
// in order, then files are written in order.
type Manifest struct {
	// Root is the project directory name, e.g. "diff-analyser".
	Root string
	// Dirs are directory paths relative to Root.
	Dirs []string
	// Files are file entries relative to Root.
	Files []File
}

// Validate checks the manifest invariant: every file's parent directory is
// either the project root itself or listed in Dirs.
func (m Manifest) Validate() error {
	if m.Root == "" {
		return fmt.Errorf("manifest root is empty")
	}
	if strings.Contains(m.Root, "/") {
		return fmt.Errorf("manifest root %q must be a bare directory name", m.Root)
	}

	known := make(map[string]bool, len(m.Dirs))
	for _, d := range m.Dirs {
		if d == "" || path.IsAbs(d) || strings.HasPrefix(d, "..") {
			return fmt.Errorf("invalid manifest directory %q", d)
		}
		// MkdirAll semantics: listing a nested dir implies its parents.
		for p := path.Clean(d); p != "." && p != "/"; p = path.Dir(p) {
			known[p] = true
		}
	}

	seen := make(map[string]bool, len(m.Files))
	for _, f := range m.Files {
		if f.Path == "" || path.IsAbs(f.Path) || strings.HasPrefix(f.Path, "..") {
			return fmt.Errorf("invalid manifest file path %q", f.Path)
		}
		if seen[f.Path] {
			return fmt.Errorf("duplicate manifest file %q", f.Path)
		}
		seen[f.Path] = true

		parent := path.Dir(f.Path)
		if parent != "." && !known[parent] {
			return fmt.Errorf("file %q has no containing directory in manifest", f.Path)
		}
	}
	return nil
}

// ExecutableFiles returns the paths of files carrying an executable bit,
// in manifest order.
func (m Manifest) ExecutableFiles() []string {
	var out []string
	for _, f := range m.Files {
		if f.Executable() {
			out = append(out, f.Path)
		}
	}
	return out
}
