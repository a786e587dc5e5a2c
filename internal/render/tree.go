// Package render produces the human-readable summary printed after a
// scaffold run: the ASCII tree of the generated structure and the
// next-steps checklist.
package render

import (
	"path"
	"strings"

	"diffscaffold/internal/domain"
)

// Tree renders the manifest as an ASCII tree rooted at the project
// directory, top-level files first, then each directory with its files.
func Tree(m domain.Manifest) string {
	type node struct {
		label    string
		children []string
	}

	rootFiles := make([]string, 0, len(m.Files))
	byDir := make(map[string][]string, len(m.Dirs))
	for _, f := range m.Files {
		dir := path.Dir(f.Path)
		if dir == "." {
			rootFiles = append(rootFiles, path.Base(f.Path))
			continue
		}
		byDir[dir] = append(byDir[dir], path.Base(f.Path))
	}

	entries := make([]node, 0, len(rootFiles)+len(m.Dirs))
	for _, name := range rootFiles {
		entries = append(entries, node{label: name})
	}
	for _, dir := range m.Dirs {
		entries = append(entries, node{label: dir + "/", children: byDir[dir]})
	}

	var b strings.Builder
	b.WriteString(m.Root + "/\n")
	for i, e := range entries {
		last := i == len(entries)-1
		b.WriteString(branch(last) + e.label + "\n")
		for j, child := range e.children {
			b.WriteString(indent(last) + branch(j == len(e.children)-1) + child + "\n")
		}
	}
	return b.String()
}

// NextSteps renders the checklist printed after the tree.
func NextSteps(name string) string {
	var b strings.Builder
	b.WriteString("Next steps:\n")
	b.WriteString("  1. cd " + name + "\n")
	b.WriteString("  2. Copy .env.example to .env and add your GitHub token\n")
	b.WriteString("  3. Install dependencies: pip install -r requirements.txt\n")
	b.WriteString("  4. Implement the TODOs under app/\n")
	b.WriteString("  5. Run the dev server: python scripts/run_dev.py\n")
	return b.String()
}

func branch(last bool) string {
	if last {
		return "└── "
	}
	return "├── "
}

func indent(parentLast bool) string {
	if parentLast {
		return "    "
	}
	return "│   "
}
