package manifest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultManifestShape(t *testing.T) {
	m := Default()

	assert.Equal(t, "diff-analyser", m.Root)
	assert.Equal(t, []string{"app", "tests", "scripts", "logs"}, m.Dirs)
	require.NoError(t, m.Validate())

	var paths []string
	for _, f := range m.Files {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{
		"README.md",
		"requirements.txt",
		".env.example",
		".gitignore",
		"Dockerfile",
		"docker-compose.yml",
		"app/__init__.py",
		"app/main.py",
		"app/config.py",
		"app/models.py",
		"app/github_client.py",
		"app/diff_parser.py",
		"app/webhook_handler.py",
		"app/utils.py",
		"tests/__init__.py",
		"tests/test_diff_parser.py",
		"tests/sample_data.json",
		"scripts/run_dev.py",
	}, paths)
}

func TestDefaultMainStubContent(t *testing.T) {
	m := Default()

	var content string
	for _, f := range m.Files {
		if f.Path == "app/main.py" {
			content = f.Content
		}
	}

	expected := "\"\"\"\n" +
		"FastAPI application entry point for diff service.\n" +
		"\"\"\"\n" +
		"\n" +
		"# TODO: Implement FastAPI app and entry point\n"
	assert.Equal(t, expected, content)
}

func TestStubFilesCarryDocstringAndTodo(t *testing.T) {
	m := Default()

	for _, f := range m.Files {
		if !strings.HasSuffix(f.Path, ".py") {
			continue
		}
		assert.True(t, strings.HasPrefix(f.Content, "\"\"\""), "%s should open with a docstring", f.Path)
		if strings.HasSuffix(f.Path, "__init__.py") {
			assert.NotContains(t, f.Content, "TODO", "%s is a package marker, not a stub", f.Path)
			continue
		}
		assert.Contains(t, f.Content, "# TODO: ", "%s should carry a TODO marker", f.Path)
	}
}

func TestOnlyRunDevIsExecutable(t *testing.T) {
	m := Default()
	assert.Equal(t, []string{"scripts/run_dev.py"}, m.ExecutableFiles())
}

func TestBuildWithCustomName(t *testing.T) {
	m := Build(Options{Name: "pr-inspector"})

	assert.Equal(t, "pr-inspector", m.Root)
	require.NoError(t, m.Validate())

	for _, f := range m.Files {
		switch f.Path {
		case "README.md":
			assert.True(t, strings.HasPrefix(f.Content, "# Pr Inspector\n"))
		case "requirements.txt":
			assert.Equal(t, "# Python dependencies for pr-inspector\n", f.Content)
		}
	}
}

func TestHumanTitle(t *testing.T) {
	tests := []struct {
		slug     string
		expected string
	}{
		{"diff-analyser", "Diff Analyser"},
		{"my_project", "My Project"},
		{"single", "Single"},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			assert.Equal(t, tt.expected, HumanTitle(tt.slug))
		})
	}
}
