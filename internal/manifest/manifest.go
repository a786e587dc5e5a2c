// Package manifest defines the fixed diff-analyser project skeleton: the
// directory list and the placeholder files the scaffolder writes. Contents
// are compile-time literals; only the project name is substituted.
package manifest

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"diffscaffold/internal/domain"
)

// DefaultName is the project directory created when no name is configured.
const DefaultName = "diff-analyser"

// Options control manifest construction.
type Options struct {
	// Name is the project directory name. Empty means DefaultName.
	Name string
}

// Default returns the stock diff-analyser manifest.
func Default() domain.Manifest {
	return Build(Options{})
}

// Build assembles the manifest for the given options. With a zero Options
// value the result is byte-for-byte the stock diff-analyser skeleton.
func Build(opts Options) domain.Manifest {
	name := opts.Name
	if name == "" {
		name = DefaultName
	}

	return domain.Manifest{
		Root: name,
		Dirs: []string{"app", "tests", "scripts", "logs"},
		Files: []domain.File{
			{Path: "README.md", Content: readme(name), Mode: 0o644},
			{Path: "requirements.txt", Content: commentLine("Python dependencies for " + name), Mode: 0o644},
			{Path: ".env.example", Content: commentLine("Environment variables for " + name), Mode: 0o644},
			{Path: ".gitignore", Content: commentLine("Git ignore rules for " + name), Mode: 0o644},
			{Path: "Dockerfile", Content: commentLine("Container image for " + name), Mode: 0o644},
			{Path: "docker-compose.yml", Content: commentLine("Compose services for " + name), Mode: 0o644},

			{Path: "app/__init__.py", Content: docstring("Diff service application package."), Mode: 0o644},
			{Path: "app/main.py", Content: stub("FastAPI application entry point for diff service.", "Implement FastAPI app and entry point"), Mode: 0o644},
			{Path: "app/config.py", Content: stub("Configuration management for diff service.", "Implement settings and environment loading"), Mode: 0o644},
			{Path: "app/models.py", Content: stub("All data models for diff service.", "Define PR metadata and diff models"), Mode: 0o644},
			{Path: "app/github_client.py", Content: stub("GitHub API client for diff service.", "Implement GitHub API client"), Mode: 0o644},
			{Path: "app/diff_parser.py", Content: stub("Core diff parsing logic for diff service.", "Implement diff parsing"), Mode: 0o644},
			{Path: "app/webhook_handler.py", Content: stub("Webhook processing for diff service.", "Implement webhook validation and handling"), Mode: 0o644},
			{Path: "app/utils.py", Content: stub("Utility functions for diff service.", "Add shared helpers"), Mode: 0o644},

			{Path: "tests/__init__.py", Content: docstring("Test suite for diff service."), Mode: 0o644},
			{Path: "tests/test_diff_parser.py", Content: stub("Tests for the diff parser.", "Write diff parser tests"), Mode: 0o644},
			{Path: "tests/sample_data.json", Content: "{\"comment\": \"Sample GitHub webhook payload for tests\"}\n", Mode: 0o644},

			{Path: "scripts/run_dev.py", Content: "\"\"\"Development runner script.\"\"\"\n\n# TODO: Launch the uvicorn dev server\n", Mode: 0o755},
		},
	}
}

// HumanTitle turns a project slug into a heading, e.g. "diff-analyser"
// becomes "Diff Analyser".
func HumanTitle(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_'
	})
	return cases.Title(language.English).String(strings.Join(words, " "))
}

func readme(name string) string {
	return fmt.Sprintf(`# %s

GitHub PR webhook processor for AI code analysis pipeline.

## Getting started

1. Copy .env.example to .env and add your GitHub token.
2. Install dependencies: pip install -r requirements.txt
3. Run the dev server: python scripts/run_dev.py
`, HumanTitle(name))
}

func commentLine(text string) string {
	return "# " + text + "\n"
}

func docstring(text string) string {
	return "\"\"\"\n" + text + "\n\"\"\"\n"
}

func stub(doc, todo string) string {
	return docstring(doc) + "\n# TODO: " + todo + "\n"
}
