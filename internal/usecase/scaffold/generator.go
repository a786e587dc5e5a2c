// Package scaffold implements the project generation use case: it walks a
// fixed manifest, materializes directories and files through the workspace
// port, and narrates progress for the user.
package scaffold

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"diffscaffold/internal/domain"
	"diffscaffold/internal/render"
)

// Workspace is the filesystem port the generator writes through.
type Workspace interface {
	EnsureRoot(name string) error
	MakeDir(rel string) error
	WriteFile(rel string, content []byte, mode fs.FileMode) error
}

// RepoIniter initializes a git repository in a directory.
type RepoIniter interface {
	Init(ctx context.Context, dir string) error
}

// Ledger records completed scaffold runs.
type Ledger interface {
	RecordRun(ctx context.Context, run RunRecord) error
}

// Logger receives structured operational events. Narration for the user is
// separate and goes to the Out writer.
type Logger interface {
	LogInfo(ctx context.Context, message string, fields map[string]interface{})
	LogWarning(ctx context.Context, message string, fields map[string]interface{})
}

// RunRecord describes one completed scaffold run for the ledger.
type RunRecord struct {
	Project   string
	Dir       string
	Dirs      int
	Files     int
	GitInit   bool
	Timestamp time.Time
}

// Request describes a single scaffold invocation.
type Request struct {
	Manifest domain.Manifest
	// Dir is the parent directory to scaffold under. Empty means the
	// current working directory.
	Dir string
	// InitGit initializes a git repository in the project root after the
	// tree is written.
	InitGit bool
}

// Result summarizes what a scaffold run produced.
type Result struct {
	Root           string
	DirsCreated    int
	FilesWritten   int
	GitInitialized bool
}

// Deps captures the collaborators for the generator. NewWorkspace is a
// factory so each run can target its own parent directory. Git, Ledger and
// Logger are optional.
type Deps struct {
	NewWorkspace func(dir string) Workspace
	Git          RepoIniter
	Ledger       Ledger
	Logger       Logger
	Out          io.Writer
	Colorize     bool
	Now          func() time.Time
}

// Generator materializes manifests onto the filesystem.
type Generator struct {
	deps Deps
}

// NewGenerator constructs a Generator from its dependencies.
func NewGenerator(deps Deps) *Generator {
	if deps.Out == nil {
		deps.Out = io.Discard
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Generator{deps: deps}
}

// Generate runs the scaffold: ensure root, create directories, write files,
// then print the summary tree and next steps. The first failing filesystem
// operation aborts the run; anything already written stays on disk.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	m := req.Manifest
	if err := m.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid manifest: %w", err)
	}

	ws := g.deps.NewWorkspace(req.Dir)

	g.narrate("🚀", "Scaffolding "+m.Root+"/")
	if err := ws.EnsureRoot(m.Root); err != nil {
		return Result{}, err
	}

	for _, dir := range m.Dirs {
		if err := ws.MakeDir(m.Root + "/" + dir); err != nil {
			return Result{}, err
		}
	}
	g.narrate("📁", "Created directories: "+strings.Join(m.Dirs, ", "))

	for _, f := range m.Files {
		if err := ws.WriteFile(m.Root+"/"+f.Path, []byte(f.Content), f.Mode); err != nil {
			return Result{}, err
		}
	}
	g.narrate("📄", fmt.Sprintf("Wrote %d placeholder files", len(m.Files)))

	for _, path := range m.ExecutableFiles() {
		g.narrate("🔧", "Marked "+path+" executable")
	}

	result := Result{
		Root:         m.Root,
		DirsCreated:  len(m.Dirs),
		FilesWritten: len(m.Files),
	}

	if req.InitGit {
		if g.deps.Git == nil {
			return Result{}, fmt.Errorf("git init requested but no git engine configured")
		}
		rootDir := m.Root
		if req.Dir != "" {
			rootDir = req.Dir + "/" + m.Root
		}
		if err := g.deps.Git.Init(ctx, rootDir); err != nil {
			return Result{}, fmt.Errorf("git init: %w", err)
		}
		result.GitInitialized = true
		g.narrate("🌱", "Initialized git repository")
	}

	g.narrateSuccess("✅", "Scaffold complete!")
	fmt.Fprintln(g.deps.Out)
	fmt.Fprint(g.deps.Out, render.Tree(m))
	fmt.Fprintln(g.deps.Out)
	fmt.Fprint(g.deps.Out, render.NextSteps(m.Root))

	g.record(ctx, req, result)

	if g.deps.Logger != nil {
		g.deps.Logger.LogInfo(ctx, "scaffold complete", map[string]interface{}{
			"project": result.Root,
			"dirs":    result.DirsCreated,
			"files":   result.FilesWritten,
			"git":     result.GitInitialized,
		})
	}

	return result, nil
}

// record writes the run to the ledger when one is configured. Ledger
// failures are reported as warnings, not run failures: the tree on disk is
// already complete.
func (g *Generator) record(ctx context.Context, req Request, result Result) {
	if g.deps.Ledger == nil {
		return
	}
	err := g.deps.Ledger.RecordRun(ctx, RunRecord{
		Project:   result.Root,
		Dir:       req.Dir,
		Dirs:      result.DirsCreated,
		Files:     result.FilesWritten,
		GitInit:   result.GitInitialized,
		Timestamp: g.deps.Now(),
	})
	if err != nil && g.deps.Logger != nil {
		g.deps.Logger.LogWarning(ctx, "failed to record run", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (g *Generator) narrate(emoji, msg string) {
	fmt.Fprintf(g.deps.Out, "%s %s\n", emoji, msg)
}

func (g *Generator) narrateSuccess(emoji, msg string) {
	if g.deps.Colorize {
		fmt.Fprintf(g.deps.Out, "%s \033[32m%s\033[0m\n", emoji, msg)
		return
	}
	g.narrate(emoji, msg)
}
