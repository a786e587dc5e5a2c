// Package cli wires the cobra command surface. The root command with no
// arguments performs the scaffold; flags and subcommands are additive.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"diffscaffold/internal/manifest"
	"diffscaffold/internal/usecase/scaffold"
)

// ErrVersionRequested indicates the user requested the CLI version and no further work should be done.
var ErrVersionRequested = errors.New("version requested")

// ProjectScaffolder defines the dependency required to run the scaffold.
type ProjectScaffolder interface {
	Generate(ctx context.Context, req scaffold.Request) (scaffold.Result, error)
}

// RunLister lists previously recorded scaffold runs.
type RunLister interface {
	ListRuns(ctx context.Context) ([]scaffold.RunRecord, error)
}

// Arguments encapsulates IO writers injected from the host process.
type Arguments struct {
	OutWriter io.Writer
	ErrWriter io.Writer
}

// Dependencies captures the collaborators for the CLI.
type Dependencies struct {
	Scaffolder     ProjectScaffolder
	Runs           RunLister // nil when the ledger is disabled
	Args           Arguments
	DefaultName    string
	DefaultDir     string
	DefaultGitInit bool
	Version        string
}

// NewRootCommand constructs the root Cobra command.
func NewRootCommand(deps Dependencies) *cobra.Command {
	versionString := deps.Version
	if versionString == "" {
		versionString = "v0.0.0"
	}

	root := &cobra.Command{
		Use:   "diffscaffold",
		Short: "Scaffold the diff-analyser project skeleton",
	}
	root.SilenceUsage = true
	root.SilenceErrors = true

	outWriter := deps.Args.OutWriter
	if outWriter == nil {
		outWriter = os.Stdout
	}
	errWriter := deps.Args.ErrWriter
	if errWriter == nil {
		errWriter = os.Stderr
	}
	root.SetOut(outWriter)
	root.SetErr(errWriter)

	var showVersion bool
	root.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version and exit")
	versionHandler := func(cmd *cobra.Command, args []string) error {
		if showVersion {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), versionString)
			return ErrVersionRequested
		}
		return nil
	}
	root.PersistentPreRunE = versionHandler

	addScaffoldFlags(root, deps)
	root.AddCommand(historyCommand(deps.Runs))

	return root
}

// addScaffoldFlags attaches the scaffold flags and run handler to the root
// command so that a bare invocation generates the project.
func addScaffoldFlags(root *cobra.Command, deps Dependencies) {
	defaultName := deps.DefaultName
	if defaultName == "" {
		defaultName = manifest.DefaultName
	}
	defaultDir := deps.DefaultDir
	if defaultDir == "" {
		defaultDir = "."
	}

	var projectName string
	var parentDir string
	var initGit bool

	root.Flags().StringVar(&projectName, "name", defaultName, "Project directory name")
	root.Flags().StringVar(&parentDir, "dir", defaultDir, "Parent directory to scaffold under")
	root.Flags().BoolVar(&initGit, "git", deps.DefaultGitInit, "Initialize a git repository in the project root")

	root.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf("unexpected arguments: %v", args)
		}

		req := scaffold.Request{
			Manifest: manifest.Build(manifest.Options{Name: projectName}),
			InitGit:  initGit,
		}
		if parentDir != "." {
			req.Dir = parentDir
		}

		_, err := deps.Scaffolder.Generate(cmd.Context(), req)
		return err
	}
}

func historyCommand(runs RunLister) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List recorded scaffold runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if runs == nil {
				return fmt.Errorf("run ledger is disabled; enable store.enabled in configuration")
			}

			records, err := runs.ListRuns(cmd.Context())
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No scaffold runs recorded.")
				return nil
			}

			for _, r := range records {
				dir := r.Dir
				if dir == "" {
					dir = "."
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s (in %s, %d dirs, %d files, git=%t)\n",
					r.Timestamp.Format("2006-01-02 15:04:05"), r.Project, dir, r.Dirs, r.Files, r.GitInit)
			}
			return nil
		},
	}
}
