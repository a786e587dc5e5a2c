package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"diffscaffold/internal/adapter/cli"
	"diffscaffold/internal/adapter/gitrepo"
	"diffscaffold/internal/adapter/observability"
	"diffscaffold/internal/adapter/store/sqlite"
	"diffscaffold/internal/adapter/workspace"
	"diffscaffold/internal/config"
	"diffscaffold/internal/usecase/scaffold"
	"diffscaffold/internal/version"
)

func main() {
	if err := run(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(config.LoaderOptions{
		ConfigPaths: defaultConfigPaths(),
		FileName:    "diffscaffold",
		EnvPrefix:   "DIFFSCAFFOLD",
	})
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	var logger scaffold.Logger
	if cfg.Logging.Enabled {
		logger = observability.NewLogger(
			observability.ParseLevel(cfg.Logging.Level),
			observability.ParseFormat(cfg.Logging.Format),
		)
	}

	// Initialize the run ledger if enabled
	var ledger scaffold.Ledger
	var runs cli.RunLister
	if cfg.Store.Enabled {
		storeDir := filepath.Dir(cfg.Store.Path)
		if err := os.MkdirAll(storeDir, 0o755); err != nil {
			log.Printf("warning: failed to create store directory: %v", err)
		} else {
			store, err := sqlite.NewStore(cfg.Store.Path)
			if err != nil {
				log.Printf("warning: failed to initialize store: %v", err)
			} else {
				ledger = store
				runs = store
				defer store.Close()
			}
		}
	}

	generator := scaffold.NewGenerator(scaffold.Deps{
		NewWorkspace: func(dir string) scaffold.Workspace {
			return workspace.New(dir)
		},
		Git:      gitrepo.NewEngine(),
		Ledger:   ledger,
		Logger:   logger,
		Out:      os.Stdout,
		Colorize: scaffold.IsOutputTerminal(),
	})

	root := cli.NewRootCommand(cli.Dependencies{
		Scaffolder:     generator,
		Runs:           runs,
		DefaultName:    cfg.Project.Name,
		DefaultDir:     cfg.Output.Directory,
		DefaultGitInit: cfg.Git.Init,
		Version:        version.Value(),
	})

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, cli.ErrVersionRequested) {
			return nil
		}
		return fmt.Errorf("command failed: %w", err)
	}
	return nil
}

func defaultConfigPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "diffscaffold"))
	}
	return paths
}

// Compile-time interface compliance checks
var _ scaffold.Workspace = (*workspace.Dir)(nil)
var _ scaffold.RepoIniter = (*gitrepo.Engine)(nil)
var _ scaffold.Ledger = (*sqlite.Store)(nil)
var _ scaffold.Logger = (*observability.Logger)(nil)
var _ cli.RunLister = (*sqlite.Store)(nil)
var _ cli.ProjectScaffolder = (*scaffold.Generator)(nil)
