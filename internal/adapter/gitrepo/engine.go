// Package gitrepo initializes git repositories in scaffolded project roots
// using go-git.
package gitrepo

import (
	"context"
	"errors"
	"fmt"

	goGit "github.com/go-git/go-git/v5"
)

// Engine implements the scaffold RepoIniter port backed by go-git.
type Engine struct{}

// NewEngine constructs a git engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Init creates a non-bare git repository in dir. A directory that is
// already a repository is left as-is.
func (e *Engine) Init(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := goGit.PlainInit(dir, false)
	if errors.Is(err, goGit.ErrRepositoryAlreadyExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("init repository at %s: %w", dir, err)
	}
	return nil
}

// IsRepository reports whether dir already contains a git repository.
func (e *Engine) IsRepository(dir string) bool {
	_, err := goGit.PlainOpenWithOptions(dir, &goGit.PlainOpenOptions{})
	return err == nil
}
