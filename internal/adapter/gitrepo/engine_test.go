package gitrepo

import (
	"context"
	"testing"

	goGit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCreatesRepository(t *testing.T) {
	dir := t.TempDir()
	engine := NewEngine()

	require.NoError(t, engine.Init(context.Background(), dir))

	_, err := goGit.PlainOpen(dir)
	assert.NoError(t, err)
	assert.True(t, engine.IsRepository(dir))
}

func TestInitIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	engine := NewEngine()

	require.NoError(t, engine.Init(context.Background(), dir))
	assert.NoError(t, engine.Init(context.Background(), dir))
}

func TestInitHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	engine := NewEngine()

	err := engine.Init(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, engine.IsRepository(dir))
}

func TestIsRepositoryFalseForPlainDirectory(t *testing.T) {
	assert.False(t, NewEngine().IsRepository(t.TempDir()))
}
