package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureRootCreatesDirectory(t *testing.T) {
	base := t.TempDir()
	ws := New(base)

	require.NoError(t, ws.EnsureRoot("proj"))

	info, err := os.Stat(filepath.Join(base, "proj"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureRootAcceptsExistingDirectory(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(base, "proj"), 0o755))

	assert.NoError(t, New(base).EnsureRoot("proj"))
}

func TestEnsureRootRejectsExistingFile(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "proj"), []byte("x"), 0o644))

	err := New(base).EnsureRoot("proj")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotDirectory)
}

func TestMakeDirCreatesParents(t *testing.T) {
	base := t.TempDir()
	ws := New(base)

	require.NoError(t, ws.MakeDir("proj/a/b"))
	require.NoError(t, ws.MakeDir("proj/a/b"), "existing directory is a no-op")

	info, err := os.Stat(filepath.Join(base, "proj", "a", "b"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWriteFileSetsContentAndMode(t *testing.T) {
	base := t.TempDir()
	ws := New(base)
	require.NoError(t, ws.MakeDir("proj"))

	require.NoError(t, ws.WriteFile("proj/run.sh", []byte("#!/bin/sh\n"), 0o755))

	content, err := os.ReadFile(filepath.Join(base, "proj", "run.sh"))
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\n", string(content))

	info, err := os.Stat(filepath.Join(base, "proj", "run.sh"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o111)
}

func TestWriteFileOverwrites(t *testing.T) {
	base := t.TempDir()
	ws := New(base)

	require.NoError(t, ws.WriteFile("file.txt", []byte("old"), 0o644))
	require.NoError(t, ws.WriteFile("file.txt", []byte("new"), 0o644))

	content, err := os.ReadFile(filepath.Join(base, "file.txt"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestWriteFileRestoresModeOnOverwrite(t *testing.T) {
	base := t.TempDir()
	ws := New(base)

	require.NoError(t, ws.WriteFile("run.sh", []byte("a"), 0o755))
	require.NoError(t, os.Chmod(filepath.Join(base, "run.sh"), 0o644))
	require.NoError(t, ws.WriteFile("run.sh", []byte("a"), 0o755))

	info, err := os.Stat(filepath.Join(base, "run.sh"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o111)
}

func TestResolveRejectsEscapes(t *testing.T) {
	ws := New(t.TempDir())

	tests := []struct {
		name string
		op   func() error
	}{
		{"traversal dir", func() error { return ws.MakeDir("../outside") }},
		{"traversal file", func() error { return ws.WriteFile("../evil.txt", []byte("x"), 0o644) }},
		{"absolute path", func() error { return ws.WriteFile("/tmp/evil.txt", []byte("x"), 0o644) }},
		{"nested traversal", func() error { return ws.WriteFile("a/../../evil.txt", []byte("x"), 0o644) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.op())
		})
	}
}

func TestEmptyBaseDefaultsToCurrentDirectory(t *testing.T) {
	assert.Equal(t, ".", New("").Base())
}
