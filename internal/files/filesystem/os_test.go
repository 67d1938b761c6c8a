package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestOSFileSystem_Walk(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.md"), "# home")
	writeFile(t, filepath.Join(dir, "posts", "first.md"), "# first")
	writeFile(t, filepath.Join(dir, "node_modules", "x", "readme.md"), "x")

	seen := collect(t, NewOSFileSystem(), dir, func(e Entry) bool {
		return e.IsDir && e.RelativePath == "node_modules"
	})
	assert.Equal(t, []string{".", "index.md", "node_modules", "posts", "posts/first.md"}, seen)
}

func TestOSFileSystem_WalkEntryPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a", "b.md"), "x")

	fsys := NewOSFileSystem()
	var paths []string
	require.NoError(t, fsys.Walk(dir, func(e Entry) error {
		if !e.IsDir {
			paths = append(paths, e.Path)
		}
		return nil
	}))
	require.Len(t, paths, 1)

	content, err := fsys.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, "x", string(content))
}

func TestOSFileSystem_WalkNonexistent(t *testing.T) {
	err := NewOSFileSystem().Walk(filepath.Join(t.TempDir(), "nonexistent"), func(Entry) error { return nil })
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestOSFileSystem_WalkFileNotDirectory(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "file.txt")
	writeFile(t, filePath, "content")

	err := NewOSFileSystem().Walk(filePath, func(Entry) error { return nil })
	assert.Error(t, err)
}

func TestOSFileSystem_WalkRecoversPanic(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.md"), "x")

	err := NewOSFileSystem().Walk(dir, func(e Entry) error {
		if !e.IsDir {
			panic("bad callback")
		}
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")
}

func TestOSFileSystem_Stat(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "index.md")
	writeFile(t, filePath, "# home")

	fsys := NewOSFileSystem()
	info, err := fsys.Stat(filePath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	_, err = fsys.Stat(filepath.Join(dir, "missing"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
