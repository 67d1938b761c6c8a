package filesystem

import (
	"fmt"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// SkipDir may be returned from a WalkFunc to skip the directory being visited.
var SkipDir = fs.SkipDir

// Entry is a file or directory discovered while walking a tree.
type Entry struct {
	// Path is the location usable with ReadFile and Stat.
	Path string

	// RelativePath is slash-separated and relative to the walk root ("." for the root itself).
	RelativePath string

	IsDir bool
}

// WalkFunc is called once per entry. Returning SkipDir for a directory skips
// its contents; any other error stops the walk.
type WalkFunc func(entry Entry) error

// FileSystemProvider is the read-only view of a site tree.
type FileSystemProvider interface {
	// Walk visits root and everything below it in lexical order.
	Walk(root string, fn WalkFunc) error

	// ReadFile reads the file at path.
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for path.
	Stat(path string) (FileInfo, error)
}

// visit calls fn, converting a panic into an error so one bad callback
// cannot take down the whole walk.
func visit(fn WalkFunc, entry Entry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("walk callback panicked at %s: %v", entry.Path, r)
		}
	}()
	return fn(entry)
}
