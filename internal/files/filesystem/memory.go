package filesystem

import (
	"errors"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

var errIsDirectory = errors.New("is a directory")

// memoryFileInfo implements fs.FileInfo for in-memory entries.
type memoryFileInfo struct {
	name    string
	size    int64
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() any           { return nil }

func (f *memoryFileInfo) Mode() fs.FileMode {
	if f.isDir {
		return 0755 | fs.ModeDir
	}
	return 0644
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Directories are implied by the files added beneath them.
type MemoryFileSystem struct {
	root  string
	files map[string][]byte
	dirs  map[string]bool
}

// NewMemoryFileSystem creates an empty in-memory tree rooted at root.
// Paths are slash-separated regardless of platform.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))
	return &MemoryFileSystem{
		root:  root,
		files: make(map[string][]byte),
		dirs:  map[string]bool{root: true},
	}
}

// AddFile adds a file; relative paths are resolved against the root.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	absPath := mfs.resolve(filePath)
	mfs.files[absPath] = []byte(content)

	for dir := path.Dir(absPath); !mfs.dirs[dir]; dir = path.Dir(dir) {
		mfs.dirs[dir] = true
		if dir == "/" || dir == "." {
			break
		}
	}
}

func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) Walk(root string, fn WalkFunc) error {
	absRoot := mfs.resolve(root)
	if _, ok := mfs.files[absRoot]; ok {
		return &fs.PathError{Op: "walk", Path: root, Err: errors.New("not a directory")}
	}
	if !mfs.dirs[absRoot] {
		return &fs.PathError{Op: "walk", Path: root, Err: fs.ErrNotExist}
	}

	var entries []Entry
	add := func(p string, isDir bool) {
		if p != absRoot && !strings.HasPrefix(p, strings.TrimSuffix(absRoot, "/")+"/") {
			return
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(p, absRoot), "/")
		if rel == "" {
			rel = "."
		}
		entries = append(entries, Entry{Path: p, RelativePath: rel, IsDir: isDir})
	}
	for p := range mfs.dirs {
		add(p, true)
	}
	for p := range mfs.files {
		add(p, false)
	}

	sort.Slice(entries, func(i, j int) bool {
		return lessPath(entries[i].RelativePath, entries[j].RelativePath)
	})

	var skipped []string
	for _, entry := range entries {
		if under(entry.RelativePath, skipped) {
			continue
		}
		err := visit(fn, entry)
		if errors.Is(err, SkipDir) {
			if entry.IsDir {
				if entry.RelativePath == "." {
					return nil
				}
				skipped = append(skipped, entry.RelativePath)
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	absPath := mfs.resolve(filePath)
	if content, ok := mfs.files[absPath]; ok {
		return content, nil
	}
	if mfs.dirs[absPath] {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: errIsDirectory}
	}
	return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrNotExist}
}

func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	absPath := mfs.resolve(statPath)
	if content, ok := mfs.files[absPath]; ok {
		return &memoryFileInfo{name: path.Base(absPath), size: int64(len(content)), modTime: time.Now()}, nil
	}
	if mfs.dirs[absPath] {
		return &memoryFileInfo{name: path.Base(absPath), modTime: time.Now(), isDir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: statPath, Err: fs.ErrNotExist}
}

// lessPath orders paths segment by segment, matching the order in which
// filepath.WalkDir visits entries.
func lessPath(a, b string) bool {
	as, bs := strings.Split(a, "/"), strings.Split(b, "/")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] != bs[i] {
			if as[i] == "." {
				return true
			}
			if bs[i] == "." {
				return false
			}
			return as[i] < bs[i]
		}
	}
	return len(as) < len(bs)
}

func under(rel string, dirs []string) bool {
	for _, d := range dirs {
		if strings.HasPrefix(rel, d+"/") {
			return true
		}
	}
	return false
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
