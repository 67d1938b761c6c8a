package scanner

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/moby/patternmatcher"

	"github.com/5t3ph/metaschema/internal/files/filesystem"
	"github.com/5t3ph/metaschema/pkg/metaschema"
)

// DefaultDataDir is the directory holding global data files.
const DefaultDataDir = "_data"

// DefaultContentExtensions are the template extensions treated as content.
var DefaultContentExtensions = []string{"md", "html"}

var skippedDirs = map[string]bool{
	"node_modules": true,
	"_site":        true,
}

// Options configures what the scanner treats as content and data.
// Extensions may be given with or without a leading dot.
type Options struct {
	ContentExtensions []string
	DataExtensions    []string
	DataDir           string
	Ignore            []string
}

// Source is one discovered file.
type Source struct {
	// Path is the provider path, usable with ReadFile.
	Path string

	// InputPath is "./"-prefixed and slash-separated, relative to the site root.
	InputPath string

	// Dir is the slash-separated directory relative to the site root ("" for the root).
	Dir string

	// Stem is the file name without its last extension.
	Stem string

	// Extension is lowercased and has no leading dot.
	Extension string
}

// Result groups the files found by ScanDirectory. Each group is in walk order.
type Result struct {
	Content    []Source
	GlobalData []Source
	LocalData  []Source
}

// Scanner discovers and classifies files from a site tree.
type Scanner struct {
	fsProvider  filesystem.FileSystemProvider
	contentExts map[string]bool
	dataExts    map[string]bool
	dataDir     string
	ignore      *patternmatcher.PatternMatcher
}

// NewScanner creates a scanner over the OS filesystem.
func NewScanner(opts Options) (*Scanner, error) {
	return NewScannerWithFS(opts, filesystem.NewOSFileSystem())
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// Panics if fsProvider is nil.
func NewScannerWithFS(opts Options, fsProvider filesystem.FileSystemProvider) (*Scanner, error) {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}

	contentExts := opts.ContentExtensions
	if len(contentExts) == 0 {
		contentExts = DefaultContentExtensions
	}

	dataDir := strings.Trim(filepath.ToSlash(opts.DataDir), "/")
	if dataDir == "" {
		dataDir = DefaultDataDir
	}

	ignore, err := patternmatcher.New(opts.Ignore)
	if err != nil {
		return nil, fmt.Errorf("invalid ignore pattern: %v: %w", err, metaschema.ErrInvalidConfig)
	}

	return &Scanner{
		fsProvider:  fsProvider,
		contentExts: extensionSet(contentExts),
		dataExts:    extensionSet(opts.DataExtensions),
		dataDir:     dataDir,
		ignore:      ignore,
	}, nil
}

// ScanDirectory walks sourcePath and classifies every file it finds.
// Files that are neither content nor data are ignored.
func (s *Scanner) ScanDirectory(sourcePath string) (Result, error) {
	var result Result

	err := s.fsProvider.Walk(sourcePath, func(entry filesystem.Entry) error {
		if entry.RelativePath == "." {
			return nil
		}

		skip, err := s.skipped(entry)
		if err != nil {
			return err
		}
		if skip {
			if entry.IsDir {
				return filesystem.SkipDir
			}
			return nil
		}
		if entry.IsDir {
			return nil
		}

		src := newSource(entry)
		switch {
		case s.dataExts[src.Extension] && s.inDataDir(src.Dir):
			result.GlobalData = append(result.GlobalData, src)
		case s.inDataDir(src.Dir):
			// Only data files are read from the data directory.
		case s.contentExts[src.Extension]:
			result.Content = append(result.Content, src)
		case s.dataExts[src.Extension]:
			result.LocalData = append(result.LocalData, src)
		}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to scan %s: %w", sourcePath, err)
	}

	return result, nil
}

// GlobalDataKeys returns the nesting keys for a global data file:
// "_data/site.json" gives ["site"], "_data/nav/main.yaml" gives ["nav", "main"].
func (s *Scanner) GlobalDataKeys(src Source) []string {
	rel := strings.TrimPrefix(strings.TrimPrefix(src.Dir, s.dataDir), "/")
	var keys []string
	if rel != "" {
		keys = strings.Split(rel, "/")
	}
	return append(keys, src.Stem)
}

func (s *Scanner) inDataDir(dir string) bool {
	return dir == s.dataDir || strings.HasPrefix(dir, s.dataDir+"/")
}

func (s *Scanner) skipped(entry filesystem.Entry) (bool, error) {
	name := path.Base(entry.RelativePath)
	if strings.HasPrefix(name, ".") {
		return true, nil
	}
	if entry.IsDir && skippedDirs[name] {
		return true, nil
	}

	matched, err := s.ignore.MatchesOrParentMatches(filepath.FromSlash(entry.RelativePath))
	if err != nil {
		return false, fmt.Errorf("matching ignore patterns against %s: %w", entry.RelativePath, err)
	}
	return matched, nil
}

func newSource(entry filesystem.Entry) Source {
	rel := entry.RelativePath
	name := path.Base(rel)
	ext := path.Ext(name)

	dir := path.Dir(rel)
	if dir == "." {
		dir = ""
	}

	return Source{
		Path:      entry.Path,
		InputPath: "./" + rel,
		Dir:       dir,
		Stem:      strings.TrimSuffix(name, ext),
		Extension: strings.ToLower(strings.TrimPrefix(ext, ".")),
	}
}

func extensionSet(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			set[ext] = true
		}
	}
	return set
}
