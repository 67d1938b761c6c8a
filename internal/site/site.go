package site

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/5t3ph/metaschema/internal/files/filesystem"
	"github.com/5t3ph/metaschema/pkg/metaschema"
)

// Options configures which files make up the site.
type Options struct {
	ContentExtensions []string
	DataDir           string
	Ignore            []string
}

type namedFilter struct {
	name string
	fn   metaschema.FilterFunc
}

// Site implements metaschema.Host over a directory tree.
// A Site is not safe for concurrent use.
type Site struct {
	opts       Options
	fsProvider filesystem.FileSystemProvider
	logger     metaschema.Logger
	parsers    map[string]metaschema.DataParser
	filters    []namedFilter
}

// New creates a site over the OS filesystem with the json, yaml and yml
// data parsers registered.
func New(opts Options, logger metaschema.Logger) *Site {
	return NewWithFS(opts, filesystem.NewOSFileSystem(), logger)
}

// NewWithFS creates a site with a custom filesystem provider.
// Panics if fsProvider or logger is nil.
func NewWithFS(opts Options, fsProvider filesystem.FileSystemProvider, logger metaschema.Logger) *Site {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	s := &Site{
		opts:       opts,
		fsProvider: fsProvider,
		logger:     logger,
		parsers:    make(map[string]metaschema.DataParser),
	}
	s.AddDataExtension("json", ParseJSON)
	s.AddDataExtension("yaml", ParseYAML)
	s.AddDataExtension("yml", ParseYAML)
	return s
}

// AddDataExtension registers parse for ext, replacing any earlier parser.
func (s *Site) AddDataExtension(ext string, parse metaschema.DataParser) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	s.parsers[ext] = parse
}

// AddFilter registers fn under name. Registering a name twice replaces the
// earlier filter but keeps its position.
func (s *Site) AddFilter(name string, fn metaschema.FilterFunc) {
	for i := range s.filters {
		if s.filters[i].name == name {
			s.filters[i].fn = fn
			return
		}
	}
	s.filters = append(s.filters, namedFilter{name: name, fn: fn})
}

// DataExtensions returns the registered data extensions in sorted order.
func (s *Site) DataExtensions() []string {
	exts := make([]string, 0, len(s.parsers))
	for ext := range s.parsers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Filters returns the registered filter names in registration order.
func (s *Site) Filters() []string {
	names := make([]string, 0, len(s.filters))
	for _, f := range s.filters {
		names = append(names, f.name)
	}
	return names
}

// Run builds the site's records and passes each one to every registered
// filter. It returns the number of records processed.
func (s *Site) Run(root string) (int, error) {
	records, err := s.Build(root)
	if err != nil {
		return 0, err
	}

	for _, record := range records {
		for _, f := range s.filters {
			f.fn(record)
		}
	}

	s.logger.Verbose("Ran %d filter(s) over %d record(s)", len(s.filters), len(records))
	return len(records), nil
}

func (s *Site) checkRoot(root string) error {
	info, err := s.fsProvider.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", root, metaschema.ErrSiteNotFound)
		}
		return fmt.Errorf("failed to access %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory: %w", root, metaschema.ErrSiteNotFound)
	}
	return nil
}

var _ metaschema.Host = (*Site)(nil)
