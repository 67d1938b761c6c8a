package site

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/5t3ph/metaschema/internal/files/scanner"
	"github.com/5t3ph/metaschema/pkg/metaschema"
)

// Build assembles one record per content file below root, sorted by input path.
//
// Layers are merged lowest to highest priority: global data, directory data
// (outermost directory first), template data, front matter. A later layer
// overrides an earlier one key by key at the top level, except that tags
// from every layer are combined.
func (s *Site) Build(root string) ([]metaschema.Record, error) {
	if err := s.checkRoot(root); err != nil {
		return nil, err
	}

	sc, err := scanner.NewScannerWithFS(scanner.Options{
		ContentExtensions: s.opts.ContentExtensions,
		DataExtensions:    s.DataExtensions(),
		DataDir:           s.opts.DataDir,
		Ignore:            s.opts.Ignore,
	}, s.fsProvider)
	if err != nil {
		return nil, err
	}

	files, err := sc.ScanDirectory(root)
	if err != nil {
		return nil, err
	}
	s.logger.Verbose("Found %d content file(s), %d global and %d local data file(s)",
		len(files.Content), len(files.GlobalData), len(files.LocalData))

	globals := map[string]any{}
	for _, src := range files.GlobalData {
		value, err := s.parse(src)
		if err != nil {
			return nil, err
		}
		setNested(globals, sc.GlobalDataKeys(src), value)
	}

	local := make(map[string][]map[string]any)
	for _, src := range files.LocalData {
		value, err := s.parse(src)
		if err != nil {
			return nil, err
		}
		obj, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: data file must hold an object, got %s: %w",
				src.InputPath, describe(value), metaschema.ErrMalformedData)
		}
		key := localKey(src.Dir, src.Stem)
		local[key] = append(local[key], obj)
	}

	records := make([]metaschema.Record, 0, len(files.Content))
	for _, src := range files.Content {
		record, err := s.assemble(src, globals, local)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].InputPath() < records[j].InputPath()
	})
	return records, nil
}

func (s *Site) assemble(src scanner.Source, globals map[string]any, local map[string][]map[string]any) (metaschema.Record, error) {
	record := metaschema.Record(globals).Clone()

	for _, dir := range ancestors(src.Dir) {
		for _, layer := range local[localKey(dir, path.Base(dir))] {
			merge(record, layer)
		}
	}
	for _, layer := range local[localKey(src.Dir, src.Stem)] {
		merge(record, layer)
	}

	contents, err := s.fsProvider.ReadFile(src.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", src.InputPath, err)
	}
	fm, err := frontMatter(string(contents), src.InputPath)
	if err != nil {
		return nil, err
	}
	merge(record, fm)

	record["page"] = map[string]any{
		"inputPath":    src.InputPath,
		"fileSlug":     src.Stem,
		"filePathStem": "/" + strings.TrimSuffix(strings.TrimPrefix(src.InputPath, "./"), "."+src.Extension),
	}
	return record, nil
}

func (s *Site) parse(src scanner.Source) (any, error) {
	parse, ok := s.parsers[src.Extension]
	if !ok {
		return nil, fmt.Errorf("no data parser registered for .%s", src.Extension)
	}

	contents, err := s.fsProvider.ReadFile(src.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", src.InputPath, err)
	}

	value, err := parse(string(contents), src.InputPath)
	if err != nil {
		if errors.Is(err, metaschema.ErrMalformedMeta) || errors.Is(err, metaschema.ErrMalformedData) ||
			errors.Is(err, metaschema.ErrInvalidPath) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %v: %w", src.InputPath, err, metaschema.ErrMalformedData)
	}

	s.logger.Verbose("Parsed %s", src.InputPath)
	return metaschema.Normalize(value), nil
}

// merge copies layer's top-level keys into record. Tags are combined with
// duplicates removed, keeping first-seen order.
func merge(record metaschema.Record, layer map[string]any) {
	for key, value := range metaschema.Record(layer).Clone() {
		if key == metaschema.TagsKey {
			if _, ok := record.Lookup(key); ok {
				record[key] = unionTags(record, metaschema.Record(layer))
				continue
			}
		}
		record[key] = value
	}
}

func unionTags(a, b metaschema.Record) []any {
	seen := make(map[string]bool)
	out := []any{}
	for _, tag := range append(a.Tags(), b.Tags()...) {
		if !seen[tag] {
			seen[tag] = true
			out = append(out, tag)
		}
	}
	return out
}

func setNested(root map[string]any, keys []string, value any) {
	m := root
	for _, key := range keys[:len(keys)-1] {
		next, ok := m[key].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[key] = next
		}
		m = next
	}
	m[keys[len(keys)-1]] = value
}

// ancestors lists dir and each of its parents, outermost first, excluding
// the site root.
func ancestors(dir string) []string {
	if dir == "" {
		return nil
	}
	parts := strings.Split(dir, "/")
	out := make([]string, len(parts))
	for i := range parts {
		out[i] = strings.Join(parts[:i+1], "/")
	}
	return out
}

func localKey(dir, stem string) string {
	return dir + "\x00" + stem
}
