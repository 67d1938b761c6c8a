package metaschema

// DataParser converts the raw contents of a data file into a value for the data cascade.
// filePath is used for naming and error reporting only; the parser performs no I/O.
type DataParser func(contents, filePath string) (any, error)

// FilterFunc is invoked by the host once per assembled record.
// It must not mutate the record.
type FilterFunc func(data Record)

// Host is the site generator a plugin registers itself with.
type Host interface {
	// AddDataExtension registers a parser for data files with the given extension (no leading dot).
	AddDataExtension(ext string, parse DataParser)

	// AddFilter registers a per-record callback under the given name.
	AddFilter(name string, fn FilterFunc)
}
