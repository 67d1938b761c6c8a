// Package filesystem abstracts the file access needed to read a site.
//
// A FileSystemProvider walks a site tree, reads individual files and
// stats paths. Two implementations are provided:
//   - OSFileSystem: backed by the operating system
//   - MemoryFileSystem: an in-memory tree for tests
//
// Missing paths are reported with errors that wrap fs.ErrNotExist, so callers
// can use errors.Is regardless of the implementation.
package filesystem
