// Package scanner discovers the files that make up a site.
//
// ScanDirectory walks a site tree and sorts what it finds into three groups:
//   - content files (templates that become records)
//   - global data files below the data directory
//   - local data files that sit next to content (directory and template data)
//
// Hidden entries, node_modules, the _site output directory and any configured
// ignore patterns are skipped. The scanner works on a
// filesystem.FileSystemProvider so tests can run against an in-memory tree.
package scanner
