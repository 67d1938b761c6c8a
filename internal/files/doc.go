// Package files groups the packages that read a site from disk:
//   - filesystem: walk, read and stat through an OS or in-memory provider
//   - scanner: classify content, global data and local data files
//
// # Usage
//
//	import (
//	    "github.com/5t3ph/metaschema/internal/files/filesystem"
//	    "github.com/5t3ph/metaschema/internal/files/scanner"
//	)
//
//	s, err := scanner.NewScannerWithFS(scanner.Options{
//	    DataExtensions: []string{"json", "meta"},
//	}, filesystem.NewOSFileSystem())
//	result, err := s.ScanDirectory("./src")
package files
