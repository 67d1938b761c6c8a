// Package site is a small static-site host for the metaschema plugin.
//
// A Site scans a directory, runs each data file through the parser
// registered for its extension, and assembles one record per content file
// from the data cascade:
//
//	global data < directory data < template data < front matter
//
// Registered filters are then invoked once per record in input-path order.
// The plugin registers its meta file parser and validation filter through
// the metaschema.Host methods exactly as it would with any other host.
package site
