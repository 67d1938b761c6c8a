// Package metafile parses sidecar meta files into data-cascade records.
//
// # Format
//
// A meta file holds a single JSON value. The value is nested under the file's
// base name with the extension stripped, so posts/first-post.meta containing
//
//	{"title": "First post", "draft": false}
//
// parses to the record
//
//	{"first-post": {"title": "First post", "draft": false}}
//
// # Errors
//
// Malformed contents are a hard failure: Parse returns a *ParseError carrying
// the line and column inside the meta file, and the error wraps
// metaschema.ErrMalformedMeta. Nothing is recovered locally.
package metafile
