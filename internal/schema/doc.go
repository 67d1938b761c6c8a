// Package schema validates a record's metadata against its collection schema.
//
// # Schema Lookup
//
// A record opts into validation through its tags. The first tag names a
// collection, and the schema object for that collection lives in the same
// record under the collection's name:
//
//	{
//	  "tags":  ["posts"],
//	  "posts": {"title": {"type": "string", "required": true},
//	            "topics": {"type": "array"}},
//	  "meta":  {"title": "Hello", "topics": ["go"]}
//	}
//
// # Checks
//
// Four checks run, in order, against the metadata nested under the meta key:
//   - missing-required: required schema fields absent from the metadata
//   - type-mismatch: a field whose value's type differs from the declared type
//   - invalid-key: metadata fields the schema does not declare
//   - misplaced-key: schema fields set at the top level of the record
//
// Types compare the way JavaScript's typeof does ("string", "number",
// "boolean", "object"), except that "array" only matches an actual array.
//
// # Findings
//
// Validate never fails. Every discrepancy is returned as a metaschema.Finding
// and rendering is left to the caller.
package schema
