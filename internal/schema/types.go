package schema

import (
	"sort"
)

// FieldDescriptor declares the expected type of one metadata field and
// whether the field must be present.
type FieldDescriptor struct {
	Type     string
	Required bool
}

// Schema maps metadata field names to their descriptors.
type Schema map[string]FieldDescriptor

// Keys returns the schema's field names in sorted order.
func (s Schema) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RequiredKeys returns the sorted names of fields marked required.
func (s Schema) RequiredKeys() []string {
	var keys []string
	for _, k := range s.Keys() {
		if s[k].Required {
			keys = append(keys, k)
		}
	}
	return keys
}

// Resolution describes the outcome of looking up a collection schema in a record.
type Resolution int

const (
	// Absent means the record has no key named after the collection.
	Absent Resolution = iota
	// Falsy means the key is present but holds null, false, 0 or "".
	Falsy
	// Malformed means the key holds a truthy value that is not an object.
	Malformed
	// Found means a schema object was resolved.
	Found
)

// String returns a lowercase name for the resolution.
func (r Resolution) String() string {
	switch r {
	case Absent:
		return "absent"
	case Falsy:
		return "falsy"
	case Malformed:
		return "malformed"
	case Found:
		return "found"
	default:
		return "unknown"
	}
}
