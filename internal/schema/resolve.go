package schema

import (
	"github.com/5t3ph/metaschema/pkg/metaschema"
)

// Resolve looks up the schema for collection in data.
//
// The returned Schema is non-nil only when the Resolution is Found. Descriptors
// are decoded leniently: a descriptor that is not an object, or whose type is
// not a string, yields a FieldDescriptor that accepts any value. The
// descriptor check in CheckDescriptors reports such entries separately.
func Resolve(data metaschema.Record, collection string) (Schema, Resolution) {
	raw, ok := data.Lookup(collection)
	if !ok {
		return nil, Absent
	}
	if !truthy(raw) {
		return nil, Falsy
	}

	obj, ok := asObject(raw)
	if !ok {
		return nil, Malformed
	}

	s := make(Schema, len(obj))
	for field, descriptor := range obj {
		s[field] = decodeDescriptor(descriptor)
	}
	return s, Found
}

func decodeDescriptor(v any) FieldDescriptor {
	obj, ok := asObject(v)
	if !ok {
		return FieldDescriptor{}
	}

	var d FieldDescriptor
	if t, ok := obj["type"].(string); ok {
		d.Type = t
	}
	// Only a literal true marks a field required.
	if req, ok := obj["required"].(bool); ok && req {
		d.Required = true
	}
	return d
}

// asObject returns v as a plain map when it is a JSON object.
func asObject(v any) (map[string]any, bool) {
	switch obj := v.(type) {
	case map[string]any:
		return obj, true
	case metaschema.Record:
		return obj, true
	default:
		return nil, false
	}
}
