package schema

import (
	_ "embed"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/5t3ph/metaschema/pkg/metaschema"
)

//go:embed descriptor.schema.json
var descriptorSchemaJSON string

// descriptorSchema is compiled once; *jsonschema.Schema is safe for concurrent use.
var descriptorSchema = jsonschema.MustCompileString("descriptor.schema.json", descriptorSchemaJSON)

// CheckDescriptors validates a raw schema object against the descriptor
// schema and returns the sorted names of fields whose descriptors are
// malformed. A nil result means every descriptor is well formed.
func CheckDescriptors(raw any) []string {
	err := descriptorSchema.Validate(metaschema.Normalize(raw))
	if err == nil {
		return nil
	}

	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{"(schema)"}
	}

	seen := make(map[string]bool)
	collectFields(verr, seen)
	if len(seen) == 0 {
		return []string{"(schema)"}
	}

	fields := make([]string, 0, len(seen))
	for f := range seen {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// collectFields walks the validation error tree and records the top-level
// field each leaf error points at.
func collectFields(verr *jsonschema.ValidationError, seen map[string]bool) {
	if len(verr.Causes) == 0 {
		if field := topLevelField(verr.InstanceLocation); field != "" {
			seen[field] = true
		}
		return
	}
	for _, cause := range verr.Causes {
		collectFields(cause, seen)
	}
}

// topLevelField returns the first segment of a JSON pointer, unescaped.
func topLevelField(pointer string) string {
	pointer = strings.TrimPrefix(pointer, "/")
	if pointer == "" {
		return ""
	}
	segment, _, _ := strings.Cut(pointer, "/")
	segment = strings.ReplaceAll(segment, "~1", "/")
	return strings.ReplaceAll(segment, "~0", "~")
}
