package metaschema

import (
	"github.com/google/uuid"
)

// Record is a JSON-like data record as assembled by the host's data cascade.
// Values are restricted to the types produced by JSON decoding:
// nil, bool, float64, string, []any and map[string]any.
type Record map[string]any

// Lookup returns the value stored under key and whether the key is present.
// A present key may still hold nil.
func (r Record) Lookup(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r[key]
	return v, ok
}

// Tags returns the record's tags normalized to a list of strings.
// A single string tag becomes a one-element list. Non-string and empty
// entries are skipped. Returns nil when the record carries no usable tags.
func (r Record) Tags() []string {
	raw, ok := r.Lookup(TagsKey)
	if !ok {
		return nil
	}

	switch tags := raw.(type) {
	case string:
		if tags == "" {
			return nil
		}
		return []string{tags}
	case []string:
		var out []string
		for _, tag := range tags {
			if tag != "" {
				out = append(out, tag)
			}
		}
		return out
	case []any:
		var out []string
		for _, tag := range tags {
			if s, ok := tag.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// InputPath returns the source path of the content file this record was built for.
// It prefers page.inputPath and falls back to a top-level inputPath string.
func (r Record) InputPath() string {
	if page, ok := r["page"].(map[string]any); ok {
		if p, ok := page["inputPath"].(string); ok {
			return p
		}
	}
	if page, ok := r["page"].(Record); ok {
		if p, ok := page["inputPath"].(string); ok {
			return p
		}
	}
	if p, ok := r["inputPath"].(string); ok {
		return p
	}
	return ""
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case Record:
		return val.Clone()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return append([]string(nil), val...)
	default:
		return val
	}
}

// FindingKind identifies the category of a validation finding.
type FindingKind string

const (
	// FindingMissingRequired lists required schema fields absent from the metadata.
	FindingMissingRequired FindingKind = "missing-required"
	// FindingTypeMismatch reports one metadata field whose value has the wrong type.
	FindingTypeMismatch FindingKind = "type-mismatch"
	// FindingInvalidKey lists metadata fields the schema does not declare.
	FindingInvalidKey FindingKind = "invalid-key"
	// FindingMisplacedKey lists schema fields found at the top level of the record instead of under the meta key.
	FindingMisplacedKey FindingKind = "misplaced-key"
	// FindingMissingSchema reports a tagged record whose collection schema could not be resolved.
	FindingMissingSchema FindingKind = "missing-schema"
	// FindingInvalidSchema lists schema fields whose descriptors are malformed.
	FindingInvalidSchema FindingKind = "invalid-schema"
)

// Finding is a single advisory discrepancy between a record's metadata and its collection schema.
// Findings never abort processing; callers decide how to render them.
type Finding struct {
	ID         uuid.UUID   `json:"id"`
	Kind       FindingKind `json:"kind"`
	InputPath  string      `json:"inputPath"`
	Collection string      `json:"collection,omitempty"`
	Fields     []string    `json:"fields"`
	Expected   string      `json:"expected,omitempty"`
	Actual     string      `json:"actual,omitempty"`
	Message    string      `json:"message"`
}
