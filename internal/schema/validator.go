package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/5t3ph/metaschema/pkg/metaschema"
)

const unknownInput = "(unknown input)"

// Validator checks records against their collection schema.
// A Validator holds only configuration and is safe for concurrent use.
type Validator struct {
	metaKey       string
	missingSchema metaschema.MissingSchemaPolicy
}

// NewValidator creates a validator for the given options.
// Unset options fall back to their defaults.
func NewValidator(opts metaschema.Options) *Validator {
	opts = opts.WithDefaults()
	return &Validator{
		metaKey:       opts.MetaKey,
		missingSchema: opts.MissingSchema,
	}
}

// MetaKey returns the record field the validator reads metadata from.
func (v *Validator) MetaKey() string {
	return v.metaKey
}

// Validate checks the metadata in data against the schema named by data's
// first tag and returns every discrepancy found. It never mutates data.
//
// Algorithm:
//  1. No tags: return nil
//  2. Resolve the schema via tags[0]; unresolvable: return nil, or a
//     missing-schema finding when the policy is warn
//  3. Required fields absent from the metadata: one missing-required finding
//  4. Metadata fields: one type-mismatch per wrongly typed field, and one
//     invalid-key finding listing fields the schema does not declare
//  5. Schema fields present at the top level of data: one misplaced-key finding
func (v *Validator) Validate(data metaschema.Record) []metaschema.Finding {
	tags := data.Tags()
	if len(tags) == 0 {
		return nil
	}

	collection := tags[0]
	inputPath := data.InputPath()
	f := findingBuilder{inputPath: inputPath, collection: collection}

	s, resolution := Resolve(data, collection)
	if resolution != Found {
		if v.missingSchema == metaschema.MissingSchemaWarn {
			return []metaschema.Finding{f.missingSchema(resolution)}
		}
		return nil
	}

	var findings []metaschema.Finding

	raw, _ := data.Lookup(collection)
	if bad := CheckDescriptors(raw); len(bad) > 0 {
		findings = append(findings, f.invalidSchema(bad))
	}

	meta := metadataOf(data, v.metaKey)

	var missing []string
	for _, key := range s.RequiredKeys() {
		if _, ok := meta[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		findings = append(findings, f.missingRequired(missing))
	}

	var invalid []string
	for _, key := range sortedKeys(meta) {
		descriptor, ok := s[key]
		if !ok {
			invalid = append(invalid, key)
			continue
		}
		if !MatchesType(descriptor.Type, meta[key]) {
			findings = append(findings, f.typeMismatch(key, descriptor.Type, describe(meta[key])))
		}
	}
	if len(invalid) > 0 {
		findings = append(findings, f.invalidKeys(invalid, v.metaKey))
	}

	var misplaced []string
	for _, key := range s.Keys() {
		if _, ok := data[key]; ok {
			misplaced = append(misplaced, key)
		}
	}
	if len(misplaced) > 0 {
		findings = append(findings, f.misplacedKeys(misplaced, v.metaKey))
	}

	return findings
}

// metadataOf returns the metadata object nested under metaKey. Absent or
// non-object metadata has no keys.
func metadataOf(data metaschema.Record, metaKey string) map[string]any {
	raw, ok := data.Lookup(metaKey)
	if !ok {
		return nil
	}
	obj, _ := asObject(raw)
	return obj
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// findingBuilder stamps the per-record context onto each finding.
type findingBuilder struct {
	inputPath  string
	collection string
}

func (b findingBuilder) where() string {
	if b.inputPath == "" {
		return unknownInput
	}
	return b.inputPath
}

func (b findingBuilder) build(kind metaschema.FindingKind, fields []string, message string) metaschema.Finding {
	if fields == nil {
		fields = []string{}
	}
	return metaschema.Finding{
		ID:         FindingID(kind, b.inputPath, b.collection, fields),
		Kind:       kind,
		InputPath:  b.inputPath,
		Collection: b.collection,
		Fields:     fields,
		Message:    message,
	}
}

func (b findingBuilder) missingRequired(fields []string) metaschema.Finding {
	return b.build(metaschema.FindingMissingRequired, fields,
		fmt.Sprintf("%s is missing required %s for collection %q: %s",
			b.where(), plural(len(fields), "key", "keys"), b.collection, strings.Join(fields, ", ")))
}

func (b findingBuilder) typeMismatch(field, expected, actual string) metaschema.Finding {
	finding := b.build(metaschema.FindingTypeMismatch, []string{field},
		fmt.Sprintf("%s: key %q should be of type %s, found %s", b.where(), field, expected, actual))
	finding.Expected = expected
	finding.Actual = actual
	return finding
}

func (b findingBuilder) invalidKeys(fields []string, metaKey string) metaschema.Finding {
	return b.build(metaschema.FindingInvalidKey, fields,
		fmt.Sprintf("%s has %s not defined in the %q schema (under %q): %s",
			b.where(), plural(len(fields), "a key", "keys"), b.collection, metaKey, strings.Join(fields, ", ")))
}

func (b findingBuilder) misplacedKeys(fields []string, metaKey string) metaschema.Finding {
	return b.build(metaschema.FindingMisplacedKey, fields,
		fmt.Sprintf("%s sets schema %s outside %q, move %s under %q: %s",
			b.where(), plural(len(fields), "key", "keys"), metaKey, plural(len(fields), "it", "them"), metaKey, strings.Join(fields, ", ")))
}

func (b findingBuilder) missingSchema(resolution Resolution) metaschema.Finding {
	return b.build(metaschema.FindingMissingSchema, nil,
		fmt.Sprintf("%s is tagged %q but no schema object was found under %q (%s)",
			b.where(), b.collection, b.collection, resolution))
}

func (b findingBuilder) invalidSchema(fields []string) metaschema.Finding {
	return b.build(metaschema.FindingInvalidSchema, fields,
		fmt.Sprintf("schema %q used by %s has malformed %s: %s",
			b.collection, b.where(), plural(len(fields), "descriptor", "descriptors"), strings.Join(fields, ", ")))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
