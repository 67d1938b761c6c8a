package metaschema

import (
	"errors"
	"fmt"
	"strings"
)

// MissingSchemaPolicy controls what happens when a tagged record's collection
// schema cannot be resolved.
type MissingSchemaPolicy string

const (
	// MissingSchemaSkip silently skips validation of the record.
	MissingSchemaSkip MissingSchemaPolicy = "skip"
	// MissingSchemaWarn emits a missing-schema finding for the record.
	MissingSchemaWarn MissingSchemaPolicy = "warn"
)

// ParseMissingSchemaPolicy converts a user-supplied string to a policy.
// The empty string selects the default (skip).
func ParseMissingSchemaPolicy(s string) (MissingSchemaPolicy, error) {
	switch MissingSchemaPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", MissingSchemaSkip:
		return MissingSchemaSkip, nil
	case MissingSchemaWarn:
		return MissingSchemaWarn, nil
	default:
		return "", fmt.Errorf("unknown missing-schema policy %q (valid: skip, warn): %w", s, ErrInvalidConfig)
	}
}

// Options configures the plugin at registration time.
type Options struct {
	// MetaKey is the record field under which parsed metadata is nested.
	MetaKey string

	// MetaExtension is the file extension (without leading dot) handled by the meta parser.
	MetaExtension string

	// MissingSchema decides whether unresolvable schemas are skipped or reported.
	MissingSchema MissingSchemaPolicy
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		MetaKey:       DefaultMetaKey,
		MetaExtension: DefaultMetaExtension,
		MissingSchema: MissingSchemaSkip,
	}
}

// WithDefaults fills every unset field from DefaultOptions and strips a
// leading dot from MetaExtension.
func (o Options) WithDefaults() Options {
	d := DefaultOptions()
	if o.MetaKey == "" {
		o.MetaKey = d.MetaKey
	}
	o.MetaExtension = strings.TrimPrefix(o.MetaExtension, ".")
	if o.MetaExtension == "" {
		o.MetaExtension = d.MetaExtension
	}
	if o.MissingSchema == "" {
		o.MissingSchema = d.MissingSchema
	}
	return o
}

// Validate checks the options for values the plugin cannot work with.
// It returns a multi-error if multiple validation failures occur.
func (o Options) Validate() error {
	var errs []error

	if strings.TrimSpace(o.MetaKey) == "" {
		errs = append(errs, fmt.Errorf("meta key is required: %w", ErrInvalidConfig))
	}

	if strings.TrimSpace(o.MetaExtension) == "" {
		errs = append(errs, fmt.Errorf("meta extension is required: %w", ErrInvalidConfig))
	} else if strings.ContainsAny(o.MetaExtension, `/\. `) {
		errs = append(errs, fmt.Errorf("meta extension %q must be a bare extension such as \"meta\": %w", o.MetaExtension, ErrInvalidConfig))
	}

	if _, err := ParseMissingSchemaPolicy(string(o.MissingSchema)); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
