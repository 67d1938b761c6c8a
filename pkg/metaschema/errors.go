package metaschema

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	records, err := site.Build(root)
//	if errors.Is(err, metaschema.ErrMalformedMeta) {
//	    // A meta file did not contain valid JSON
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMalformedMeta indicates a meta file's contents are not a valid JSON value.
	ErrMalformedMeta = errors.New("malformed meta file")

	// ErrMalformedData indicates a data file or front matter block could not be decoded.
	ErrMalformedData = errors.New("malformed data file")

	// ErrInvalidPath indicates a file path has no usable base name.
	ErrInvalidPath = errors.New("invalid file path")

	// ErrSiteNotFound indicates the site directory does not exist or is not a directory.
	ErrSiteNotFound = errors.New("site directory not found")

	// ErrFindingsReported indicates strict mode saw at least one validation finding.
	ErrFindingsReported = errors.New("validation findings reported")
)

// usageErrorPatterns are message fragments that indicate command-line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"missing required argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrMalformedMeta), errors.Is(err, ErrMalformedData), errors.Is(err, ErrInvalidPath):
		return ExitMalformedInput
	case errors.Is(err, ErrSiteNotFound):
		return ExitSiteNotFound
	case errors.Is(err, ErrFindingsReported):
		return ExitFindings
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
