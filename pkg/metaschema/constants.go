package metaschema

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Validation completed (findings are advisory)
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid configuration or options
	ExitMalformedInput = 11 // A meta file, data file or front matter block failed to parse
	ExitSiteNotFound   = 12 // Site directory missing or not a directory
	ExitFindings       = 13 // --strict was given and findings were reported
)

const (
	// DefaultMetaKey is the record field under which parsed metadata is nested.
	DefaultMetaKey = "meta"

	// DefaultMetaExtension is the file extension recognized by the meta parser.
	DefaultMetaExtension = "meta"

	// FilterName is the name under which the validation filter is registered with the host.
	FilterName = "validateMeta"

	// TagsKey is the record field holding the collection tags.
	TagsKey = "tags"
)
