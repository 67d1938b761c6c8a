package schema

import (
	"strings"

	"github.com/google/uuid"

	"github.com/5t3ph/metaschema/pkg/metaschema"
)

// NamespaceFinding is the UUID v5 namespace for finding identities,
// derived from the URL namespace and a fixed canonical string.
var NamespaceFinding = uuid.NewSHA1(uuid.NameSpaceURL, []byte("github.com/5t3ph/metaschema/finding/v1"))

// FindingID returns a deterministic identity for a finding so that the same
// discrepancy in the same file maps to the same ID across runs.
//
// The input path is normalized the way file identities usually are:
// lowercase, forward slashes, no leading "./".
func FindingID(kind metaschema.FindingKind, inputPath, collection string, fields []string) uuid.UUID {
	normalized := strings.ToLower(strings.ReplaceAll(inputPath, `\`, "/"))
	normalized = strings.TrimPrefix(normalized, "./")

	name := strings.Join([]string{
		string(kind),
		normalized,
		collection,
		strings.Join(fields, ","),
	}, "\x00")

	return uuid.NewSHA1(NamespaceFinding, []byte(name))
}
