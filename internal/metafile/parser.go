package metafile

import (
	"encoding/json"
	"errors"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/5t3ph/metaschema/pkg/metaschema"
)

const malformedHint = "The meta file must contain exactly one JSON value, usually an object:\n" +
	"  {\"title\": \"My post\", \"tags\": [\"posts\"]}\n" +
	"Check for missing commas, unquoted keys and trailing commas."

// Name returns the key a meta file's contents are nested under:
// the base file name with its last extension removed.
func Name(filePath string) string {
	base := path.Base(strings.ReplaceAll(filepath.ToSlash(filePath), `\`, "/"))
	if base == "." || base == "/" {
		return ""
	}
	return strings.TrimSuffix(base, path.Ext(base))
}

// Parse decodes a meta file into a one-key record mapping the file's base
// name to the JSON value held in contents.
//
// Parameters:
//   - contents: raw file contents, a single JSON value
//   - filePath: path of the meta file, used for the key and for error reporting
//
// Returns:
//   - metaschema.Record with exactly one key
//   - *ParseError wrapping metaschema.ErrInvalidPath when the path has no base name
//   - *ParseError wrapping metaschema.ErrMalformedMeta when contents are not one valid JSON value
func Parse(contents string, filePath string) (metaschema.Record, error) {
	metaName := Name(filePath)
	if metaName == "" {
		return nil, &ParseError{
			FilePath: filePath,
			Message:  "file path has no base name to key the metadata by",
			Hint:     "Name meta files after the content they describe, e.g. first-post.meta.",
			Err:      metaschema.ErrInvalidPath,
		}
	}

	decoder := json.NewDecoder(strings.NewReader(contents))

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, wrapJSONError(err, contents, filePath)
	}

	// Anything after the first value would have become extra keys in the
	// wrapped object; reject it instead.
	var extra any
	if err := decoder.Decode(&extra); err != io.EOF {
		line, col := position(contents, decoder.InputOffset())
		return nil, &ParseError{
			FilePath: filePath,
			Line:     line,
			Column:   col,
			Message:  "unexpected data after the JSON value",
			Hint:     malformedHint,
			Err:      metaschema.ErrMalformedMeta,
		}
	}

	return metaschema.Record{metaName: value}, nil
}

// wrapJSONError converts encoding/json errors to ParseError with line numbers.
func wrapJSONError(err error, contents, filePath string) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, col := position(contents, syntaxErr.Offset)
		return &ParseError{
			FilePath: filePath,
			Line:     line,
			Column:   col,
			Message:  syntaxErr.Error(),
			Hint:     malformedHint,
			Err:      metaschema.ErrMalformedMeta,
		}
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &ParseError{
			FilePath: filePath,
			Message:  "unexpected end of JSON input",
			Hint:     malformedHint,
			Err:      metaschema.ErrMalformedMeta,
		}
	}

	return &ParseError{
		FilePath: filePath,
		Message:  err.Error(),
		Hint:     malformedHint,
		Err:      metaschema.ErrMalformedMeta,
	}
}
