package site

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/5t3ph/metaschema/pkg/metaschema"
)

// ParseJSON is the data parser for .json files.
func ParseJSON(contents, filePath string) (any, error) {
	var value any
	if err := json.Unmarshal([]byte(contents), &value); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", filePath, err, metaschema.ErrMalformedData)
	}
	return value, nil
}

// ParseYAML is the data parser for .yaml and .yml files. An empty document
// decodes to nil.
func ParseYAML(contents, filePath string) (any, error) {
	var value any
	if err := yaml.Unmarshal([]byte(contents), &value); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", filePath, err, metaschema.ErrMalformedData)
	}
	return metaschema.Normalize(value), nil
}

// frontMatter extracts the YAML block delimited by "---" lines at the top of
// a content file. Files without front matter yield an empty map.
func frontMatter(contents, filePath string) (map[string]any, error) {
	contents = strings.TrimPrefix(contents, "\ufeff")

	sc := bufio.NewScanner(strings.NewReader(contents))
	sc.Buffer(make([]byte, 0, 64*1024), len(contents)+1)

	if !sc.Scan() || strings.TrimRight(sc.Text(), " \t\r") != "---" {
		return map[string]any{}, nil
	}

	var block strings.Builder
	closed := false
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "---" || line == "..." {
			closed = true
			break
		}
		block.WriteString(strings.TrimSuffix(sc.Text(), "\r"))
		block.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: reading front matter: %v: %w", filePath, err, metaschema.ErrMalformedData)
	}
	if !closed {
		return nil, fmt.Errorf("%s: front matter is not closed with \"---\": %w", filePath, metaschema.ErrMalformedData)
	}

	value, err := ParseYAML(block.String(), filePath)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return map[string]any{}, nil
	}
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: front matter must be a mapping, got %s: %w",
			filePath, describe(value), metaschema.ErrMalformedData)
	}
	return obj, nil
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "a list"
	case map[string]any:
		return "a mapping"
	default:
		return fmt.Sprintf("a %T", v)
	}
}
