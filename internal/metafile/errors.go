package metafile

import (
	"fmt"
)

// ParseError represents a structured parse failure with context and a helpful hint.
type ParseError struct {
	FilePath string // Path to the meta file
	Line     int    // Line number (0 if unknown)
	Column   int    // Column number (0 if unknown)
	Message  string // Primary error message
	Hint     string // Actionable suggestion for fixing
	Err      error  // Sentinel classifying the failure
}

// Error implements the error interface with rich formatting.
func (e *ParseError) Error() string {
	var location string
	if e.Line > 0 {
		if e.Column > 0 {
			location = fmt.Sprintf("%s (line %d, col %d)", e.FilePath, e.Line, e.Column)
		} else {
			location = fmt.Sprintf("%s (line %d)", e.FilePath, e.Line)
		}
	} else {
		location = e.FilePath
	}

	msg := fmt.Sprintf("meta file error in %s: %s", location, e.Message)

	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}

	return msg
}

// Unwrap exposes the sentinel so callers can use errors.Is.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// position converts a byte offset into a 1-based line and column.
func position(contents string, offset int64) (line, col int) {
	if offset < 0 {
		return 0, 0
	}
	if offset > int64(len(contents)) {
		offset = int64(len(contents))
	}
	line, col = 1, 1
	for _, r := range contents[:offset] {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
