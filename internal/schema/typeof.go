package schema

import (
	"encoding/json"
	"math"
)

// Type names as reported by TypeOf.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeObject  = "object"
	TypeArray   = "array"
)

// TypeOf returns the JavaScript typeof name of a decoded JSON value.
// Arrays and null report "object", as typeof does.
func TypeOf(v any) string {
	switch v.(type) {
	case string:
		return TypeString
	case bool:
		return TypeBoolean
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, json.Number:
		return TypeNumber
	default:
		return TypeObject
	}
}

// describe is TypeOf with arrays and null told apart, for messages.
func describe(v any) string {
	if v == nil {
		return "null"
	}
	if isArray(v) {
		return TypeArray
	}
	return TypeOf(v)
}

func isArray(v any) bool {
	switch v.(type) {
	case []any, []string, []map[string]any:
		return true
	default:
		return false
	}
}

// MatchesType reports whether v satisfies the declared type.
// "array" is satisfied only by an array; every other declared type is
// compared against TypeOf. An empty declared type accepts any value.
func MatchesType(expected string, v any) bool {
	if expected == "" {
		return true
	}
	if expected == TypeArray {
		return isArray(v)
	}
	return TypeOf(v) == expected
}

// truthy follows JavaScript truthiness for decoded JSON values.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0 && !math.IsNaN(val)
	case float32:
		return val != 0 && !math.IsNaN(float64(val))
	case int:
		return val != 0
	case int64:
		return val != 0
	case json.Number:
		f, err := val.Float64()
		return err != nil || f != 0
	default:
		return true
	}
}
