package schema

import (
	"encoding/json"
	"testing"
)

func TestTypeOf(t *testing.T) {
	testCases := []struct {
		name     string
		value    any
		expected string
	}{
		{"string", "x", TypeString},
		{"float", 1.5, TypeNumber},
		{"int", 3, TypeNumber},
		{"json number", json.Number("4"), TypeNumber},
		{"bool", false, TypeBoolean},
		{"null", nil, TypeObject},
		{"array", []any{1.0}, TypeObject},
		{"object", map[string]any{}, TypeObject},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TypeOf(tc.value); got != tc.expected {
				t.Errorf("TypeOf(%#v) = %q, want %q", tc.value, got, tc.expected)
			}
		})
	}
}

func TestMatchesType(t *testing.T) {
	testCases := []struct {
		expected string
		value    any
		want     bool
	}{
		{"array", []any{}, true},
		{"array", []string{"a"}, true},
		{"array", map[string]any{}, false},
		{"array", "array", false},
		{"object", []any{}, true},
		{"object", nil, true},
		{"string", "", true},
		{"string", 1.0, false},
		{"number", 0.0, true},
		{"boolean", true, true},
		{"undefined", "x", false},
		{"", "anything", true},
	}

	for _, tc := range testCases {
		if got := MatchesType(tc.expected, tc.value); got != tc.want {
			t.Errorf("MatchesType(%q, %#v) = %v, want %v", tc.expected, tc.value, got, tc.want)
		}
	}
}

func TestTruthy(t *testing.T) {
	falsy := []any{nil, false, "", 0.0, 0, json.Number("0")}
	for _, v := range falsy {
		if truthy(v) {
			t.Errorf("Expected %#v to be falsy", v)
		}
	}

	truthyValues := []any{true, "x", 1.0, -1, map[string]any{}, []any{}}
	for _, v := range truthyValues {
		if !truthy(v) {
			t.Errorf("Expected %#v to be truthy", v)
		}
	}
}
