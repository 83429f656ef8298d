// Package extractors pulls the fields a check reports on out of response bodies.
// This file implements dotted-path lookups into decoded JSON with a fallback
// value, mirroring how the checks report "best effort" when a field is absent.
package extractors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTypeMismatch is returned when a field is present but holds a value of the
// wrong JSON type, e.g. a string where an object or a number was expected.
var ErrTypeMismatch = errors.New("unexpected JSON type")

// Lookup walks a dotted path such as "predictions.Primary_Fertilizer" through
// nested JSON objects. The second result is false when a key along the path is
// missing. Reaching a non-object (null included) before the last component is
// an ErrTypeMismatch.
func Lookup(doc map[string]interface{}, path string) (interface{}, bool, error) {
	path = normalize(path)
	if path == "" {
		return doc, doc != nil, nil
	}

	var current interface{} = doc
	walked := "$"
	for _, component := range strings.Split(path, ".") {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil, false, mismatch(walked, "object", current)
		}
		val, exists := obj[component]
		if !exists {
			return nil, false, nil
		}
		current = val
		walked += "." + component
	}
	return current, true, nil
}

// String returns the value at path rendered as text, or def when it is absent
// or null. Non-string scalars are formatted with fmt.
func String(doc map[string]interface{}, path, def string) (string, bool, error) {
	val, ok, err := Lookup(doc, path)
	if err != nil || !ok || val == nil {
		return def, false, err
	}
	if s, ok := val.(string); ok {
		return s, true, nil
	}
	return fmt.Sprint(val), true, nil
}

// Float returns the numeric value at path, or def when it is absent or null.
func Float(doc map[string]interface{}, path string, def float64) (float64, bool, error) {
	val, ok, err := Lookup(doc, path)
	if err != nil || !ok || val == nil {
		return def, false, err
	}
	switch n := val.(type) {
	case float64:
		return n, true, nil
	case int:
		return float64(n), true, nil
	default:
		return def, false, mismatch("$."+normalize(path), "number", val)
	}
}

// Bool returns the boolean at path, or def when it is absent or null.
func Bool(doc map[string]interface{}, path string, def bool) (bool, bool, error) {
	val, ok, err := Lookup(doc, path)
	if err != nil || !ok || val == nil {
		return def, false, err
	}
	b, ok := val.(bool)
	if !ok {
		return def, false, mismatch("$."+normalize(path), "boolean", val)
	}
	return b, true, nil
}

func normalize(path string) string {
	return strings.TrimPrefix(strings.TrimPrefix(path, "$"), ".")
}

func mismatch(path, want string, got interface{}) error {
	return fmt.Errorf("%w: %s is %s, want %s", ErrTypeMismatch, path, kind(got), want)
}

func kind(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64, int:
		return "number"
	case bool:
		return "boolean"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
