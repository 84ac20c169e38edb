package record

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Record is one untyped external JSON object, as produced by decoding into
// a string-keyed map. All entity resolution starts from this shape.
type Record map[string]any

// KindError reports a field that is present but holds a value of an
// unexpected JSON kind. It signals a feed contract violation, not missing
// data; missing data resolves to nil without an error.
type KindError struct {
	// Field is the name of the offending field.
	Field string
	// Want describes the expected kind (e.g. "string", "number").
	Want string
	// Got is the value actually found.
	Got any
}

func (e *KindError) Error() string {
	return fmt.Sprintf("field %q: expected %s, got %T (%v)", e.Field, e.Want, e.Got, e.Got)
}

// String reads a textual field. Missing fields resolve to nil.
func String(r Record, field string) (*string, error) {
	raw, ok := r[field]
	if !ok || raw == nil {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, &KindError{Field: field, Want: "string", Got: raw}
	}
	return &s, nil
}

// TrimmedString reads a textual field and trims surrounding whitespace.
func TrimmedString(r Record, field string) (*string, error) {
	s, err := String(r, field)
	if err != nil || s == nil {
		return s, err
	}
	t := strings.TrimSpace(*s)
	return &t, nil
}

// Float reads a numeric field. JSON numbers decode as float64.
func Float(r Record, field string) (*float64, error) {
	raw, ok := r[field]
	if !ok || raw == nil {
		return nil, nil
	}
	switch v := raw.(type) {
	case float64:
		return &v, nil
	case int:
		f := float64(v)
		return &f, nil
	case int64:
		f := float64(v)
		return &f, nil
	default:
		return nil, &KindError{Field: field, Want: "number", Got: raw}
	}
}

// Int reads a numeric field and truncates it to an int.
func Int(r Record, field string) (*int, error) {
	f, err := Float(r, field)
	if err != nil || f == nil {
		return nil, err
	}
	i := int(*f)
	return &i, nil
}

// Bool reads a boolean field.
func Bool(r Record, field string) (*bool, error) {
	raw, ok := r[field]
	if !ok || raw == nil {
		return nil, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return nil, &KindError{Field: field, Want: "bool", Got: raw}
	}
	return &b, nil
}

// ID reads an identifier field and normalizes it to its textual form.
// Source feeds deliver ids both as JSON numbers and as strings; the domain
// model uses string identifiers throughout.
func ID(r Record, field string) (*string, error) {
	raw, ok := r[field]
	if !ok || raw == nil {
		return nil, nil
	}
	switch v := raw.(type) {
	case string:
		return &v, nil
	case float64:
		var s string
		if v == math.Trunc(v) {
			s = strconv.FormatInt(int64(v), 10)
		} else {
			s = strconv.FormatFloat(v, 'f', -1, 64)
		}
		return &s, nil
	default:
		return nil, &KindError{Field: field, Want: "string or number", Got: raw}
	}
}

// Instant reads a textual field holding an RFC 3339 timestamp.
func Instant(r Record, field string) (*time.Time, error) {
	s, err := String(r, field)
	if err != nil || s == nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", field, err)
	}
	return &t, nil
}

// Child reads a nested object field as a Record.
func Child(r Record, field string) (Record, error) {
	raw, ok := r[field]
	if !ok || raw == nil {
		return nil, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, &KindError{Field: field, Want: "object", Got: raw}
	}
	return Record(m), nil
}

// List reads a list field of nested objects as Records. Missing fields
// resolve to nil; elements that are not objects are a contract violation.
func List(r Record, field string) ([]Record, error) {
	raw, ok := r[field]
	if !ok || raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, &KindError{Field: field, Want: "list", Got: raw}
	}
	records := make([]Record, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, &KindError{Field: field, Want: "list of objects", Got: item}
		}
		records = append(records, Record(m))
	}
	return records, nil
}

// Alternatives returns the first non-nil candidate, or nil when every
// candidate is nil. It implements ordered-fallback resolution for values
// that may come from more than one source (e.g. a bare "roomId" vs. an
// embedded "room" object, or a statistics counter vs. a feed counter).
func Alternatives[T any](candidates ...*T) *T {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}
