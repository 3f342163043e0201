// Package validation holds the field-keyed error type shared by the booking core
// and the HTTP layer.
package validation

import (
	"sort"
	"strings"
)

// FieldError is a user-correctable problem with a single input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors collects every failing rule of a validation pass. A nil or empty
// value means the input is acceptable.
type FieldErrors []FieldError

// Add appends an error for field.
func (fe *FieldErrors) Add(field, message string) {
	*fe = append(*fe, FieldError{Field: field, Message: message})
}

// Merge appends all errors from other, prefixing each field with prefix when
// prefix is non-empty.
func (fe *FieldErrors) Merge(prefix string, other FieldErrors) {
	for _, e := range other {
		field := e.Field
		if prefix != "" {
			field = prefix + field
		}
		fe.Add(field, e.Message)
	}
}

// Has reports whether any error is keyed by field.
func (fe FieldErrors) Has(field string) bool {
	for _, e := range fe {
		if e.Field == field {
			return true
		}
	}
	return false
}

// Empty reports whether there are no errors.
func (fe FieldErrors) Empty() bool { return len(fe) == 0 }

// ByField returns the first message recorded for every field.
func (fe FieldErrors) ByField() map[string]string {
	out := make(map[string]string, len(fe))
	for _, e := range fe {
		if _, seen := out[e.Field]; !seen {
			out[e.Field] = e.Message
		}
	}
	return out
}

// Err returns fe as an error, or nil when it is empty.
func (fe FieldErrors) Err() error {
	if fe.Empty() {
		return nil
	}
	return fe
}

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation: ok"
	}
	fields := make([]string, 0, len(fe))
	for f := range fe.ByField() {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}
