package validation

import (
	"sort"
	"strings"
)

// FieldErrors maps a form field name to a human readable message.
type FieldErrors map[string]string

func (f FieldErrors) HasErrors() bool {
	return len(f) > 0
}

func (f FieldErrors) Add(field, message string) {
	f[field] = message
}

// Error joins messages in field order so it can be returned as an error body.
func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, f[field])
	}
	return strings.Join(msgs, "; ")
}
