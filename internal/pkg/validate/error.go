package validate

import (
	"slices"
	"strings"
)

// FieldsError maps json field names to translated validation messages.
type FieldsError struct {
	Fields map[string]string
}

func NewFieldsError(fields map[string]string) *FieldsError {
	return &FieldsError{
		Fields: fields,
	}
}

func (f *FieldsError) Error() string {
	names := make([]string, 0, len(f.Fields))
	for name := range f.Fields {
		names = append(names, name)
	}
	slices.Sort(names)
	return "invalid fields: " + strings.Join(names, ", ")
}
