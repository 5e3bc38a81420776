package errors

import (
	"fmt"
	"sort"
	"strings"
)

// fieldErrors collects messages per field
type fieldErrors map[string][]string

// String lists the fields in sorted order so the message is stable
func (f fieldErrors) String() string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, strings.Join(f[name], ", "))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// ValidationBuilder accumulates field-level validation errors. Build returns
// nil when no field failed, otherwise an InvalidArgument error carrying the
// fields under MetaValidationErrors.
type ValidationBuilder struct {
	fields fieldErrors
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(fieldErrors)}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField adds an invalid field error
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Field(field, "is invalid: "+reason)
}

// Build returns the error if there are validation errors, nil otherwise
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}
	return InvalidArgument(vb.fields.String()).
		WithMeta(MetaValidationErrors, map[string][]string(vb.fields))
}

// ValidationFields returns the per-field messages of a validation error. It
// reads both the local form and the one restored by FromGRPCError.
func ValidationFields(err error) map[string][]string {
	switch raw := GetMeta(err)[MetaValidationErrors].(type) {
	case map[string][]string:
		return raw
	case map[string]interface{}:
		out := make(map[string][]string, len(raw))
		for field, v := range raw {
			list, _ := v.([]interface{})
			for _, msg := range list {
				if s, ok := msg.(string); ok {
					out[field] = append(out[field], s)
				}
			}
		}
		return out
	default:
		return nil
	}
}

// ValidateRequired checks if a string field is required
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRange checks if a value is within [minValue, maxValue]
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Field(field, fmt.Sprintf("must be between %d and %d", minValue, maxValue))
	}
}

// ValidateEnum checks if a value is in a list of allowed values
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	vb.Field(field, "must be one of: "+strings.Join(allowed, ", "))
}
