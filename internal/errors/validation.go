package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError collects per-field validation failures.
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

// Error lists the failing fields in name order.
func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}

	names := make([]string, 0, len(v.Fields))
	for field := range v.Fields {
		names = append(names, field)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, field := range names {
		parts[i] = fmt.Sprintf("%s: %s", field, strings.Join(v.Fields[field], ", "))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// HasErrors returns true if any field failed.
func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

// ToError converts the validation error to an InvalidArgument *Error. The
// field messages are kept in metadata under "validation_errors".
func (v *ValidationError) ToError() *Error {
	if !v.HasErrors() {
		return nil
	}

	fields := make(map[string]interface{}, len(v.Fields))
	for field, msgs := range v.Fields {
		list := make([]interface{}, len(msgs))
		for i, msg := range msgs {
			list[i] = msg
		}
		fields[field] = list
	}
	return InvalidArgument(v.Error()).WithMeta("validation_errors", fields)
}

// ValidationBuilder accumulates field errors. Build returns nil when nothing
// failed.
type ValidationBuilder struct {
	err *ValidationError
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{err: &ValidationError{Fields: make(map[string][]string)}}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.err.Fields[field] = append(vb.err.Fields[field], message)
	return vb
}

// Fieldf adds a formatted validation error for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...interface{}) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField adds an invalid field error
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Fieldf(field, "is invalid: %s", reason)
}

// Build returns the error if there are validation errors, nil otherwise
func (vb *ValidationBuilder) Build() error {
	if vb.err.HasErrors() {
		return vb.err.ToError()
	}
	return nil
}

// ValidateRequired records a required error when value is blank.
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRange records an error when value is outside [minValue, maxValue].
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

// ValidatePositive records an error when value is not strictly positive.
func ValidatePositive(field string, value float64, vb *ValidationBuilder) {
	if value <= 0 {
		vb.InvalidField(field, "must be positive")
	}
}
