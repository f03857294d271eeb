package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/checkdigit/pkg/checksum"
)

// ValidationError describes a field whose product code failed its rule.
// Value is the code after normalization, as the checksum saw it.
type ValidationError struct {
	Field             string
	Format            string
	Value             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func newCodeError(field, format, value, message string) ValidationError {
	normalized := checksum.Normalize(value)
	return ValidationError{
		Field:          field,
		Format:         format,
		Value:          normalized,
		Message:        message,
		TranslationKey: "validation." + format,
		TranslationValues: map[string]any{
			"field":  field,
			"format": format,
			"value":  normalized,
		},
	}
}

// ValidationErrors is returned by Apply when one or more rules fail.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s (got %q)", err.Field, err.Message, err.Value))
	}
	return "invalid product code: " + strings.Join(parts, "; ")
}

// Fields returns the failed field names in first-failure order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Rule pairs a check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply runs every rule and returns ValidationErrors for the failed ones,
// or nil when all pass.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ExtractValidationErrors unwraps ValidationErrors from err, or returns nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}
