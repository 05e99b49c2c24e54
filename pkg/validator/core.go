package validator

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is lets callers test for any validation failure with errors.Is(err, ErrValidationFailed).
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field in insertion order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the distinct failing fields in first-seen order.
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

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// TranslateFunc renders a translation key with name/value argument pairs.
type TranslateFunc func(key string, args ...string) string

// Translate renders every error through translate and groups the messages by
// field. Translation values are passed as sorted name/value pairs.
func (ve ValidationErrors) Translate(translate TranslateFunc) map[string][]string {
	result := make(map[string][]string)
	for _, err := range ve {
		args := make([]string, 0, 2*len(err.TranslationValues))
		for _, name := range slices.Sorted(maps.Keys(err.TranslationValues)) {
			args = append(args, name, fmt.Sprint(err.TranslationValues[name]))
		}
		result[err.Field] = append(result[err.Field], translate(err.TranslationKey, args...))
	}
	return result
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// newRule builds a Rule whose translation values always include the field name.
func newRule(field, message, key string, check func() bool, values map[string]any) Rule {
	tv := map[string]any{"field": field}
	for k, v := range values {
		tv[k] = v
	}
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:             field,
			Message:           message,
			TranslationKey:    key,
			TranslationValues: tv,
		},
	}
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs.Add(rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}

// joinNames renders a list of brands for human-readable messages.
func joinNames[T fmt.Stringer](items []T) string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.String()
	}
	return strings.Join(names, ", ")
}
