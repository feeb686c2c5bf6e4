package validate

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors returned by store resolution and validator construction.
var (
	// ErrTableNotFound is returned when a store cannot resolve a table name.
	ErrTableNotFound = errors.New("table not found")

	// ErrFieldNotFound is returned when a table cannot resolve a field name.
	ErrFieldNotFound = errors.New("field not found")

	// ErrInvalidValue is the default failure reported by set and record checks.
	ErrInvalidValue = errors.New("invalid value")
)

// Error represents a single validation failure with translation support.
// It carries the human-readable message (already passed through the
// validator's translation hook) together with a translation key and the
// values needed to re-render the message in another language.
type Error struct {
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e *Error) Error() string {
	if e.Message == "" {
		return "validation failed"
	}
	return e.Message
}

// newError builds a validation Error. The message template goes through the
// translate hook first, then {{name}} placeholders are filled in, so a
// translator maps whole templates rather than every rendered variant. Store
// errors never pass through here; they propagate to the caller unmodified.
func newError(translate TranslateFunc, message, key string, values map[string]any) *Error {
	return &Error{
		Message:           interpolate(translate(message), values),
		TranslationKey:    key,
		TranslationValues: values,
	}
}

// IsValidationError reports whether err is a validation failure as opposed
// to an underlying store error.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var verr *Error
	return errors.As(err, &verr)
}

// ExtractError extracts the validation Error from err, or nil if err is not
// a validation failure.
func ExtractError(err error) *Error {
	if err == nil {
		return nil
	}
	var verr *Error
	if errors.As(err, &verr) {
		return verr
	}
	return nil
}

// interpolate replaces {{name}} placeholders in template with the string
// form of the corresponding value.
func interpolate(template string, values map[string]any) string {
	result := template
	for name, value := range values {
		result = strings.ReplaceAll(result, "{{"+name+"}}", fmt.Sprint(value))
	}
	return result
}
