// Package validation defines the error returned when a request parameter
// is rejected before any file is touched.
package validation

import (
	"errors"
	"fmt"
)

// Error reports a rejected request parameter.
type Error struct {
	Field  string // Parameter name as shown to users (e.g., "char_count")
	Value  any
	Reason string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Value == nil {
		return fmt.Sprintf("%s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s %s (got %v)", e.Field, e.Reason, e.Value)
}

// IsValidation reports whether err, or anything it wraps, is a validation error.
func IsValidation(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}
