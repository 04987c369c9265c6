package invoice

import (
	"errors"
	"fmt"
)

// MissingFieldError signals a required field that is absent or empty.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// InvalidFormatError signals a field that is present but malformed.
type InvalidFormatError struct {
	Field string
	Value string
}

func (e InvalidFormatError) Error() string {
	return fmt.Sprintf("%s is not a valid %s", e.Value, e.Field)
}

// InvalidItemError signals a line item that fails a per-item rule.
type InvalidItemError struct {
	Index  int
	Reason string
}

func (e InvalidItemError) Error() string {
	return fmt.Sprintf("item %d: %s", e.Index, e.Reason)
}

// IsValidationError reports whether err is one of the typed validation
// failures, which handlers surface as 400 responses.
func IsValidationError(err error) bool {
	var missing MissingFieldError
	var format InvalidFormatError
	var item InvalidItemError
	return errors.As(err, &missing) || errors.As(err, &format) || errors.As(err, &item)
}
