package places

import (
	"errors"
	"fmt"
)

// ErrUpstreamUnavailable marks a failed or timed-out photo lookup. Normalize
// never returns it; the failure only downgrades the photo to the placeholder.
var ErrUpstreamUnavailable = errors.New("places: upstream unavailable")

// ValidationError reports a raw record that cannot become a canonical place.
// Callers must drop such records instead of inventing the missing field.
type ValidationError struct {
	Field string
	ID    string
}

func (e *ValidationError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("places: record %q is missing required field %q", e.ID, e.Field)
	}
	return fmt.Sprintf("places: record is missing required field %q", e.Field)
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
