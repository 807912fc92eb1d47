package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidMovie is the sentinel wrapped by every [*ValidationError].
	ErrInvalidMovie = errors.New("invalid movie")
)

// ValidationError lists every rule a movie payload broke, in the form
// shown to users and returned by the server in a 400 body.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "invalid movie: " + strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidMovie
}

// Messages extracts the user-facing messages from err, or nil if err is not
// a validation failure.
func Messages(err error) []string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Messages
	}
	return nil
}
