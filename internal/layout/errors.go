package layout

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every error returned from this package.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes a rejected percentage, side or dimension.
type ArgumentError struct {
	Op      string // operation that rejected the argument, e.g. "shave"
	Message string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	if e.Op == "" {
		return "invalid argument: " + e.Message
	}
	return e.Op + ": invalid argument: " + e.Message
}

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalidArgument(op, format string, args ...any) *ArgumentError {
	return &ArgumentError{Op: op, Message: fmt.Sprintf(format, args...)}
}
