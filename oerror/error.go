package oerror

import "fmt"

// Error is returned when a simulator input, such as a settings file, is invalid.
type Error struct {
	Err string
}

// New creates an error from a format string.
func New(format string, args ...any) *Error {
	if len(args) == 0 {
		return &Error{Err: format}
	}
	return &Error{Err: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Err
}
