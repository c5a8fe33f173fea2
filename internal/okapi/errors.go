package okapi

import (
	"errors"
	"fmt"
)

// Error kinds returned by the scoring pipeline. Callers match them with errors.Is.
var (
	ErrFileAccess = errors.New("file access error")
	ErrParse      = errors.New("parse error")
	ErrArithmetic = errors.New("arithmetic error")
)

// LineError reports a failure tied to one input line.
// Field is the 0-based field position, or -1 when the whole line is at fault.
type LineError struct {
	Line  int
	Field int
	Err   error
}

func (e *LineError) Error() string {
	if e.Field < 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, field %d: %v", e.Line, e.Field, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
