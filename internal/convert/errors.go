package convert

import (
	"errors"
	"fmt"
)

var (
	ErrParse           = errors.New("not a valid number")
	ErrIndexOutOfRange = errors.New("unit index out of range")
	ErrConversion      = errors.New("conversion result is not a finite number")
)

// Error describes a failed conversion. Err is one of the sentinels above.
type Error struct {
	Op    string
	Index int
	Input string
	Err   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Input != "":
		return fmt.Sprintf("%s %q: %v", e.Op, e.Input, e.Err)
	case errors.Is(e.Err, ErrIndexOutOfRange):
		return fmt.Sprintf("%s index %d: %v", e.Op, e.Index, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }
