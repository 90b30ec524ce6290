package numcore_errors

import (
	"errors"
	"fmt"
)

var (
	ErrFormat       = errors.New("input string was not in a correct format")
	ErrDivideByZero = errors.New("attempted to divide by zero")
	ErrNotFinite    = errors.New("value is not a finite number")
)

type ErrInvalidPercent struct {
	Input   string
	Message string
}

func (e ErrInvalidPercent) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("invalid percent %q: %s", e.Input, e.Message)
	}
	return fmt.Sprintf("invalid percent %q", e.Input)
}

func (e ErrInvalidPercent) Unwrap() error {
	return ErrFormat
}
