package sh

import (
	"errors"
	"fmt"
)

var (
	// ErrNoResult is returned by assertions made before any command ran to completion.
	ErrNoResult = errors.New("no command has been run to completion")
	// ErrInvalidEncoding is returned when combined output is not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("output is not valid UTF-8")
)

// AssertionError reports an expectation that did not hold. It is the failure
// signal step definitions surface to the test.
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string {
	return e.Message
}

// ExitStatusParseError is returned when an expected return code given as text
// is not an integer.
type ExitStatusParseError struct {
	Value string
	Err   error
}

func (e *ExitStatusParseError) Error() string {
	return fmt.Sprintf("invalid expected return code %q: %v", e.Value, e.Err)
}

func (e *ExitStatusParseError) Unwrap() error {
	return e.Err
}
