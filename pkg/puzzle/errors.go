package puzzle

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by all solvers.
var (
	// ErrParse marks input that does not match its record grammar.
	ErrParse = errors.New("parse error")
	// ErrInvariantViolation marks a programmer or data error that cannot be recovered,
	// such as an inverted range or parallel sequences of different lengths.
	ErrInvariantViolation = errors.New("invariant violation")
	// ErrEmptyInput marks an operation that needs at least one element and got none.
	ErrEmptyInput = errors.New("empty input")
)

// Grammar-level causes wrapped by ParseError.
var (
	ErrInvalidNumber    = errors.New("invalid number")
	ErrUnknownDirection = errors.New("unknown direction")
	ErrMalformedRange   = errors.New("malformed range")
	ErrInvalidDigit     = errors.New("invalid digit")
	ErrUnknownOperator  = errors.New("unknown operator")
)

// ParseError reports the record that failed to parse.
type ParseError struct {
	// Line is the 1-based record number within the input.
	Line int
	// Input is the offending record text.
	Input string
	// Err is the grammar-level cause.
	Err error
}

// NewParseError wraps err with the record position and text.
func NewParseError(line int, input string, err error) *ParseError {
	return &ParseError{Line: line, Input: input, Err: err}
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d (input: >%s<): %v", e.Line, e.Input, e.Err)
}

// Unwrap exposes both ErrParse and the cause to errors.Is and errors.As.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// Invariantf returns an error wrapping ErrInvariantViolation.
func Invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}

// Emptyf returns an error wrapping ErrEmptyInput.
func Emptyf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrEmptyInput, fmt.Sprintf(format, args...))
}
