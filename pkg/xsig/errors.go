package xsig

import (
	"errors"
	"fmt"
	"math/big"
)

// Common errors returned by the signature library
var (
	ErrNotOnCurve    = errors.New("point is not on the curve")
	ErrInverseOfZero = errors.New("modular inverse of zero")
	ErrIdentityNonce = errors.New("ephemeral point is the identity")
	ErrMalformed     = errors.New("malformed encoding")
)

// ValidationError reports coordinates that do not satisfy the curve equation.
// It is returned when a point is built from untrusted input.
type ValidationError struct {
	X, Y *big.Int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid point (x:%s y:%s): %v", e.X, e.Y, ErrNotOnCurve)
}

func (e *ValidationError) Unwrap() error {
	return ErrNotOnCurve
}

// NewValidationError creates a new ValidationError.
func NewValidationError(x, y *big.Int) *ValidationError {
	return &ValidationError{X: x, Y: y}
}

// ArithmeticError signals a violated arithmetic precondition, such as
// inverting zero while doubling a point with y = 0. The operation that hit it
// must be abandoned.
type ArithmeticError struct {
	Op  string
	Err error
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("arithmetic error in %s: %v", e.Op, e.Err)
}

func (e *ArithmeticError) Unwrap() error {
	return e.Err
}

// NewArithmeticError creates a new ArithmeticError.
func NewArithmeticError(op string, err error) *ArithmeticError {
	return &ArithmeticError{Op: op, Err: err}
}

// FormatError reports a canonical string that could not be parsed.
type FormatError struct {
	Kind  string // "private key", "public key" or "signature"
	Input string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot decode %s %q: %v", e.Kind, e.Input, e.Err)
	}
	return fmt.Sprintf("cannot decode %s %q", e.Kind, e.Input)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// NewFormatError creates a new FormatError.
func NewFormatError(kind, input string, err error) *FormatError {
	return &FormatError{
		Kind:  kind,
		Input: input,
		Err:   err,
	}
}
