package complexnum

import "errors"

var (
	// ErrTypeMismatch is returned when an operand has no real/imag shape.
	ErrTypeMismatch = errors.New("operand must have real and imag parts")

	// ErrDivisionByZero is returned when dividing by a zero-magnitude value.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnsupportedOperation is returned by ordering comparisons.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrNotImplemented is returned by Pow.
	ErrNotImplemented = errors.New("not implemented")
)
