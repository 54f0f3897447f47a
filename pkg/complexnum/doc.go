// Package complexnum provides an immutable complex number value type.
//
// # Operands
//
// Arithmetic methods accept their operand as any value with a real and an
// imaginary part:
//   - Complex itself, or any type implementing Number
//   - Go's built-in complex64 and complex128
//   - integer and floating-point kinds, treated as a real with zero imaginary part
//
// Anything else fails with ErrTypeMismatch.
//
// # Equality
//
// Equal compares componentwise with an absolute tolerance of DefaultTolerance.
// Use EqualWithin to pick a different tolerance.
//
// # Ordering
//
// Complex numbers have no total order. Greater, GreaterEqual, Less and
// LessEqual always fail with ErrUnsupportedOperation.
package complexnum
