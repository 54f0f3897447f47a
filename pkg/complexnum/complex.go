package complexnum

import (
	"fmt"
	"log/slog"
	"math"
)

// DefaultTolerance is the per-component absolute tolerance used by Equal.
const DefaultTolerance = 1e-14

// Number is implemented by anything exposing a real and an imaginary part.
type Number interface {
	Real() float64
	Imag() float64
}

// Complex is a complex number re + im·i. The zero value is 0+0i.
// Values are immutable; every operation returns a new Complex.
type Complex struct {
	re float64
	im float64
}

// New returns re + im·i.
func New(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// FromReal returns r as a Complex with a zero imaginary part.
func FromReal(r float64) Complex {
	return Complex{re: r}
}

// Real returns the real part.
func (c Complex) Real() float64 { return c.re }

// Imag returns the imaginary part.
func (c Complex) Imag() float64 { return c.im }

// coerce converts an arithmetic operand into a Complex.
func coerce(v any) (Complex, error) {
	switch x := v.(type) {
	case Complex:
		return x, nil
	case Number:
		return New(x.Real(), x.Imag()), nil
	case complex128:
		return New(real(x), imag(x)), nil
	case complex64:
		return New(float64(real(x)), float64(imag(x))), nil
	case float64:
		return FromReal(x), nil
	case float32:
		return FromReal(float64(x)), nil
	case int:
		return FromReal(float64(x)), nil
	case int8:
		return FromReal(float64(x)), nil
	case int16:
		return FromReal(float64(x)), nil
	case int32:
		return FromReal(float64(x)), nil
	case int64:
		return FromReal(float64(x)), nil
	case uint:
		return FromReal(float64(x)), nil
	case uint8:
		return FromReal(float64(x)), nil
	case uint16:
		return FromReal(float64(x)), nil
	case uint32:
		return FromReal(float64(x)), nil
	case uint64:
		return FromReal(float64(x)), nil
	default:
		return Complex{}, fmt.Errorf("%w: got %T", ErrTypeMismatch, v)
	}
}

// Add returns c + other.
func (c Complex) Add(other any) (Complex, error) {
	o, err := coerce(other)
	if err != nil {
		return Complex{}, fmt.Errorf("add: %w", err)
	}
	return New(c.re+o.re, c.im+o.im), nil
}

// ReverseAdd returns other + c. Addition is commutative, so this is Add.
func (c Complex) ReverseAdd(other any) (Complex, error) {
	return c.Add(other)
}

// Sub returns c - other.
func (c Complex) Sub(other any) (Complex, error) {
	o, err := coerce(other)
	if err != nil {
		return Complex{}, fmt.Errorf("sub: %w", err)
	}
	return New(c.re-o.re, c.im-o.im), nil
}

// ReverseSub returns other - c, e.g. 1 - (0+1i) is 1-1i.
func (c Complex) ReverseSub(other any) (Complex, error) {
	o, err := coerce(other)
	if err != nil {
		return Complex{}, fmt.Errorf("sub: %w", err)
	}
	return o.Sub(c)
}

// Mul returns c * other.
func (c Complex) Mul(other any) (Complex, error) {
	o, err := coerce(other)
	if err != nil {
		return Complex{}, fmt.Errorf("mul: %w", err)
	}
	// (a+bi)(c+di) = (ac-bd) + (ad+bc)i
	return New(c.re*o.re-c.im*o.im, c.im*o.re+c.re*o.im), nil
}

// Div returns c / other. Dividing by a value whose magnitude is zero returns
// ErrDivisionByZero.
func (c Complex) Div(other any) (Complex, error) {
	o, err := coerce(other)
	if err != nil {
		return Complex{}, fmt.Errorf("div: %w", err)
	}
	r := o.re*o.re + o.im*o.im
	if r == 0 {
		return Complex{}, fmt.Errorf("div: %v by %v: %w", c, o, ErrDivisionByZero)
	}
	return New((c.re*o.re+c.im*o.im)/r, (c.im*o.re-c.re*o.im)/r), nil
}

// Abs returns the magnitude sqrt(re² + im²).
func (c Complex) Abs() float64 {
	return math.Hypot(c.re, c.im)
}

// Neg returns -c.
func (c Complex) Neg() Complex {
	return New(-c.re, -c.im)
}

// Equal reports whether both components of c and other differ by less than
// DefaultTolerance.
func (c Complex) Equal(other Number) bool {
	return c.EqualWithin(other, DefaultTolerance)
}

// EqualWithin is Equal with an explicit tolerance.
func (c Complex) EqualWithin(other Number, eps float64) bool {
	return math.Abs(c.re-other.Real()) < eps && math.Abs(c.im-other.Imag()) < eps
}

// NotEqual is the negation of Equal.
func (c Complex) NotEqual(other Number) bool {
	return !c.Equal(other)
}

// NotEqualWithin is the negation of EqualWithin.
func (c Complex) NotEqualWithin(other Number, eps float64) bool {
	return !c.EqualWithin(other, eps)
}

// Greater always fails: complex numbers are not ordered.
func (c Complex) Greater(other any) (bool, error) { return c.illegal(">", other) }

// GreaterEqual always fails: complex numbers are not ordered.
func (c Complex) GreaterEqual(other any) (bool, error) { return c.illegal(">=", other) }

// Less always fails: complex numbers are not ordered.
func (c Complex) Less(other any) (bool, error) { return c.illegal("<", other) }

// LessEqual always fails: complex numbers are not ordered.
func (c Complex) LessEqual(other any) (bool, error) { return c.illegal("<=", other) }

func (c Complex) illegal(op string, other any) (bool, error) {
	slog.Warn("Illegal operation for complex numbers",
		"op", op,
		"lhs", c.String(),
		"rhs_type", fmt.Sprintf("%T", other),
	)
	return false, fmt.Errorf("illegal operation %q for complex numbers: %w", op, ErrUnsupportedOperation)
}

// Pow is not implemented and always returns ErrNotImplemented.
func (c Complex) Pow(power any) (Complex, error) {
	return Complex{}, fmt.Errorf("pow %v**%v: %w", c, power, ErrNotImplemented)
}

// String returns the short form "(re, im)", each part in %g style.
func (c Complex) String() string {
	return fmt.Sprintf("(%.6g, %.6g)", c.re, c.im)
}

// GoString returns the detailed form "Complex(re, im)" used by %#v.
func (c Complex) GoString() string {
	return "Complex" + c.String()
}
