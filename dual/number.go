package dual

import "math"

// Number is the capability set required of a scalar type used in
// temperature-dependent property evaluation.
//
// The constraint is deliberately minimal: the hard-sphere correlations need
// nothing beyond {+, −, ×, scale, exp, 1/x, re}. FromFloat is the promotion
// hook; it must ignore its receiver so that a zero value can promote
// (see Promote).
type Number[T any] interface {
	// Add returns the sum of the receiver and other.
	Add(other T) T
	// Sub returns the difference of the receiver and other.
	Sub(other T) T
	// Mul returns the product of the receiver and other.
	Mul(other T) T
	// Scale returns the receiver multiplied by the plain float s.
	Scale(s float64) T
	// Exp returns the exponential of the receiver.
	Exp() T
	// Recip returns the reciprocal of the receiver.
	Recip() T
	// Re returns the real part of the receiver.
	Re() float64
	// FromFloat promotes a plain float to T. The receiver carries no state
	// into the result.
	FromFloat(x float64) T
}

// Promote lifts a plain float64 into any Number type T.
// Complexity: O(1).
func Promote[T Number[T]](x float64) T {
	var zero T
	return zero.FromFloat(x)
}

// Real is an ordinary float64 scalar satisfying Number[Real].
// It is the type to use whenever no derivative information is needed.
type Real float64

// Add returns r + other.
func (r Real) Add(other Real) Real { return r + other }

// Sub returns r − other.
func (r Real) Sub(other Real) Real { return r - other }

// Mul returns r · other.
func (r Real) Mul(other Real) Real { return r * other }

// Scale returns r · s.
func (r Real) Scale(s float64) Real { return r * Real(s) }

// Exp returns e^r.
func (r Real) Exp() Real { return Real(math.Exp(float64(r))) }

// Recip returns 1/r.
func (r Real) Recip() Real { return 1 / r }

// Re returns the value itself.
func (r Real) Re() float64 { return float64(r) }

// FromFloat promotes x to Real; the receiver is ignored.
func (Real) FromFloat(x float64) Real { return Real(x) }
