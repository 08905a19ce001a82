// Package dual defines the numeric abstraction used by temperature-dependent
// property code, generic over plain floats and forward-mode dual numbers.
//
// What:
//
//   - Number[T] is the capability set a scalar must provide: field arithmetic,
//     scaling by a plain float, the exponential, the reciprocal, and real-part
//     extraction.
//   - Real is a float64 satisfying Number[Real].
//   - Dual is a forward-mode dual number (value + first derivative) built on
//     gonum.org/v1/gonum/num/dual, satisfying Number[Dual].
//
// Why:
//
//   - Downstream equation-of-state code differentiates hard-sphere diameters
//     and related quantities with respect to temperature. Writing those
//     formulas once, generic over Number, gives exact derivatives via Dual
//     without touching the float64 hot path.
//
// Errors: none. All operations are total on their domain; callers own the
// usual floating-point caveats (Recip of zero yields ±Inf, as with float64).
package dual
