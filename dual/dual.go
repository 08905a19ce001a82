package dual

import gdual "gonum.org/v1/gonum/num/dual"

// Dual is a forward-mode dual number: a real value plus the coefficient of
// the nilpotent unit ε (ε² = 0), i.e. a first derivative carried through
// arithmetic. It satisfies Number[Dual].
//
// The representation delegates to gonum's num/dual package; Dual only adapts
// it to the Number capability set.
type Dual struct {
	num gdual.Number
}

// NewDual returns the dual number re + ε·emag.
func NewDual(re, emag float64) Dual {
	return Dual{num: gdual.Number{Real: re, Emag: emag}}
}

// Var returns re seeded as the differentiation variable (derivative 1).
// Evaluating f(Var(x)) yields f(x) in Re and f′(x) in Emag.
func Var(re float64) Dual {
	return NewDual(re, 1)
}

// Add returns d + other.
func (d Dual) Add(other Dual) Dual { return Dual{num: gdual.Add(d.num, other.num)} }

// Sub returns d − other.
func (d Dual) Sub(other Dual) Dual { return Dual{num: gdual.Sub(d.num, other.num)} }

// Mul returns d · other.
func (d Dual) Mul(other Dual) Dual { return Dual{num: gdual.Mul(d.num, other.num)} }

// Scale returns d · s for a plain float s.
func (d Dual) Scale(s float64) Dual { return Dual{num: gdual.Scale(s, d.num)} }

// Exp returns e^d.
func (d Dual) Exp() Dual { return Dual{num: gdual.Exp(d.num)} }

// Recip returns 1/d.
func (d Dual) Recip() Dual { return Dual{num: gdual.Inv(d.num)} }

// Re returns the real part of d.
func (d Dual) Re() float64 { return d.num.Real }

// Emag returns the ε coefficient of d — the propagated first derivative.
func (d Dual) Emag() float64 { return d.num.Emag }

// FromFloat promotes x to a constant Dual (derivative 0); receiver ignored.
func (Dual) FromFloat(x float64) Dual { return NewDual(x, 0) }
