package params

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/episaft/dual"
)

// Empirical temperature correlation for flagged segment diameters:
// σ_t(T) = σ + c1·exp(−a1·T) − c2·exp(−a2·T), constants fixed by calibration.
const (
	sigmaTA1 = 0.01775
	sigmaTC1 = 10.11
	sigmaTA2 = 0.01146
	sigmaTC2 = 1.417
)

// ionicDiameterFactor is the fixed fractional reduction applied to ionic
// hard-sphere diameters: rigid ions are temperature-independent spheres.
const ionicDiameterFactor = 1 - 0.12

// SigmaT returns the per-component effective segment diameter at the given
// temperature. Components flagged by the sigma_t naming convention follow
// the empirical correlation, evaluated on the real part of T; everything
// else keeps its static σ. Complexity: O(n).
func SigmaT[T dual.Number[T]](s *Set, temperature T) []float64 {
	tre := temperature.Re()
	out := make([]float64, s.n)
	for i := 0; i < s.n; i++ {
		out[i] = s.Sigma.AtVec(i)
	}
	for _, i := range s.SigmaTComp {
		out[i] += sigmaTC1*math.Exp(-sigmaTA1*tre) - sigmaTC2*math.Exp(-sigmaTA2*tre)
	}
	return out
}

// HSDiameter returns the per-component hard-sphere diameter
//
//	d_i(T) = σ_t,i · (1 − 0.12·exp(−3·ε_i/T))
//
// except for ionic components, which use the fixed reduction
// d_i = σ_t,i · 0.88 with no energy dependence. The result carries the
// active numeric type, so dual-number temperatures propagate derivatives.
// Complexity: O(n).
func HSDiameter[T dual.Number[T]](s *Set, temperature T) []T {
	sigmaT := SigmaT(s, temperature)
	ti := temperature.Recip().Scale(-3)
	one := dual.Promote[T](1)

	d := make([]T, s.n)
	for i := 0; i < s.n; i++ {
		d[i] = one.Sub(ti.Scale(s.EpsilonK.AtVec(i)).Exp().Scale(0.12)).Scale(sigmaT[i])
	}
	for _, ai := range s.IonicComp {
		d[ai] = dual.Promote[T](sigmaT[ai] * ionicDiameterFactor)
	}
	return d
}

// SigmaIJT returns the pairwise arithmetic mean of SigmaT values, n×n.
// Complexity: O(n²).
func SigmaIJT[T dual.Number[T]](s *Set, temperature T) *mat.Dense {
	sigmaT := SigmaT(s, temperature)
	out := mat.NewDense(s.n, s.n, nil)
	for i := 0; i < s.n; i++ {
		for j := 0; j < s.n; j++ {
			out.Set(i, j, 0.5*(sigmaT[i]+sigmaT[j]))
		}
	}
	return out
}

// Chain declares the monomer shape assumed by the hard-sphere reference
// term: every component is a non-spherical chain of M[i] segments, promoted
// to the active numeric type.
type Chain[T dual.Number[T]] struct {
	M []T
}

// MonomerShape returns the Chain declaration for the Set.
func MonomerShape[T dual.Number[T]](s *Set) Chain[T] {
	m := make([]T, s.n)
	for i := 0; i < s.n; i++ {
		m[i] = dual.Promote[T](s.M.AtVec(i))
	}
	return Chain[T]{M: m}
}
