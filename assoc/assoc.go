package assoc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Record describes the association behavior of one component.
// A component with no hydrogen-bonding sites simply has no Record.
type Record struct {
	// KappaAB is the dimensionless association volume.
	KappaAB float64 `json:"kappa_ab" yaml:"kappa_ab"`
	// EpsilonKAB is the association energy divided by k_B, in Kelvin.
	EpsilonKAB float64 `json:"epsilon_k_ab" yaml:"epsilon_k_ab"`
	// NA, NB, NC count the association sites of type A, B and C.
	NA float64 `json:"na" yaml:"na"`
	NB float64 `json:"nb" yaml:"nb"`
	NC float64 `json:"nc" yaml:"nc"`
}

// BinaryRecord overrides the cross-association parameters of one pair.
// Nil fields keep the combining-rule value.
type BinaryRecord struct {
	KappaAB    *float64 `json:"kappa_ab,omitempty" yaml:"kappa_ab,omitempty"`
	EpsilonKAB *float64 `json:"epsilon_k_ab,omitempty" yaml:"epsilon_k_ab,omitempty"`
}

// Override pins a BinaryRecord to a component pair (I, J).
type Override struct {
	I, J   int
	Record BinaryRecord
}

// Parameters is the consolidated association parameter block.
// It is immutable after New returns; all matrices are n×n over the full
// component index space with zeros for non-associating components.
type Parameters struct {
	// Comp lists the indices of associating components, in component order.
	Comp []int
	// KappaAB and EpsilonKAB hold the pairwise cross-association volume and
	// energy, already subject to binary overrides.
	KappaAB    *mat.Dense
	EpsilonKAB *mat.Dense
	// NA, NB, NC are the per-component site counts (zero where no record).
	NA, NB, NC []float64
}

// Option adjusts combining behavior. Reserved for alternative cross rules;
// the zero configuration is the CR-1 rule described in the package docs.
type Option func(*config)

type config struct {
	// plainGeometric drops the σ-ratio correction on κ_AB,ij.
	plainGeometric bool
}

// WithPlainGeometricKappa combines κ_AB,ij as the bare geometric mean,
// without the σ-ratio correction factor.
func WithPlainGeometricKappa() Option {
	return func(c *config) { c.plainGeometric = true }
}

// New builds the association parameter block from per-component records.
//
// records[i] is nil for non-associating components. sigma must carry one
// diameter per record. overrides apply symmetrically to (I,J) and (J,I).
// Complexity: O(n²) time and memory.
func New(records []*Record, sigma []float64, overrides []Override, opts ...Option) (*Parameters, error) {
	if len(sigma) != len(records) {
		return nil, fmt.Errorf("assoc: %d records vs %d sigma values: %w",
			len(records), len(sigma), ErrSigmaLength)
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(records)
	p := &Parameters{
		KappaAB:    mat.NewDense(max(n, 1), max(n, 1), nil),
		EpsilonKAB: mat.NewDense(max(n, 1), max(n, 1), nil),
		NA:         make([]float64, n),
		NB:         make([]float64, n),
		NC:         make([]float64, n),
	}
	for i, r := range records {
		if r == nil {
			continue
		}
		p.Comp = append(p.Comp, i)
		p.NA[i] = r.NA
		p.NB[i] = r.NB
		p.NC[i] = r.NC
	}

	// Pairwise combination over associating components only; everything else
	// stays zero.
	for _, i := range p.Comp {
		for _, j := range p.Comp {
			ri, rj := records[i], records[j]
			p.EpsilonKAB.Set(i, j, 0.5*(ri.EpsilonKAB+rj.EpsilonKAB))
			kappa := math.Sqrt(ri.KappaAB * rj.KappaAB)
			if !cfg.plainGeometric {
				ratio := math.Sqrt(sigma[i]*sigma[j]) / (0.5 * (sigma[i] + sigma[j]))
				kappa *= ratio * ratio * ratio
			}
			p.KappaAB.Set(i, j, kappa)
		}
	}

	for _, ov := range overrides {
		if ov.I < 0 || ov.I >= n || ov.J < 0 || ov.J >= n {
			return nil, fmt.Errorf("assoc: override (%d,%d): %w", ov.I, ov.J, ErrPairIndex)
		}
		if k := ov.Record.KappaAB; k != nil {
			p.KappaAB.Set(ov.I, ov.J, *k)
			p.KappaAB.Set(ov.J, ov.I, *k)
		}
		if e := ov.Record.EpsilonKAB; e != nil {
			p.EpsilonKAB.Set(ov.I, ov.J, *e)
			p.EpsilonKAB.Set(ov.J, ov.I, *e)
		}
	}
	return p, nil
}

// IsAssociating reports whether component i carries association sites.
func (p *Parameters) IsAssociating(i int) bool {
	for _, c := range p.Comp {
		if c == i {
			return true
		}
	}
	return false
}
