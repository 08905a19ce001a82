package saft

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/episaft/assoc"
)

// BinaryRecord holds the binary interaction parameters of one component pair:
// a sequence of up to 4 temperature-expansion coefficients for k_ij and an
// optional cross-association override.
//
// The coefficient-count limit is enforced by the parameter builder, not here,
// so that a malformed database row is reported with its pair indices.
type BinaryRecord struct {
	// KIJ holds the binary interaction coefficients; an empty slice means
	// k_ij = 0.
	KIJ []float64 `json:"k_ij,omitempty" yaml:"k_ij,omitempty,flow"`
	// KappaAB and EpsilonKAB override the cross-association combining rule.
	KappaAB    *float64 `json:"kappa_ab,omitempty" yaml:"kappa_ab,omitempty"`
	EpsilonKAB *float64 `json:"epsilon_k_ab,omitempty" yaml:"epsilon_k_ab,omitempty"`
}

// AssociationRecord returns the cross-association override, ok=false when
// neither field is set.
func (r *BinaryRecord) AssociationRecord() (rec assoc.BinaryRecord, ok bool) {
	if r.KappaAB == nil && r.EpsilonKAB == nil {
		return assoc.BinaryRecord{}, false
	}
	return assoc.BinaryRecord{KappaAB: r.KappaAB, EpsilonKAB: r.EpsilonKAB}, true
}

// IsZero reports whether the record carries no information at all.
func (r *BinaryRecord) IsZero() bool {
	return len(r.KIJ) == 0 && r.KappaAB == nil && r.EpsilonKAB == nil
}

// String renders the record for diagnostics.
func (r BinaryRecord) String() string {
	var tokens []string
	for k, c := range r.KIJ {
		tokens = append(tokens, fmt.Sprintf("k_ij_%d=%v", k, c))
	}
	if r.KappaAB != nil {
		tokens = append(tokens, fmt.Sprintf("kappa_ab=%v", *r.KappaAB))
	}
	if r.EpsilonKAB != nil {
		tokens = append(tokens, fmt.Sprintf("epsilon_k_ab=%v", *r.EpsilonKAB))
	}
	return "BinaryRecord(" + strings.Join(tokens, ", ") + ")"
}
