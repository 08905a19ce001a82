package params

import (
	"fmt"
	"strings"
)

// MarkdownTable renders one row per component with the identifying and
// physical parameters, association fields defaulting to zero when absent.
// Pure formatting; no numeric computation happens here.
func (s *Set) MarkdownTable() string {
	var b strings.Builder
	b.WriteString("|component|molarweight|$m$|$\\sigma$|$\\varepsilon$|$\\mu$|$Q$|$z$|" +
		"$\\kappa_{AB}$|$\\varepsilon_{AB}$|$N_A$|$N_B$|$N_C$|\n")
	b.WriteString("|-|-|-|-|-|-|-|-|-|-|-|-|-|")
	for i := range s.Pure {
		r := &s.Pure[i].Model
		a, _ := r.AssociationRecord() // zero block when absent
		fmt.Fprintf(&b, "\n|%s|%v|%v|%v|%v|%v|%v|%v|%v|%v|%v|%v|%v|",
			s.Pure[i].Identifier.DisplayName(i),
			s.Pure[i].MolarWeight,
			r.M, r.Sigma, r.EpsilonK,
			valueOr(r.Mu, 0), valueOr(r.Q, 0), r.Charge(),
			a.KappaAB, a.EpsilonKAB, a.NA, a.NB, a.NC,
		)
	}
	return b.String()
}
