package saft

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/episaft/assoc"
	"github.com/katalvlaran/episaft/permittivity"
)

// SigmaTMarker is the reserved display-name token flagging a component whose
// segment diameter follows the empirical temperature correlation.
//
// This is a naming convention inherited from the parameter databases, not a
// physical field; see the params package docs for the consequences.
const SigmaTMarker = "sigma_t"

// Identifier carries the external identity of a component. The parameter
// engine treats it as opaque except for SigmaT below.
type Identifier struct {
	CAS       string `json:"cas,omitempty" yaml:"cas,omitempty"`
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	IUPACName string `json:"iupac_name,omitempty" yaml:"iupac_name,omitempty"`
	SMILES    string `json:"smiles,omitempty" yaml:"smiles,omitempty"`
	InChI     string `json:"inchi,omitempty" yaml:"inchi,omitempty"`
	Formula   string `json:"formula,omitempty" yaml:"formula,omitempty"`
}

// SigmaT reports whether the display name carries the SigmaTMarker token.
func (id Identifier) SigmaT() bool {
	return strings.Contains(id.Name, SigmaTMarker)
}

// DisplayName returns Name, or a positional fallback for unnamed components.
func (id Identifier) DisplayName(index int) string {
	if id.Name != "" {
		return id.Name
	}
	return fmt.Sprintf("Component %d", index+1)
}

// ModelRecord holds the ePC-SAFT parameters of one component. The association
// fields are flattened into the record the way the parameter databases store
// them; nil means "not parametrized" throughout.
type ModelRecord struct {
	// M is the segment number (dimensionless, > 0).
	M float64 `json:"m" yaml:"m"`
	// Sigma is the segment diameter in Ångström (> 0).
	Sigma float64 `json:"sigma" yaml:"sigma"`
	// EpsilonK is the dispersion energy divided by k_B, in Kelvin (> 0).
	EpsilonK float64 `json:"epsilon_k" yaml:"epsilon_k"`
	// Mu is the dipole moment in Debye.
	Mu *float64 `json:"mu,omitempty" yaml:"mu,omitempty"`
	// Q is the quadrupole moment in Debye·Å.
	Q *float64 `json:"q,omitempty" yaml:"q,omitempty"`
	// KappaAB, EpsilonKAB, NA, NB, NC form the optional association block.
	KappaAB    *float64 `json:"kappa_ab,omitempty" yaml:"kappa_ab,omitempty"`
	EpsilonKAB *float64 `json:"epsilon_k_ab,omitempty" yaml:"epsilon_k_ab,omitempty"`
	NA         *float64 `json:"na,omitempty" yaml:"na,omitempty"`
	NB         *float64 `json:"nb,omitempty" yaml:"nb,omitempty"`
	NC         *float64 `json:"nc,omitempty" yaml:"nc,omitempty"`
	// Viscosity, Diffusion and ThermalConductivity are the entropy-scaling
	// coefficient families.
	Viscosity           *[4]float64 `json:"viscosity,omitempty" yaml:"viscosity,omitempty,flow"`
	Diffusion           *[5]float64 `json:"diffusion,omitempty" yaml:"diffusion,omitempty,flow"`
	ThermalConductivity *[4]float64 `json:"thermal_conductivity,omitempty" yaml:"thermal_conductivity,omitempty,flow"`
	// Z is the ionic charge in elementary charges.
	Z *float64 `json:"z,omitempty" yaml:"z,omitempty"`
	// Permittivity is the optional dielectric model of a solvent.
	Permittivity *permittivity.Record `json:"permittivity_record,omitempty" yaml:"permittivity_record,omitempty"`
}

// AssociationRecord assembles the flattened association fields into an
// assoc.Record. ok is false when none of the five fields is set; when any is
// set, missing ones default to zero.
func (r *ModelRecord) AssociationRecord() (rec assoc.Record, ok bool) {
	if r.KappaAB == nil && r.EpsilonKAB == nil && r.NA == nil && r.NB == nil && r.NC == nil {
		return assoc.Record{}, false
	}
	return assoc.Record{
		KappaAB:    deref(r.KappaAB),
		EpsilonKAB: deref(r.EpsilonKAB),
		NA:         deref(r.NA),
		NB:         deref(r.NB),
		NC:         deref(r.NC),
	}, true
}

// Charge returns z, defaulting to 0 for uncharged components.
func (r *ModelRecord) Charge() float64 { return deref(r.Z) }

// String renders the record for diagnostics, omitting absent blocks.
func (r ModelRecord) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ModelRecord(m=%v, sigma=%v, epsilon_k=%v", r.M, r.Sigma, r.EpsilonK)
	if r.Mu != nil {
		fmt.Fprintf(&b, ", mu=%v", *r.Mu)
	}
	if r.Q != nil {
		fmt.Fprintf(&b, ", q=%v", *r.Q)
	}
	if a, ok := r.AssociationRecord(); ok {
		fmt.Fprintf(&b, ", kappa_ab=%v, epsilon_k_ab=%v, na=%v, nb=%v, nc=%v",
			a.KappaAB, a.EpsilonKAB, a.NA, a.NB, a.NC)
	}
	if r.Viscosity != nil {
		fmt.Fprintf(&b, ", viscosity=%v", *r.Viscosity)
	}
	if r.Diffusion != nil {
		fmt.Fprintf(&b, ", diffusion=%v", *r.Diffusion)
	}
	if r.ThermalConductivity != nil {
		fmt.Fprintf(&b, ", thermal_conductivity=%v", *r.ThermalConductivity)
	}
	if r.Z != nil {
		fmt.Fprintf(&b, ", z=%v", *r.Z)
	}
	b.WriteString(")")
	return b.String()
}

// PureRecord couples the external identity and molar weight with the model
// parameters — the unit the parameter builder consumes.
type PureRecord struct {
	Identifier  Identifier  `json:"identifier" yaml:"identifier"`
	MolarWeight float64     `json:"molarweight" yaml:"molarweight"`
	Model       ModelRecord `json:"model_record" yaml:"model_record"`
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// Float returns a pointer to x, for literal record construction.
func Float(x float64) *float64 { return &x }
