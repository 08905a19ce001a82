package params

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/episaft/assoc"
	"github.com/katalvlaran/episaft/permittivity"
	"github.com/katalvlaran/episaft/saft"
)

// New builds the parameter Set from pure-component records and an optional
// binary interaction matrix.
//
// Stage 1 (Validate): component count, binary matrix dimension.
// Stage 2 (Copy): per-component scalars into parallel vectors.
// Stage 3 (Derive): reduced moments, classifications, association block,
// k_ij matrix with the ionic self-pair rule, Lorentz–Berthelot matrices,
// all-or-nothing entropy-scaling matrices, consolidated permittivity.
// Stage 4 (Finalize): freeze everything into the returned Set.
//
// Any configuration error aborts construction as a whole — there is no
// partial Set — and names the offending component or pair.
// Complexity: O(n²) time and memory.
func New(pure []saft.PureRecord, binary *BinaryMatrix) (*Set, error) {
	n := len(pure)
	if n == 0 {
		return nil, ErrNoComponents
	}
	if binary != nil && binary.Len() != n {
		return nil, fmt.Errorf("params: %d×%d binary matrix for %d components: %w",
			binary.Len(), binary.Len(), n, ErrBinarySize)
	}

	s := &Set{
		MolarWeight: mat.NewVecDense(n, nil),
		M:           mat.NewVecDense(n, nil),
		Sigma:       mat.NewVecDense(n, nil),
		EpsilonK:    mat.NewVecDense(n, nil),
		Mu:          mat.NewVecDense(n, nil),
		Q:           mat.NewVecDense(n, nil),
		Mu2:         mat.NewVecDense(n, nil),
		Q2:          mat.NewVecDense(n, nil),
		Z:           mat.NewVecDense(n, nil),
		Pure:        pure,
		Binary:      binary,
		n:           n,
	}

	assocRecords := make([]*assoc.Record, n)
	sigma := make([]float64, n)
	for i := range pure {
		r := &pure[i].Model
		s.MolarWeight.SetVec(i, pure[i].MolarWeight)
		s.M.SetVec(i, r.M)
		s.Sigma.SetVec(i, r.Sigma)
		s.EpsilonK.SetVec(i, r.EpsilonK)
		s.Mu.SetVec(i, valueOr(r.Mu, 0))
		s.Q.SetVec(i, valueOr(r.Q, 0))
		s.Z.SetVec(i, r.Charge())
		sigma[i] = r.Sigma
		if rec, ok := r.AssociationRecord(); ok {
			cp := rec
			assocRecords[i] = &cp
		}
	}

	// Reduced squared moments and the multipolar classifications.
	for i := 0; i < n; i++ {
		m, sg, ek := s.M.AtVec(i), s.Sigma.AtVec(i), s.EpsilonK.AtVec(i)
		mu, q := s.Mu.AtVec(i), s.Q.AtVec(i)
		s.Mu2.SetVec(i, mu*mu/(m*pow3(sg)*ek)*momentReduction)
		s.Q2.SetVec(i, q*q/(m*pow5(sg)*ek)*momentReduction)
		if math.Abs(s.Mu2.AtVec(i)) > 0 {
			s.DipoleComp = append(s.DipoleComp, i)
		}
		if math.Abs(s.Q2.AtVec(i)) > 0 {
			s.QuadpoleComp = append(s.QuadpoleComp, i)
		}
	}

	// Charge classification: ionic vs solvent partitions {0..n-1}.
	for i := 0; i < n; i++ {
		if s.Z.AtVec(i) != 0 {
			s.IonicComp = append(s.IonicComp, i)
		} else {
			s.SolventComp = append(s.SolventComp, i)
		}
	}

	// Display-name convention for the temperature-dependent diameter.
	for i := range pure {
		if pure[i].Identifier.SigmaT() {
			s.SigmaTComp = append(s.SigmaTComp, i)
		}
	}

	// Association block, with binary overrides harvested from the matrix.
	aps, err := assoc.New(assocRecords, sigma, binaryOverrides(binary))
	if err != nil {
		return nil, fmt.Errorf("params: association: %w", err)
	}
	s.Assoc = aps

	if err := buildKij(s, binary); err != nil {
		return nil, err
	}

	// Lorentz–Berthelot combination.
	s.SigmaIJ = mat.NewDense(n, n, nil)
	s.EKIJ = mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			s.EKIJ.Set(i, j, math.Sqrt(s.EpsilonK.AtVec(i)*s.EpsilonK.AtVec(j)))
			s.SigmaIJ.Set(i, j, 0.5*(s.Sigma.AtVec(i)+s.Sigma.AtVec(j)))
		}
	}

	buildEntropyScaling(s, pure)

	if err := buildPermittivity(s, pure); err != nil {
		return nil, err
	}
	return s, nil
}

// NewPure builds a single-component Set.
func NewPure(record saft.PureRecord) (*Set, error) {
	return New([]saft.PureRecord{record}, nil)
}

// binaryOverrides collects the cross-association overrides present in the
// binary matrix. Symmetric duplicates are harmless: assoc.New applies each
// override to both cells of the pair.
func binaryOverrides(binary *BinaryMatrix) []assoc.Override {
	if binary == nil {
		return nil
	}
	var overrides []assoc.Override
	n := binary.Len()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			rec := binary.At(i, j)
			if ov, ok := rec.AssociationRecord(); ok {
				overrides = append(overrides, assoc.Override{I: i, J: j, Record: ov})
			}
		}
	}
	return overrides
}

// buildKij fills the per-pair coefficient vectors: user values first, then
// the unconditional ionic self-pair rule — no binary interaction between
// identically charged species, whatever the database says.
func buildKij(s *Set, binary *BinaryMatrix) error {
	n := s.n
	s.KIJ = make([][4]float64, n*n)
	if binary != nil {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				coeffs := binary.At(i, j).KIJ
				if len(coeffs) > 4 {
					return fmt.Errorf("params: component pair (%d,%d) has %d interaction coefficients: %w",
						i, j, len(coeffs), ErrTooManyKij)
				}
				copy(s.KIJ[i*n+j][:], coeffs)
			}
		}
	}
	for _, ai := range s.IonicComp {
		s.KIJ[ai*n+ai] = [4]float64{1, 0, 0, 0}
	}
	return nil
}

// buildEntropyScaling assembles the coefficient matrices, one family at a
// time, only when every component supplies the family.
func buildEntropyScaling(s *Set, pure []saft.PureRecord) {
	n := s.n

	if all(pure, func(r *saft.ModelRecord) bool { return r.Viscosity != nil }) {
		v := mat.NewDense(4, n, nil)
		for i := range pure {
			for k, c := range pure[i].Model.Viscosity {
				v.Set(k, i, c)
			}
		}
		s.Viscosity = v
	}
	if all(pure, func(r *saft.ModelRecord) bool { return r.Diffusion != nil }) {
		v := mat.NewDense(5, n, nil)
		for i := range pure {
			for k, c := range pure[i].Model.Diffusion {
				v.Set(k, i, c)
			}
		}
		s.Diffusion = v
	}
	if all(pure, func(r *saft.ModelRecord) bool { return r.ThermalConductivity != nil }) {
		v := mat.NewDense(4, n, nil)
		for i := range pure {
			for k, c := range pure[i].Model.ThermalConductivity {
				v.Set(k, i, c)
			}
		}
		s.ThermalConductivity = v
	}
}

// buildPermittivity consolidates the per-component dielectric models and
// enforces the electrolyte rule: with ions present, every solvent needs one.
func buildPermittivity(s *Set, pure []saft.PureRecord) error {
	records := make([]*permittivity.Record, len(pure))
	count := 0
	for i := range pure {
		records[i] = pure[i].Model.Permittivity
		if records[i] != nil {
			count++
		}
	}
	if s.NIonic() > 0 && count < s.NSolvent() {
		return fmt.Errorf("params: %d permittivity records for %d solvents: %w",
			count, s.NSolvent(), ErrMissingPermittivity)
	}
	merged, err := permittivity.Consolidate(records)
	if err != nil {
		return fmt.Errorf("params: %w", err)
	}
	if s.NIonic() > 0 && merged == nil {
		return fmt.Errorf("params: no dielectric model in an ionic system: %w",
			ErrMissingPermittivity)
	}
	s.Permittivity = merged
	return nil
}

func all(pure []saft.PureRecord, pred func(*saft.ModelRecord) bool) bool {
	for i := range pure {
		if !pred(&pure[i].Model) {
			return false
		}
	}
	return true
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func pow3(x float64) float64 { return x * x * x }

func pow5(x float64) float64 { return x * x * x * x * x }
