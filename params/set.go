package params

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/episaft/assoc"
	"github.com/katalvlaran/episaft/permittivity"
	"github.com/katalvlaran/episaft/saft"
)

// kB is the Boltzmann constant in J/K (CODATA 2018).
const kB = 1.380649e-23

// momentReduction converts μ[D]²/(m·σ[Å]³·ε/k[K]) into the dimensionless
// reduced squared moment: 1e-19 · (J/K)/k_B.
const momentReduction = 1e-19 / kB

// Set is the consolidated ePC-SAFT parameter set. It is built once by New
// and read-only afterwards: nothing in this package mutates a Set after
// construction, so concurrent readers need no locking.
//
// All per-component vectors have length n; all pairwise matrices are n×n.
// IonicComp and SolventComp partition {0..n-1} by charge.
type Set struct {
	// Per-component scalars.
	MolarWeight *mat.VecDense
	M           *mat.VecDense
	Sigma       *mat.VecDense
	EpsilonK    *mat.VecDense
	Mu          *mat.VecDense
	Q           *mat.VecDense
	// Mu2 and Q2 are the reduced squared dipole and quadrupole moments.
	Mu2 *mat.VecDense
	Q2  *mat.VecDense
	Z   *mat.VecDense

	// Assoc is the association parameter block.
	Assoc *assoc.Parameters

	// KIJ holds the per-pair interaction coefficient vectors, row-major n×n.
	// Prefer Kij(i, j) over direct indexing.
	KIJ [][4]float64
	// SigmaIJ and EKIJ are the Lorentz–Berthelot combination matrices.
	SigmaIJ *mat.Dense
	EKIJ    *mat.Dense

	// Classification index lists, in order of first occurrence.
	DipoleComp   []int
	QuadpoleComp []int
	IonicComp    []int
	SolventComp  []int
	SigmaTComp   []int

	// Entropy-scaling coefficient matrices (coefficients × components):
	// 4×n, 5×n and 4×n. A matrix is nil unless every component supplies the
	// family (all-or-nothing).
	Viscosity           *mat.Dense
	Diffusion           *mat.Dense
	ThermalConductivity *mat.Dense

	// Permittivity is the consolidated dielectric model, nil when no
	// component declared one.
	Permittivity *permittivity.Record

	// Pure and Binary retain the input records for provenance and display.
	Pure   []saft.PureRecord
	Binary *BinaryMatrix

	n int
}

// Len returns the component count n.
func (s *Set) Len() int { return s.n }

// Kij returns the 4-coefficient interaction vector of pair (i, j).
func (s *Set) Kij(i, j int) [4]float64 { return s.KIJ[i*s.n+j] }

// NDipole returns the number of dipolar components.
func (s *Set) NDipole() int { return len(s.DipoleComp) }

// NQuadpole returns the number of quadrupolar components.
func (s *Set) NQuadpole() int { return len(s.QuadpoleComp) }

// NIonic returns the number of charged components.
func (s *Set) NIonic() int { return len(s.IonicComp) }

// NSolvent returns the number of uncharged components.
func (s *Set) NSolvent() int { return len(s.SolventComp) }
