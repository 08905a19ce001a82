// Package params is the parameter-combination engine of episaft: it turns
// per-component records and optional binary interaction records into the
// frozen Set that all property evaluation reads.
//
// What:
//
//   - Set: parallel per-component vectors (molar weight, m, σ, ε/k, μ, Q,
//     reduced μ², reduced Q², z), pairwise Lorentz–Berthelot matrices,
//     per-pair k_ij coefficient vectors, classification index lists
//     (dipolar, quadrupolar, ionic, solvent, temperature-dependent σ),
//     the association block, optional entropy-scaling coefficient matrices,
//     and the consolidated permittivity model.
//   - New / NewPure: build a Set once; it is read-only afterwards and safe
//     for concurrent readers without locking.
//   - SigmaT / HSDiameter / SigmaIJT / MonomerShape: hard-sphere geometry,
//     generic over dual.Number so derivatives with respect to temperature
//     propagate through forward-mode dual numbers.
//   - MarkdownTable: a formatted per-component parameter table.
//
// Mixing rules:
//
//	ε_ij = sqrt(ε_i·ε_j)          σ_ij = (σ_i+σ_j)/2
//	k_ij: up to 4 user coefficients per pair; ionic self-pairs are forced to
//	[1,0,0,0] regardless of user input (no binary interaction between
//	identically charged species).
//
// A note on the "sigma_t" marker: components whose display name contains
// saft.SigmaTMarker get the empirical temperature-dependent diameter
// correlation. Keying physical behavior off a display name is a fragile
// coupling inherited from the parameter databases; it is kept for
// compatibility and called out here rather than silently redesigned.
//
// Errors (construction fails as a whole; there is no partial Set):
//
//   - ErrNoComponents: no pure records supplied.
//   - ErrBinarySize: binary matrix dimension differs from the record count.
//   - ErrTooManyKij: a pair carries more than 4 interaction coefficients.
//   - ErrMissingPermittivity: ions present but some solvent lacks a
//     dielectric model.
//   - permittivity.ErrInconsistentKinds / ErrUnsortedPoints, wrapped with
//     the offending component index.
package params
