// Package saft defines the pure-component and binary record types of the
// electrolyte PC-SAFT model, plus the group-contribution segment aggregator.
//
// What:
//
//   - Identifier: external identity (name, CAS, formula, ...). Opaque to the
//     engine except for the reserved "sigma_t" display-name marker that flags
//     a temperature-dependent segment diameter.
//   - ModelRecord: segment number m, diameter σ (Å), energy ε/k (K), and the
//     optional blocks — dipole μ, quadrupole Q, association, ionic charge z,
//     entropy-scaling coefficient families, dielectric model.
//   - PureRecord: Identifier + molar weight + ModelRecord.
//   - BinaryRecord: up to 4 binary interaction coefficients k_ij and an
//     optional association override for one pair.
//   - FromSegments: aggregates (segment record, count) pairs into a single
//     ModelRecord under the group-contribution mixing rules.
//
// Aggregation rules (FromSegments):
//
//	m      = Σ m_s·n_s
//	σ³     = Σ m_s·σ_s³·n_s / m        (σ³-weighted diameter)
//	ε/k    = Σ m_s·ε_s·n_s / m
//	μ, Q   = plain sums over segments that define them
//	assoc  = element-wise sum of (κ·n, ε_AB·n, N_A·n, N_B·n, N_C·n)
//	z      = plain sum, missing values as 0
//
// Entropy-scaling families are aggregated only when every segment supplies
// them (all-or-nothing); the first viscosity coefficient picks up a
// −½·ln(m) shift for the Chapman–Enskog reference difference between the
// group-contribution and regular formulations.
//
// Errors:
//
//   - ErrNoSegments: FromSegments called with an empty segment list.
package saft
