// Package episaft is a parameter engine for the electrolyte PC-SAFT
// equation of state — from raw per-component records to the frozen,
// share-everywhere parameter set that property evaluation consumes.
//
// 🚀 What is episaft?
//
//	A small, deterministic library that brings together:
//		• Pure-component records: segment number, diameter, energy, multipoles,
//		  charge, association sites, entropy-scaling coefficients
//		• Group contribution: aggregate segment records into one component
//		• Mixing rules: Lorentz–Berthelot combination, binary k_ij coefficients,
//		  ionic self-pair suppression
//		• Hard-sphere geometry: temperature-dependent diameters, generic over
//		  plain floats and forward-mode dual numbers
//		• Association & permittivity: cross-association combining rules and
//		  consolidated dielectric models for electrolyte systems
//
// ✨ Why choose episaft?
//
//   - Build once, read anywhere – a Set is immutable after construction and
//     safe for concurrent reads without locking
//   - Configuration errors, not crashes – every malformed input is reported
//     as a sentinel error naming the offending component or pair
//   - Differentiable by design – temperature-dependent quantities evaluate
//     on gonum dual numbers for derivative propagation
//
// Under the hood, everything is organized under small subpackages:
//
//	assoc/        — association (hydrogen-bonding) parameter block
//	dual/         — generic numeric abstraction (float64 + dual numbers)
//	estimator/    — experimental data sets driving an external property API
//	loader/       — JSON/YAML parameter databases and component selection
//	params/       — the parameter builder, Set, and hard-sphere geometry
//	permittivity/ — dielectric models (perturbation theory / tabulated data)
//	saft/         — record types and the segment aggregator
//
// Quick start:
//
//	pure, _ := loader.ReadPureRecords("water_nacl.json")
//	set, err := params.New(pure, nil)
//	if err != nil { ... }
//	d := params.HSDiameter(set, dual.Real(298.15))
//
//	go get github.com/katalvlaran/episaft
package episaft
