// Package permittivity models the static dielectric constant of solvents,
// either through a perturbation-theory correlation or through tabulated
// experimental data.
//
// What:
//
//   - Record is a two-variant tagged union. Exactly one of the variant
//     pointers is set: PerturbationTheory (dipole scaling, polarizability
//     scaling, correlation-integral parameter) or ExperimentalData (sorted
//     temperature/permittivity points).
//   - Consolidate merges the per-component records of a mixture into one
//     multi-component Record in component order.
//
// Why:
//
//   - Electrolyte PC-SAFT needs a dielectric background for the Born and
//     Debye–Hückel contributions; every solvent must declare one when ions
//     are present. The parameter builder enforces that rule and calls
//     Consolidate for the validation below.
//
// Errors:
//
//   - ErrNoVariant: a Record has neither variant set.
//   - ErrBothVariants: a Record has both variants set.
//   - ErrEmptyModel: a variant carries no coefficients or points.
//   - ErrInconsistentKinds: a mixture mixes the two model kinds.
//   - ErrUnsortedPoints: experimental temperatures decrease somewhere.
package permittivity
