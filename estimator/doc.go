// Package estimator holds experimental data sets that drive an external
// equation-of-state property API, for comparing predictions against
// measurements.
//
// The package is a thin adapter layer: it owns no thermodynamics. A DataSet
// stores measured targets with their state-point inputs and asks an
// EntropyScaling implementation (the external property evaluator) for the
// corresponding predictions. Deviation helpers are built on gonum floats.
//
// Errors:
//
//   - ErrLengthMismatch: target and input slices differ in length.
package estimator
