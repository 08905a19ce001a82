package params

import "errors"

var (
	// ErrNoComponents indicates New was called without pure records.
	ErrNoComponents = errors.New("params: at least one pure record is required")
	// ErrBinarySize indicates the binary matrix does not match the component count.
	ErrBinarySize = errors.New("params: binary matrix size must equal component count")
	// ErrTooManyKij indicates a pair parametrized with more than 4 k_ij coefficients.
	ErrTooManyKij = errors.New("params: more than 4 binary interaction coefficients")
	// ErrMissingPermittivity indicates an electrolyte system where some solvent
	// lacks a dielectric model.
	ErrMissingPermittivity = errors.New("params: permittivity record required for every solvent when ions are present")
)
