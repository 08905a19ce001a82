package estimator

import "fmt"

// Viscosity stores experimental viscosity data over (T, p) state points.
type Viscosity struct {
	target      []float64
	temperature []float64
	pressure    []float64
}

// NewViscosity creates a viscosity data set; all slices must share a length.
func NewViscosity(target, temperature, pressure []float64) (*Viscosity, error) {
	if len(target) != len(temperature) || len(target) != len(pressure) {
		return nil, fmt.Errorf("estimator: %d targets, %d temperatures, %d pressures: %w",
			len(target), len(temperature), len(pressure), ErrLengthMismatch)
	}
	return &Viscosity{target: target, temperature: temperature, pressure: pressure}, nil
}

// Target returns the measured viscosities.
func (v *Viscosity) Target() []float64 { return v.target }

// TargetName implements DataSet.
func (v *Viscosity) TargetName() string { return "viscosity" }

// InputNames implements DataSet.
func (v *Viscosity) InputNames() []string { return []string{"temperature", "pressure"} }

// Temperature returns the stored temperatures.
func (v *Viscosity) Temperature() []float64 { return v.temperature }

// Pressure returns the stored pressures.
func (v *Viscosity) Pressure() []float64 { return v.pressure }

// Predict evaluates the external property API at every state point; the
// first failing point aborts with its index.
func (v *Viscosity) Predict(eos EntropyScaling) ([]float64, error) {
	out := make([]float64, len(v.target))
	for i := range v.target {
		eta, err := eos.Viscosity(v.temperature[i], v.pressure[i])
		if err != nil {
			return nil, fmt.Errorf("estimator: point %d (T=%g K, p=%g Pa): %w",
				i, v.temperature[i], v.pressure[i], err)
		}
		out[i] = eta
	}
	return out, nil
}
