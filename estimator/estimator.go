package estimator

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrLengthMismatch indicates target and input slices of differing length.
var ErrLengthMismatch = errors.New("estimator: target and input slices must have equal length")

// EntropyScaling is the external property API a data set predicts against:
// an equation of state with entropy-scaled transport properties. State
// construction and root finding live behind this interface.
type EntropyScaling interface {
	// Viscosity returns the dynamic viscosity in Pa·s at the given
	// temperature (K) and pressure (Pa) for the parametrized system.
	Viscosity(temperature, pressure float64) (float64, error)
}

// DataSet is one block of experimental data with its prediction rule.
type DataSet interface {
	// Target returns the measured values.
	Target() []float64
	// TargetName names the measured property.
	TargetName() string
	// InputNames names the state-point inputs, in storage order.
	InputNames() []string
	// Predict evaluates the external property API at every stored state point.
	Predict(eos EntropyScaling) ([]float64, error)
}

// RelativeDifference returns (prediction − target)/target per point.
func RelativeDifference(ds DataSet, eos EntropyScaling) ([]float64, error) {
	pred, err := ds.Predict(eos)
	if err != nil {
		return nil, err
	}
	target := ds.Target()
	out := make([]float64, len(pred))
	floats.SubTo(out, pred, target)
	floats.Div(out, target)
	return out, nil
}

// MeanAbsoluteRelativeDifference collapses RelativeDifference into one cost
// value, the usual regression objective.
func MeanAbsoluteRelativeDifference(ds DataSet, eos EntropyScaling) (float64, error) {
	rel, err := RelativeDifference(ds, eos)
	if err != nil {
		return 0, err
	}
	for i, r := range rel {
		rel[i] = math.Abs(r)
	}
	return floats.Sum(rel) / float64(len(rel)), nil
}
