package permittivity

import (
	"errors"
	"fmt"
)

var (
	// ErrNoVariant indicates a Record with neither variant populated.
	ErrNoVariant = errors.New("permittivity: record declares no model variant")
	// ErrBothVariants indicates a Record with both variants populated.
	ErrBothVariants = errors.New("permittivity: record declares both model variants")
	// ErrInconsistentKinds indicates a mixture mixing perturbation-theory and
	// experimental-data records.
	ErrInconsistentKinds = errors.New("permittivity: inconsistent model kinds across components")
	// ErrUnsortedPoints indicates experimental temperatures that decrease.
	ErrUnsortedPoints = errors.New("permittivity: experimental points must be sorted by temperature")
	// ErrEmptyModel indicates a variant with no coefficients or no points.
	ErrEmptyModel = errors.New("permittivity: model variant carries no data")
)

// Kind discriminates the two dielectric model variants.
type Kind int

const (
	// KindUnset marks a Record whose variant has not been inspected/set.
	KindUnset Kind = iota
	// KindPerturbationTheory marks the fitted correlation variant.
	KindPerturbationTheory
	// KindExperimentalData marks the tabulated variant.
	KindExperimentalData
)

// Point is one tabulated (temperature, relative permittivity) sample.
type Point struct {
	T       float64 `json:"t" yaml:"t"`
	Epsilon float64 `json:"epsilon" yaml:"epsilon"`
}

// PerturbationTheory carries the fitted correlation coefficients.
// For a pure-component record each slice holds one entry; Consolidate
// produces slices in component order.
type PerturbationTheory struct {
	DipoleScaling                []float64 `json:"dipole_scaling" yaml:"dipole_scaling"`
	PolarizabilityScaling        []float64 `json:"polarizability_scaling" yaml:"polarizability_scaling"`
	CorrelationIntegralParameter []float64 `json:"correlation_integral_parameter" yaml:"correlation_integral_parameter"`
}

// ExperimentalData carries tabulated samples. Data[k] is the point list of
// the k-th component covered by the record (one list for a pure record).
type ExperimentalData struct {
	Data [][]Point `json:"data" yaml:"data"`
}

// Record is the per-component dielectric model, a tagged union of the two
// variants. Exactly one pointer is non-nil on a well-formed record.
type Record struct {
	PerturbationTheory *PerturbationTheory `json:"perturbation_theory,omitempty" yaml:"perturbation_theory,omitempty"`
	ExperimentalData   *ExperimentalData   `json:"experimental_data,omitempty" yaml:"experimental_data,omitempty"`
}

// Kind reports which variant the record carries (KindUnset if neither).
func (r *Record) Kind() Kind {
	switch {
	case r == nil:
		return KindUnset
	case r.PerturbationTheory != nil && r.ExperimentalData != nil:
		return KindUnset
	case r.PerturbationTheory != nil:
		return KindPerturbationTheory
	case r.ExperimentalData != nil:
		return KindExperimentalData
	default:
		return KindUnset
	}
}

// Validate checks structural well-formedness of a single record:
// exactly one variant, and sorted experimental temperatures.
func (r *Record) Validate() error {
	if r.PerturbationTheory == nil && r.ExperimentalData == nil {
		return ErrNoVariant
	}
	if r.PerturbationTheory != nil && r.ExperimentalData != nil {
		return ErrBothVariants
	}
	if p := r.PerturbationTheory; p != nil {
		if len(p.DipoleScaling) == 0 || len(p.PolarizabilityScaling) == 0 ||
			len(p.CorrelationIntegralParameter) == 0 {
			return ErrEmptyModel
		}
	}
	if e := r.ExperimentalData; e != nil {
		if len(e.Data) == 0 {
			return ErrEmptyModel
		}
		for _, points := range e.Data {
			tPrev := 0.0
			for _, pt := range points {
				if pt.T < tPrev {
					return ErrUnsortedPoints
				}
				tPrev = pt.T
			}
		}
	}
	return nil
}

// Consolidate merges per-component records into one multi-component Record,
// in component order. Nil entries are skipped (components without a
// dielectric model contribute nothing).
//
// Stage 1 (Validate): each record well-formed, all kinds equal.
// Stage 2 (Aggregate): append the leading coefficient/point list of each.
// Stage 3 (Finalize): return nil when no record carries a model.
// Complexity: O(total points).
func Consolidate(records []*Record) (*Record, error) {
	kind := KindUnset
	pt := PerturbationTheory{}
	var points [][]Point

	for i, r := range records {
		if r == nil {
			continue
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("permittivity: component %d: %w", i, err)
		}
		k := r.Kind()
		if kind != KindUnset && k != kind {
			return nil, fmt.Errorf("permittivity: component %d: %w", i, ErrInconsistentKinds)
		}
		kind = k
		switch k {
		case KindPerturbationTheory:
			p := r.PerturbationTheory
			pt.DipoleScaling = append(pt.DipoleScaling, p.DipoleScaling[0])
			pt.PolarizabilityScaling = append(pt.PolarizabilityScaling, p.PolarizabilityScaling[0])
			pt.CorrelationIntegralParameter = append(pt.CorrelationIntegralParameter, p.CorrelationIntegralParameter[0])
		case KindExperimentalData:
			points = append(points, r.ExperimentalData.Data[0])
		}
	}

	switch kind {
	case KindPerturbationTheory:
		return &Record{PerturbationTheory: &pt}, nil
	case KindExperimentalData:
		return &Record{ExperimentalData: &ExperimentalData{Data: points}}, nil
	default:
		return nil, nil
	}
}
