package saft

import (
	"errors"
	"math"
)

// ErrNoSegments indicates FromSegments was called with an empty list.
var ErrNoSegments = errors.New("saft: at least one segment is required")

// Segment pairs a group-contribution segment record with its (real-valued)
// count in the molecule.
type Segment struct {
	Record ModelRecord
	Count  float64
}

// IntSegment is the integral-count variant; see FromIntSegments.
type IntSegment struct {
	Record ModelRecord
	Count  int
}

// FromSegments aggregates group-contribution segments into one component
// record under the mixing rules documented in the package docs.
//
// Missing optional blocks default silently: μ, Q and association are absent
// from the result unless at least one segment defines them; z defaults
// missing values to zero. Entropy-scaling families are all-or-nothing per
// family. The permittivity model is never derived from segments.
// Complexity: O(len(segments)).
func FromSegments(segments []Segment) (ModelRecord, error) {
	if len(segments) == 0 {
		return ModelRecord{}, ErrNoSegments
	}

	var m, sigma3, epsilonK, z float64
	for _, s := range segments {
		m += s.Record.M * s.Count
		sigma3 += s.Record.M * cube(s.Record.Sigma) * s.Count
		epsilonK += s.Record.M * s.Record.EpsilonK * s.Count
		z += deref(s.Record.Z)
	}

	out := ModelRecord{
		M:        m,
		Sigma:    math.Cbrt(sigma3 / m),
		EpsilonK: epsilonK / m,
		Z:        Float(z),
	}

	out.Mu = sumDefined(segments, func(r *ModelRecord) *float64 { return r.Mu })
	out.Q = sumDefined(segments, func(r *ModelRecord) *float64 { return r.Q })
	aggregateAssociation(segments, &out)
	aggregateEntropyScaling(segments, sigma3, m, &out)
	return out, nil
}

// FromIntSegments forwards to FromSegments with counts converted to floats.
func FromIntSegments(segments []IntSegment) (ModelRecord, error) {
	converted := make([]Segment, len(segments))
	for i, s := range segments {
		converted[i] = Segment{Record: s.Record, Count: float64(s.Count)}
	}
	return FromSegments(converted)
}

// sumDefined sums field·count over segments that define field, nil if none do.
func sumDefined(segments []Segment, field func(*ModelRecord) *float64) *float64 {
	var total float64
	defined := false
	for _, s := range segments {
		if v := field(&s.Record); v != nil {
			total += *v * s.Count
			defined = true
		}
	}
	if !defined {
		return nil
	}
	return Float(total)
}

// aggregateAssociation sums the count-scaled association blocks of segments
// that carry one; out keeps no block when no segment has one.
func aggregateAssociation(segments []Segment, out *ModelRecord) {
	var kappa, epsilon, na, nb, nc float64
	found := false
	for _, s := range segments {
		rec, ok := s.Record.AssociationRecord()
		if !ok {
			continue
		}
		found = true
		kappa += rec.KappaAB * s.Count
		epsilon += rec.EpsilonKAB * s.Count
		na += rec.NA * s.Count
		nb += rec.NB * s.Count
		nc += rec.NC * s.Count
	}
	if !found {
		return
	}
	out.KappaAB = Float(kappa)
	out.EpsilonKAB = Float(epsilon)
	out.NA = Float(na)
	out.NB = Float(nb)
	out.NC = Float(nc)
}

// aggregateEntropyScaling fills the all-or-nothing coefficient families.
//
// Viscosity:           [σ³-weighted a, σ³-weighted b / σ³_tot^0.45, Σn·c, Σn·d],
// then a −½·ln(m) shift on the first coefficient for the Chapman–Enskog
// reference difference between the GC and regular formulations.
// Thermal conductivity: [Σn·a, Σn·b, Σn·c, n_tot·Σd].
// Diffusion: group contributions are not parametrized; the family is carried
// as zeros so all-or-nothing detection still works downstream.
func aggregateEntropyScaling(segments []Segment, sigma3, m float64, out *ModelRecord) {
	haveVisc, haveTC, haveDiff := true, true, true
	var nTotal float64
	for _, s := range segments {
		haveVisc = haveVisc && s.Record.Viscosity != nil
		haveTC = haveTC && s.Record.ThermalConductivity != nil
		haveDiff = haveDiff && s.Record.Diffusion != nil
		nTotal += s.Count
	}

	if haveVisc {
		var v [4]float64
		for _, s := range segments {
			s3 := s.Record.M * cube(s.Record.Sigma) * s.Count
			c := s.Record.Viscosity
			v[0] += s3 * c[0]
			v[1] += s3 * c[1] / math.Pow(sigma3, 0.45)
			v[2] += s.Count * c[2]
			v[3] += s.Count * c[3]
		}
		v[0] -= 0.5 * math.Log(m)
		out.Viscosity = &v
	}
	if haveTC {
		var v [4]float64
		for _, s := range segments {
			c := s.Record.ThermalConductivity
			v[0] += s.Count * c[0]
			v[1] += s.Count * c[1]
			v[2] += s.Count * c[2]
			v[3] += nTotal * c[3]
		}
		out.ThermalConductivity = &v
	}
	if haveDiff {
		out.Diffusion = &[5]float64{}
	}
}

func cube(x float64) float64 { return x * x * x }
