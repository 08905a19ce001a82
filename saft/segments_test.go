package saft_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/episaft/saft"
)

// Two methylene-like segments used across the aggregation tests.
func ch3Segment() saft.ModelRecord {
	return saft.ModelRecord{M: 0.77, Sigma: 3.55, EpsilonK: 190.1}
}

func ch2Segment() saft.ModelRecord {
	return saft.ModelRecord{M: 0.38, Sigma: 3.93, EpsilonK: 230.7}
}

func TestFromSegments_Empty(t *testing.T) {
	_, err := saft.FromSegments(nil)
	require.ErrorIs(t, err, saft.ErrNoSegments)
}

func TestFromSegments_MixingRules(t *testing.T) {
	segs := []saft.Segment{
		{Record: ch3Segment(), Count: 2},
		{Record: ch2Segment(), Count: 3},
	}
	got, err := saft.FromSegments(segs)
	require.NoError(t, err)

	// Hand-computed totals.
	m := 0.77*2 + 0.38*3
	sigma3 := 0.77*math.Pow(3.55, 3)*2 + 0.38*math.Pow(3.93, 3)*3
	epsK := (0.77*190.1*2 + 0.38*230.7*3) / m

	require.InDelta(t, m, got.M, 1e-12)
	require.InDelta(t, math.Cbrt(sigma3/m), got.Sigma, 1e-12)
	require.InDelta(t, epsK, got.EpsilonK, 1e-12)
	// No segment defines μ, Q or association: blocks stay absent.
	require.Nil(t, got.Mu)
	require.Nil(t, got.Q)
	_, ok := got.AssociationRecord()
	require.False(t, ok)
	// z defaults missing values to zero and is always present on the result.
	require.NotNil(t, got.Z)
	require.Equal(t, 0.0, *got.Z)
}

func TestFromSegments_OrderIndependent(t *testing.T) {
	a := saft.Segment{Record: ch3Segment(), Count: 2}
	b := saft.Segment{Record: ch2Segment(), Count: 3}
	c := saft.Segment{Record: saft.ModelRecord{M: 1.2, Sigma: 2.9, EpsilonK: 350,
		Mu: saft.Float(1.7)}, Count: 1}

	direct, err := saft.FromSegments([]saft.Segment{a, b, c})
	require.NoError(t, err)
	permuted, err := saft.FromSegments([]saft.Segment{c, a, b})
	require.NoError(t, err)

	require.InDelta(t, direct.M, permuted.M, 1e-12)
	require.InDelta(t, direct.Sigma, permuted.Sigma, 1e-12)
	require.InDelta(t, direct.EpsilonK, permuted.EpsilonK, 1e-12)
	require.InDelta(t, *direct.Mu, *permuted.Mu, 1e-12)
}

func TestFromSegments_PartialMultipoles(t *testing.T) {
	// One segment defines μ, the other does not: missing contributes zero.
	polar := saft.ModelRecord{M: 1, Sigma: 3.2, EpsilonK: 210, Mu: saft.Float(1.3)}
	apolar := ch3Segment()
	got, err := saft.FromSegments([]saft.Segment{
		{Record: polar, Count: 2},
		{Record: apolar, Count: 1},
	})
	require.NoError(t, err)
	require.NotNil(t, got.Mu)
	require.InDelta(t, 2.6, *got.Mu, 1e-12)
	require.Nil(t, got.Q)
}

func TestFromSegments_AssociationSums(t *testing.T) {
	hb := saft.ModelRecord{M: 1, Sigma: 3.0, EpsilonK: 350,
		KappaAB: saft.Float(0.03), EpsilonKAB: saft.Float(2500),
		NA: saft.Float(1), NB: saft.Float(1)}
	got, err := saft.FromSegments([]saft.Segment{
		{Record: hb, Count: 2},
		{Record: ch2Segment(), Count: 1},
	})
	require.NoError(t, err)
	rec, ok := got.AssociationRecord()
	require.True(t, ok)
	require.InDelta(t, 0.06, rec.KappaAB, 1e-12)
	require.InDelta(t, 5000.0, rec.EpsilonKAB, 1e-12)
	require.InDelta(t, 2.0, rec.NA, 1e-12)
	require.InDelta(t, 2.0, rec.NB, 1e-12)
	require.InDelta(t, 0.0, rec.NC, 1e-12)
}

func TestFromSegments_ChargeSums(t *testing.T) {
	ion := saft.ModelRecord{M: 1, Sigma: 2.8, EpsilonK: 230, Z: saft.Float(1)}
	got, err := saft.FromSegments([]saft.Segment{
		{Record: ion, Count: 1},
		{Record: ch3Segment(), Count: 1},
	})
	require.NoError(t, err)
	require.Equal(t, 1.0, *got.Z)
}

func TestFromSegments_EntropyScalingAllOrNothing(t *testing.T) {
	withVisc := ch3Segment()
	withVisc.Viscosity = &[4]float64{-0.8, -2.0, -0.29, -0.05}
	without := ch2Segment()

	got, err := saft.FromSegments([]saft.Segment{
		{Record: withVisc, Count: 1},
		{Record: without, Count: 2},
	})
	require.NoError(t, err)
	require.Nil(t, got.Viscosity)
	require.Nil(t, got.ThermalConductivity)
	require.Nil(t, got.Diffusion)
}

func TestFromSegments_ViscosityReferenceCorrection(t *testing.T) {
	seg := ch3Segment()
	seg.Viscosity = &[4]float64{-0.8, -2.0, -0.29, -0.05}

	got, err := saft.FromSegments([]saft.Segment{{Record: seg, Count: 2}})
	require.NoError(t, err)
	require.NotNil(t, got.Viscosity)

	m := seg.M * 2
	s3 := seg.M * math.Pow(seg.Sigma, 3) * 2 // the single segment's σ³ total
	want0 := s3*(-0.8) - 0.5*math.Log(m)
	want1 := s3 * (-2.0) / math.Pow(s3, 0.45)
	require.InDelta(t, want0, got.Viscosity[0], 1e-12)
	require.InDelta(t, want1, got.Viscosity[1], 1e-12)
	require.InDelta(t, 2*(-0.29), got.Viscosity[2], 1e-12)
	require.InDelta(t, 2*(-0.05), got.Viscosity[3], 1e-12)
}

func TestFromSegments_ThermalConductivity(t *testing.T) {
	a := ch3Segment()
	a.ThermalConductivity = &[4]float64{-0.15, -0.64, 1.21, -0.017}
	b := ch2Segment()
	b.ThermalConductivity = &[4]float64{-0.10, -0.50, 1.00, -0.010}

	got, err := saft.FromSegments([]saft.Segment{
		{Record: a, Count: 1},
		{Record: b, Count: 2},
	})
	require.NoError(t, err)
	require.NotNil(t, got.ThermalConductivity)

	nTotal := 3.0
	require.InDelta(t, 1*(-0.15)+2*(-0.10), got.ThermalConductivity[0], 1e-12)
	require.InDelta(t, 1*(-0.64)+2*(-0.50), got.ThermalConductivity[1], 1e-12)
	require.InDelta(t, 1*1.21+2*1.00, got.ThermalConductivity[2], 1e-12)
	require.InDelta(t, nTotal*(-0.017)+nTotal*(-0.010), got.ThermalConductivity[3], 1e-12)
}

func TestFromIntSegments_ForwardsToRealVariant(t *testing.T) {
	fromInt, err := saft.FromIntSegments([]saft.IntSegment{
		{Record: ch3Segment(), Count: 2},
		{Record: ch2Segment(), Count: 3},
	})
	require.NoError(t, err)
	fromFloat, err := saft.FromSegments([]saft.Segment{
		{Record: ch3Segment(), Count: 2},
		{Record: ch2Segment(), Count: 3},
	})
	require.NoError(t, err)
	require.Equal(t, fromFloat.M, fromInt.M)
	require.Equal(t, fromFloat.Sigma, fromInt.Sigma)
	require.Equal(t, fromFloat.EpsilonK, fromInt.EpsilonK)
}

func TestIdentifier_SigmaTMarker(t *testing.T) {
	require.True(t, saft.Identifier{Name: "water_np_sigma_t"}.SigmaT())
	require.False(t, saft.Identifier{Name: "water_np"}.SigmaT())
	require.Equal(t, "Component 3", saft.Identifier{}.DisplayName(2))
}
