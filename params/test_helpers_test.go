// Package params_test fixtures: a small cast of real parameter sets used
// across the builder and geometry tests — alkanes for the neutral paths,
// water + NaCl for the electrolyte paths.
package params_test

import (
	"github.com/katalvlaran/episaft/params"
	"github.com/katalvlaran/episaft/permittivity"
	"github.com/katalvlaran/episaft/saft"
)

func propaneRecord() saft.PureRecord {
	return saft.PureRecord{
		Identifier:  saft.Identifier{CAS: "74-98-6", Name: "propane", Formula: "C3H8"},
		MolarWeight: 44.0962,
		Model: saft.ModelRecord{
			M: 2.001829, Sigma: 3.618353, EpsilonK: 208.1101,
			Viscosity:           &[4]float64{-0.8013, -1.9972, -0.2907, -0.0467},
			ThermalConductivity: &[4]float64{-0.15348, -0.6388, 1.21342, -0.01664},
			Diffusion:           &[5]float64{-0.675163251512047, 0.3212017677695878, 0.100175249144429, 0, 0},
		},
	}
}

func butaneRecord() saft.PureRecord {
	return saft.PureRecord{
		Identifier:  saft.Identifier{CAS: "106-97-8", Name: "butane", Formula: "C4H10"},
		MolarWeight: 58.123,
		Model: saft.ModelRecord{
			M: 2.331586, Sigma: 3.7086010000000003, EpsilonK: 222.8774,
			Viscosity: &[4]float64{-0.9763, -2.2413, -0.3690, -0.0605},
			Diffusion: &[5]float64{-0.8985872992958458, 0.3428584416613513, 0.10236616087103916, 0, 0},
		},
	}
}

func co2Record() saft.PureRecord {
	return saft.PureRecord{
		Identifier:  saft.Identifier{CAS: "124-38-9", Name: "carbon-dioxide", Formula: "CO2"},
		MolarWeight: 44.0098,
		Model: saft.ModelRecord{
			M: 1.5131, Sigma: 3.1869, EpsilonK: 163.333,
			Q: saft.Float(4.4),
		},
	}
}

func dmeRecord() saft.PureRecord {
	return saft.PureRecord{
		Identifier:  saft.Identifier{CAS: "115-10-6", Name: "dimethyl-ether", Formula: "C2H6O"},
		MolarWeight: 46.0688,
		Model: saft.ModelRecord{
			M: 2.2634, Sigma: 3.2723, EpsilonK: 210.29,
			Mu: saft.Float(1.3),
		},
	}
}

func waterRecord() saft.PureRecord {
	return saft.PureRecord{
		Identifier:  saft.Identifier{CAS: "7732-18-5", Name: "water_np", Formula: "H2O"},
		MolarWeight: 18.0152,
		Model: saft.ModelRecord{
			M: 1.065587, Sigma: 3.000683, EpsilonK: 366.5121,
			KappaAB: saft.Float(0.034867983), EpsilonKAB: saft.Float(2500.6706),
			NA: saft.Float(1), NB: saft.Float(1),
		},
	}
}

// waterSigmaTRecord flags the temperature-dependent diameter via the
// display-name convention.
func waterSigmaTRecord() saft.PureRecord {
	r := saft.PureRecord{
		Identifier:  saft.Identifier{CAS: "7732-18-5", Name: "water_np_sigma_t", Formula: "H2O"},
		MolarWeight: 18.0152,
		Model: saft.ModelRecord{
			M: 1.2047, Sigma: 2.7927, EpsilonK: 353.95,
			KappaAB: saft.Float(0.04509), EpsilonKAB: saft.Float(2425.7),
		},
	}
	return r
}

func waterPermittivityPT() *permittivity.Record {
	return &permittivity.Record{PerturbationTheory: &permittivity.PerturbationTheory{
		DipoleScaling:                []float64{1.8546},
		PolarizabilityScaling:        []float64{1.4573},
		CorrelationIntegralParameter: []float64{0.9},
	}}
}

func sodiumRecord() saft.PureRecord {
	return saft.PureRecord{
		Identifier:  saft.Identifier{CAS: "110-54-3", Name: "na+", Formula: "na+"},
		MolarWeight: 22.98976,
		Model: saft.ModelRecord{
			M: 1, Sigma: 2.8232, EpsilonK: 230,
			Z: saft.Float(1),
		},
	}
}

func chlorideRecord() saft.PureRecord {
	return saft.PureRecord{
		Identifier:  saft.Identifier{CAS: "7782-50-5", Name: "cl-", Formula: "cl-"},
		MolarWeight: 35.45,
		Model: saft.ModelRecord{
			M: 1, Sigma: 2.7560, EpsilonK: 170,
			Z: saft.Float(-1),
		},
	}
}

// waterNaClRecords assembles the Held et al. water + NaCl fixture with the
// dielectric model the electrolyte rule requires, plus the published k_ij.
func waterNaClRecords() ([]saft.PureRecord, *params.BinaryMatrix) {
	water := waterSigmaTRecord()
	water.Model.Permittivity = waterPermittivityPT()
	pure := []saft.PureRecord{water, sodiumRecord(), chlorideRecord()}

	binary := params.NewBinaryMatrix(3)
	binary.SetSym(0, 1, saft.BinaryRecord{KIJ: []float64{0.0045}})
	binary.SetSym(0, 2, saft.BinaryRecord{KIJ: []float64{-0.25}})
	binary.SetSym(1, 2, saft.BinaryRecord{KIJ: []float64{0.317}})
	return pure, binary
}
