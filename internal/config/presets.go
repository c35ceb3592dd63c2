package config

import "sort"

// Presets are the shipped scenarios, keyed by closure then name.
var Presets = map[string]map[string]*Config{
	"isothermal": {
		// the fiducial case: softening at the Bondi radius
		"fiducial": {
			Closure: "isothermal",
			MBHMsun: 2e7, VBHKmS: 1000, TAmb: 1e7, Rho0Mp: 1e-3,
			TCGM: 1e6, RhoCGMMp: 1e-3, RVirKpc: 1, Gamma: 5.0 / 3.0, Mu: 1,
			EpsilonPc: 0,
			Cooltable: "cooltable.dat",
			Grid:      GridConfig{RMinPc: 0.01, RMaxPc: 1e3, Samples: 10000, Spacing: "linear"},
			Units:     CodeUnitsConfig{LengthKpc: 1, VelKmS: 10, DensityMp: 1},
		},
		"cold": {
			Closure: "isothermal",
			MBHMsun: 2e7, VBHKmS: 1000, TAmb: 1e6, Rho0Mp: 1e-3,
			TCGM: 1e6, RhoCGMMp: 1e-3, RVirKpc: 1, Gamma: 5.0 / 3.0, Mu: 1,
			EpsilonPc: 0,
			Cooltable: "cooltable.dat",
			Grid:      GridConfig{RMinPc: 0.01, RMaxPc: 1e3, Samples: 10000, Spacing: "linear"},
			Units:     CodeUnitsConfig{LengthKpc: 1, VelKmS: 10, DensityMp: 1},
		},
	},
	"polytropic": {
		// adiabatic equilibrium with a 10 pc softening
		"adiabatic": {
			Closure: "polytropic",
			MBHMsun: 2e7, VBHKmS: 1000, TAmb: 1e7, Rho0Mp: 1e-3,
			TCGM: 1e6, RhoCGMMp: 1e-3, RVirKpc: 1, Gamma: 5.0 / 3.0, Mu: 1,
			EpsilonPc: 10,
			Cooltable: "cooltable.dat",
			Grid:      GridConfig{RMinPc: 0.01, RMaxPc: 1e3, Samples: 10000, Spacing: "linear"},
			Units:     CodeUnitsConfig{LengthKpc: 1, VelKmS: 10, DensityMp: 1},
		},
		"soft": {
			Closure: "polytropic",
			MBHMsun: 2e7, VBHKmS: 1000, TAmb: 1e7, Rho0Mp: 1e-3,
			TCGM: 1e6, RhoCGMMp: 1e-3, RVirKpc: 1, Gamma: 5.0 / 3.0, Mu: 1,
			EpsilonPc: 100,
			Cooltable: "cooltable.dat",
			Grid:      GridConfig{RMinPc: 0.01, RMaxPc: 1e3, Samples: 10000, Spacing: "linear"},
			Units:     CodeUnitsConfig{LengthKpc: 1, VelKmS: 10, DensityMp: 1},
		},
		"steep": {
			Closure: "polytropic",
			MBHMsun: 2e7, VBHKmS: 1000, TAmb: 1e7, Rho0Mp: 1e-3,
			TCGM: 1e6, RhoCGMMp: 1e-3, RVirKpc: 1, Gamma: 1.4, Mu: 1,
			EpsilonPc: 10,
			Cooltable: "cooltable.dat",
			Grid:      GridConfig{RMinPc: 0.01, RMaxPc: 1e3, Samples: 10000, Spacing: "linear"},
			Units:     CodeUnitsConfig{LengthKpc: 1, VelKmS: 10, DensityMp: 1},
		},
	},
}

func GetPreset(closure, preset string) *Config {
	m, ok := Presets[closure]
	if !ok {
		return nil
	}
	cfg, ok := m[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(closure string) []string {
	m, ok := Presets[closure]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
