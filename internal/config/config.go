package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/bondiprof/internal/profile"
	"github.com/san-kum/bondiprof/internal/units"
)

const (
	DefaultMBHMsun  = 2e7
	DefaultVBHKmS   = 1000.0
	DefaultTAmb     = 1e7
	DefaultRho0Mp   = 1e-3
	DefaultTCGM     = 1e6
	DefaultRhoCGMMp = 1e-3
	DefaultRVirKpc  = 1.0
	DefaultGamma    = 5.0 / 3.0
	DefaultMu       = 1.0
	DefaultSamples  = 10000
)

// Config describes a scenario in the units people quote them in (Msun, km/s,
// pc, mp/cm^3); Params converts to CGS for the solver.
type Config struct {
	Closure string `yaml:"closure"`

	MBHMsun  float64 `yaml:"mbh_msun"`
	VBHKmS   float64 `yaml:"vbh_kms"`
	TAmb     float64 `yaml:"t_amb"`
	Rho0Mp   float64 `yaml:"rho0_mp"`
	TCGM     float64 `yaml:"t_cgm"`
	RhoCGMMp float64 `yaml:"rho_cgm_mp"`
	RVirKpc  float64 `yaml:"rvir_kpc"`
	Gamma    float64 `yaml:"gamma"`
	Mu       float64 `yaml:"mu"`

	// EpsilonPc <= 0 means "soften at the Bondi radius".
	EpsilonPc float64 `yaml:"epsilon_pc"`

	Cooltable string          `yaml:"cooltable"`
	Grid      GridConfig      `yaml:"grid"`
	Units     CodeUnitsConfig `yaml:"code_units"`
}

type GridConfig struct {
	RMinPc  float64 `yaml:"rmin_pc"`
	RMaxPc  float64 `yaml:"rmax_pc"`
	Samples int     `yaml:"samples"`
	Spacing string  `yaml:"spacing"` // "linear" or "log"
}

type CodeUnitsConfig struct {
	LengthKpc float64 `yaml:"length_kpc"`
	VelKmS    float64 `yaml:"velocity_kms"`
	DensityMp float64 `yaml:"density_mp"`
}

func DefaultConfig() *Config {
	return &Config{
		Closure:   "isothermal",
		MBHMsun:   DefaultMBHMsun,
		VBHKmS:    DefaultVBHKmS,
		TAmb:      DefaultTAmb,
		Rho0Mp:    DefaultRho0Mp,
		TCGM:      DefaultTCGM,
		RhoCGMMp:  DefaultRhoCGMMp,
		RVirKpc:   DefaultRVirKpc,
		Gamma:     DefaultGamma,
		Mu:        DefaultMu,
		EpsilonPc: 0,
		Cooltable: "cooltable.dat",
		Grid: GridConfig{
			RMinPc:  0.01,
			RMaxPc:  1e3,
			Samples: DefaultSamples,
			Spacing: "linear",
		},
		Units: CodeUnitsConfig{LengthKpc: 1.0, VelKmS: 10.0, DensityMp: 1.0},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the scenario to CGS solver parameters, resolving the
// softening length to the Bondi radius when unset.
func (c *Config) Params() profile.Params {
	p := profile.Params{
		MBH:     c.MBHMsun * units.Msun,
		VBH:     c.VBHKmS * units.KmS,
		TAmb:    c.TAmb,
		Rho0:    c.Rho0Mp * units.Mp,
		TCGM:    c.TCGM,
		RhoCGM:  c.RhoCGMMp * units.Mp,
		RVir:    c.RVirKpc * units.Kpc,
		Gamma:   c.Gamma,
		Mu:      c.Mu,
		Epsilon: c.EpsilonPc * units.Pc,
	}
	if c.EpsilonPc <= 0 {
		p.Epsilon = p.BondiRadius()
	}
	return p
}

// RadiusGrid builds the evaluation grid from the grid spec.
func (c *Config) RadiusGrid() (profile.RadiusGrid, error) {
	rmin := c.Grid.RMinPc * units.Pc
	rmax := c.Grid.RMaxPc * units.Pc
	switch c.Grid.Spacing {
	case "", "linear":
		return profile.Linspace(rmin, rmax, c.Grid.Samples)
	case "log":
		return profile.Logspace(rmin, rmax, c.Grid.Samples)
	}
	return nil, fmt.Errorf("config: unknown grid spacing %q", c.Grid.Spacing)
}

// CodeUnits builds the code-unit scales from the config.
func (c *Config) CodeUnits() units.CodeUnits {
	return units.CodeUnits{
		Length:   c.Units.LengthKpc * units.Kpc,
		Velocity: c.Units.VelKmS * units.KmS,
		Density:  c.Units.DensityMp * units.Mp,
	}
}

// NewClosure builds the configured closure.
func (c *Config) NewClosure() (profile.Closure, error) {
	switch c.Closure {
	case "isothermal":
		return profile.NewIsothermal(c.Params())
	case "polytropic":
		return profile.NewPolytropic(c.Params())
	}
	return nil, fmt.Errorf("config: unknown closure %q", c.Closure)
}
