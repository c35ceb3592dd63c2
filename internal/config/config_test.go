package config

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/san-kum/bondiprof/internal/units"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Closure != "isothermal" {
		t.Errorf("expected closure isothermal, got %s", cfg.Closure)
	}
	if cfg.MBHMsun <= 0 {
		t.Error("black hole mass should be positive")
	}
	if cfg.Grid.Samples < 2 {
		t.Error("grid needs at least two samples")
	}
}

func TestParamsConversion(t *testing.T) {
	cfg := DefaultConfig()
	p := cfg.Params()

	if p.MBH != 2e7*units.Msun {
		t.Errorf("MBH = %g, want %g", p.MBH, 2e7*units.Msun)
	}
	if p.VBH != 1e8 {
		t.Errorf("VBH = %g cm/s, want 1e8", p.VBH)
	}
	if p.RVir != units.Kpc {
		t.Errorf("RVir = %g, want 1 kpc", p.RVir)
	}

	// fiducial closed forms
	cs := p.SoundSpeed()
	if want := math.Sqrt(units.KB * 1e7 / units.Mp); math.Abs(cs-want)/want > 1e-14 {
		t.Errorf("sound speed = %g, want %g", cs, want)
	}
	rb := p.BondiRadius()
	if rb <= 0 || math.IsInf(rb, 0) {
		t.Error("Bondi radius not positive finite")
	}
}

func TestEpsilonDefaultsToBondi(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EpsilonPc = 0
	p := cfg.Params()
	if p.Epsilon != p.BondiRadius() {
		t.Errorf("epsilon = %g, want Bondi radius %g", p.Epsilon, p.BondiRadius())
	}

	cfg.EpsilonPc = 10
	p = cfg.Params()
	if p.Epsilon != 10*units.Pc {
		t.Errorf("epsilon = %g, want 10 pc", p.Epsilon)
	}
}

func TestRadiusGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid.Samples = 100

	g, err := cfg.RadiusGrid()
	if err != nil {
		t.Fatal(err)
	}
	if len(g) != 100 {
		t.Fatalf("expected 100 samples, got %d", len(g))
	}

	cfg.Grid.Spacing = "log"
	if _, err := cfg.RadiusGrid(); err != nil {
		t.Errorf("log spacing: %v", err)
	}

	cfg.Grid.Spacing = "cubic"
	if _, err := cfg.RadiusGrid(); err == nil {
		t.Error("expected error for unknown spacing")
	}
}

func TestNewClosure(t *testing.T) {
	cfg := DefaultConfig()
	c, err := cfg.NewClosure()
	if err != nil {
		t.Fatal(err)
	}
	if c.Name() != "isothermal" {
		t.Errorf("closure name %q", c.Name())
	}

	cfg.Closure = "polytropic"
	cfg.EpsilonPc = 10
	c, err = cfg.NewClosure()
	if err != nil {
		t.Fatal(err)
	}
	if c.Name() != "polytropic" {
		t.Errorf("closure name %q", c.Name())
	}

	cfg.Closure = "barotropic"
	if _, err := cfg.NewClosure(); err == nil {
		t.Error("expected error for unknown closure")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("polytropic", "adiabatic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.EpsilonPc != 10 {
		t.Errorf("expected epsilon 10 pc, got %f", cfg.EpsilonPc)
	}
	if cfg.Gamma != 5.0/3.0 {
		t.Errorf("expected gamma 5/3, got %f", cfg.Gamma)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("isothermal", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "fiducial") != nil {
		t.Error("expected nil for nonexistent closure")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("isothermal")) == 0 {
		t.Error("expected presets for isothermal")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent closure")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	cfg := GetPreset("polytropic", "steep")
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Closure != "polytropic" || got.Gamma != 1.4 || got.EpsilonPc != 10 {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config")
	}
}
