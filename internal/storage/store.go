// Package storage persists evaluated profile runs: one directory per run
// holding metadata.json and profiles.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/bondiprof/internal/profile"
	"github.com/san-kum/bondiprof/internal/units"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Closure   string    `json:"closure"`
	Timestamp time.Time `json:"timestamp"`

	MBHMsun   float64 `json:"mbh_msun"`
	VBHKmS    float64 `json:"vbh_kms"`
	TAmb      float64 `json:"t_amb"`
	Gamma     float64 `json:"gamma"`
	Mu        float64 `json:"mu"`
	EpsilonPc float64 `json:"epsilon_pc"`

	BondiRadiusPc float64 `json:"bondi_radius_pc"`
	VirialTempK   float64 `json:"virial_temp_k"`

	Samples      int `json:"samples"`
	Invalid      int `json:"invalid_samples"`
	Extrapolated int `json:"extrapolated_lookups"`
}

// NewMetadata fills run metadata from the scenario and results. ts may be nil
// when no cooling table was supplied.
func NewMetadata(par profile.Params, prof *profile.Profile, ts *profile.Timescales) RunMetadata {
	meta := RunMetadata{
		ID:            fmt.Sprintf("%s_%d", prof.Closure, time.Now().Unix()),
		Closure:       prof.Closure,
		Timestamp:     time.Now(),
		MBHMsun:       par.MBH / units.Msun,
		VBHKmS:        par.VBH / units.KmS,
		TAmb:          par.TAmb,
		Gamma:         par.Gamma,
		Mu:            par.Mu,
		EpsilonPc:     par.Epsilon / units.Pc,
		BondiRadiusPc: par.BondiRadius() / units.Pc,
		VirialTempK:   par.VirialTemperature(),
		Samples:       len(prof.R),
		Invalid:       prof.InvalidCount(),
	}
	if ts != nil {
		meta.Extrapolated = ts.Extrapolated
	}
	return meta
}

// Save writes a run directory and returns its id. ts may be nil.
func (s *Store) Save(par profile.Params, prof *profile.Profile, ts *profile.Timescales) (string, error) {
	meta := NewMetadata(par, prof, ts)
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "profiles.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"radius_pc", "phi", "rho", "pressure", "temperature", "entropy"}
	if ts != nil {
		header = append(header, "t_cool_yr", "t_ff_yr")
	}
	header = append(header, "valid")
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := range prof.R {
		row := []string{
			fv(prof.R[i] / units.Pc),
			fv(prof.Phi[i]),
			fv(prof.Rho[i]),
			fv(prof.Pressure[i]),
			fv(prof.Temperature[i]),
			fv(prof.Entropy[i]),
		}
		if ts != nil {
			row = append(row, fv(ts.Cooling[i]/units.Yr), fv(ts.FreeFall[i]/units.Yr))
		}
		if prof.Valid[i] {
			row = append(row, "1")
		} else {
			row = append(row, "0")
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return meta.ID, nil
}

func fv(v float64) string {
	return strconv.FormatFloat(v, 'e', 9, 64)
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadProfiles reads a run's CSV back as a header plus column-major values.
func (s *Store) LoadProfiles(runID string) ([]string, map[string][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "profiles.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("storage: run %s has no samples", runID)
	}

	header := records[0]
	cols := make(map[string][]float64, len(header))
	for _, name := range header {
		cols[name] = make([]float64, 0, len(records)-1)
	}
	for _, rec := range records[1:] {
		for j, name := range header {
			v, err := strconv.ParseFloat(rec[j], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("storage: run %s: %w", runID, err)
			}
			cols[name] = append(cols[name], v)
		}
	}
	return header, cols, nil
}

// Dir returns the directory a run is stored in.
func (s *Store) Dir(runID string) string {
	return filepath.Join(s.baseDir, runID)
}
