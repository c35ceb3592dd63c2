package storage

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
)

// ExportData is the JSON shape of a full run export.
type ExportData struct {
	Meta     RunMetadata          `json:"meta"`
	Fields   []string             `json:"fields"`
	Profiles map[string][]float64 `json:"profiles"`
}

// ExportJSON writes a saved run as a single JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	header, cols, err := s.LoadProfiles(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{Meta: *meta, Fields: header, Profiles: cols})
}

// ExportJSONFile writes the export to a file path.
func (s *Store) ExportJSONFile(path, runID string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.ExportJSON(f, runID)
}

// ExportCSV copies a run's profiles.csv to the writer.
func (s *Store) ExportCSV(w io.Writer, runID string) error {
	f, err := os.Open(filepath.Join(s.Dir(runID), "profiles.csv"))
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(w, f)
	return err
}
