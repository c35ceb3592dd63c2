// Package cooling loads a tabulated cooling function Lambda(T) and exposes a
// linear interpolant over it. Tables are plain text, two whitespace-separated
// columns (temperature in K, Lambda in erg*cm^3/s), sorted ascending in
// temperature. Lines starting with '#' and blank lines are skipped.
package cooling

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrEmptyTable indicates a table with fewer than two usable rows.
	ErrEmptyTable = errors.New("cooling: table needs at least two rows")

	// ErrUnsorted indicates table temperatures that are not strictly increasing.
	ErrUnsorted = errors.New("cooling: table temperatures must be strictly increasing")
)

// LoadError reports a missing or malformed table. Line is zero when the file
// itself could not be read.
type LoadError struct {
	Path    string
	Line    int
	Wrapped error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("cooling: %s:%d: %v", e.Path, e.Line, e.Wrapped)
	}
	return fmt.Sprintf("cooling: %s: %v", e.Path, e.Wrapped)
}

func (e *LoadError) Unwrap() error { return e.Wrapped }

// Table is the tabulated cooling function: parallel temperature and Lambda
// columns, immutable after load.
type Table struct {
	T      []float64
	Lambda []float64
}

// Load reads a cooling table from path. Any failure is fatal to the caller:
// profile evaluation must not begin without a usable table.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Wrapped: err}
	}
	defer f.Close()

	tab := &Table{}
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, &LoadError{
				Path:    path,
				Line:    line,
				Wrapped: fmt.Errorf("expected 2 columns, got %d", len(fields)),
			}
		}
		t, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, &LoadError{Path: path, Line: line, Wrapped: err}
		}
		lam, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, &LoadError{Path: path, Line: line, Wrapped: err}
		}
		tab.T = append(tab.T, t)
		tab.Lambda = append(tab.Lambda, lam)
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Path: path, Wrapped: err}
	}

	if len(tab.T) < 2 {
		return nil, &LoadError{Path: path, Wrapped: ErrEmptyTable}
	}
	for i := 1; i < len(tab.T); i++ {
		if tab.T[i] <= tab.T[i-1] {
			return nil, &LoadError{Path: path, Line: 0, Wrapped: ErrUnsorted}
		}
	}
	return tab, nil
}

// Interp builds the linear interpolant over the table.
func (t *Table) Interp() *Interp {
	in, err := NewInterp(t.T, t.Lambda)
	if err != nil {
		// Load already validated ordering and length.
		panic(err)
	}
	return in
}
