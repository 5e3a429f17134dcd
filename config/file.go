package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/zshift/matrix"
	"github.com/katalvlaran/zshift/shift"
)

// StableSource selects where the baseline comes from.
type StableSource string

const (
	// StableInput takes the first matrix of the file as the baseline.
	StableInput StableSource = "input"

	// StableAverage averages the observed matrices.
	StableAverage StableSource = "average"
)

// File is one YAML request document.
//
// Methodology is kept as written; Request rejects an unknown tag before any
// matrix is inspected. Optional numeric fields are pointers; nil
// means the methodology default.
type File struct {
	Methodology  string        `yaml:"methodology"`
	Rho          *float64      `yaml:"rho,omitempty"`
	Bounds       []float64     `yaml:"bounds,omitempty,flow"`
	Tolerance    *float64      `yaml:"tolerance,omitempty"`
	RowTolerance *float64      `yaml:"row_tolerance,omitempty"`
	Stable       StableSource  `yaml:"stable,omitempty"`
	Matrices     [][][]float64 `yaml:"matrices"`
}

// Load reads and parses the request file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes a YAML request document. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}

	return &f, nil
}

// Marshal encodes f back to YAML.
func (f *File) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("config: encode yaml: %w", err)
	}

	return out, nil
}

// Source returns the normalized stable source; empty means StableAverage.
func (f *File) Source() (StableSource, error) {
	switch s := StableSource(strings.ToLower(strings.TrimSpace(string(f.Stable)))); s {
	case "", StableAverage:
		return StableAverage, nil
	case StableInput:
		return StableInput, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrStableSource, f.Stable)
	}
}

// Request converts f into a shift.Request.
//
// Options start from shift.DefaultOptions for the declared methodology and
// are overridden by rho, bounds, tolerance and row_tolerance when present.
// The methodology tag is checked first, before any other field or matrix.
//
// Errors: shift.ErrUnknownMethodology, ErrStableSource, ErrBounds,
// ErrNoMatrices, ErrNoObservedAfterStable,
// and matrix construction errors tagged with the matrix position.
func (f *File) Request() (shift.Request, error) {
	m, err := shift.ParseMethodology(f.Methodology)
	if err != nil {
		return shift.Request{}, err
	}
	src, err := f.Source()
	if err != nil {
		return shift.Request{}, err
	}

	opts := shift.DefaultOptions(m)
	if f.Rho != nil {
		opts.Rho = *f.Rho
	}
	if f.Bounds != nil {
		if len(f.Bounds) != 2 {
			return shift.Request{}, fmt.Errorf("%w: got %d", ErrBounds, len(f.Bounds))
		}
		opts.Lower, opts.Upper = f.Bounds[0], f.Bounds[1]
	}
	if f.Tolerance != nil {
		opts.Tol = *f.Tolerance
	}
	if f.RowTolerance != nil {
		opts.RowSumTol = *f.RowTolerance
	}

	ms, err := f.Dense()
	if err != nil {
		return shift.Request{}, err
	}

	req := shift.Request{Methodology: m, Observed: ms, Options: &opts}
	if src == StableInput {
		if len(ms) < 2 {
			return shift.Request{}, ErrNoObservedAfterStable
		}
		req.Stable, req.Observed = ms[0], ms[1:]
	}

	return req, nil
}

// Dense converts every matrix literal in file order.
func (f *File) Dense() ([]*matrix.Dense, error) {
	if len(f.Matrices) == 0 {
		return nil, ErrNoMatrices
	}
	out := make([]*matrix.Dense, len(f.Matrices))
	for k, rows := range f.Matrices {
		d, err := matrix.FromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("config: matrix %d: %w", k, err)
		}
		out[k] = d
	}

	return out, nil
}
