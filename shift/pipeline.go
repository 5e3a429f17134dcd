package shift

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/zshift/matrix"
)

// Request is one pipeline invocation.
//
//   - Methodology — model tag; validated before any matrix is touched.
//   - Stable      — baseline; nil means "average of Observed".
//   - Observed    — observed matrices, one per period, in reporting order.
//   - Options     — nil means DefaultOptions(Methodology).
type Request struct {
	Methodology Methodology
	Stable      *matrix.Dense
	Observed    []*matrix.Dense
	Options     *Options
}

// Pipeline runs shift estimation requests. It holds only a logger and is
// safe for concurrent use.
type Pipeline struct {
	log *zap.Logger
}

// NewPipeline returns a Pipeline logging to log (nil disables logging).
func NewPipeline(log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}

	return &Pipeline{log: log.Named("shift")}
}

// Run executes req with a no-op logger. See (*Pipeline).Run.
func Run(req Request) ([]Estimate, error) {
	return NewPipeline(nil).Run(req)
}

// Run validates req and fits one shift per observed matrix.
//
// Implementation:
//   - Stage 1: methodology tag (ErrUnknownMethodology) and options (ErrInvalidParameter).
//   - Stage 2: row sums of the stable matrix (reported as matrix 0) and of
//     every observed matrix (reported as 1..n), failing on the first
//     violation with a *matrix.RowSumError.
//   - Stage 3: baseline resolution (supplied or matrix.Average) and shape
//     agreement with every observed matrix (ErrShapeMismatch).
//   - Stage 4: Vasicek bin boundaries, computed once from the baseline.
//   - Stage 5: one golden-section fit per observed matrix, in input order.
//
// The result has len(req.Observed) entries with Estimate.Index == position.
// On any error the result is nil.
func (p *Pipeline) Run(req Request) ([]Estimate, error) {
	m, err := ParseMethodology(string(req.Methodology))
	if err != nil {
		return nil, err
	}
	opts := DefaultOptions(m)
	if req.Options != nil {
		opts = *req.Options
	}
	if err = opts.Validate(m); err != nil {
		return nil, err
	}
	if len(req.Observed) == 0 {
		return nil, ErrNoObserved
	}

	if err = validateRequest(req, opts.RowSumTol); err != nil {
		return nil, err
	}

	baseline, source := req.Stable, "input"
	if baseline == nil {
		source = "average"
		if baseline, err = matrix.Average(req.Observed); err != nil {
			return nil, shiftErrorf("baseline", err)
		}
	} else if err = matrix.ValidateShapes(baseline, req.Observed); err != nil {
		return nil, shiftErrorf("baseline", err)
	}

	log := p.log.With(
		zap.Stringer("methodology", m),
		zap.String("baseline", source),
		zap.Int("rows", baseline.Rows()),
		zap.Int("cols", baseline.Cols()),
		zap.Int("observed", len(req.Observed)),
	)
	log.Debug("estimating shifts", zap.Float64("lower", opts.Lower), zap.Float64("upper", opts.Upper),
		zap.Float64("tol", opts.Tol), zap.Float64("rho", opts.Rho))

	var bins BinBoundaries
	if m == Vasicek {
		if bins, err = ComputeBinBoundaries(baseline); err != nil {
			return nil, err
		}
	}

	out := make([]Estimate, 0, len(req.Observed))
	for k, q := range req.Observed {
		obj, err := NewObjective(m, baseline, bins, q, opts)
		if err != nil {
			return nil, shiftErrorf("objective", err)
		}
		est, err := fit(obj, opts)
		if err != nil {
			return nil, shiftErrorf("fit", err)
		}
		est.Index = k
		drift, _ := matrix.MaxAbsDiff(baseline, q) // shapes already checked
		log.Debug("fitted shift", zap.Int("index", k), zap.Float64("z", est.Z),
			zap.Float64("loss", est.Loss), zap.Int("evaluations", est.Evaluations),
			zap.Float64("max_abs_diff", drift))
		out = append(out, est)
	}

	return out, nil
}

// validateRequest checks row sums: stable first (matrix 0), then observed
// matrices numbered from 1.
func validateRequest(req Request, tol float64) error {
	if req.Stable != nil {
		if err := matrix.ValidateAll([]*matrix.Dense{req.Stable}, tol); err != nil {
			return err
		}
	}

	err := matrix.ValidateAll(req.Observed, tol)
	var rse *matrix.RowSumError
	if errors.As(err, &rse) {
		return &matrix.RowSumError{Matrix: rse.Matrix + 1, Row: rse.Row, Sum: rse.Sum}
	}

	return err
}

// Values extracts Z from estimates, preserving order.
func Values(estimates []Estimate) []float64 {
	out := make([]float64, len(estimates))
	for i, e := range estimates {
		out[i] = e.Z
	}

	return out
}
