package optimize

import "math"

// phi is the golden ratio (1+√5)/2.
var phi = (1 + math.Sqrt(5)) / 2

// GoldenSection returns the approximate minimizer of f on [a, b].
//
// The search stops once the bracket is no wider than tol and returns its
// midpoint. See Minimize for the full result and error contract.
//
// Example:
//
//	z, err := GoldenSection(obj, -10, 10, DefaultTolerance)
func GoldenSection(f Func, a, b, tol float64) (float64, error) {
	res, err := Minimize(f, Options{Lower: a, Upper: b, Tol: tol})
	if err != nil {
		return 0, err
	}

	return res.X, nil
}

// Minimize runs golden-section search on f over [opts.Lower, opts.Upper].
//
// Algorithm:
//  1. c = b − (b−a)/φ, d = a + (b−a)/φ.
//  2. If f(c) < f(d) the minimizer lies in [a, d]: b = d.
//     Otherwise it lies in [c, b]: a = c.
//  3. Recompute c and d from the new bracket; repeat while |b−a| > tol.
//  4. Return (a+b)/2.
//
// Ties go to the right-hand interval, so a flat f converges to the upper
// part of the bracket deterministically.
//
// Errors:
//   - ErrNilFunc, ErrInvalidBracket, ErrInvalidTolerance. With valid inputs
//     Minimize cannot fail. A tol below the float64 spacing of the bracket
//     ends the search once the bracket stops shrinking.
//
// Complexity:
//   - O(log((b−a)/tol)) iterations with two evaluations each.
func Minimize(f Func, opts Options) (Result, error) {
	if f == nil {
		return Result{}, ErrNilFunc
	}
	a, b, tol := opts.Lower, opts.Upper, opts.Tol
	if !isFinite(a) || !isFinite(b) || a >= b {
		return Result{}, ErrInvalidBracket
	}
	if !isFinite(tol) || tol <= 0 {
		return Result{}, ErrInvalidTolerance
	}

	var res Result
	c := b - (b-a)/phi
	d := a + (b-a)/phi
	for width := b - a; width > tol; {
		fc, fd := f(c), f(d)
		res.Evaluations += 2
		if fc < fd {
			b = d
		} else {
			a = c
		}
		c = b - (b-a)/phi
		d = a + (b-a)/phi
		res.Iterations++
		// Stop when float64 spacing prevents further shrinking.
		if b-a >= width {
			break
		}
		width = b - a
	}

	res.X = (a + b) / 2
	res.F = f(res.X)
	res.Evaluations++

	return res, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
