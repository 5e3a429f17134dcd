package optimize_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zshift/optimize"
)

func parabola(center float64) optimize.Func {
	return func(z float64) float64 { return (z - center) * (z - center) }
}

// TestGoldenSection_Parabola verifies f(z)=(z−3)² on [−10,10] converges to 3.
func TestGoldenSection_Parabola(t *testing.T) {
	z, err := optimize.GoldenSection(parabola(3), -10, 10, optimize.DefaultTolerance)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, z, 1e-5)
}

// TestGoldenSection_TableOfMinima checks interior, near-edge and out-of-bracket minima.
func TestGoldenSection_TableOfMinima(t *testing.T) {
	tests := []struct {
		name   string
		f      optimize.Func
		a, b   float64
		want   float64
		margin float64
	}{
		{"negative center", parabola(-2.5), -10, 10, -2.5, 1e-5},
		{"abs value kink", func(z float64) float64 { return math.Abs(z - 0.75) }, -5, 5, 0.75, 1e-5},
		{"cosh", math.Cosh, -1, 4, 0, 1e-5},
		{"minimum beyond upper", parabola(20), -10, 10, 10, 1e-5},
		{"minimum beyond lower", parabola(-20), -10, 10, -10, 1e-5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			z, err := optimize.GoldenSection(tc.f, tc.a, tc.b, optimize.DefaultTolerance)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, z, tc.margin)
		})
	}
}

// TestMinimize_Counts checks the deterministic iteration and evaluation counts.
func TestMinimize_Counts(t *testing.T) {
	calls := 0
	f := func(z float64) float64 {
		calls++
		return (z - 1) * (z - 1)
	}

	res, err := optimize.Minimize(f, optimize.DefaultOptions(-10, 10))
	require.NoError(t, err)

	expected := math.Ceil(math.Log(20/optimize.DefaultTolerance) / math.Log((1+math.Sqrt(5))/2))
	assert.InDelta(t, expected, float64(res.Iterations), 1)
	assert.Equal(t, 2*res.Iterations+1, res.Evaluations)
	assert.Equal(t, calls, res.Evaluations)
	assert.InDelta(t, 1.0, res.X, 1e-5)
	assert.InDelta(t, 0.0, res.F, 1e-10)
}

// TestMinimize_Deterministic runs the same search twice and expects bitwise equality.
func TestMinimize_Deterministic(t *testing.T) {
	r1, err := optimize.Minimize(parabola(math.Pi), optimize.DefaultOptions(-5, 5))
	require.NoError(t, err)
	r2, err := optimize.Minimize(parabola(math.Pi), optimize.DefaultOptions(-5, 5))
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}

// TestMinimize_TinyTolerance terminates even when tol is below float64 spacing.
func TestMinimize_TinyTolerance(t *testing.T) {
	res, err := optimize.Minimize(parabola(3), optimize.Options{Lower: -10, Upper: 10, Tol: 1e-300})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, res.X, 1e-9)
}

// TestMinimize_InvalidInput covers the sentinel errors.
func TestMinimize_InvalidInput(t *testing.T) {
	_, err := optimize.Minimize(nil, optimize.DefaultOptions(-1, 1))
	assert.ErrorIs(t, err, optimize.ErrNilFunc)

	for _, o := range []optimize.Options{
		{Lower: 1, Upper: 1, Tol: 1e-5},
		{Lower: 2, Upper: 1, Tol: 1e-5},
		{Lower: math.Inf(-1), Upper: 1, Tol: 1e-5},
		{Lower: 0, Upper: math.NaN(), Tol: 1e-5},
	} {
		_, err = optimize.Minimize(parabola(0), o)
		assert.ErrorIs(t, err, optimize.ErrInvalidBracket, "%+v", o)
	}

	for _, tol := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = optimize.GoldenSection(parabola(0), -1, 1, tol)
		assert.ErrorIs(t, err, optimize.ErrInvalidTolerance, "tol=%v", tol)
	}
}
