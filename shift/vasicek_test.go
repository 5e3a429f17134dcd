package shift_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zshift/matrix"
	"github.com/katalvlaran/zshift/shift"
)

// TestVasicekObjective_RhoToZero expects the baseline back regardless of Z.
func TestVasicekObjective_RhoToZero(t *testing.T) {
	p := dense(baseline3)
	bins, err := shift.ComputeBinBoundaries(p)
	require.NoError(t, err)

	obj, err := shift.NewVasicekObjective(bins, p, 1e-12)
	require.NoError(t, err)

	for _, z := range []float64{-5, -1, 0, 2.5, 5} {
		ok, err := matrix.AllClose(dense(obj.Expected(z)), p, 0, 1e-5)
		require.NoError(t, err)
		assert.True(t, ok, "z=%v", z)
	}
}

// TestVasicekObjective_ExpectedRowsSumToOne holds for any Z and ρ.
func TestVasicekObjective_ExpectedRowsSumToOne(t *testing.T) {
	bins, err := shift.ComputeBinBoundaries(dense(baseline3))
	require.NoError(t, err)
	obj, err := shift.NewVasicekObjective(bins, dense(baseline3), 0.3)
	require.NoError(t, err)

	for _, z := range []float64{-4, 0, 3} {
		for i, row := range obj.Expected(z) {
			sum := 0.0
			for _, v := range row {
				assert.GreaterOrEqual(t, v, 0.0)
				sum += v
			}
			assert.InDelta(t, 1.0, sum, 1e-12, "z=%v row %d", z, i)
		}
	}
}

// TestVasicekObjective_Direction: positive Z moves mass to higher columns.
func TestVasicekObjective_Direction(t *testing.T) {
	p := dense([][]float64{{0.5, 0.5}})
	bins, err := shift.ComputeBinBoundaries(p)
	require.NoError(t, err)
	obj, err := shift.NewVasicekObjective(bins, p, 0.2)
	require.NoError(t, err)

	up := obj.Expected(1)
	assert.Less(t, up[0][0], 0.5)
	assert.Greater(t, up[0][1], 0.5)
	assert.InDelta(t, 0.0, obj.Loss(0), 1e-20)
	assert.False(t, math.IsNaN(obj.Loss(5)))
}

// TestVasicekObjective_Errors covers shape and ρ validation.
func TestVasicekObjective_Errors(t *testing.T) {
	bins, err := shift.ComputeBinBoundaries(dense(baseline2))
	require.NoError(t, err)

	_, err = shift.NewVasicekObjective(bins, dense(baseline3), 0.2)
	assert.ErrorIs(t, err, shift.ErrShapeMismatch)

	for _, rho := range []float64{0, 1, -0.1, 1.5, math.NaN()} {
		_, err = shift.NewVasicekObjective(bins, dense(baseline2), rho)
		assert.ErrorIs(t, err, shift.ErrInvalidParameter, "rho=%v", rho)
	}
}
