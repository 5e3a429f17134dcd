// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zshift/matrix"
)

func TestNewDense(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	_, err = matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestFromRows_Rejects covers empty, ragged and non-finite literals.
func TestFromRows_Rejects(t *testing.T) {
	_, err := matrix.FromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromRows([][]float64{{}})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromRows([][]float64{{1, 0}, {1}})
	assert.ErrorIs(t, err, matrix.ErrRagged)

	_, err = matrix.FromRows([][]float64{{math.NaN(), 1}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.FromRows([][]float64{{math.Inf(-1), 1}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestDense_AtSetBounds checks bounds and the finite-value policy.
func TestDense_AtSetBounds(t *testing.T) {
	m := matrix.MustFromRows([][]float64{{0.1, 0.9}, {0.6, 0.4}})

	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.6, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	assert.ErrorIs(t, m.Set(0, 2, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.NoError(t, m.Set(0, 0, 0.2))

	v, _ = m.At(0, 0)
	assert.Equal(t, 0.2, v)
}

// TestDense_CopiesAreIndependent makes sure Clone/Row/ToRows never alias storage.
func TestDense_CopiesAreIndependent(t *testing.T) {
	src := [][]float64{{0.1, 0.9}, {0.6, 0.4}}
	m := matrix.MustFromRows(src)
	src[0][0] = 7

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 0.5))

	row := m.Row(0)
	row[1] = 3

	assert.Equal(t, [][]float64{{0.1, 0.9}, {0.6, 0.4}}, m.ToRows())
	assert.Nil(t, m.Row(5))
	assert.True(t, m.SameShape(c))
	assert.Equal(t, "[0.1, 0.9]\n[0.6, 0.4]\n", m.String())
}
