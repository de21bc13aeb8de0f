// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
)

func TestToFloat64(t *testing.T) {
	f, err := matrix.ToFloat64(MustGrid(t, [][]int16{{1, -2}, {300, 0}}))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, -2}, {300, 0}}, f)

	_, err = matrix.ToFloat64[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAllClose(t *testing.T) {
	a := MustGrid(t, [][]float64{{1, math.Inf(1)}})

	ok, err := matrix.AllClose(a, MustGrid(t, [][]float64{{1 + 1e-13, math.Inf(1)}}), 0, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, MustGrid(t, [][]float64{{1.1, math.Inf(1)}}), 0, 1e-12)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose(a, MustGrid(t, [][]float64{{1, math.Inf(-1)}}), 1, 1)
	require.NoError(t, err)
	require.False(t, ok)

	nan := MustGrid(t, [][]float64{{math.NaN()}})
	ok, err = matrix.AllClose(nan, nan, 1, 1)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, MustDense[float64](t, 2, 1), 0, 0)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}
