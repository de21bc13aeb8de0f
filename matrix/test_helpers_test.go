// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for the kernels.
//   • Keep data small and integral where exactness matters.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/densemat/matrix"
)

// MustDense allocates an r×c zero matrix or fails the test.
func MustDense[K matrix.Scalar](t testing.TB, r, c int) *matrix.Dense[K] {
	t.Helper()
	m, err := matrix.NewDense[K](r, c)
	require.NoError(t, err)

	return m
}

// MustGrid builds a matrix from a literal grid or fails the test.
func MustGrid[K matrix.Scalar](t testing.TB, grid [][]K) *matrix.Dense[K] {
	t.Helper()
	m, err := matrix.NewFromGrid(grid)
	require.NoError(t, err)

	return m
}

// CompareExact fails the test with a readable diff unless m holds exactly want.
func CompareExact[K matrix.Scalar](t testing.TB, want [][]K, m *matrix.Dense[K]) {
	t.Helper()
	require.NotNil(t, m)
	if diff := cmp.Diff(want, m.Grid()); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// RandomInts returns an r×c matrix with entries in [-bound, bound] from a fixed seed.
func RandomInts(t testing.TB, rng *rand.Rand, r, c, bound int) *matrix.Dense[int] {
	t.Helper()
	m := MustDense[int](t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, rng.Intn(2*bound+1)-bound))
		}
	}

	return m
}

// RandomFloats returns an r×c matrix with entries uniform in [-1, 1) from a fixed seed.
func RandomFloats(t testing.TB, rng *rand.Rand, r, c int) *matrix.Dense[float64] {
	t.Helper()
	m := MustDense[float64](t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, 2*rng.Float64()-1))
		}
	}

	return m
}

// ToGonum copies m into a gonum Dense so gonum can act as an independent oracle.
func ToGonum(t testing.TB, m *matrix.Dense[float64]) *mat.Dense {
	t.Helper()
	r, c := m.Shape()
	flat := make([]float64, 0, r*c)
	for _, row := range m.Grid() {
		flat = append(flat, row...)
	}

	return mat.NewDense(r, c, flat)
}

// RequireMatchesGonum asserts that m equals g within tol, element by element.
func RequireMatchesGonum(t testing.TB, g mat.Matrix, m *matrix.Dense[float64], tol float64) {
	t.Helper()
	r, c := g.Dims()
	require.Equal(t, r, m.Rows())
	require.Equal(t, c, m.Cols())
	require.True(t, mat.EqualApprox(g, ToGonum(t, m), tol), "gonum:\n%v\ngot:\n%v", mat.Formatted(g), m)
}
