// Package densemat is a small generic dense matrix library.
//
// Everything lives in the matrix subpackage:
//
//	matrix/ — Dense[K] over any integer or float type, Add/Sub/Mul/Scale/Transpose,
//	          Identity, Determinant (orders 1..3), 2×2 Inverse and Render.
//
// Quick example:
//
//	a, _ := matrix.NewFromGrid([][]int{{1, 2}, {3, 4}})
//	b, _ := matrix.NewFromGrid([][]int{{5, 6}, {7, 8}})
//	c, _ := matrix.Mul(a, b) // [[19 22] [43 50]]
//	d, _ := matrix.Determinant(a) // -2
//
// Errors are sentinels in the matrix package; match them with errors.Is.
package densemat
