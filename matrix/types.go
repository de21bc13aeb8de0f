// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the scalar bound and the Dense container itself.
// Errors, validators and kernels live in dedicated files.
package matrix

import "golang.org/x/exp/constraints"

// Scalar is the element bound of Dense: any built-in integer or floating-point type.
// It provides +, -, *, ordering, a zero value and conversion to float64.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 1 for public constructors.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// Dense is not safe for concurrent mutation; Set, SetRow and SetCol must be
// synchronized by the caller against any read of the same matrix.
type Dense[K Scalar] struct {
	r, c int // row and column counts
	data []K // contiguous row-major storage (len == r*c)
}
