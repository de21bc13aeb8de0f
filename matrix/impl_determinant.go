// SPDX-License-Identifier: MIT
// Package matrix: closed-form determinant (orders 1..3) and 2×2 inverse.
//
// Purpose:
//   - Evaluate determinants with fixed, explicit formulas so integer results are
//     exact and float results are reproducible.
//   - Refuse higher orders with ErrUnsupported instead of approximating.

package matrix

// maxDeterminantOrder is the largest order Determinant evaluates.
const maxDeterminantOrder = 3

// inverseOrder is the only order Inverse supports.
const inverseOrder = 2

// Determinant returns det(m) for a square matrix of order 1, 2 or 3.
//
// Implementation:
//   - order 1: a00.
//   - order 2: a00*a11 - a01*a10.
//   - order 3: a00a11a22 + a01a12a20 + a02a10a21 - a02a11a20 - a12a21a00 - a22a10a01,
//     evaluated left to right in exactly this term order.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrUnsupported (order > 3).
//
// Complexity:
//   - Time O(1), Space O(1).
func Determinant[K Scalar](m *Dense[K]) (K, error) {
	var zero K
	if err := ValidateSquare(m); err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}

	d := m.data
	switch m.r {
	case 1:
		return d[0], nil
	case 2:
		return d[0]*d[3] - d[1]*d[2], nil
	case maxDeterminantOrder:
		// row-major 3×3: a00=d[0] a01=d[1] a02=d[2] a10=d[3] a11=d[4] a12=d[5] a20=d[6] a21=d[7] a22=d[8]
		return d[0]*d[4]*d[8] +
			d[1]*d[5]*d[6] +
			d[2]*d[3]*d[7] -
			d[2]*d[4]*d[6] -
			d[5]*d[7]*d[0] -
			d[8]*d[3]*d[1], nil
	default:
		return zero, matrixErrorf(opDeterminant, ErrUnsupported)
	}
}

// Inverse returns the inverse of a 2×2 matrix as a float64 matrix, whatever K is.
//
// Implementation:
//   - Stage 1: require shape 2×2; anything else is ErrUnsupported.
//   - Stage 2: convert elements to float64, det = a00*a11 - a01*a10.
//   - Stage 3: det == 0 is ErrSingular; otherwise scale = 1/det and
//     inv = scale * [[a11, -a01], [-a10, a00]].
//
// Errors:
//   - ErrNilMatrix, ErrUnsupported, ErrSingular.
//
// Notes:
//   - Higher orders are out of scope; m is never mutated.
func Inverse[K Scalar](m *Dense[K]) (*Dense[float64], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if m.r != inverseOrder || m.c != inverseOrder {
		return nil, matrixErrorf(opInverse, ErrUnsupported)
	}

	a00, a01 := float64(m.data[0]), float64(m.data[1])
	a10, a11 := float64(m.data[2]), float64(m.data[3])
	det := a00*a11 - a01*a10
	if det == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	scale := 1.0 / det

	res, err := NewDense[float64](inverseOrder, inverseOrder)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	res.data[0] = scale * a11
	res.data[1] = -(scale * a01)
	res.data[2] = -(scale * a10)
	res.data[3] = scale * a00

	return res, nil
}
