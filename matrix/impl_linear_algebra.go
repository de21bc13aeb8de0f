// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels over Dense: element-wise
// addition and subtraction, matrix multiplication, scalar scaling, transpose
// and identity generation. All functions perform strict fail-fast validation
// and return clear errors on dimension mismatches.
//
// Determinism:
//   - Every kernel uses fixed loop orders (flat 0..n-1 or i→j→k).
//   - Operands are never mutated; each kernel allocates exactly one result.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd          = "Add"
	opSub          = "Sub"
	opMul          = "Mul"
	opScale        = "Scale"
	opTranspose    = "Transpose"
	opIdentity     = "Identity"
	opIdentityLike = "IdentityLike"
	opDeterminant  = "Determinant"
	opInverse      = "Inverse"
	opToFloat64    = "ToFloat64"
	opAllClose     = "AllClose"
	opRender       = "Render"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + b (sub=false) or out = a - b (sub=true).
// Internal helper for Add/Sub to share validation and allocation.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b). Allocate result of the same shape.
//   - Stage 2: single flat loop 0..n-1 over both backing slices.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[K Scalar](a, b *Dense[K], sub bool, opTag string) (*Dense[K], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense[K](a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	n := a.r * a.c
	if sub {
		for idx := 0; idx < n; idx++ {
			res.data[idx] = a.data[idx] - b.data[idx]
		}
		return res, nil
	}
	for idx := 0; idx < n; idx++ {
		res.data[idx] = a.data[idx] + b.data[idx]
	}

	return res, nil
}

// Add returns the elementwise sum a + b. Shapes must be identical.
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(r*c).
func Add[K Scalar](a, b *Dense[K]) (*Dense[K], error) { return addSub(a, b, false, opAdd) }

// Sub returns the elementwise difference a - b. Shapes must be identical.
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(r*c).
func Sub[K Scalar](a, b *Dense[K]) (*Dense[K], error) { return addSub(a, b, true, opSub) }

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→j→k triple loop; each C[i,j] starts from zero and accumulates
//     A[i,k]*B[k,j] for k = 0..n-1 in ascending order.
//
// Determinism:
//   - The summation order is fixed, so float results are reproducible bit for bit.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[K Scalar](a, b *Dense[K]) (*Dense[K], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewDense[K](aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k    int
		rowOffsetA int
		sum        K
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		for j = 0; j < bCols; j++ {
			sum = 0
			for k = 0; k < aCols; k++ {
				sum += a.data[rowOffsetA+k] * b.data[k*bCols+j]
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// The result keeps the element type of m.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Scale[K Scalar](m *Dense[K], alpha K) (*Dense[K], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense[K](m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx := range m.data {
		res.data[idx] = alpha * m.data[idx]
	}

	return res, nil
}

// Transpose returns a new c×r matrix with res[j,i] = m[i,j].
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose[K Scalar](m *Dense[K]) (*Dense[K], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.r, m.c
	res, err := NewDense[K](cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// Identity returns the n×n identity matrix (1 on the diagonal, 0 elsewhere).
// Errors: ErrInvalidDimensions when n < 1.
// Complexity: O(n²).
func Identity[K Scalar](n int) (*Dense[K], error) {
	res, err := NewDense[K](n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		res.data[i*n+i] = 1
	}

	return res, nil
}

// IdentityLike returns the identity matrix with the same order as the square matrix m.
// Errors: ErrNilMatrix, ErrNonSquare.
func IdentityLike[K Scalar](m *Dense[K]) (*Dense[K], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}

	return Identity[K](m.r)
}

// Equal reports whether a and b have the same shape and identical elements.
// Two nil matrices are equal; nil never equals a non-nil matrix.
// Float comparison is exact, so NaN never equals anything (use AllClose for tolerances).
func Equal[K Scalar](a, b *Dense[K]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}
