// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/length checks here.
//  - Return sentinels wrapped with a validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing beyond the error.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateDims ensures both dimensions are positive.
// Returns wrapped ErrInvalidDimensions otherwise.
// Complexity: O(1).
func ValidateDims(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return validatorErrorf("ValidateDims", ErrInvalidDimensions)
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil[K Scalar](m *Dense[K]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Returns ErrNilMatrix or ErrShapeMismatch (wrapped).
// Complexity: O(1).
func ValidateSameShape[K Scalar](a, b *Dense[K]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrShapeMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrShapeMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols() == b.Rows().
// Complexity: O(1).
func ValidateMulCompatible[K Scalar](a, b *Dense[K]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: %dx%d * %dx%d", a.r, a.c, b.r, b.c),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare[K Scalar](m *Dense[K]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateGrid checks that grid has at least one row, at least one column
// and that every row has the same length as the first.
// Returns the derived (rows, cols) on success.
// Complexity: O(rows).
func ValidateGrid[K Scalar](grid [][]K) (rows, cols int, err error) {
	rows = len(grid)
	if rows == 0 {
		return 0, 0, validatorErrorf("ValidateGrid: no rows", ErrBadShape)
	}
	cols = len(grid[0])
	if cols == 0 {
		return 0, 0, validatorErrorf("ValidateGrid: no columns", ErrBadShape)
	}
	for i := 1; i < rows; i++ {
		if len(grid[i]) != cols {
			return 0, 0, validatorErrorf(fmt.Sprintf("ValidateGrid: row %d has %d columns, want %d", i, len(grid[i]), cols), ErrBadShape)
		}
	}

	return rows, cols, nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Complexity: O(1).
func ValidateVecLen[K Scalar](x []K, n int) error {
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: got %d, want %d", len(x), n), ErrLengthMismatch)
	}

	return nil
}
