// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Keep construction deterministic: every constructor copies its input.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Row/Col: O(c)/O(r); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxCol    = "Col"
	ctxSetRow = "SetRow"
	ctxSetCol = "SetCol"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel stays reachable through %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[K Scalar](rows, cols int) (*Dense[K], error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, err
	}

	return &Dense[K]{r: rows, c: cols, data: make([]K, rows*cols)}, nil
}

// NewFromGrid builds a matrix from a rectangular grid given as rows.
// The grid is copied, so later writes to grid never reach the matrix.
//
// Errors:
//   - ErrBadShape when the grid has no rows, no columns or jagged rows.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromGrid[K Scalar](grid [][]K) (*Dense[K], error) {
	rows, cols, err := ValidateGrid(grid)
	if err != nil {
		return nil, err
	}
	m := &Dense[K]{r: rows, c: cols, data: make([]K, rows*cols)}
	for i := 0; i < rows; i++ {
		copy(m.data[i*cols:(i+1)*cols], grid[i])
	}

	return m, nil
}

// NewVector builds a single-row (1×N) matrix from values, or a single-column
// (N×1) matrix when colMode is true. values is copied.
//
// Errors:
//   - ErrInvalidDimensions when values is empty.
func NewVector[K Scalar](values []K, colMode bool) (*Dense[K], error) {
	rows, cols := 1, len(values)
	if colMode {
		rows, cols = len(values), 1
	}
	m, err := NewDense[K](rows, cols)
	if err != nil {
		return nil, err
	}
	copy(m.data, values) // both layouts are the same flat sequence

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[K]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[K]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[K]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange wrapped
// with the caller's method tag and coordinates.
func (m *Dense[K]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[K]) At(row, col int) (K, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero K
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[K]) Set(row, col int, v K) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a fresh copy of row i (length Cols()).
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense[K]) Row(i int) ([]K, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]K, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a fresh copy of column j (length Rows()).
// Errors: ErrOutOfRange.
// Complexity: O(r).
func (m *Dense[K]) Col(j int) ([]K, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]K, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// SetRow replaces row i with values in place.
//
// Implementation:
//   - Stage 1: validate the index, then len(values) == Cols().
//   - Stage 2: copy values into the row; no other row is touched.
//
// Errors:
//   - ErrOutOfRange, ErrLengthMismatch. On error the receiver is unchanged.
func (m *Dense[K]) SetRow(i int, values []K) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if err := ValidateVecLen(values, m.c); err != nil {
		return denseErrorf(ctxSetRow, i, 0, err)
	}
	copy(m.data[i*m.c:(i+1)*m.c], values)

	return nil
}

// SetCol replaces column j with values in place.
// Errors: ErrOutOfRange, ErrLengthMismatch. On error the receiver is unchanged.
func (m *Dense[K]) SetCol(j int, values []K) error {
	if j < 0 || j >= m.c {
		return denseErrorf(ctxSetCol, 0, j, ErrOutOfRange)
	}
	if err := ValidateVecLen(values, m.r); err != nil {
		return denseErrorf(ctxSetCol, 0, j, err)
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] = values[i]
	}

	return nil
}

// ColVector returns column j as a new Rows()×1 matrix.
func (m *Dense[K]) ColVector(j int) (*Dense[K], error) {
	col, err := m.Col(j)
	if err != nil {
		return nil, err
	}

	return NewVector(col, true)
}

// RowVector returns row i as a new 1×Cols() matrix.
func (m *Dense[K]) RowVector(i int) (*Dense[K], error) {
	row, err := m.Row(i)
	if err != nil {
		return nil, err
	}

	return NewVector(row, false)
}

// Clone returns a deep copy; the result shares no storage with m.
// Complexity: O(r*c).
func (m *Dense[K]) Clone() *Dense[K] {
	cp := make([]K, len(m.data))
	copy(cp, m.data)

	return &Dense[K]{r: m.r, c: m.c, data: cp}
}

// Grid exports the matrix as a fresh [][]K, one slice per row.
func (m *Dense[K]) Grid() [][]K {
	out := make([][]K, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]K, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String is a row-wise dump for diagnostics, one "[a, b, c]" line per row.
// Not for hot paths. See Render for the labelled presentation form.
func (m *Dense[K]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
