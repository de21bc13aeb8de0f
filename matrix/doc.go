// SPDX-License-Identifier: MIT

// Package matrix provides a small generic dense matrix over numeric scalars.
//
// The matrix package provides:
//
//   - Dense[K], a row-major rectangular grid for any integer or floating-point K.
//   - Construction from a grid, from a shape (zero-filled) or from a flat vector.
//   - Row/column accessors and explicit in-place row/column replacement.
//   - Add, Sub, Mul, Scale, Transpose, Identity and deep Clone.
//   - Determinant for orders 1..3 and a closed-form 2×2 Inverse (always float64).
//   - Render, a pure text rendering helper for a presentation layer to emit.
//
// All arithmetic returns a new matrix; operands are never mutated. Failures are
// reported through the sentinel errors in errors.go and must be matched with
// errors.Is, since every public operation wraps them with an operation tag.
//
// Integer arithmetic wraps on overflow exactly as Go's native operators do;
// floating-point arithmetic follows IEEE-754. Nothing is promoted except in
// Inverse and ToFloat64.
//
// See the examples in this package for usage patterns.
package matrix
