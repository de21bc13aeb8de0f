// SPDX-License-Identifier: MIT
// Package matrix: thin public facade.
// Short aliases over the canonical kernels, kept so call sites read like
// textbook notation. Every alias forwards unchanged; errors keep their op tag.

package matrix

// NewZeros returns an r×c zero matrix. Alias of NewDense.
func NewZeros[K Scalar](rows, cols int) (*Dense[K], error) { return NewDense[K](rows, cols) }

// NewIdentity returns the n×n identity. Alias of Identity.
func NewIdentity[K Scalar](n int) (*Dense[K], error) { return Identity[K](n) }

// ZerosLike returns a zero matrix with the shape of m.
func ZerosLike[K Scalar](m *Dense[K]) (*Dense[K], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense[K](m.r, m.c)
}

// CloneMatrix returns a deep copy of m, or nil for a nil m.
func CloneMatrix[K Scalar](m *Dense[K]) *Dense[K] {
	if m == nil {
		return nil
	}

	return m.Clone()
}

// Sum is an alias of Add.
func Sum[K Scalar](a, b *Dense[K]) (*Dense[K], error) { return Add(a, b) }

// Diff is an alias of Sub.
func Diff[K Scalar](a, b *Dense[K]) (*Dense[K], error) { return Sub(a, b) }

// Product is an alias of Mul.
func Product[K Scalar](a, b *Dense[K]) (*Dense[K], error) { return Mul(a, b) }

// T is an alias of Transpose.
func T[K Scalar](m *Dense[K]) (*Dense[K], error) { return Transpose(m) }

// ScaleBy is an alias of Scale.
func ScaleBy[K Scalar](m *Dense[K], alpha K) (*Dense[K], error) { return Scale(m, alpha) }

// Det is an alias of Determinant.
func Det[K Scalar](m *Dense[K]) (K, error) { return Determinant(m) }

// InverseOf is an alias of Inverse.
func InverseOf[K Scalar](m *Dense[K]) (*Dense[float64], error) { return Inverse(m) }
