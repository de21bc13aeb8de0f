// SPDX-License-Identifier: MIT
// Package matrix: element-type conversion and tolerant comparison.

package matrix

import "math"

// Default tolerances for AllClose callers that have no better numbers.
const (
	DefaultRTol = 1e-9
	DefaultATol = 1e-12
)

// ToFloat64 returns a float64 copy of m (elementwise float64(v)).
// Errors: ErrNilMatrix.
func ToFloat64[K Scalar](m *Dense[K]) (*Dense[float64], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToFloat64, err)
	}
	res, err := NewDense[float64](m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opToFloat64, err)
	}
	for idx, v := range m.data {
		res.data[idx] = float64(v)
	}

	return res, nil
}

// AllClose checks element-wise |a-b| <= atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes (ErrShapeMismatch otherwise).
//   - rtol, atol are treated as |rtol|, |atol|.
//
// Complexity: O(r*c) time, O(1) space.
func AllClose(a, b *Dense[float64], rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	var x, y float64
	for idx := range a.data {
		x, y = a.data[idx], b.data[idx]
		if x == y { // covers equal infinities
			continue
		}
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return false, nil
		}
		if math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false, nil
		}
	}

	return true, nil
}
