// SPDX-License-Identifier: MIT
// Package matrix: text rendering for a presentation layer.

package matrix

import (
	"fmt"
	"strings"
)

const (
	_renderRule     = "-------"
	_renderStartPad = " Start------------"
	_renderEndPad   = " End--------------"
	_renderSep      = " "
)

// Render returns the labelled text form of m, one string per line:
//
//	-------<label> Start------------
//	1 2
//	3 4
//	-------<label> End--------------
//
// Elements are formatted with %v and separated by a single space, rows in order.
// Render performs no I/O; emitting the lines is the caller's job.
//
// Errors: ErrNilMatrix.
func Render[K Scalar](m *Dense[K], label string) ([]string, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRender, err)
	}

	lines := make([]string, 0, m.r+2)
	lines = append(lines, _renderRule+label+_renderStartPad)

	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.Reset()
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_renderSep)
			}
			fmt.Fprintf(&b, "%v", m.data[i*m.c+j])
		}
		lines = append(lines, b.String())
	}

	return append(lines, _renderRule+label+_renderEndPad), nil
}
