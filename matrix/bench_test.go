// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
)

func BenchmarkMul(b *testing.B) {
	for _, n := range []int{8, 32, 64} {
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(42))
			x := RandomFloats(b, rng, n, n)
			y := RandomFloats(b, rng, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := matrix.Mul(x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDeterminant3x3(b *testing.B) {
	m := RandomFloats(b, rand.New(rand.NewSource(42)), 3, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Determinant(m); err != nil {
			b.Fatal(err)
		}
	}
}
