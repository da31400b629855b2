// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/steadystate/matrix"
)

// uniformDense builds an n×n matrix whose entries are all 1/n.
func uniformDense(b *testing.B, n int) *matrix.Dense {
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense: %v", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = m.Set(i, j, 1/float64(n))
		}
	}
	return m
}

// BenchmarkMatVec_64 measures the Dense fast-path of MatVec.
func BenchmarkMatVec_64(b *testing.B) {
	m := uniformDense(b, 64)
	x := make([]float64, 64)
	for i := range x {
		x[i] = 1.0 / 64
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.MatVec(m, x); err != nil {
			b.Fatalf("MatVec: %v", err)
		}
	}
}

// BenchmarkColSums_64 measures Transpose + MatVec.
func BenchmarkColSums_64(b *testing.B) {
	m := uniformDense(b, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.ColSums(m); err != nil {
			b.Fatalf("ColSums: %v", err)
		}
	}
}
