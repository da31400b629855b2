// SPDX-License-Identifier: MIT
package markov_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/katalvlaran/steadystate/markov"
)

// benchRows builds an n-state birth-death chain (column-stochastic):
// each state stays with 1/2 and moves to each neighbour with 1/4,
// reflecting at the ends.
func benchRows(n int) [][]*big.Rat {
	rows := make([][]*big.Rat, n)
	for i := range rows {
		rows[i] = make([]*big.Rat, n)
		for j := range rows[i] {
			rows[i][j] = new(big.Rat)
		}
	}
	quarter := big.NewRat(1, 4)
	for j := 0; j < n; j++ {
		rows[j][j].SetFrac64(1, 2)
		if j > 0 {
			rows[j-1][j].Add(rows[j-1][j], quarter)
		} else {
			rows[j][j].Add(rows[j][j], quarter)
		}
		if j < n-1 {
			rows[j+1][j].Add(rows[j+1][j], quarter)
		} else {
			rows[j][j].Add(rows[j][j], quarter)
		}
	}

	return rows
}

func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{8, 32, 64} {
		rows := benchRows(n)
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := markov.SteadyStateRat(rows); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
