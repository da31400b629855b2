// SPDX-License-Identifier: MIT
package markov_test

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/steadystate/markov"
	"github.com/katalvlaran/steadystate/matrix"
)

// ExampleSteadyState solves a column-stochastic three-state chain.
func ExampleSteadyState() {
	m, _ := matrix.NewDenseFrom([][]float64{
		{0.65, 0.15, 0.1},
		{0.25, 0.65, 0.4},
		{0.1, 0.2, 0.5},
	})
	pi, err := markov.SteadyState(m)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(pi)
	for i, p := range pi.Float64s() {
		fmt.Printf("π_%d = %.4f\n", i+1, p)
	}
	// Output:
	// [19/69 11/23 17/69]
	// π_1 = 0.2754
	// π_2 = 0.4783
	// π_3 = 0.2464
}

// ExampleSteadyStateRat uses the row convention with exact inputs.
func ExampleSteadyStateRat() {
	pi, _ := markov.SteadyStateRat([][]*big.Rat{
		{big.NewRat(9, 10), big.NewRat(1, 10)},
		{big.NewRat(1, 2), big.NewRat(1, 2)},
	}, markov.WithRowStochastic())
	fmt.Println(pi)
	// Output:
	// [5/6 1/6]
}

// ExampleEquation_Simplify isolates π_1 from its raw balance equation.
func ExampleEquation_Simplify() {
	eq := markov.NewEquation(1, []*big.Rat{
		big.NewRat(1, 4), big.NewRat(13, 20), big.NewRat(2, 5),
	})
	fmt.Println(eq)
	_ = eq.Simplify()
	fmt.Println(eq)
	// Output:
	// π_1 = 1/4·π_0 + 13/20·π_1 + 2/5·π_2
	// π_1 = 5/7·π_0 + 8/7·π_2
}

// ExampleIsDegenerate reports the absorbing state of an identity chain.
func ExampleIsDegenerate() {
	m, _ := matrix.NewDenseFrom([][]float64{{1, 0}, {0, 1}})
	_, err := markov.SteadyState(m)
	if state, ok := markov.IsDegenerate(err); ok {
		fmt.Println("degenerate state:", state, errors.Is(err, markov.ErrDegenerateEquation))
	}
	// Output:
	// degenerate state: 0 true
}
