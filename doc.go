// Package steadystate computes stationary distributions of finite
// discrete-time Markov chains by symbolic substitution of their balance
// equations, in exact rational arithmetic.
//
// 🚀 What is inside?
//
//	• markov/  — balance equations (Simplify, Substitute, Consolidate), the
//	             Chain solver, Distribution results, reachability checks
//	• matrix/  — the Matrix interface, Dense storage, Transpose, MatVec,
//	             row/column sums, validators and an LU linear solve
//	• cmd/steadystate — CLI: solve, check, presets, sample
//
// ✨ Why substitution?
//
//   - Exact – coefficients are *big.Rat; 0.65 is 13/20, and π sums to exactly 1
//   - Transparent – every intermediate equation is inspectable via Equation(i)
//   - Honest failures – absorbing or disconnected states surface as typed
//     errors instead of a silently wrong vector
//
// Quick example (column-stochastic, M[i][j] = P(j→i)):
//
//	m, _ := matrix.NewDenseFrom([][]float64{
//		{0.65, 0.15, 0.1},
//		{0.25, 0.65, 0.4},
//		{0.1, 0.2, 0.5},
//	})
//	pi, _ := markov.SteadyState(m)
//	fmt.Println(pi) // [19/69 11/23 17/69]
//
// From a shell:
//
//	go install github.com/katalvlaran/steadystate/cmd/steadystate@latest
//	steadystate solve --preset sample --plot
package steadystate
