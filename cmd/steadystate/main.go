// SPDX-License-Identifier: MIT

// Command steadystate solves Markov chains for their stationary distribution.
//
//	steadystate solve --preset sample
//	steadystate solve chain.yaml --format json
//	steadystate check chain.yaml
//	steadystate sample > chain.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}
