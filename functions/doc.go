// Copyright ©2026 The primaldual Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package functions provides constrained benchmark problems for testing
// optimization algorithms. Every type satisfies problem.Problem[float64]
// with analytic derivatives, and reports its known minima.
//
// All problems use the Lagrangian convention ℒ(𝐱,𝐳) = 𝒇(𝐱) - 𝐳ᵀ𝒄(𝐱).
package functions

const badInputDim = "functions: wrong input dimension"

// Minimum is a known local minimum of a benchmark problem.
type Minimum struct {
	// X is the location of the minimum. X may not be in the most precise
	// representation possible for irrational minima.
	X []float64
	// F is the value of the objective at X.
	F float64
	// Global states whether the location is a global minimum over the
	// feasible set.
	Global bool
}
