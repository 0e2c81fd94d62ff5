// Copyright ©2026 The primaldual Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package functions

import (
	"github.com/primaldual/nlp/problem"
)

// RosenbrockDisc implements the Rosenbrock function restricted to the
// unit disc
//
//	minimize 𝒇(𝐱) = 100(𝐱₂ - 𝐱₁²)² + (1 - 𝐱₁)²
//	subject to 𝒄(𝐱) = 1 - 𝐱₁² - 𝐱₂² ≥ 0
//
// Standard starting point: [0.1, 0.1].
//
// References:
//   - Rosenbrock, H.H.: An Automatic Method for finding the Greatest or
//     Least Value of a Function. Computer J 3 (1960), 175-184
//   - https://github.com/jacobwilliams/slsqp/blob/master/test/slsqp_test.f90
type RosenbrockDisc struct{}

var _ problem.Problem[float64] = RosenbrockDisc{}

func (RosenbrockDisc) Dims() (n, m int) {
	return 2, 1
}

func (RosenbrockDisc) Objective(x problem.Vector[float64]) float64 {
	if len(x) != 2 {
		panic(badInputDim)
	}
	t := x[1] - x[0]*x[0]
	return 100*t*t + (1-x[0])*(1-x[0])
}

func (RosenbrockDisc) ObjectiveGradient(x problem.Vector[float64]) problem.Vector[float64] {
	if len(x) != 2 {
		panic(badInputDim)
	}
	t := x[1] - x[0]*x[0]
	return problem.Vector[float64]{
		-400*t*x[0] - 2*(1-x[0]),
		200 * t,
	}
}

func (RosenbrockDisc) ObjectiveHessian(x problem.Vector[float64]) problem.Matrix[float64] {
	if len(x) != 2 {
		panic(badInputDim)
	}
	return problem.MatrixFrom(2, 2, []float64{
		1200*x[0]*x[0] - 400*x[1] + 2, -400 * x[0],
		-400 * x[0], 200,
	})
}

func (RosenbrockDisc) Constraints(x problem.Vector[float64]) problem.Vector[float64] {
	if len(x) != 2 {
		panic(badInputDim)
	}
	return problem.Vector[float64]{1 - x[0]*x[0] - x[1]*x[1]}
}

func (RosenbrockDisc) ConstraintsJacobian(x, z problem.Vector[float64]) problem.Matrix[float64] {
	if len(x) != 2 {
		panic(badInputDim)
	}
	return problem.MatrixFrom(1, 2, []float64{-2 * x[0], -2 * x[1]})
}

func (RosenbrockDisc) LagrangianHessian(x, z problem.Vector[float64]) problem.Matrix[float64] {
	if len(x) != 2 || len(z) != 1 {
		panic(badInputDim)
	}
	// 𝜵²𝒄 = -2𝐈, so 𝜵²ℒ = 𝜵²𝒇 + 2𝐳₁𝐈.
	h := RosenbrockDisc{}.ObjectiveHessian(x)
	h.Set(0, 0, h.At(0, 0)+2*z[0])
	h.Set(1, 1, h.At(1, 1)+2*z[0])
	return h
}

func (RosenbrockDisc) Minima() []Minimum {
	return []Minimum{
		{
			X:      []float64{0.7864, 0.6177},
			F:      0.0457,
			Global: true,
		},
	}
}
