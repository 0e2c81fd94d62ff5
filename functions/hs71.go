// Copyright ©2026 The primaldual Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package functions

import (
	"gonum.org/v1/gonum/floats"

	"github.com/primaldual/nlp/problem"
)

// HS71 implements problem 71 of the Hock-Schittkowski collection
//
//	minimize 𝒇(𝐱) = 𝐱₁𝐱₄(𝐱₁ + 𝐱₂ + 𝐱₃) + 𝐱₃
//	subject to 𝒄₁(𝐱) = 𝐱₁𝐱₂𝐱₃𝐱₄ - 25 ≥ 0
//	           𝒄₂(𝐱) = 𝐱₁² + 𝐱₂² + 𝐱₃² + 𝐱₄² - 40 = 0
//
// with the bounds 1 ≤ 𝐱ᵢ ≤ 5 left to the consuming solver.
//
// Standard starting point: [1, 5, 5, 1].
//
// Reference:
//
//	Hock, W., Schittkowski, K.: Test Examples for Nonlinear Programming
//	Codes. Lecture Notes in Economics and Mathematical Systems 187,
//	Springer (1981)
type HS71 struct{}

var _ problem.Problem[float64] = HS71{}

func (HS71) Dims() (n, m int) {
	return 4, 2
}

func (HS71) Objective(x problem.Vector[float64]) float64 {
	if len(x) != 4 {
		panic(badInputDim)
	}
	return x[0]*x[3]*(x[0]+x[1]+x[2]) + x[2]
}

func (HS71) ObjectiveGradient(x problem.Vector[float64]) problem.Vector[float64] {
	if len(x) != 4 {
		panic(badInputDim)
	}
	return problem.Vector[float64]{
		x[3] * (2*x[0] + x[1] + x[2]),
		x[0] * x[3],
		x[0]*x[3] + 1,
		x[0] * (x[0] + x[1] + x[2]),
	}
}

func (HS71) ObjectiveHessian(x problem.Vector[float64]) problem.Matrix[float64] {
	if len(x) != 4 {
		panic(badInputDim)
	}
	return problem.MatrixFrom(4, 4, []float64{
		2 * x[3], x[3], x[3], 2*x[0] + x[1] + x[2],
		x[3], 0, 0, x[0],
		x[3], 0, 0, x[0],
		2*x[0] + x[1] + x[2], x[0], x[0], 0,
	})
}

func (HS71) Constraints(x problem.Vector[float64]) problem.Vector[float64] {
	if len(x) != 4 {
		panic(badInputDim)
	}
	return problem.Vector[float64]{
		x[0]*x[1]*x[2]*x[3] - 25,
		floats.Dot(x, x) - 40,
	}
}

func (HS71) ConstraintsJacobian(x, z problem.Vector[float64]) problem.Matrix[float64] {
	if len(x) != 4 {
		panic(badInputDim)
	}
	return problem.MatrixFrom(2, 4, []float64{
		x[1] * x[2] * x[3], x[0] * x[2] * x[3], x[0] * x[1] * x[3], x[0] * x[1] * x[2],
		2 * x[0], 2 * x[1], 2 * x[2], 2 * x[3],
	})
}

func (HS71) LagrangianHessian(x, z problem.Vector[float64]) problem.Matrix[float64] {
	if len(x) != 4 || len(z) != 2 {
		panic(badInputDim)
	}
	h := HS71{}.ObjectiveHessian(x)

	// 𝜵²𝒄₁ has the product of the complementary pair at every off-diagonal.
	h.Set(0, 1, h.At(0, 1)-z[0]*x[2]*x[3])
	h.Set(0, 2, h.At(0, 2)-z[0]*x[1]*x[3])
	h.Set(0, 3, h.At(0, 3)-z[0]*x[1]*x[2])
	h.Set(1, 2, h.At(1, 2)-z[0]*x[0]*x[3])
	h.Set(1, 3, h.At(1, 3)-z[0]*x[0]*x[2])
	h.Set(2, 3, h.At(2, 3)-z[0]*x[0]*x[1])
	for i := 0; i < 4; i++ {
		for j := 0; j < i; j++ {
			h.Set(i, j, h.At(j, i))
		}
		// 𝜵²𝒄₂ = 2𝐈
		h.Set(i, i, h.At(i, i)-2*z[1])
	}
	return h
}

func (HS71) Minima() []Minimum {
	return []Minimum{
		{
			X:      []float64{1, 4.742999643601108, 3.8211499817883077, 1.379408293215359},
			F:      17.014017289157846,
			Global: true,
		},
	}
}
