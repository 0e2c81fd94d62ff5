// Copyright ©2026 The primaldual Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package functions

import (
	"gonum.org/v1/gonum/floats"

	"github.com/primaldual/nlp/problem"
)

// Sphere implements the shifted sphere problem
//
//	minimize 𝒇(𝐱) = ∑𝐱ᵢ²  subject to  𝒄ᵢ(𝐱) = 𝐱ᵢ - 1 = 0
//
// in N variables with N equality constraints. The Jacobian is the
// identity and the Lagrangian Hessian is 2𝐈 everywhere, which makes the
// problem a convenient fixture: every evaluated quantity is known in
// closed form at any point.
type Sphere struct {
	N int
}

var _ problem.Problem[float64] = Sphere{}

func (s Sphere) Dims() (n, m int) {
	return s.N, s.N
}

func (s Sphere) Objective(x problem.Vector[float64]) float64 {
	if len(x) != s.N {
		panic(badInputDim)
	}
	return floats.Dot(x, x)
}

func (s Sphere) ObjectiveGradient(x problem.Vector[float64]) problem.Vector[float64] {
	if len(x) != s.N {
		panic(badInputDim)
	}
	g := x.Clone()
	floats.Scale(2, g)
	return g
}

func (s Sphere) ObjectiveHessian(x problem.Vector[float64]) problem.Matrix[float64] {
	if len(x) != s.N {
		panic(badInputDim)
	}
	return problem.Eye[float64](s.N).Scale(2)
}

func (s Sphere) Constraints(x problem.Vector[float64]) problem.Vector[float64] {
	if len(x) != s.N {
		panic(badInputDim)
	}
	c := x.Clone()
	floats.AddConst(-1, c)
	return c
}

func (s Sphere) ConstraintsJacobian(x, z problem.Vector[float64]) problem.Matrix[float64] {
	if len(x) != s.N {
		panic(badInputDim)
	}
	return problem.Eye[float64](s.N)
}

func (s Sphere) LagrangianHessian(x, z problem.Vector[float64]) problem.Matrix[float64] {
	if len(x) != s.N || len(z) != s.N {
		panic(badInputDim)
	}
	// Constraints are linear, so 𝜵²ℒ = 𝜵²𝒇.
	return problem.Eye[float64](s.N).Scale(2)
}

func (s Sphere) Minima() []Minimum {
	x := make([]float64, s.N)
	for i := range x {
		x[i] = 1
	}
	return []Minimum{
		{
			X:      x,
			F:      float64(s.N),
			Global: true,
		},
	}
}
