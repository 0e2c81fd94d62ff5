// Copyright ©2026 The primaldual Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gmat

import (
	"gonum.org/v1/gonum/mat"

	"github.com/primaldual/nlp/problem"
)

// Funcs specifies a problem in the gonum calling convention: derivatives
// are written into caller-provided destinations, Hessians into a
// mat.MutableSymmetric.
//
// Any nil callback leaves the corresponding handle of the produced
// problem unset.
type Funcs struct {
	// Func evaluates the objective 𝒇(𝐱).
	Func func(x []float64) float64
	// Grad stores 𝜵𝒇(𝐱) in grad.
	Grad func(grad, x []float64)
	// Hess stores 𝜵²𝒇(𝐱) in hess.
	Hess func(hess mat.MutableSymmetric, x []float64)
	// Cons stores 𝒄(𝐱) in c.
	Cons func(c, x []float64)
	// Jac stores the m×n Jacobian 𝜵𝒄(𝐱) in jac.
	Jac func(jac *mat.Dense, x []float64)
	// LagHess stores 𝜵²ℒ(𝐱,𝐳) in hess.
	LagHess func(hess mat.MutableSymmetric, x, z []float64)
}

// Problem adapts the callbacks to a function-backed problem with primal
// dimension n and dual dimension m.
func (f Funcs) Problem(n, m int) (*problem.FuncProblem[float64], error) {

	def := problem.Funcs[float64]{N: n, M: m}

	if f.Func != nil {
		def.Objective = func(x problem.Vector[float64]) float64 {
			return f.Func(x)
		}
	}
	if f.Grad != nil {
		def.ObjectiveGradient = func(x problem.Vector[float64]) problem.Vector[float64] {
			grad := make(problem.Vector[float64], n)
			f.Grad(grad, x)
			return grad
		}
	}
	if f.Hess != nil {
		def.ObjectiveHessian = func(x problem.Vector[float64]) problem.Matrix[float64] {
			hess := mat.NewSymDense(n, nil)
			f.Hess(hess, x)
			return MatrixOf(hess)
		}
	}
	if f.Cons != nil {
		def.Constraints = func(x problem.Vector[float64]) problem.Vector[float64] {
			c := make(problem.Vector[float64], m)
			f.Cons(c, x)
			return c
		}
	}
	if f.Jac != nil {
		def.ConstraintsJacobian = func(x, _ problem.Vector[float64]) problem.Matrix[float64] {
			jac := mat.NewDense(m, n, nil)
			f.Jac(jac, x)
			return MatrixOf(jac)
		}
	}
	if f.LagHess != nil {
		def.LagrangianHessian = func(x, z problem.Vector[float64]) problem.Matrix[float64] {
			hess := mat.NewSymDense(n, nil)
			f.LagHess(hess, x, z)
			return MatrixOf(hess)
		}
	}

	return def.New()
}
