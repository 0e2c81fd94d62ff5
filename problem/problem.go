// Copyright ©2026 The primaldual Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package problem defines the evaluation contract of a constrained,
// twice-differentiable nonlinear optimization problem
//
//	minimize 𝒇(𝐱) subject to 𝒄(𝐱)
//
// where
//   - 𝐱 ∈ ℝⁿ is the primal variable vector
//   - 𝐳 ∈ ℝᵐ is the dual (multiplier) vector
//   - 𝒇(𝐱) : ℝⁿ → ℝ is the objective
//   - 𝒄(𝐱) : ℝⁿ → ℝᵐ are the constraint residuals
//
// A solver iteration consumes up to six quantities per iterate: the
// objective value, its gradient 𝜵𝒇(𝐱) and Hessian 𝜵²𝒇(𝐱), the constraint
// values 𝒄(𝐱), their Jacobian 𝜵𝒄(𝐱) and the Hessian of the Lagrangian
// 𝜵²ℒ(𝐱,𝐳). The Problem interface fixes those six operations together with
// the dimensional discipline relating them; FuncProblem realizes the
// contract from plain function values so that a caller does not need to
// write a new type per problem.
//
// The package evaluates, it does not solve: line search, step acceptance
// and convergence logic belong to the consuming solver.
package problem

// Real is the set of admissible floating-point representations for a
// problem. Instantiating any type of this package with a non-float type
// argument does not compile.
type Real interface {
	~float32 | ~float64
}

// Problem is the capability set a constrained nonlinear problem exposes to
// a solver. All six evaluation operations are pure: deterministic in their
// arguments, free of side effects, recomputed on every call.
//
// Vector arguments are assumed to carry the lengths reported by Dims
// (primal n, dual m); implementations are not required to revalidate this
// on each call.
type Problem[T Real] interface {
	// Dims reports the primal dimension n and the dual dimension m.
	Dims() (n, m int)

	// Objective evaluates 𝒇(𝐱).
	Objective(x Vector[T]) T

	// ObjectiveGradient evaluates the n-vector 𝜵𝒇(𝐱).
	ObjectiveGradient(x Vector[T]) Vector[T]

	// ObjectiveHessian evaluates the n×n matrix 𝜵²𝒇(𝐱).
	ObjectiveHessian(x Vector[T]) Matrix[T]

	// Constraints evaluates the m-vector 𝒄(𝐱).
	Constraints(x Vector[T]) Vector[T]

	// ConstraintsJacobian evaluates the m×n matrix 𝜵𝒄(𝐱).
	// The dual vector z is passed through for problems whose Jacobian
	// assembly depends on multiplier weighting; implementations are free
	// to ignore it.
	ConstraintsJacobian(x, z Vector[T]) Matrix[T]

	// LagrangianHessian evaluates the n×n matrix 𝜵²ℒ(𝐱,𝐳) of the
	// Lagrangian, the objective plus the multiplier-weighted constraints.
	LagrangianHessian(x, z Vector[T]) Matrix[T]
}
