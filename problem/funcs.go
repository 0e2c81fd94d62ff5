// Copyright ©2026 The primaldual Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package problem

import (
	"errors"
)

// Handle types stored by FuncProblem, one per evaluation operation.
type (
	// ObjectiveFunc evaluates 𝒇(𝐱) : ℝⁿ → ℝ.
	ObjectiveFunc[T Real] func(x Vector[T]) T
	// GradientFunc evaluates 𝜵𝒇(𝐱) : ℝⁿ → ℝⁿ.
	GradientFunc[T Real] func(x Vector[T]) Vector[T]
	// HessianFunc evaluates 𝜵²𝒇(𝐱) : ℝⁿ → ℝⁿˣⁿ.
	HessianFunc[T Real] func(x Vector[T]) Matrix[T]
	// ConstraintsFunc evaluates 𝒄(𝐱) : ℝⁿ → ℝᵐ.
	ConstraintsFunc[T Real] func(x Vector[T]) Vector[T]
	// JacobianFunc evaluates 𝜵𝒄(𝐱) : ℝⁿ → ℝᵐˣⁿ.
	// The dual vector z may be ignored.
	JacobianFunc[T Real] func(x, z Vector[T]) Matrix[T]
	// LagrangianHessianFunc evaluates 𝜵²ℒ(𝐱,𝐳) : ℝⁿ×ℝᵐ → ℝⁿˣⁿ.
	LagrangianHessianFunc[T Real] func(x, z Vector[T]) Matrix[T]
)

// Messages carried by the panic raised when an evaluation operation is
// invoked while its backing handle is unset. Invoking an unset handle is a
// programming error: substituting a default result would corrupt any
// solver step computed from it.
const (
	unsetObjective           = "problem: objective handle not set"
	unsetObjectiveGradient   = "problem: objective gradient handle not set"
	unsetObjectiveHessian    = "problem: objective hessian handle not set"
	unsetConstraints         = "problem: constraints handle not set"
	unsetConstraintsJacobian = "problem: constraints jacobian handle not set"
	unsetLagrangianHessian   = "problem: lagrangian hessian handle not set"
)

// Funcs specifies a FuncProblem by its dimensions and evaluation handles.
//
// Any handle may be left nil at construction and supplied later through
// its setter. ObjectiveHessian in particular is commonly omitted: solvers
// that only need curvature of the Lagrangian never call it.
type Funcs[T Real] struct {
	N int // The primal dimension
	M int // The dual (constraint) dimension

	Objective           ObjectiveFunc[T]         // 𝒇(𝐱)
	ObjectiveGradient   GradientFunc[T]          // 𝜵𝒇(𝐱)
	ObjectiveHessian    HessianFunc[T]           // 𝜵²𝒇(𝐱), optional
	Constraints         ConstraintsFunc[T]       // 𝒄(𝐱)
	ConstraintsJacobian JacobianFunc[T]          // 𝜵𝒄(𝐱)
	LagrangianHessian   LagrangianHessianFunc[T] // 𝜵²ℒ(𝐱,𝐳)
}

// New validates the dimensions and returns the function-backed problem.
// No instance is produced for non-positive N or M.
func (f *Funcs[T]) New() (p *FuncProblem[T], err error) {

	switch {
	case f.N <= 0:
		err = errors.New("primal dimension must greater than 0")
	case f.M <= 0:
		err = errors.New("dual dimension must greater than 0")
	}
	if err != nil {
		return
	}

	p = &FuncProblem[T]{
		n:                   f.N,
		m:                   f.M,
		objective:           f.Objective,
		objectiveGradient:   f.ObjectiveGradient,
		objectiveHessian:    f.ObjectiveHessian,
		constraints:         f.Constraints,
		constraintsJacobian: f.ConstraintsJacobian,
		lagrangianHessian:   f.LagrangianHessian,
	}
	return
}

// FuncProblem satisfies Problem by delegating every evaluation operation
// to an independently replaceable function handle.
//
// The six handles are the only mutable state. A solver is expected to
// evaluate without concurrent mutation of the handles; sharing one
// instance across goroutines while replacing handles requires external
// synchronization.
type FuncProblem[T Real] struct {
	n, m int

	objective           ObjectiveFunc[T]
	objectiveGradient   GradientFunc[T]
	objectiveHessian    HessianFunc[T]
	constraints         ConstraintsFunc[T]
	constraintsJacobian JacobianFunc[T]
	lagrangianHessian   LagrangianHessianFunc[T]
}

var _ Problem[float64] = (*FuncProblem[float64])(nil)

// Dims reports the primal dimension n and the dual dimension m.
func (p *FuncProblem[T]) Dims() (n, m int) {
	return p.n, p.m
}

// Objective evaluates 𝒇(𝐱) through the stored handle.
func (p *FuncProblem[T]) Objective(x Vector[T]) T {
	if p.objective == nil {
		panic(unsetObjective)
	}
	return p.objective(x)
}

// ObjectiveGradient evaluates 𝜵𝒇(𝐱) through the stored handle.
func (p *FuncProblem[T]) ObjectiveGradient(x Vector[T]) Vector[T] {
	if p.objectiveGradient == nil {
		panic(unsetObjectiveGradient)
	}
	return p.objectiveGradient(x)
}

// ObjectiveHessian evaluates 𝜵²𝒇(𝐱) through the stored handle.
func (p *FuncProblem[T]) ObjectiveHessian(x Vector[T]) Matrix[T] {
	if p.objectiveHessian == nil {
		panic(unsetObjectiveHessian)
	}
	return p.objectiveHessian(x)
}

// Constraints evaluates 𝒄(𝐱) through the stored handle.
func (p *FuncProblem[T]) Constraints(x Vector[T]) Vector[T] {
	if p.constraints == nil {
		panic(unsetConstraints)
	}
	return p.constraints(x)
}

// ConstraintsJacobian evaluates 𝜵𝒄(𝐱) through the stored handle.
func (p *FuncProblem[T]) ConstraintsJacobian(x, z Vector[T]) Matrix[T] {
	if p.constraintsJacobian == nil {
		panic(unsetConstraintsJacobian)
	}
	return p.constraintsJacobian(x, z)
}

// LagrangianHessian evaluates 𝜵²ℒ(𝐱,𝐳) through the stored handle.
func (p *FuncProblem[T]) LagrangianHessian(x, z Vector[T]) Matrix[T] {
	if p.lagrangianHessian == nil {
		panic(unsetLagrangianHessian)
	}
	return p.lagrangianHessian(x, z)
}

// GetObjective returns the stored objective handle.
func (p *FuncProblem[T]) GetObjective() ObjectiveFunc[T] {
	return p.objective
}

// SetObjective replaces the objective handle.
func (p *FuncProblem[T]) SetObjective(h ObjectiveFunc[T]) {
	p.objective = h
}

// GetObjectiveGradient returns the stored gradient handle.
func (p *FuncProblem[T]) GetObjectiveGradient() GradientFunc[T] {
	return p.objectiveGradient
}

// SetObjectiveGradient replaces the gradient handle.
func (p *FuncProblem[T]) SetObjectiveGradient(h GradientFunc[T]) {
	p.objectiveGradient = h
}

// GetObjectiveHessian returns the stored objective Hessian handle.
func (p *FuncProblem[T]) GetObjectiveHessian() HessianFunc[T] {
	return p.objectiveHessian
}

// SetObjectiveHessian replaces the objective Hessian handle.
func (p *FuncProblem[T]) SetObjectiveHessian(h HessianFunc[T]) {
	p.objectiveHessian = h
}

// GetConstraints returns the stored constraints handle.
func (p *FuncProblem[T]) GetConstraints() ConstraintsFunc[T] {
	return p.constraints
}

// SetConstraints replaces the constraints handle.
func (p *FuncProblem[T]) SetConstraints(h ConstraintsFunc[T]) {
	p.constraints = h
}

// GetConstraintsJacobian returns the stored Jacobian handle.
func (p *FuncProblem[T]) GetConstraintsJacobian() JacobianFunc[T] {
	return p.constraintsJacobian
}

// SetConstraintsJacobian replaces the Jacobian handle.
func (p *FuncProblem[T]) SetConstraintsJacobian(h JacobianFunc[T]) {
	p.constraintsJacobian = h
}

// GetLagrangianHessian returns the stored Lagrangian Hessian handle.
func (p *FuncProblem[T]) GetLagrangianHessian() LagrangianHessianFunc[T] {
	return p.lagrangianHessian
}

// SetLagrangianHessian replaces the Lagrangian Hessian handle.
func (p *FuncProblem[T]) SetLagrangianHessian(h LagrangianHessianFunc[T]) {
	p.lagrangianHessian = h
}
