// Copyright ©2026 The primaldual Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package problem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// quadratic builds the n=2, m=2 reference problem
//
//	𝒇(𝐱) = 𝐱₁² + 𝐱₂²
//	𝒄(𝐱) = (𝐱₁ - 1, 𝐱₂ - 1)
//
// with identity Jacobian and Lagrangian Hessian 2𝐈.
func quadratic(withHessian bool) *Funcs[float64] {
	f := &Funcs[float64]{
		N: 2, M: 2,
		Objective: func(x Vector[float64]) float64 {
			return x[0]*x[0] + x[1]*x[1]
		},
		ObjectiveGradient: func(x Vector[float64]) Vector[float64] {
			return Vector[float64]{2 * x[0], 2 * x[1]}
		},
		Constraints: func(x Vector[float64]) Vector[float64] {
			return Vector[float64]{x[0] - 1, x[1] - 1}
		},
		ConstraintsJacobian: func(x, z Vector[float64]) Matrix[float64] {
			return Eye[float64](2)
		},
		LagrangianHessian: func(x, z Vector[float64]) Matrix[float64] {
			return Eye[float64](2).Scale(2)
		},
	}
	if withHessian {
		f.ObjectiveHessian = func(x Vector[float64]) Matrix[float64] {
			return Eye[float64](2).Scale(2)
		}
	}
	return f
}

func TestNewValidation(t *testing.T) {
	for _, tc := range []struct{ n, m int }{
		{0, 2}, {-1, 2}, {2, 0}, {2, -3},
	} {
		f := quadratic(true)
		f.N, f.M = tc.n, tc.m
		p, err := f.New()
		require.Error(t, err)
		require.Nil(t, p)
	}
}

func TestDims(t *testing.T) {
	p, err := quadratic(false).New()
	require.NoError(t, err)
	n, m := p.Dims()
	require.Equal(t, 2, n)
	require.Equal(t, 2, m)
}

// Evaluation at 𝐱 = (1,1) with 𝐳 = (0.5,0.5) must return exactly what the
// supplied functions return.
func TestDelegation(t *testing.T) {
	p, err := quadratic(true).New()
	require.NoError(t, err)

	x := Vector[float64]{1, 1}
	z := Vector[float64]{0.5, 0.5}

	require.Equal(t, 2.0, p.Objective(x))
	require.Equal(t, Vector[float64]{2, 2}, p.ObjectiveGradient(x))
	require.Equal(t, Vector[float64]{0, 0}, p.Constraints(x))

	jac := p.ConstraintsJacobian(x, z)
	require.Equal(t, []float64{1, 0, 0, 1}, jac.Raw())
	r, c := jac.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)

	require.Equal(t, []float64{2, 0, 0, 2}, p.LagrangianHessian(x, z).Raw())
	require.Equal(t, []float64{2, 0, 0, 2}, p.ObjectiveHessian(x).Raw())
}

// Without the objective Hessian handle only ObjectiveHessian fails; the
// other five operations are unaffected.
func TestUnsetObjectiveHessian(t *testing.T) {
	p, err := quadratic(false).New()
	require.NoError(t, err)

	x := Vector[float64]{1, 1}
	z := Vector[float64]{0, 0}

	require.NotPanics(t, func() { p.Objective(x) })
	require.NotPanics(t, func() { p.ObjectiveGradient(x) })
	require.NotPanics(t, func() { p.Constraints(x) })
	require.NotPanics(t, func() { p.ConstraintsJacobian(x, z) })
	require.NotPanics(t, func() { p.LagrangianHessian(x, z) })

	require.PanicsWithValue(t, unsetObjectiveHessian, func() { p.ObjectiveHessian(x) })
}

func TestUnsetHandles(t *testing.T) {
	p, err := (&Funcs[float64]{N: 2, M: 2}).New()
	require.NoError(t, err)

	x := Vector[float64]{1, 1}
	z := Vector[float64]{0, 0}

	require.PanicsWithValue(t, unsetObjective, func() { p.Objective(x) })
	require.PanicsWithValue(t, unsetObjectiveGradient, func() { p.ObjectiveGradient(x) })
	require.PanicsWithValue(t, unsetObjectiveHessian, func() { p.ObjectiveHessian(x) })
	require.PanicsWithValue(t, unsetConstraints, func() { p.Constraints(x) })
	require.PanicsWithValue(t, unsetConstraintsJacobian, func() { p.ConstraintsJacobian(x, z) })
	require.PanicsWithValue(t, unsetLagrangianHessian, func() { p.LagrangianHessian(x, z) })
}

// Setter then getter must round-trip the identical handle, independently
// per operation.
func TestAccessorRoundTrip(t *testing.T) {
	p, err := (&Funcs[float64]{N: 1, M: 1}).New()
	require.NoError(t, err)

	calls := make([]string, 0, 6)
	mark := func(op string) { calls = append(calls, op) }

	obj := ObjectiveFunc[float64](func(Vector[float64]) float64 { mark("obj"); return 0 })
	grad := GradientFunc[float64](func(Vector[float64]) Vector[float64] { mark("grad"); return nil })
	hess := HessianFunc[float64](func(Vector[float64]) Matrix[float64] { mark("hess"); return Matrix[float64]{} })
	cons := ConstraintsFunc[float64](func(Vector[float64]) Vector[float64] { mark("cons"); return nil })
	jac := JacobianFunc[float64](func(_, _ Vector[float64]) Matrix[float64] { mark("jac"); return Matrix[float64]{} })
	lag := LagrangianHessianFunc[float64](func(_, _ Vector[float64]) Matrix[float64] { mark("lag"); return Matrix[float64]{} })

	p.SetObjective(obj)
	p.SetObjectiveGradient(grad)
	p.SetObjectiveHessian(hess)
	p.SetConstraints(cons)
	p.SetConstraintsJacobian(jac)
	p.SetLagrangianHessian(lag)

	// Handle identity is observed by invocation: the getter result and the
	// delegated evaluation must both reach the very function that was set.
	p.GetObjective()(nil)
	p.GetObjectiveGradient()(nil)
	p.GetObjectiveHessian()(nil)
	p.GetConstraints()(nil)
	p.GetConstraintsJacobian()(nil, nil)
	p.GetLagrangianHessian()(nil, nil)

	p.Objective(nil)
	p.ObjectiveGradient(nil)
	p.ObjectiveHessian(nil)
	p.Constraints(nil)
	p.ConstraintsJacobian(nil, nil)
	p.LagrangianHessian(nil, nil)

	require.Equal(t, []string{
		"obj", "grad", "hess", "cons", "jac", "lag",
		"obj", "grad", "hess", "cons", "jac", "lag",
	}, calls)
}

// Replacing one handle changes only that operation's evaluations.
func TestHandleReplacement(t *testing.T) {
	p, err := quadratic(true).New()
	require.NoError(t, err)

	x := Vector[float64]{3, 4}
	before := p.ObjectiveGradient(x)
	require.Equal(t, Vector[float64]{6, 8}, before)

	p.SetObjective(func(x Vector[float64]) float64 {
		return x[0] + x[1]
	})

	require.Equal(t, 7.0, p.Objective(x))
	require.Equal(t, Vector[float64]{6, 8}, p.ObjectiveGradient(x))
	require.Equal(t, Vector[float64]{2, 3}, p.Constraints(x))
	require.Equal(t, []float64{2, 0, 0, 2}, p.LagrangianHessian(x, Vector[float64]{0, 0}).Raw())

	p.SetObjectiveGradient(nil)
	require.PanicsWithValue(t, unsetObjectiveGradient, func() { p.ObjectiveGradient(x) })
	require.Equal(t, 7.0, p.Objective(x))
}

func TestFloat32Instantiation(t *testing.T) {
	f := &Funcs[float32]{
		N: 1, M: 1,
		Objective: func(x Vector[float32]) float32 { return x[0] * x[0] },
	}
	p, err := f.New()
	require.NoError(t, err)
	require.Equal(t, float32(9), p.Objective(Vector[float32]{3}))
}
