// Copyright ©2026 The primaldual Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gmat

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/primaldual/nlp/problem"
)

func TestVecRoundTrip(t *testing.T) {
	v := problem.Vector[float64]{1, -2, 3}
	gv := VecOf(v)
	require.Equal(t, 3, gv.Len())
	require.Equal(t, -2.0, gv.AtVec(1))

	gv.SetVec(1, 7) // the copy is independent
	require.Equal(t, -2.0, v[1])

	require.Equal(t, problem.Vector[float64]{1, 7, 3}, VecBack(gv))
}

func TestDenseRoundTrip(t *testing.T) {
	a := problem.MatrixFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	d := DenseOf(a)
	r, c := d.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, d.At(1, 2))

	d.Set(0, 0, -1)
	require.Equal(t, 1.0, a.At(0, 0))

	b := MatrixOf(d)
	require.Equal(t, []float64{-1, 2, 3, 4, 5, 6}, b.Raw())
}

func TestSymOf(t *testing.T) {
	a := problem.MatrixFrom(2, 2, []float64{2, 1, 1, 4})
	s := SymOf(a)
	require.Equal(t, 2, s.SymmetricDim())
	require.Equal(t, 1.0, s.At(1, 0))
	require.Equal(t, 4.0, s.At(1, 1))

	require.PanicsWithValue(t, notSquare, func() {
		SymOf(problem.MatrixFrom(1, 2, []float64{1, 2}))
	})
}

func TestFuncsProblem(t *testing.T) {
	f := Funcs{
		Func: func(x []float64) float64 {
			return x[0]*x[0] + x[1]*x[1]
		},
		Grad: func(grad, x []float64) {
			grad[0] = 2 * x[0]
			grad[1] = 2 * x[1]
		},
		Cons: func(c, x []float64) {
			c[0] = x[0] - 1
			c[1] = x[1] - 1
		},
		Jac: func(jac *mat.Dense, x []float64) {
			jac.Set(0, 0, 1)
			jac.Set(1, 1, 1)
		},
		LagHess: func(hess mat.MutableSymmetric, x, z []float64) {
			hess.SetSym(0, 0, 2)
			hess.SetSym(1, 1, 2)
		},
	}

	p, err := f.Problem(2, 2)
	require.NoError(t, err)

	x := problem.Vector[float64]{1, 1}
	z := problem.Vector[float64]{0, 0}

	require.Equal(t, 2.0, p.Objective(x))
	require.Equal(t, problem.Vector[float64]{2, 2}, p.ObjectiveGradient(x))
	require.Equal(t, problem.Vector[float64]{0, 0}, p.Constraints(x))
	require.Equal(t, []float64{1, 0, 0, 1}, p.ConstraintsJacobian(x, z).Raw())
	require.Equal(t, []float64{2, 0, 0, 2}, p.LagrangianHessian(x, z).Raw())

	// Hess was not supplied.
	require.Panics(t, func() { p.ObjectiveHessian(x) })

	_, err = Funcs{}.Problem(0, 1)
	require.Error(t, err)
}
