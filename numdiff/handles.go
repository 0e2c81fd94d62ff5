package numdiff

import (
	"github.com/primaldual/nlp/problem"
)

// Handle synthesis for problem.Funcs: each constructor derives a missing
// derivative handle from a value-only callable by finite differences.
// The Lagrangian convention is ℒ(𝐱,𝐳) = 𝒇(𝐱) - 𝐳ᵀ𝒄(𝐱).
//
// The returned handles keep private evaluation buffers and are not safe
// for concurrent use. A mis-sized input vector makes Diff fail and the
// handle panic, like any other dimension misuse.

// GradientOf approximates 𝜵𝒇(𝐱) of an n-dimensional objective.
func GradientOf(n int, f problem.ObjectiveFunc[float64], method Method) problem.GradientFunc[float64] {
	s := &Spec{
		N: n, M: 1, Method: method,
		Eval: func(x, y []float64) { y[0] = f(x) },
	}
	return func(x problem.Vector[float64]) problem.Vector[float64] {
		g := make([]float64, n)
		if err := s.Diff(x.Clone(), g); err != nil {
			panic(err)
		}
		return g
	}
}

// JacobianOf approximates the m×n Jacobian 𝜵𝒄(𝐱) of a constraints
// function. The dual vector of the returned handle is ignored.
func JacobianOf(n, m int, c problem.ConstraintsFunc[float64], method Method) problem.JacobianFunc[float64] {
	s := &Spec{
		N: n, M: m, Method: method,
		Eval: func(x, y []float64) { copy(y, c(x)) },
	}
	return func(x, _ problem.Vector[float64]) problem.Matrix[float64] {
		out := make([]float64, m*n)
		if err := s.Diff(x.Clone(), out); err != nil {
			panic(err)
		}
		return problem.MatrixFrom(m, n, out)
	}
}

// HessianOf approximates the n×n Hessian 𝜵²𝒇(𝐱) by differencing an
// analytic (or already approximated) gradient handle.
func HessianOf(n int, g problem.GradientFunc[float64], method Method) problem.HessianFunc[float64] {
	s := &Spec{
		N: n, M: n, Method: method,
		Eval: func(x, y []float64) { copy(y, g(x)) },
	}
	return func(x problem.Vector[float64]) problem.Matrix[float64] {
		out := make([]float64, n*n)
		if err := s.Diff(x.Clone(), out); err != nil {
			panic(err)
		}
		return problem.MatrixFrom(n, n, out)
	}
}

// LagrangianHessianOf approximates 𝜵²ℒ(𝐱,𝐳) by differencing the
// Lagrangian gradient 𝜵ℒ(𝐱,𝐳) = 𝜵𝒇(𝐱) - 𝜵𝒄(𝐱)ᵀ𝐳 with respect to 𝐱.
func LagrangianHessianOf(n, m int, g problem.GradientFunc[float64], jac problem.JacobianFunc[float64], method Method) problem.LagrangianHessianFunc[float64] {
	return func(x, z problem.Vector[float64]) problem.Matrix[float64] {
		s := &Spec{
			N: n, M: n, Method: method,
			Eval: func(xv, y []float64) {
				grad := g(xv)
				a := jac(xv, z)
				for i := 0; i < n; i++ {
					li := grad[i]
					for j := 0; j < m; j++ {
						li -= z[j] * a.At(j, i)
					}
					y[i] = li
				}
			},
		}
		out := make([]float64, n*n)
		if err := s.Diff(x.Clone(), out); err != nil {
			panic(err)
		}
		return problem.MatrixFrom(n, n, out)
	}
}
