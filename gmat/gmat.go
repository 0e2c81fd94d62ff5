// Copyright ©2026 The primaldual Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gmat bridges the problem containers and gonum/mat, so that
// problems written against gonum matrix types plug into the evaluation
// contract and evaluation results feed gonum-based linear algebra.
package gmat

import (
	"gonum.org/v1/gonum/mat"

	"github.com/primaldual/nlp/problem"
)

const notSquare = "gmat: matrix is not square"

// VecOf copies v into a new gonum vector.
func VecOf(v problem.Vector[float64]) *mat.VecDense {
	return mat.NewVecDense(len(v), v.Clone())
}

// VecBack copies a gonum vector into a problem vector.
func VecBack(v mat.Vector) problem.Vector[float64] {
	w := make(problem.Vector[float64], v.Len())
	for i := range w {
		w[i] = v.AtVec(i)
	}
	return w
}

// DenseOf copies a into a new gonum dense matrix.
func DenseOf(a problem.Matrix[float64]) *mat.Dense {
	r, c := a.Dims()
	d := make([]float64, r*c)
	copy(d, a.Raw())
	return mat.NewDense(r, c, d)
}

// SymOf copies the upper triangle of the square matrix a into a new gonum
// symmetric matrix. It panics when a is not square.
func SymOf(a problem.Matrix[float64]) *mat.SymDense {
	r, c := a.Dims()
	if r != c {
		panic(notSquare)
	}
	s := mat.NewSymDense(r, nil)
	for i := 0; i < r; i++ {
		for j := i; j < c; j++ {
			s.SetSym(i, j, a.At(i, j))
		}
	}
	return s
}

// MatrixOf copies any gonum matrix into a problem matrix.
func MatrixOf(a mat.Matrix) problem.Matrix[float64] {
	r, c := a.Dims()
	b := problem.NewMatrix[float64](r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			b.Set(i, j, a.At(i, j))
		}
	}
	return b
}
