// Copyright ©2026 The primaldual Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package problem

const (
	badShape = "problem: non-positive dimension"
	badIndex = "problem: index out of range"
	badData  = "problem: data length does not match dimensions"
)

// Vector is a fixed-length column of Real values. Its length identifies its
// role: primal vectors and gradients have the primal length n, dual vectors
// and constraint values the dual length m.
type Vector[T Real] []T

// NewVector returns a zero vector of length n.
// It panics when n is not positive.
func NewVector[T Real](n int) Vector[T] {
	if n <= 0 {
		panic(badShape)
	}
	return make(Vector[T], n)
}

// Clone returns an independent copy of v.
func (v Vector[T]) Clone() Vector[T] {
	w := make(Vector[T], len(v))
	copy(w, v)
	return w
}

// Matrix is a dense matrix of Real values with row-major flat storage.
// Hessians are n×n, Jacobians m×n.
type Matrix[T Real] struct {
	rows, cols int
	data       []T
}

// NewMatrix returns a zero rows×cols matrix.
// It panics when either dimension is not positive.
func NewMatrix[T Real](rows, cols int) Matrix[T] {
	if rows <= 0 || cols <= 0 {
		panic(badShape)
	}
	return Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// MatrixFrom wraps the row-major slice data as a rows×cols matrix without
// copying. It panics when the dimensions are not positive or len(data)
// differs from rows×cols.
func MatrixFrom[T Real](rows, cols int, data []T) Matrix[T] {
	if rows <= 0 || cols <= 0 {
		panic(badShape)
	}
	if len(data) != rows*cols {
		panic(badData)
	}
	return Matrix[T]{rows: rows, cols: cols, data: data}
}

// Eye returns the n×n identity matrix.
func Eye[T Real](n int) Matrix[T] {
	a := NewMatrix[T](n, n)
	for i := 0; i < n; i++ {
		a.data[i*n+i] = 1
	}
	return a
}

// Dims reports the number of rows and columns.
func (a Matrix[T]) Dims() (rows, cols int) {
	return a.rows, a.cols
}

// At returns the element at row i, column j.
func (a Matrix[T]) At(i, j int) T {
	if uint(i) >= uint(a.rows) || uint(j) >= uint(a.cols) {
		panic(badIndex)
	}
	return a.data[i*a.cols+j]
}

// Set stores v at row i, column j.
func (a Matrix[T]) Set(i, j int, v T) {
	if uint(i) >= uint(a.rows) || uint(j) >= uint(a.cols) {
		panic(badIndex)
	}
	a.data[i*a.cols+j] = v
}

// Row returns row i backed by the matrix storage.
func (a Matrix[T]) Row(i int) Vector[T] {
	if uint(i) >= uint(a.rows) {
		panic(badIndex)
	}
	return Vector[T](a.data[i*a.cols : (i+1)*a.cols])
}

// Raw returns the row-major backing slice.
func (a Matrix[T]) Raw() []T {
	return a.data
}

// Scale multiplies every element by k in place and returns the matrix.
func (a Matrix[T]) Scale(k T) Matrix[T] {
	for i := range a.data {
		a.data[i] *= k
	}
	return a
}

// Clone returns an independent copy of the matrix.
func (a Matrix[T]) Clone() Matrix[T] {
	b := Matrix[T]{rows: a.rows, cols: a.cols, data: make([]T, len(a.data))}
	copy(b.data, a.data)
	return b
}
