package numdiff

import (
	"errors"
	"math"
)

var sqrtEps = math.Sqrt(math.Nextafter(1, 2) - 1)
var cubeEps = math.Pow(math.Nextafter(1, 2)-1, float64(1)/3)

type Method int

const (
	// Forward use the first order accuracy forward difference.
	Forward Method = iota
	// Central use central difference in interior points and the second order accuracy
	// forward or backward difference near the boundary.
	Central
)

// Bound limits the evaluation range of one variable.
type Bound struct {
	Lower, Upper float64
}

// Spec describes a finite-difference approximation of the derivative of a
// vector function 𝒚(𝐱) : ℝⁿ → ℝᵐ.
//
// A Spec reuses its evaluation buffers between calls and therefore must
// not be shared across goroutines.
//
// # Reference:
//
//   - https://en.wikipedia.org/wiki/Finite_difference
//   - https://github.com/scipy/scipy/blob/main/scipy/optimize/_numdiff.py
type Spec struct {
	N, M int
	// Eval evaluates the function to differentiate.
	// The argument x is an n-vector, the result is stored in the m-vector y.
	Eval func(x, y []float64)
	// Finite difference method to use.
	Method Method
	// Optional bounds on the variables, used to keep evaluation points
	// inside the feasible range. NaN endpoints mean unbounded.
	Bounds []Bound
	// Relative step size used to compute absolute step size as
	// h = RelStep * sign(x0) * abs(x0). Selected automatically when zero.
	RelStep float64
	// Absolute step size, possibly adjusted to fit into the bounds.
	// For the Central method its sign is ignored.
	AbsStep float64
	diffCtx
}

type diffCtx struct {
	f0, fx  []float64
	step    []float64
	oneSide []bool
}

// check the parameters and size the evaluation buffers.
func (s *Spec) check(x0, out []float64) (err error) {

	switch {
	case s.N <= 0 || s.M <= 0:
		err = errors.New("negative dimensions")
	case s.Method != Forward && s.Method != Central:
		err = errors.New("unknown method")
	case s.Eval == nil:
		err = errors.New("eval function is required")
	case s.N != len(x0):
		return errors.New("invalid x0 dimensions")
	case s.N*s.M != len(out):
		return errors.New("invalid out dimensions")
	}

	if s.Bounds != nil {
		if len(s.Bounds) != len(x0) {
			err = errors.New("invalid bound dimension")
		} else {
			for i, bound := range s.Bounds {
				l, u := bound.Lower, bound.Upper
				if math.IsNaN(l) {
					l = math.Inf(-1)
				}
				if math.IsNaN(u) {
					u = math.Inf(1)
				}
				if l > u {
					err = errors.New("invalid bound range")
					break
				}
				if x0[i] < l || x0[i] > u {
					err = errors.New("x0 violates bound constraints")
					break
				}
			}
		}
	}

	if len(s.fx) != s.M*(int(s.Method)+1) {
		s.f0 = make([]float64, s.M)
		s.fx = make([]float64, s.M*(int(s.Method)+1))
	}
	if len(s.step) != s.N {
		s.step = make([]float64, s.N)
	}
	if len(s.oneSide) != s.N*int(s.Method) {
		s.oneSide = make([]bool, s.N*int(s.Method))
	}
	return
}

// Diff approximates the derivative of Eval at x0 and stores the result in
// the row-major m×n matrix out, with out[j*n+i] = ∂𝒚ⱼ/∂𝐱ᵢ.
//
// The entries of x0 are perturbed in place during evaluation and restored
// before Diff returns.
func (s *Spec) Diff(x0, out []float64) error {

	if err := s.check(x0, out); err != nil {
		return err
	}

	bnd := false
	for _, bound := range s.Bounds {
		l, u := bound.Lower, bound.Upper
		if bnd = !(math.IsInf(l, 0) && math.IsInf(u, 0)) && !(math.IsNaN(l) && math.IsNaN(u)); bnd {
			break
		}
	}

	s.absoluteStep(x0)
	s.adjustToBounds(x0, bnd)

	if s.Method == Central {
		s.approxCentral(x0, out)
	} else {
		s.approxForward(x0, out)
	}

	return nil
}

func (s *Spec) absoluteStep(x0 []float64) {
	h := s.step
	if len(h) != len(x0) {
		panic("bound check error")
	}

	var eps float64
	switch s.Method {
	case Forward:
		eps = sqrtEps
	case Central:
		eps = cubeEps
	default:
		panic("unknown method")
	}

	abs, rel := s.AbsStep, s.RelStep
	if abs == 0 && rel == 0 {
		for i, v := range x0 {
			h[i] = math.Copysign(eps, v) * math.Max(1.0, math.Abs(v))
		}
	} else {
		for i, v := range x0 {
			d := abs
			if d == 0 {
				d = math.Copysign(rel, v) * math.Abs(v)
			}
			if (v+d)-v == 0 {
				d = math.Copysign(eps, v) * math.Max(1.0, math.Abs(v))
			}
			h[i] = d
		}
	}
}

func (s *Spec) adjustToBounds(x0 []float64, bnd bool) {
	h, o := s.step, s.oneSide
	if s.Method == Central {
		for i, v := range h {
			h[i] = math.Abs(v)
		}
		for i := range o {
			o[i] = false
		}
	}

	if !bnd {
		return
	}

	b := s.Bounds
	if len(x0) != len(b) || len(x0) != len(h) {
		panic("bound check error")
	}

	if s.Method == Forward {
		for i, x0 := range x0 {
			lb, ub := b[i].Lower, b[i].Upper
			ld, ud := x0-lb, ub-x0
			h0 := h[i]
			x := x0 + h0
			violated := x < lb || x > ub
			fitting := math.Abs(h[i]) < math.Max(ld, ud)
			if violated && fitting {
				h[i] = -h0
			} else if !fitting {
				if ud >= ld {
					h[i] = ud
				} else if ud < ld {
					h[i] = -ld
				}
			}
		}
	} else {
		if len(x0) != len(o) {
			panic("bound check error")
		}
		for i, x0 := range x0 {
			lb, ub := b[i].Lower, b[i].Upper
			ld, ud := x0-lb, ub-x0
			central := ld >= h[i] && ud >= h[i]
			if !central {
				if ud >= ld {
					h[i] = math.Min(h[i], 0.5*ud)
					o[i] = true
				} else if ud < ld {
					h[i] = -math.Min(h[i], 0.5*ld)
					o[i] = true
				}
			}
			minDist := math.Min(ud, ld)
			adjCent := !central && math.Abs(h[i]) <= minDist
			if adjCent {
				h[i] = minDist
				o[i] = false
			}
		}
	}
}

func (s *Spec) approxForward(x0, out []float64) {

	f0, fx, h, n := s.f0, s.fx, s.step, s.N
	if len(h) != len(x0) || len(f0) != len(fx) {
		panic("bound check error")
	}

	eval := s.Eval
	eval(x0, f0)
	for i, d := range h {
		t := x0[i]
		x0[i] = t + d
		eval(x0, fx)
		inv := 1.0 / d
		for j := range f0 {
			out[j*n+i] = (fx[j] - f0[j]) * inv
		}
		x0[i] = t
	}
}

func (s *Spec) approxCentral(x0, out []float64) {

	f0, h, o, n, m := s.f0, s.step, s.oneSide, s.N, s.M
	f1, f2 := s.fx[:m], s.fx[m:]
	if len(h) != len(x0) || len(h) != len(o) || len(f0) != len(f1) || len(f0) != len(f2) {
		panic("bound check error")
	}

	eval := s.Eval
	eval(x0, f0)
	for i, d := range h {
		x := x0[i]
		inv := 1.0 / (2 * d)
		if o[i] {
			x0[i] = x + d
			eval(x0, f1)
			x0[i] = x + 2*d
			eval(x0, f2)
			for j := range f0 {
				out[j*n+i] = (4*f1[j] - 3*f0[j] - f2[j]) * inv
			}
		} else {
			x0[i] = x - d
			eval(x0, f1)
			x0[i] = x + d
			eval(x0, f2)
			for j := range f0 {
				out[j*n+i] = (f2[j] - f1[j]) * inv
			}
		}
		x0[i] = x
	}
}
