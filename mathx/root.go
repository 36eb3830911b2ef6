// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

const (
	// DefaultTolerance is the relative tolerance on x used by
	// Inverter when its Tolerance is 0.
	DefaultTolerance = 1e-14

	// DefaultMaxIterations is the evaluation budget used by
	// Inverter when its MaxIterations is 0.
	DefaultMaxIterations = 1000
)

// An Inverter inverts a nondecreasing function F on the open interval
// (Lo, Hi). Either bound may be infinite.
//
// Solve brackets the solution, then refines it with Newton steps
// when DF is provided and the step stays inside the bracket and
// converges quickly, falling back to bisection otherwise. When the bracket spans several orders
// of magnitude on one side of zero, bisection splits it
// geometrically.
type Inverter struct {
	// F is the function to invert.
	F func(x float64) float64

	// DF is the derivative of F. It may be nil, in which case
	// Solve uses bisection alone.
	DF func(x float64) float64

	// Lo and Hi bound the domain of F.
	Lo, Hi float64

	// Tolerance is the relative tolerance on the solution. If
	// zero, DefaultTolerance is used.
	Tolerance float64

	// MaxIterations is the maximum number of evaluations of F,
	// including those spent searching for a bracket. If zero,
	// DefaultMaxIterations is used.
	MaxIterations int
}

// Solve returns x such that F(x) ≈ y, starting from guess, along with
// the number of evaluations of F it took.
//
// If guess is not inside (Lo, Hi), Solve picks a starting point. It
// returns ErrDomain if the interval is empty or F returns NaN, and
// ErrNoConvergence if it exhausts its evaluation budget.
func (inv Inverter) Solve(y, guess float64) (x float64, iterations int, err error) {
	tol := inv.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}
	maxIterations := inv.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	lo, hi := inv.Lo, inv.Hi
	if math.IsNaN(y) || math.IsNaN(lo) || math.IsNaN(hi) || !(lo < hi) {
		return nan, 0, ErrDomain
	}

	// eval returns F(x)-y, counting evaluations against the
	// budget.
	eval := func(x float64) (float64, error) {
		if iterations >= maxIterations {
			return nan, ErrNoConvergence
		}
		iterations++
		fx := inv.F(x)
		if math.IsNaN(fx) {
			return nan, ErrDomain
		}
		return fx - y, nil
	}

	x = guess
	if !(x > lo && x < hi) || math.IsInf(x, 0) {
		x = interior(lo, hi)
	}
	fx, err := eval(x)
	if err != nil {
		return nan, iterations, err
	}

	// Establish a finite bracket [a, b] around the solution,
	// using exponential search toward an infinite bound. fa and fb
	// are F-y at the bracket ends, or NaN if not yet evaluated.
	a, b := lo, hi
	fa, fb := nan, nan
	if fx < 0 {
		a = x
		for step := math.Max(math.Abs(x), 1); math.IsInf(b, 1); step *= 2 {
			next := a + step
			if math.IsInf(next, 1) {
				return nan, iterations, ErrNoConvergence
			}
			fn, err := eval(next)
			if err != nil {
				return nan, iterations, err
			}
			if fn >= 0 {
				b, fb = next, fn
			} else {
				a = next
			}
			x, fx = next, fn
		}
	} else if fx > 0 {
		b = x
		for step := math.Max(math.Abs(x), 1); math.IsInf(a, -1); step *= 2 {
			next := b - step
			if math.IsInf(next, -1) {
				return nan, iterations, ErrNoConvergence
			}
			fn, err := eval(next)
			if err != nil {
				return nan, iterations, err
			}
			if fn <= 0 {
				a, fa = next, fn
			} else {
				b = next
			}
			x, fx = next, fn
		}
	}

	// lastStep is the distance moved by the previous step. Newton
	// steps must at least halve it, or Solve bisects instead.
	lastStep := inf
	for {
		if fx == 0 {
			return x, iterations, nil
		} else if fx < 0 {
			a, fa = x, fx
		} else {
			b, fb = x, fx
		}
		if b-a <= tol*math.Max(math.Abs(a), math.Abs(b)) {
			return x, iterations, nil
		}

		next, newton := nan, false
		if inv.DF != nil {
			if d := inv.DF(x); d > 0 && !math.IsInf(d, 1) {
				next, newton = x-fx/d, true
			}
		}
		if newton && math.Abs(next-x) > lastStep/2 {
			newton = false
		}
		if !newton || !(next > a && next < b) {
			next, newton = bisectPoint(a, b), false
			if next <= a || next >= b {
				// The bracket cannot be split further,
				// so the solution is not representable.
				// Return the closer end.
				x, err = closer(eval, a, fa, b, fb)
				return x, iterations, err
			}
		}
		if newton && math.Abs(next-x) <= tol*math.Abs(next) {
			return next, iterations, nil
		}

		lastStep = math.Abs(next - x)
		x = next
		if fx, err = eval(x); err != nil {
			return nan, iterations, err
		}
	}
}

// closer returns whichever of a and b has the smaller residual,
// evaluating the residuals that are not yet known.
func closer(eval func(float64) (float64, error), a, fa, b, fb float64) (float64, error) {
	var err error
	if math.IsNaN(fa) {
		if fa, err = eval(a); err != nil {
			return nan, err
		}
	}
	if math.IsNaN(fb) {
		if fb, err = eval(b); err != nil {
			return nan, err
		}
	}
	if math.Abs(fa) <= math.Abs(fb) {
		return a, nil
	}
	return b, nil
}

// interior returns a point strictly inside (lo, hi).
func interior(lo, hi float64) float64 {
	switch {
	case !math.IsInf(lo, 0) && !math.IsInf(hi, 0):
		return lo + (hi-lo)/2
	case !math.IsInf(lo, 0):
		return lo + math.Max(math.Abs(lo), 1)
	case !math.IsInf(hi, 0):
		return hi - math.Max(math.Abs(hi), 1)
	}
	return 0
}

// bisectPoint returns the point at which to split the bracket [a, b].
func bisectPoint(a, b float64) float64 {
	switch {
	case a >= 0 && b > 4*a:
		if a == 0 {
			return b / 8
		}
		return math.Sqrt(a) * math.Sqrt(b)
	case b <= 0 && a < 4*b:
		if b == 0 {
			return a / 8
		}
		return -math.Sqrt(-a) * math.Sqrt(-b)
	}
	return a + (b-a)/2
}
