// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// GammaIncInv returns the inverse of the incomplete gamma function
// with respect to x. That is, it returns x such that P(a, x) = p.
//
// GammaIncInv returns ErrDomain if a <= 0 or p is outside [0, 1],
// and ErrNoConvergence if the refinement fails to reach tolerance.
func GammaIncInv(a, p float64) (float64, error) {
	return gammaIncInv(a, p, 1-p)
}

// GammaIncCompInv returns x such that Q(a, x) = q. For q near 0 it is
// more accurate than GammaIncInv(a, 1-q).
func GammaIncCompInv(a, q float64) (float64, error) {
	return gammaIncInv(a, 1-q, q)
}

// gammaIncInv solves for x in whichever tail is smaller, given both
// p and its complement q.
func gammaIncInv(a, p, q float64) (float64, error) {
	if !(a > 0) || math.IsInf(a, 1) || !(p >= 0 && p <= 1) || !(q >= 0 && q <= 1) {
		return nan, ErrDomain
	}
	if p == 0 {
		return 0, nil
	}
	if q == 0 {
		return inf, nil
	}

	var failed error
	inv := Inverter{
		DF: func(x float64) float64 { return gammaDensity(a, x) },
		Lo: 0,
		Hi: inf,
	}
	y := p
	if p <= q {
		inv.F = func(x float64) float64 {
			p, _, err := GammaIncPair(a, x)
			if err != nil {
				failed = err
			}
			return p
		}
	} else {
		// Q is decreasing, so solve -Q(a, x) = -q.
		y = -q
		inv.F = func(x float64) float64 {
			_, q, err := GammaIncPair(a, x)
			if err != nil {
				failed = err
			}
			return -q
		}
	}

	x, _, err := inv.Solve(y, gammaIncInvGuess(a, p, q))
	if failed != nil {
		return nan, failed
	}
	return x, err
}

// gammaIncInvGuess returns a starting point for inverting P(a, x).
//
// Based on Numerical Recipes, 3rd edition, section 6.2.1: the
// Wilson-Hilferty approximation for a > 1 and a power-law/exponential
// tail approximation otherwise.
func gammaIncInvGuess(a, p, q float64) float64 {
	if a > 1 {
		pp := math.Min(p, q)
		t := math.Sqrt(-2 * math.Log(pp))
		z := (2.30753+t*0.27061)/(1+t*(0.99229+t*0.04481)) - t
		if p < 0.5 {
			z = -z
		}
		return math.Max(1e-3, a*math.Pow(1-1/(9*a)-z/(3*math.Sqrt(a)), 3))
	}
	t := 1 - a*(0.253+a*0.12)
	if p < t {
		return math.Pow(p/t, 1/a)
	}
	return 1 - math.Log(q/(1-t))
}
