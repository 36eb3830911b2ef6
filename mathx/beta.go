// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Lbeta returns the natural logarithm of the complete beta function,
// log B(a, b) = log Γ(a) + log Γ(b) - log Γ(a+b), for a, b > 0.
func Lbeta(a, b float64) (float64, error) {
	if !(a > 0) || !(b > 0) {
		return nan, ErrDomain
	}
	return lgamma(a) + lgamma(b) - lgamma(a+b), nil
}

// BetaInc returns the value of the regularized incomplete beta
// function Iₓ(a, b).
//
// This is not to be confused with the "incomplete beta function",
// which can be computed as BetaInc(x, a, b)*Beta(a, b).
//
// BetaInc returns ErrDomain if x is not in [0, 1] or a or b is not
// positive.
func BetaInc(x, a, b float64) (float64, error) {
	i, _, err := BetaIncPair(x, a, b)
	return i, err
}

// BetaIncComp returns 1 - Iₓ(a, b), computed without cancellation
// when Iₓ(a, b) is near 1.
func BetaIncComp(x, a, b float64) (float64, error) {
	_, ic, err := BetaIncPair(x, a, b)
	return ic, err
}

// BetaIncPair returns both Iₓ(a, b) and 1 - Iₓ(a, b) for the cost of
// one. One of the two is computed directly and the other is its
// complement.
func BetaIncPair(x, a, b float64) (i, ic float64, err error) {
	// Based on Numerical Recipes in C, section 6.4. This uses the
	// continued fraction definition of I:
	//
	//  (xᵃ*(1-x)ᵇ)/(a*B(a,b)) * (1/(1+(d₁/(1+(d₂/(1+...))))))
	//
	// where B(a,b) is the beta function and
	//
	//  d_{2m+1} = -(a+m)(a+b+m)x/((a+2m)(a+2m+1))
	//  d_{2m}   = m(b-m)x/((a+2m-1)(a+2m))
	if !(x >= 0 && x <= 1) || !(a > 0) || !(b > 0) || math.IsInf(a, 1) || math.IsInf(b, 1) {
		return nan, nan, ErrDomain
	}
	if x == 0 {
		return 0, 1, nil
	} else if x == 1 {
		return 1, 0, nil
	}

	// Compute the coefficient before the continued fraction.
	bt := math.Exp(lgamma(a+b) - lgamma(a) - lgamma(b) +
		a*math.Log(x) + b*math.Log1p(-x))
	if x < (a+1)/(a+b+2) {
		// Compute continued fraction directly.
		cf, err := betacf(x, a, b)
		if err != nil {
			return nan, nan, err
		}
		i = clamp01(bt * cf / a)
		return i, 1 - i, nil
	}
	// Compute continued fraction after symmetry transform.
	cf, err := betacf(1-x, b, a)
	if err != nil {
		return nan, nan, err
	}
	ic = clamp01(bt * cf / b)
	return 1 - ic, ic, nil
}

// betacf is the continued fraction component of the regularized
// incomplete beta function Iₓ(a, b).
func betacf(x, a, b float64) (float64, error) {
	maxIterations := iterationBudget(math.Max(a, b))

	c := 1.0
	d := 1 / raiseZero(1-(a+b)*x/(a+1))
	h := d
	for m := 1; m <= maxIterations; m++ {
		mf := float64(m)

		// Even step of the recurrence.
		numer := mf * (b - mf) * x / ((a + 2*mf - 1) * (a + 2*mf))
		d = 1 / raiseZero(1+numer*d)
		c = raiseZero(1 + numer/c)
		h *= d * c

		// Odd step of the recurrence.
		numer = -(a + mf) * (a + b + mf) * x / ((a + 2*mf) * (a + 2*mf + 1))
		d = 1 / raiseZero(1+numer*d)
		c = raiseZero(1 + numer/c)
		hfac := d * c
		h *= hfac

		if math.Abs(hfac-1) < eps {
			return h, nil
		}
	}
	return nan, ErrNoConvergence
}

// betaDensity is the derivative of Iₓ(a, b) with respect to x.
func betaDensity(x, a, b float64) float64 {
	if x <= 0 || x >= 1 {
		return 0
	}
	lb, _ := Lbeta(a, b)
	return math.Exp((a-1)*math.Log(x) + (b-1)*math.Log1p(-x) - lb)
}

// BetaIncInv returns x such that Iₓ(a, b) = p.
//
// BetaIncInv returns ErrDomain if a or b is not positive or p is
// outside [0, 1], and ErrNoConvergence if refinement fails.
func BetaIncInv(a, b, p float64) (float64, error) {
	return betaIncInv(a, b, p, 1-p)
}

// BetaIncCompInv returns x such that 1 - Iₓ(a, b) = q. For q near 0
// it is more accurate than BetaIncInv(a, b, 1-q).
func BetaIncCompInv(a, b, q float64) (float64, error) {
	return betaIncInv(a, b, 1-q, q)
}

func betaIncInv(a, b, p, q float64) (float64, error) {
	if !(a > 0) || !(b > 0) || math.IsInf(a, 1) || math.IsInf(b, 1) ||
		!(p >= 0 && p <= 1) || !(q >= 0 && q <= 1) {
		return nan, ErrDomain
	}
	if p == 0 {
		return 0, nil
	}
	if q == 0 {
		return 1, nil
	}

	var failed error
	inv := Inverter{
		DF: func(x float64) float64 { return betaDensity(x, a, b) },
		Lo: 0,
		Hi: 1,
	}
	y := p
	if p <= q {
		inv.F = func(x float64) float64 {
			i, _, err := BetaIncPair(x, a, b)
			if err != nil {
				failed = err
			}
			return i
		}
	} else {
		y = -q
		inv.F = func(x float64) float64 {
			_, ic, err := BetaIncPair(x, a, b)
			if err != nil {
				failed = err
			}
			return -ic
		}
	}

	x, _, err := inv.Solve(y, betaIncInvGuess(a, b, p, q))
	if failed != nil {
		return nan, failed
	}
	return x, err
}

// betaIncInvGuess returns a starting point for inverting Iₓ(a, b).
//
// Based on Numerical Recipes, 3rd edition, section 6.4.
func betaIncInvGuess(a, b, p, q float64) float64 {
	if a >= 1 && b >= 1 {
		pp := math.Min(p, q)
		t := math.Sqrt(-2 * math.Log(pp))
		z := (2.30753+t*0.27061)/(1+t*(0.99229+t*0.04481)) - t
		if p < 0.5 {
			z = -z
		}
		al := (z*z - 3) / 6
		h := 2 / (1/(2*a-1) + 1/(2*b-1))
		w := z*math.Sqrt(al+h)/h - (1/(2*b-1)-1/(2*a-1))*(al+5.0/6-2/(3*h))
		return a / (a + b*math.Exp(2*w))
	}
	lna, lnb := math.Log(a/(a+b)), math.Log(b/(a+b))
	t := math.Exp(a*lna) / a
	u := math.Exp(b*lnb) / b
	w := t + u
	if p < t/w {
		return math.Pow(a*w*p, 1/a)
	}
	return 1 - math.Pow(b*w*q, 1/b)
}
