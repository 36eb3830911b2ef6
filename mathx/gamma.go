// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Lanczos approximation parameters (g=7, n=9), from Godfrey's
// tabulation. These give about 15 significant digits for x >= 0.5.
const lanczosG = 7

var lanczosCoef = [...]float64{
	0.99999999999980993,
	676.5203681218851,
	-1259.1392167224028,
	771.32342877765313,
	-176.61502916214059,
	12.507343278686905,
	-0.13857109526572012,
	9.9843695780195716e-6,
	1.5056327351493116e-7,
}

// log(sqrt(2*pi))
const lnSqrt2Pi = 0.91893853320467274178032973640561763986139747363778

// Lgamma returns the natural logarithm of the absolute value of the
// gamma function, log |Γ(x)|.
//
// Lgamma returns ErrDomain if x is NaN or a non-positive integer,
// where Γ has a pole.
func Lgamma(x float64) (float64, error) {
	switch {
	case math.IsNaN(x) || math.IsInf(x, -1):
		return nan, ErrDomain
	case math.IsInf(x, 1):
		return inf, nil
	case x <= 0 && x == math.Floor(x):
		return nan, ErrDomain
	case x == 1 || x == 2:
		return 0, nil
	}
	if x < 0.5 {
		// Reflection: Γ(x)Γ(1-x) = π / sin(πx).
		s := math.Abs(sinPi(x))
		lg, err := Lgamma(1 - x)
		if err != nil {
			return nan, err
		}
		return math.Log(math.Pi/s) - lg, nil
	}
	return lanczos(x), nil
}

// lanczos computes log Γ(x) for x >= 0.5.
func lanczos(x float64) float64 {
	z := x - 1
	sum := lanczosCoef[0]
	for i := 1; i < len(lanczosCoef); i++ {
		sum += lanczosCoef[i] / (z + float64(i))
	}
	t := z + lanczosG + 0.5
	return lnSqrt2Pi + (z+0.5)*math.Log(t) - t + math.Log(sum)
}

// sinPi returns sin(πx) with the argument reduced to [-1, 1] first
// so large arguments keep their precision.
func sinPi(x float64) float64 {
	r := x - 2*math.Round(x/2)
	return math.Sin(math.Pi * r)
}

// lgamma is Lgamma for callers that have already validated x.
func lgamma(x float64) float64 {
	y, _ := Lgamma(x)
	return y
}

// GammaInc returns the value of the incomplete gamma function (also
// known as the regularized gamma function):
//
//	P(a, x) = 1 / Γ(a) * ∫₀ˣ exp(-t) t**(a-1) dt
//
// The result is in [0, 1]. GammaInc returns ErrDomain if a <= 0,
// x < 0, or either is NaN.
func GammaInc(a, x float64) (float64, error) {
	p, _, err := GammaIncPair(a, x)
	return p, err
}

// GammaIncComp returns the complement of the incomplete gamma
// function, Q(a, x) = 1 - P(a, x). This is more numerically stable
// for values of P near 1.
func GammaIncComp(a, x float64) (float64, error) {
	_, q, err := GammaIncPair(a, x)
	return q, err
}

// GammaIncPair returns both P(a, x) and Q(a, x) for the cost of one.
// One of the two is computed directly and the other is its
// complement, so p+q == 1 to within rounding.
func GammaIncPair(a, x float64) (p, q float64, err error) {
	// Based on Numerical Recipes in C, section 6.2.
	if !(a > 0) || !(x >= 0) || math.IsInf(a, 1) {
		return nan, nan, ErrDomain
	}
	if x == 0 {
		return 0, 1, nil
	}
	if math.IsInf(x, 1) {
		return 1, 0, nil
	}

	if x < a+1 {
		// Use the series representation, which converges more
		// rapidly in this range.
		p, err = gammaIncSeries(a, x)
		p = clamp01(p)
		return p, 1 - p, err
	}
	// Use the continued fraction representation.
	q, err = gammaIncCF(a, x)
	q = clamp01(q)
	return 1 - q, q, err
}

// gammaPrefix returns exp(-x) x**a / Γ(a), the factor shared by the
// series and continued fraction representations.
func gammaPrefix(a, x float64) float64 {
	return math.Exp(-x + a*math.Log(x) - lgamma(a))
}

func gammaIncSeries(a, x float64) (float64, error) {
	maxIterations := iterationBudget(math.Max(a, x))

	ap := a
	del := 1 / a
	sum := del
	for n := 0; n < maxIterations; n++ {
		ap++
		del *= x / ap
		sum += del
		if math.Abs(del) < math.Abs(sum)*eps {
			return sum * gammaPrefix(a, x), nil
		}
	}
	return nan, ErrNoConvergence
}

func gammaIncCF(a, x float64) (float64, error) {
	maxIterations := iterationBudget(math.Max(a, x))

	// Modified Lentz's method.
	b := x + 1 - a
	c := 1 / tiny
	d := 1 / b
	h := d

	for i := 1; i <= maxIterations; i++ {
		an := -float64(i) * (float64(i) - a)
		b += 2
		d = raiseZero(an*d + b)
		c = raiseZero(b + an/c)
		d = 1 / d
		del := d * c
		h *= del
		if math.Abs(del-1) < eps {
			return gammaPrefix(a, x) * h, nil
		}
	}
	return nan, ErrNoConvergence
}

// gammaDensity is the derivative of P(a, x) with respect to x.
func gammaDensity(a, x float64) float64 {
	if x <= 0 {
		if x == 0 && a == 1 {
			return 1
		}
		if x == 0 && a < 1 {
			return inf
		}
		return 0
	}
	return math.Exp(-x + (a-1)*math.Log(x) - lgamma(a))
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	} else if x > 1 {
		return 1
	}
	return x
}
