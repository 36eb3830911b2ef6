// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-probdist/mathx"
)

// BetaDist is a beta distribution on [0, 1] with shape parameters
// Alpha and Beta.
type BetaDist struct {
	alpha, beta float64
}

// NewBeta returns the beta distribution with the given shape
// parameters, both of which must be positive and finite.
func NewBeta(alpha, beta float64) (BetaDist, error) {
	if err := checkPositive(KindBeta, "alpha", alpha); err != nil {
		return BetaDist{}, err
	}
	if err := checkPositive(KindBeta, "beta", beta); err != nil {
		return BetaDist{}, err
	}
	return BetaDist{alpha, beta}, nil
}

func (d BetaDist) Alpha() float64 { return d.alpha }
func (d BetaDist) Beta() float64  { return d.beta }

func (d BetaDist) Kind() Kind { return KindBeta }

func (d BetaDist) Support() Support {
	return Support{0, 1, true, true}
}

func (d BetaDist) Bounds() (float64, float64) {
	return 0, 1
}

func (d BetaDist) IsDiscrete() bool { return false }

func (d BetaDist) PDF(x float64) float64 {
	a, b := d.alpha, d.beta
	switch {
	case math.IsNaN(x):
		return nan
	case x < 0 || x > 1:
		return 0
	case x == 0:
		return edgeDensity(a, b)
	case x == 1:
		return edgeDensity(b, a)
	}
	return math.Exp(d.LogPDF(x))
}

// edgeDensity returns the limit of the beta(a, b) density at 0.
func edgeDensity(a, b float64) float64 {
	switch {
	case a < 1:
		return inf
	case a == 1:
		return b
	}
	return 0
}

func (d BetaDist) LogPDF(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	if x <= 0 || x >= 1 {
		return math.Log(d.PDF(x))
	}
	lb, _ := mathx.Lbeta(d.alpha, d.beta)
	return (d.alpha-1)*math.Log(x) + (d.beta-1)*math.Log1p(-x) - lb
}

func (d BetaDist) CDF(x float64) float64 {
	p, _, _ := d.tails(x)
	return p
}

func (d BetaDist) SF(x float64) float64 {
	_, q, _ := d.tails(x)
	return q
}

func (d BetaDist) tails(x float64) (cdf, sf float64, err error) {
	switch {
	case math.IsNaN(x):
		return nan, nan, nil
	case x <= 0:
		return 0, 1, nil
	case x >= 1:
		return 1, 0, nil
	}
	i, ic, err := mathx.BetaIncPair(x, d.alpha, d.beta)
	if err != nil {
		return nan, nan, wrapKernel(err, KindBeta, "x", x)
	}
	return i, ic, nil
}

func (d BetaDist) Quantile(p float64) (float64, error) {
	if err := checkProb(KindBeta, "p", p); err != nil {
		return nan, err
	}
	x, err := mathx.BetaIncInv(d.alpha, d.beta, p)
	if err != nil {
		return nan, wrapKernel(err, KindBeta, "p", p)
	}
	return x, nil
}

func (d BetaDist) QuantileComp(q float64) (float64, error) {
	if err := checkProb(KindBeta, "q", q); err != nil {
		return nan, err
	}
	x, err := mathx.BetaIncCompInv(d.alpha, d.beta, q)
	if err != nil {
		return nan, wrapKernel(err, KindBeta, "q", q)
	}
	return x, nil
}

func (d BetaDist) Mean() (float64, bool) {
	return defined(d.alpha / (d.alpha + d.beta))
}

func (d BetaDist) Variance() (float64, bool) {
	a, b := d.alpha, d.beta
	return defined(a * b / ((a + b) * (a + b) * (a + b + 1)))
}

// Mode is (α-1)/(α+β-2) when both shapes exceed 1. When only one
// does, the density peaks at an end of the support. It is undefined
// for the uniform and U-shaped cases.
func (d BetaDist) Mode() (float64, bool) {
	a, b := d.alpha, d.beta
	switch {
	case a > 1 && b > 1:
		return defined((a - 1) / (a + b - 2))
	case a <= 1 && b > 1:
		return defined(0)
	case a > 1 && b <= 1:
		return defined(1)
	}
	return undefined()
}

func (d BetaDist) Skewness() (float64, bool) {
	a, b := d.alpha, d.beta
	return defined(2 * (b - a) * math.Sqrt(a+b+1) / ((a + b + 2) * math.Sqrt(a*b)))
}

func (d BetaDist) ExcessKurtosis() (float64, bool) {
	a, b := d.alpha, d.beta
	num := 6 * ((a-b)*(a-b)*(a+b+1) - a*b*(a+b+2))
	return defined(num / (a * b * (a + b + 2) * (a + b + 3)))
}

func (d BetaDist) Entropy() (float64, bool) {
	a, b := d.alpha, d.beta
	lb, _ := mathx.Lbeta(a, b)
	psiA, err1 := mathx.Digamma(a)
	psiB, err2 := mathx.Digamma(b)
	psiAB, err3 := mathx.Digamma(a + b)
	if err1 != nil || err2 != nil || err3 != nil {
		return undefined()
	}
	return defined(lb - (a-1)*psiA - (b-1)*psiB + (a+b-2)*psiAB)
}
