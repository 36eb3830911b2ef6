// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// QuantileCIResult is a distribution-free confidence interval for a
// quantile, expressed in terms of the order statistics of a sample.
type QuantileCIResult struct {
	// Quantile and N are the arguments to QuantileCI.
	Quantile float64
	N        int

	// Confidence is the achieved confidence level, which is at
	// least the requested level.
	Confidence float64

	// LoOrder and HiOrder are the 1-based order statistics that
	// bound the interval: for sorted xs, the interval is
	// xs[LoOrder-1] to xs[HiOrder-1]. LoOrder may be 0 and HiOrder
	// may be N+1, meaning that bound is -∞ or +∞.
	LoOrder, HiOrder int

	// Ambiguous reports that the interval shifted one order
	// statistic to the right has the same confidence.
	Ambiguous bool
}

// FromSorted returns the bounds of the interval for a sorted sample
// of size r.N.
func (r QuantileCIResult) FromSorted(xs []float64) (lo, hi float64, err error) {
	if len(xs) != r.N {
		return nan, nan, newError(ParameterOutOfRange, KindBinomial, "len(xs)", float64(len(xs)))
	}
	lo, hi = -inf, inf
	if r.LoOrder >= 1 {
		lo = xs[r.LoOrder-1]
	}
	if r.HiOrder <= len(xs) {
		hi = xs[r.HiOrder-1]
	}
	return lo, hi, nil
}

// quantileCIApproxThreshold is the sample size above which
// QuantileCI uses the normal approximation to the binomial.
var quantileCIApproxThreshold = 30

// QuantileCI returns the confidence interval for the q'th quantile of
// a population, given a sample of size n from it.
//
// The number of sample points below the population quantile follows
// Binomial(n, q), so the interval between order statistics l and r
// covers the quantile with probability Pr[l <= X < r]. Among intervals
// of equal confidence, QuantileCI prefers the one further left.
func QuantileCI(n int, q, confidence float64) (QuantileCIResult, error) {
	samp, err := NewBinomial(n, q)
	if err != nil {
		return QuantileCIResult{}, err
	}
	if err := checkProb(KindBinomial, "confidence", confidence); err != nil {
		return QuantileCIResult{}, err
	}

	res := QuantileCIResult{Quantile: q, N: n}
	var l, r int
	switch {
	case confidence == 1:
		res.Confidence = 1
		l, r = 0, n+1
	case n <= quantileCIApproxThreshold || q == 0 || q == 1:
		l, r = res.exact(samp, confidence)
	default:
		l, r, err = res.approx(samp, confidence)
		if err != nil {
			return QuantileCIResult{}, err
		}
	}
	res.LoOrder, res.HiOrder = max(l, 0), min(r, n+1)
	return res, nil
}

// exact grows the interval [l, r) outward from the mode of samp,
// always taking the more probable neighbor, until it reaches the
// requested confidence.
func (res *QuantileCIResult) exact(samp BinomialDist, confidence float64) (l, r int) {
	// Start from the lower mode.
	x := 0
	if samp.P() > 0 {
		x = int(math.Ceil(float64(samp.N()+1)*samp.P())) - 1
	}
	l, r = x, x+1
	pmf := func(k int) float64 { return samp.PMF(float64(k)) }
	sum := pmf(x)
	lp, rp := pmf(l-1), pmf(r)
	res.Ambiguous = rp == sum

	for sum < confidence && (lp > 0 || rp > 0) {
		res.Ambiguous = lp == rp
		if lp >= rp {
			sum += lp
			l--
			lp = pmf(l - 1)
		} else {
			sum += rp
			r++
			rp = pmf(r)
		}
	}
	res.Confidence = sum
	return l, r
}

// approx finds the interval using the normal approximation to samp
// with a continuity correction, so order statistic k covers
// [k-0.5, k+0.5] of the normal distribution.
func (res *QuantileCIResult) approx(samp BinomialDist, confidence float64) (l, r int, err error) {
	norm, err := samp.NormalApprox()
	if err != nil {
		return 0, 0, err
	}
	l1, err := norm.Quantile((1 - confidence) / 2)
	if err != nil {
		return 0, 0, err
	}
	r1 := 2*norm.Mu() - l1

	// Round the central interval out to half-integers.
	l = int(math.Floor(math.Floor(l1-0.5)+0.5)) + 1
	r = int(math.Floor(math.Ceil(r1-0.5)+0.5)) + 1

	mass := func(l, r int) float64 {
		return norm.CDF(float64(r)-0.5) - norm.CDF(float64(l)-0.5)
	}
	res.Confidence = mass(l, r)
	// The rounded interval is symmetric. Dropping its right end
	// may still meet the confidence level.
	if c := mass(l, r-1); c >= confidence && c < res.Confidence {
		res.Confidence, res.Ambiguous = c, true
		r--
	}
	if l <= 0 && r >= samp.N()+1 {
		// The interval covers every order statistic, though
		// the normal tails miss a little mass.
		res.Confidence, res.Ambiguous = 1, false
	}
	return l, r, nil
}
