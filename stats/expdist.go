// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// ExponentialDist is an exponential distribution with rate parameter
// Rate.
type ExponentialDist struct {
	rate float64
}

// NewExponential returns the exponential distribution with the given
// rate, which must be positive and finite.
func NewExponential(rate float64) (ExponentialDist, error) {
	if err := checkPositive(KindExponential, "rate", rate); err != nil {
		return ExponentialDist{}, err
	}
	return ExponentialDist{rate}, nil
}

func (d ExponentialDist) Rate() float64 { return d.rate }

func (d ExponentialDist) Kind() Kind { return KindExponential }

func (d ExponentialDist) Support() Support {
	return Support{0, inf, true, false}
}

func (d ExponentialDist) Bounds() (float64, float64) {
	hi, _ := d.QuantileComp(0.001)
	return 0, hi
}

func (d ExponentialDist) IsDiscrete() bool { return false }

func (d ExponentialDist) PDF(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	if x < 0 {
		return 0
	}
	return d.rate * math.Exp(-d.rate*x)
}

func (d ExponentialDist) LogPDF(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	if x < 0 {
		return math.Inf(-1)
	}
	return math.Log(d.rate) - d.rate*x
}

func (d ExponentialDist) CDF(x float64) float64 {
	p, _, _ := d.tails(x)
	return p
}

func (d ExponentialDist) SF(x float64) float64 {
	_, q, _ := d.tails(x)
	return q
}

func (d ExponentialDist) tails(x float64) (cdf, sf float64, err error) {
	if math.IsNaN(x) {
		return nan, nan, nil
	}
	if x <= 0 {
		return 0, 1, nil
	}
	return -math.Expm1(-d.rate * x), math.Exp(-d.rate * x), nil
}

func (d ExponentialDist) Quantile(p float64) (float64, error) {
	if err := checkProb(KindExponential, "p", p); err != nil {
		return nan, err
	}
	return -math.Log1p(-p) / d.rate, nil
}

func (d ExponentialDist) QuantileComp(q float64) (float64, error) {
	if err := checkProb(KindExponential, "q", q); err != nil {
		return nan, err
	}
	return -math.Log(q) / d.rate, nil
}

func (d ExponentialDist) Mean() (float64, bool) {
	return defined(1 / d.rate)
}

func (d ExponentialDist) Variance() (float64, bool) {
	return defined(1 / (d.rate * d.rate))
}

func (d ExponentialDist) Mode() (float64, bool) {
	return defined(0)
}

func (d ExponentialDist) Skewness() (float64, bool) {
	return defined(2)
}

func (d ExponentialDist) ExcessKurtosis() (float64, bool) {
	return defined(6)
}

func (d ExponentialDist) Entropy() (float64, bool) {
	return defined(1 - math.Log(d.rate))
}
