// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// UniformDist is a continuous uniform distribution on [Lower, Upper].
type UniformDist struct {
	lower, upper float64
}

// NewUniform returns the uniform distribution on [lower, upper]. Both
// bounds must be finite and upper must exceed lower.
func NewUniform(lower, upper float64) (UniformDist, error) {
	if err := checkFinite(KindUniform, "lower", lower); err != nil {
		return UniformDist{}, err
	}
	if err := checkFinite(KindUniform, "upper", upper); err != nil {
		return UniformDist{}, err
	}
	if !(upper > lower) {
		return UniformDist{}, newError(InvalidBounds, KindUniform, "upper", upper)
	}
	if math.IsInf(upper-lower, 0) {
		return UniformDist{}, newError(ParameterOutOfRange, KindUniform, "upper", upper)
	}
	return UniformDist{lower, upper}, nil
}

func (d UniformDist) Lower() float64 { return d.lower }
func (d UniformDist) Upper() float64 { return d.upper }

func (d UniformDist) Kind() Kind { return KindUniform }

func (d UniformDist) Support() Support {
	return Support{d.lower, d.upper, true, true}
}

func (d UniformDist) Bounds() (float64, float64) {
	return d.lower, d.upper
}

func (d UniformDist) IsDiscrete() bool { return false }

func (d UniformDist) PDF(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	if x < d.lower || x > d.upper {
		return 0
	}
	return 1 / (d.upper - d.lower)
}

func (d UniformDist) LogPDF(x float64) float64 {
	return math.Log(d.PDF(x))
}

func (d UniformDist) CDF(x float64) float64 {
	p, _, _ := d.tails(x)
	return p
}

func (d UniformDist) SF(x float64) float64 {
	_, q, _ := d.tails(x)
	return q
}

func (d UniformDist) tails(x float64) (cdf, sf float64, err error) {
	switch {
	case math.IsNaN(x):
		return nan, nan, nil
	case x <= d.lower:
		return 0, 1, nil
	case x >= d.upper:
		return 1, 0, nil
	}
	w := d.upper - d.lower
	return (x - d.lower) / w, (d.upper - x) / w, nil
}

func (d UniformDist) Quantile(p float64) (float64, error) {
	if err := checkProb(KindUniform, "p", p); err != nil {
		return nan, err
	}
	if p == 1 {
		return d.upper, nil
	}
	return d.lower + p*(d.upper-d.lower), nil
}

func (d UniformDist) QuantileComp(q float64) (float64, error) {
	if err := checkProb(KindUniform, "q", q); err != nil {
		return nan, err
	}
	if q == 1 {
		return d.lower, nil
	}
	return d.upper - q*(d.upper-d.lower), nil
}

func (d UniformDist) Mean() (float64, bool) {
	return defined(d.lower/2 + d.upper/2)
}

func (d UniformDist) Variance() (float64, bool) {
	w := d.upper - d.lower
	return defined(w * w / 12)
}

// Mode is undefined: every point of the support is a mode.
func (d UniformDist) Mode() (float64, bool) {
	return undefined()
}

func (d UniformDist) Skewness() (float64, bool) {
	return defined(0)
}

func (d UniformDist) ExcessKurtosis() (float64, bool) {
	return defined(-6.0 / 5)
}

func (d UniformDist) Entropy() (float64, bool) {
	return defined(math.Log(d.upper - d.lower))
}
