// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// TriangularDist is a triangular distribution on [Lower, Upper] whose
// density rises linearly to a peak at Mode and falls linearly after
// it.
type TriangularDist struct {
	lower, mode, upper float64
}

// NewTriangular returns the triangular distribution with the given
// bounds and mode. It requires lower < upper and
// lower <= mode <= upper.
func NewTriangular(lower, mode, upper float64) (TriangularDist, error) {
	for _, p := range []struct {
		name string
		v    float64
	}{{"lower", lower}, {"mode", mode}, {"upper", upper}} {
		if err := checkFinite(KindTriangular, p.name, p.v); err != nil {
			return TriangularDist{}, err
		}
	}
	if !(upper > lower) {
		return TriangularDist{}, newError(InvalidBounds, KindTriangular, "upper", upper)
	}
	if math.IsInf(upper-lower, 0) {
		return TriangularDist{}, newError(ParameterOutOfRange, KindTriangular, "upper", upper)
	}
	if mode < lower || mode > upper {
		return TriangularDist{}, newError(ParameterOutOfRange, KindTriangular, "mode", mode)
	}
	return TriangularDist{lower, mode, upper}, nil
}

func (d TriangularDist) Lower() float64 { return d.lower }
func (d TriangularDist) Upper() float64 { return d.upper }

func (d TriangularDist) Kind() Kind { return KindTriangular }

func (d TriangularDist) Support() Support {
	return Support{d.lower, d.upper, true, true}
}

func (d TriangularDist) Bounds() (float64, float64) {
	return d.lower, d.upper
}

func (d TriangularDist) IsDiscrete() bool { return false }

// The methods below scale every difference by the width b-a before
// multiplying, so wide supports do not overflow.

func (d TriangularDist) PDF(x float64) float64 {
	a, c, b := d.lower, d.mode, d.upper
	switch {
	case math.IsNaN(x):
		return nan
	case x < a || x > b:
		return 0
	case x < c:
		return 2 / (b - a) * ((x - a) / (c - a))
	case x == c:
		return 2 / (b - a)
	}
	return 2 / (b - a) * ((b - x) / (b - c))
}

func (d TriangularDist) LogPDF(x float64) float64 {
	return math.Log(d.PDF(x))
}

func (d TriangularDist) CDF(x float64) float64 {
	p, _, _ := d.tails(x)
	return p
}

func (d TriangularDist) SF(x float64) float64 {
	_, q, _ := d.tails(x)
	return q
}

// tails evaluates the CDF and SF. Each side of the mode is computed
// from its own end of the support, so the small tail never suffers
// cancellation.
func (d TriangularDist) tails(x float64) (cdf, sf float64, err error) {
	a, c, b := d.lower, d.mode, d.upper
	switch {
	case math.IsNaN(x):
		return nan, nan, nil
	case x <= a:
		return 0, 1, nil
	case x >= b:
		return 1, 0, nil
	case x <= c:
		p := (x - a) / (b - a) * ((x - a) / (c - a))
		return p, 1 - p, nil
	}
	q := (b - x) / (b - a) * ((b - x) / (b - c))
	return 1 - q, q, nil
}

// modeCDF returns CDF(mode), the probability at which the quantile
// function switches branches.
func (d TriangularDist) modeCDF() float64 {
	return (d.mode - d.lower) / (d.upper - d.lower)
}

func (d TriangularDist) Quantile(p float64) (float64, error) {
	if err := checkProb(KindTriangular, "p", p); err != nil {
		return nan, err
	}
	if p < d.modeCDF() {
		return d.fromLower(p), nil
	}
	return d.fromUpper(1 - p), nil
}

func (d TriangularDist) QuantileComp(q float64) (float64, error) {
	if err := checkProb(KindTriangular, "q", q); err != nil {
		return nan, err
	}
	if q <= 1-d.modeCDF() {
		return d.fromUpper(q), nil
	}
	return d.fromLower(1 - q), nil
}

// fromLower returns the x below the mode with CDF(x) = p.
func (d TriangularDist) fromLower(p float64) float64 {
	a, c, b := d.lower, d.mode, d.upper
	x := a + math.Sqrt(p)*math.Sqrt(b-a)*math.Sqrt(c-a)
	return math.Min(x, c)
}

// fromUpper returns the x above the mode with SF(x) = q.
func (d TriangularDist) fromUpper(q float64) float64 {
	a, c, b := d.lower, d.mode, d.upper
	x := b - math.Sqrt(q)*math.Sqrt(b-a)*math.Sqrt(b-c)
	return math.Max(x, c)
}

func (d TriangularDist) Mean() (float64, bool) {
	a, c, b := d.lower, d.mode, d.upper
	return defined(a + (c-a)/3 + (b-a)/3)
}

// spread returns (a²+b²+c²-ab-ac-bc)/(b-a)², which appears in the
// variance and skewness. It lies in [3/4, 1].
func (d TriangularDist) spread() float64 {
	m := d.modeCDF()
	return 1 - m + m*m
}

// Variance overflows to +Inf when the width b-a exceeds about 1e154.
func (d TriangularDist) Variance() (float64, bool) {
	w := d.upper - d.lower
	return defined(w * w * (d.spread() / 18))
}

func (d TriangularDist) Mode() (float64, bool) {
	return defined(d.mode)
}

func (d TriangularDist) Skewness() (float64, bool) {
	// On [0, 1] with mode m.
	m := d.modeCDF()
	num := math.Sqrt2 * (1 - 2*m) * (1 + m) * (2 - m)
	return defined(num / (5 * math.Pow(d.spread(), 1.5)))
}

func (d TriangularDist) ExcessKurtosis() (float64, bool) {
	return defined(-3.0 / 5)
}

func (d TriangularDist) Entropy() (float64, bool) {
	return defined(0.5 + math.Log((d.upper-d.lower)/2))
}
