// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-probdist/mathx"
)

// GammaDist is a gamma distribution with shape k and scale θ.
type GammaDist struct {
	shape, scale float64
}

// NewGamma returns the gamma distribution with the given shape and
// scale, both of which must be positive and finite.
func NewGamma(shape, scale float64) (GammaDist, error) {
	if err := checkPositive(KindGamma, "shape", shape); err != nil {
		return GammaDist{}, err
	}
	if err := checkPositive(KindGamma, "scale", scale); err != nil {
		return GammaDist{}, err
	}
	return GammaDist{shape, scale}, nil
}

func (d GammaDist) Shape() float64 { return d.shape }
func (d GammaDist) Scale() float64 { return d.scale }

func (d GammaDist) Kind() Kind { return KindGamma }

func (d GammaDist) Support() Support {
	return Support{0, inf, true, false}
}

func (d GammaDist) Bounds() (float64, float64) {
	return quantileBounds(d)
}

func (d GammaDist) IsDiscrete() bool { return false }

func (d GammaDist) PDF(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return nan
	case x < 0 || math.IsInf(x, 1):
		return 0
	case x == 0:
		switch {
		case d.shape < 1:
			return inf
		case d.shape == 1:
			return 1 / d.scale
		}
		return 0
	}
	return math.Exp(d.LogPDF(x))
}

func (d GammaDist) LogPDF(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	if x <= 0 || math.IsInf(x, 1) {
		return math.Log(d.PDF(x))
	}
	k, th := d.shape, d.scale
	lg, _ := mathx.Lgamma(k)
	return (k-1)*math.Log(x) - x/th - lg - k*math.Log(th)
}

func (d GammaDist) CDF(x float64) float64 {
	p, _, _ := d.tails(x)
	return p
}

func (d GammaDist) SF(x float64) float64 {
	_, q, _ := d.tails(x)
	return q
}

func (d GammaDist) tails(x float64) (cdf, sf float64, err error) {
	switch {
	case math.IsNaN(x):
		return nan, nan, nil
	case x <= 0:
		return 0, 1, nil
	}
	y := x / d.scale
	p, q, err := mathx.GammaIncPair(d.shape, y)
	if err != nil {
		return nan, nan, wrapKernel(err, KindGamma, "x", x)
	}
	return p, q, nil
}

func (d GammaDist) Quantile(p float64) (float64, error) {
	if err := checkProb(KindGamma, "p", p); err != nil {
		return nan, err
	}
	y, err := mathx.GammaIncInv(d.shape, p)
	if err != nil {
		return nan, wrapKernel(err, KindGamma, "p", p)
	}
	return d.scale * y, nil
}

func (d GammaDist) QuantileComp(q float64) (float64, error) {
	if err := checkProb(KindGamma, "q", q); err != nil {
		return nan, err
	}
	y, err := mathx.GammaIncCompInv(d.shape, q)
	if err != nil {
		return nan, wrapKernel(err, KindGamma, "q", q)
	}
	return d.scale * y, nil
}

func (d GammaDist) Mean() (float64, bool) {
	return defined(d.shape * d.scale)
}

func (d GammaDist) Variance() (float64, bool) {
	return defined(d.shape * d.scale * d.scale)
}

// Mode is (k-1)θ for k >= 1. For k < 1 the density is unbounded at 0.
func (d GammaDist) Mode() (float64, bool) {
	if d.shape < 1 {
		return undefined()
	}
	return defined((d.shape - 1) * d.scale)
}

func (d GammaDist) Skewness() (float64, bool) {
	return defined(2 / math.Sqrt(d.shape))
}

func (d GammaDist) ExcessKurtosis() (float64, bool) {
	return defined(6 / d.shape)
}

func (d GammaDist) Entropy() (float64, bool) {
	k := d.shape
	lg, _ := mathx.Lgamma(k)
	psi, err := mathx.Digamma(k)
	if err != nil {
		return undefined()
	}
	return defined(k + math.Log(d.scale) + lg + (1-k)*psi)
}
