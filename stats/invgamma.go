// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-probdist/mathx"
)

// InverseGammaDist is the distribution of 1/X where X follows a gamma
// distribution with shape Shape and rate Scale, so that Scale is the
// scale of 1/X.
//
// Its density is
//
//	β^α / Γ(α) · x^(-α-1) · exp(-β/x)  for x > 0
//
// where α is the shape and β the scale.
type InverseGammaDist struct {
	shape, scale float64
}

// NewInverseGamma returns the inverse-gamma distribution with the
// given shape and scale, both of which must be positive and finite.
func NewInverseGamma(shape, scale float64) (InverseGammaDist, error) {
	if err := checkPositive(KindInverseGamma, "shape", shape); err != nil {
		return InverseGammaDist{}, err
	}
	if err := checkPositive(KindInverseGamma, "scale", scale); err != nil {
		return InverseGammaDist{}, err
	}
	return InverseGammaDist{shape, scale}, nil
}

func (d InverseGammaDist) Shape() float64 { return d.shape }
func (d InverseGammaDist) Scale() float64 { return d.scale }

func (d InverseGammaDist) Kind() Kind { return KindInverseGamma }

func (d InverseGammaDist) Support() Support { return positiveReals }

func (d InverseGammaDist) Bounds() (float64, float64) {
	return quantileBounds(d)
}

func (d InverseGammaDist) IsDiscrete() bool { return false }

func (d InverseGammaDist) PDF(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	if x <= 0 || math.IsInf(x, 1) {
		return 0
	}
	return math.Exp(d.LogPDF(x))
}

func (d InverseGammaDist) LogPDF(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	if x <= 0 || math.IsInf(x, 1) {
		return math.Inf(-1)
	}
	a, b := d.shape, d.scale
	lg, _ := mathx.Lgamma(a)
	return a*math.Log(b) - lg - (a+1)*math.Log(x) - b/x
}

func (d InverseGammaDist) CDF(x float64) float64 {
	p, _, _ := d.tails(x)
	return p
}

func (d InverseGammaDist) SF(x float64) float64 {
	_, q, _ := d.tails(x)
	return q
}

// tails computes CDF(x) = Q(α, β/x) and SF(x) = P(α, β/x).
func (d InverseGammaDist) tails(x float64) (cdf, sf float64, err error) {
	switch {
	case math.IsNaN(x):
		return nan, nan, nil
	case x <= 0:
		return 0, 1, nil
	}
	y := d.scale / x
	p, q, err := mathx.GammaIncPair(d.shape, y)
	if err != nil {
		return nan, nan, wrapKernel(err, KindInverseGamma, "x", x)
	}
	return q, p, nil
}

// Quantile solves Q(α, β/x) = p for x.
func (d InverseGammaDist) Quantile(p float64) (float64, error) {
	if err := checkProb(KindInverseGamma, "p", p); err != nil {
		return nan, err
	}
	y, err := mathx.GammaIncCompInv(d.shape, p)
	if err != nil {
		return nan, wrapKernel(err, KindInverseGamma, "p", p)
	}
	return d.scale / y, nil
}

// QuantileComp solves P(α, β/x) = q for x.
func (d InverseGammaDist) QuantileComp(q float64) (float64, error) {
	if err := checkProb(KindInverseGamma, "q", q); err != nil {
		return nan, err
	}
	y, err := mathx.GammaIncInv(d.shape, q)
	if err != nil {
		return nan, wrapKernel(err, KindInverseGamma, "q", q)
	}
	return d.scale / y, nil
}

// Mean is β/(α-1), defined for α > 1.
func (d InverseGammaDist) Mean() (float64, bool) {
	if d.shape <= 1 {
		return undefined()
	}
	return defined(d.scale / (d.shape - 1))
}

// Variance is β²/((α-1)²(α-2)), defined for α > 2.
func (d InverseGammaDist) Variance() (float64, bool) {
	a, b := d.shape, d.scale
	if a <= 2 {
		return undefined()
	}
	return defined(b * b / ((a - 1) * (a - 1) * (a - 2)))
}

func (d InverseGammaDist) Mode() (float64, bool) {
	return defined(d.scale / (d.shape + 1))
}

// Skewness is 4√(α-2)/(α-3), defined for α > 3.
func (d InverseGammaDist) Skewness() (float64, bool) {
	a := d.shape
	if a <= 3 {
		return undefined()
	}
	return defined(4 * math.Sqrt(a-2) / (a - 3))
}

// ExcessKurtosis is (30α-66)/((α-3)(α-4)), defined for α > 4.
func (d InverseGammaDist) ExcessKurtosis() (float64, bool) {
	a := d.shape
	if a <= 4 {
		return undefined()
	}
	return defined((30*a - 66) / ((a - 3) * (a - 4)))
}

func (d InverseGammaDist) Entropy() (float64, bool) {
	a := d.shape
	lg, _ := mathx.Lgamma(a)
	psi, err := mathx.Digamma(a)
	if err != nil {
		return undefined()
	}
	return defined(a + math.Log(d.scale) + lg - (1+a)*psi)
}

// quantileBounds returns the central 99.8% interval of d, used by
// distributions with unbounded support.
func quantileBounds(d Dist) (float64, float64) {
	lo, err1 := d.Quantile(0.001)
	hi, err2 := d.QuantileComp(0.001)
	if err1 != nil || err2 != nil {
		s := d.Support()
		return s.Lower, s.Upper
	}
	return lo, hi
}
