// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	mu, sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1).
var StdNormal = NormalDist{0, 1}

// NewNormal returns the normal distribution with mean mu and standard
// deviation sigma > 0.
func NewNormal(mu, sigma float64) (NormalDist, error) {
	if err := checkFinite(KindNormal, "mu", mu); err != nil {
		return NormalDist{}, err
	}
	if err := checkPositive(KindNormal, "sigma", sigma); err != nil {
		return NormalDist{}, err
	}
	return NormalDist{mu, sigma}, nil
}

func (n NormalDist) Mu() float64    { return n.mu }
func (n NormalDist) Sigma() float64 { return n.sigma }

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

func (n NormalDist) Kind() Kind { return KindNormal }

func (n NormalDist) Support() Support { return realLine }

func (n NormalDist) Bounds() (float64, float64) {
	const stddevs = 3
	return n.mu - stddevs*n.sigma, n.mu + stddevs*n.sigma
}

func (n NormalDist) IsDiscrete() bool { return false }

func (n NormalDist) PDF(x float64) float64 {
	z := x - n.mu
	return math.Exp(-z*z/(2*n.sigma*n.sigma)) * invSqrt2Pi / n.sigma
}

func (n NormalDist) LogPDF(x float64) float64 {
	z := (x - n.mu) / n.sigma
	return -z*z/2 - math.Log(n.sigma) + math.Log(invSqrt2Pi)
}

func (n NormalDist) CDF(x float64) float64 {
	p, _, _ := n.tails(x)
	return p
}

func (n NormalDist) SF(x float64) float64 {
	_, q, _ := n.tails(x)
	return q
}

func (n NormalDist) tails(x float64) (cdf, sf float64, err error) {
	z := (x - n.mu) / (n.sigma * math.Sqrt2)
	return math.Erfc(-z) / 2, math.Erfc(z) / 2, nil
}

func (n NormalDist) Quantile(p float64) (float64, error) {
	if err := checkProb(KindNormal, "p", p); err != nil {
		return nan, err
	}
	return n.mu - n.sigma*math.Sqrt2*math.Erfcinv(2*p), nil
}

func (n NormalDist) QuantileComp(q float64) (float64, error) {
	if err := checkProb(KindNormal, "q", q); err != nil {
		return nan, err
	}
	return n.mu + n.sigma*math.Sqrt2*math.Erfcinv(2*q), nil
}

func (n NormalDist) Mean() (float64, bool)           { return defined(n.mu) }
func (n NormalDist) Variance() (float64, bool)       { return defined(n.sigma * n.sigma) }
func (n NormalDist) Mode() (float64, bool)           { return defined(n.mu) }
func (n NormalDist) Skewness() (float64, bool)       { return defined(0) }
func (n NormalDist) ExcessKurtosis() (float64, bool) { return defined(0) }

func (n NormalDist) Entropy() (float64, bool) {
	return defined(0.5 * math.Log(2*math.Pi*math.E*n.sigma*n.sigma))
}
