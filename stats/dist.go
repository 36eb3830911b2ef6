// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
)

// A Kind identifies one of the distribution families in this
// package.
type Kind int

const (
	KindUniform Kind = iota + 1
	KindTriangular
	KindInverseGamma
	KindGamma
	KindBeta
	KindExponential
	KindNormal
	KindBinomial
)

// Kinds lists every distribution kind.
var Kinds = []Kind{
	KindUniform, KindTriangular, KindInverseGamma, KindGamma,
	KindBeta, KindExponential, KindNormal, KindBinomial,
}

func (k Kind) String() string {
	switch k {
	case KindUniform:
		return "uniform"
	case KindTriangular:
		return "triangular"
	case KindInverseGamma:
		return "inverse-gamma"
	case KindGamma:
		return "gamma"
	case KindBeta:
		return "beta"
	case KindExponential:
		return "exponential"
	case KindNormal:
		return "normal"
	case KindBinomial:
		return "binomial"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Dist is a parametric statistical distribution.
//
// The set of implementations is closed: every Dist is one of the
// *Dist types in this package, identified by its Kind. Values are
// immutable once constructed and may be shared freely between
// goroutines.
type Dist interface {
	// Kind returns the family of this distribution.
	Kind() Kind

	// Support returns the interval on which the density may be
	// nonzero.
	Support() Support

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)

	// IsDiscrete reports whether this is a discrete
	// distribution, in which case PDF is a probability mass
	// function.
	IsDiscrete() bool

	// PDF returns the value of the probability density function
	// of this distribution at x. It is 0 outside the support.
	PDF(x float64) float64

	// LogPDF returns the natural logarithm of PDF(x).
	LogPDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x, Pr[X <= x].
	CDF(x float64) float64

	// SF returns the survival function 1 - CDF(x), computed
	// directly to avoid cancellation where CDF(x) is near 1.
	SF(x float64) float64

	// Quantile returns the inverse of the CDF for p. That is,
	// Quantile(CDF(x)) = x. The value of p must be in [0, 1].
	Quantile(p float64) (float64, error)

	// QuantileComp returns the inverse of the SF for q, which
	// must be in [0, 1]. It is more accurate than Quantile(1-q)
	// for q near 0.
	QuantileComp(q float64) (float64, error)

	// Mean, Variance, Mode, Skewness, ExcessKurtosis and
	// Entropy return the corresponding property of the
	// distribution, or ok == false if it is not defined for
	// this distribution's parameters.
	Mean() (v float64, ok bool)
	Variance() (v float64, ok bool)
	Mode() (v float64, ok bool)
	Skewness() (v float64, ok bool)
	ExcessKurtosis() (v float64, ok bool)
	Entropy() (v float64, ok bool)

	// tails returns CDF(x) and SF(x), or an error if the special
	// function kernel fails. The unexported method also keeps the
	// set of implementations closed.
	tails(x float64) (cdf, sf float64, err error)
}

// Support is an interval of the real line. Infinite bounds are
// represented by ±Inf and are always open.
type Support struct {
	Lower, Upper             float64
	LowerClosed, UpperClosed bool
}

// Contains reports whether x lies within s.
func (s Support) Contains(x float64) bool {
	if x < s.Lower || x > s.Upper || math.IsNaN(x) {
		return false
	}
	if x == s.Lower && !s.LowerClosed || x == s.Upper && !s.UpperClosed {
		return false
	}
	return true
}

func (s Support) String() string {
	l, r := "(", ")"
	if s.LowerClosed {
		l = "["
	}
	if s.UpperClosed {
		r = "]"
	}
	return fmt.Sprintf("%s%v, %v%s", l, s.Lower, s.Upper, r)
}

// positiveReals is the support (0, ∞).
var positiveReals = Support{Lower: 0, Upper: inf}

// realLine is the support (-∞, ∞).
var realLine = Support{Lower: -inf, Upper: inf}

// undefined is the result of a moment accessor for a property that
// does not exist.
func undefined() (float64, bool) {
	return nan, false
}

// defined is the result of a moment accessor for an existing
// property.
func defined(v float64) (float64, bool) {
	return v, true
}
