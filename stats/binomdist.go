// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-probdist/mathx"
)

// BinomialDist is a binomial distribution.
type BinomialDist struct {
	// n is the number of independent Bernoulli trials. n >= 0.
	//
	// If n=1, this is equivalent to the Bernoulli distribution.
	n int

	// p is the probability of success in each trial. 0 <= p <= 1.
	p float64
}

// NewBinomial returns the binomial distribution of the number of
// successes in n independent trials that each succeed with
// probability p.
func NewBinomial(n int, p float64) (BinomialDist, error) {
	if n < 0 {
		return BinomialDist{}, newError(ParameterOutOfRange, KindBinomial, "n", float64(n))
	}
	if err := checkFinite(KindBinomial, "p", p); err != nil {
		return BinomialDist{}, err
	}
	if p < 0 || p > 1 {
		return BinomialDist{}, newError(ParameterOutOfRange, KindBinomial, "p", p)
	}
	return BinomialDist{n, p}, nil
}

func (d BinomialDist) N() int     { return d.n }
func (d BinomialDist) P() float64 { return d.p }

func (d BinomialDist) Kind() Kind { return KindBinomial }

func (d BinomialDist) Support() Support {
	return Support{0, float64(d.n), true, true}
}

func (d BinomialDist) Bounds() (float64, float64) {
	return 0, float64(d.n)
}

func (d BinomialDist) Step() float64 {
	return 1
}

func (d BinomialDist) IsDiscrete() bool { return true }

// PMF is the probability of getting exactly int(k) successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) PMF(k float64) float64 {
	if math.IsNaN(k) {
		return nan
	}
	return math.Exp(d.logPMF(k))
}

func (d BinomialDist) logPMF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 || k > float64(d.n) {
		return math.Inf(-1)
	}
	ki := int(k)
	switch d.p {
	case 0:
		if ki == 0 {
			return 0
		}
		return math.Inf(-1)
	case 1:
		if ki == d.n {
			return 0
		}
		return math.Inf(-1)
	}
	return mathx.Lchoose(d.n, ki) + k*math.Log(d.p) + float64(d.n-ki)*math.Log1p(-d.p)
}

// PDF is the same as PMF. It exists so BinomialDist satisfies Dist.
func (d BinomialDist) PDF(k float64) float64 {
	return d.PMF(k)
}

func (d BinomialDist) LogPDF(k float64) float64 {
	if math.IsNaN(k) {
		return nan
	}
	return d.logPMF(k)
}

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) CDF(k float64) float64 {
	p, _, _ := d.tails(k)
	return p
}

// SF is the probability of getting more than k successes.
func (d BinomialDist) SF(k float64) float64 {
	_, q, _ := d.tails(k)
	return q
}

func (d BinomialDist) tails(k float64) (cdf, sf float64, err error) {
	if math.IsNaN(k) {
		return nan, nan, nil
	}
	k = math.Floor(k)
	if k < 0 {
		return 0, 1, nil
	} else if k >= float64(d.n) {
		return 1, 0, nil
	}
	ki := int(k)

	// Pr[X > k] = I_p(k+1, n-k).
	sf, cdf, err = mathx.BetaIncPair(d.p, k+1, float64(d.n-ki))
	if err != nil {
		return nan, nan, wrapKernel(err, KindBinomial, "k", k)
	}
	return cdf, sf, nil
}

// Quantile returns the smallest k such that CDF(k) >= p.
func (d BinomialDist) Quantile(p float64) (float64, error) {
	if err := checkProb(KindBinomial, "p", p); err != nil {
		return nan, err
	}
	if p == 1 {
		return float64(d.n), nil
	}
	return d.search(func(cdf, sf float64) bool { return cdf >= p })
}

// QuantileComp returns the smallest k such that SF(k) <= q.
func (d BinomialDist) QuantileComp(q float64) (float64, error) {
	if err := checkProb(KindBinomial, "q", q); err != nil {
		return nan, err
	}
	if q == 0 {
		return float64(d.n), nil
	}
	return d.search(func(cdf, sf float64) bool { return sf <= q })
}

// search returns the smallest k in [0, n] for which pred holds, given
// that pred is monotone in k.
func (d BinomialDist) search(pred func(cdf, sf float64) bool) (float64, error) {
	lo, hi := 0, d.n
	for lo < hi {
		mid := lo + (hi-lo)/2
		cdf, sf, err := d.tails(float64(mid))
		if err != nil {
			return nan, err
		}
		if pred(cdf, sf) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return float64(lo), nil
}

func (d BinomialDist) Mean() (float64, bool) {
	return defined(float64(d.n) * d.p)
}

func (d BinomialDist) Variance() (float64, bool) {
	return defined(float64(d.n) * d.p * (1 - d.p))
}

// Mode returns ⌊(n+1)p⌋. When (n+1)p is a positive integer below
// n+1, that value and the one below it are both modes, and Mode
// returns the larger.
func (d BinomialDist) Mode() (float64, bool) {
	m := math.Floor(float64(d.n+1) * d.p)
	return defined(math.Min(m, float64(d.n)))
}

func (d BinomialDist) Skewness() (float64, bool) {
	v, _ := d.Variance()
	if v == 0 {
		return undefined()
	}
	return defined((1 - 2*d.p) / math.Sqrt(v))
}

func (d BinomialDist) ExcessKurtosis() (float64, bool) {
	v, _ := d.Variance()
	if v == 0 {
		return undefined()
	}
	return defined((1 - 6*d.p*(1-d.p)) / v)
}

// binomEntropyLimit is the largest n for which Entropy sums the PMF
// directly. Above it, the normal approximation's error is O(1/n).
const binomEntropyLimit = 1 << 20

func (d BinomialDist) Entropy() (float64, bool) {
	v, _ := d.Variance()
	if v == 0 {
		return defined(0)
	}
	if d.n > binomEntropyLimit {
		// Entropy of the normal approximation.
		return defined(0.5 * math.Log(2*math.Pi*math.E*v))
	}
	h := 0.0
	for k := 0; k <= d.n; k++ {
		lp := d.logPMF(float64(k))
		if math.IsInf(lp, -1) {
			continue
		}
		h -= math.Exp(lp) * lp
	}
	return defined(h)
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d. It fails if d has zero variance.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d BinomialDist) NormalApprox() (NormalDist, error) {
	mean, _ := d.Mean()
	v, _ := d.Variance()
	return NewNormal(mean, math.Sqrt(v))
}
