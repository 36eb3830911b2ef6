// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/integrate/quad"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// near reports whether got is within relTol of want, or within absTol
// of it for values near zero. Infinities must match exactly.
func near(want, got, absTol, relTol float64) bool {
	if math.IsNaN(want) || math.IsNaN(got) {
		return math.IsNaN(want) && math.IsNaN(got)
	}
	if math.IsInf(want, 0) || math.IsInf(got, 0) {
		return want == got
	}
	return scalar.EqualWithinAbsOrRel(want, got, absTol, relTol)
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if math.IsNaN(want) && math.IsNaN(got) || want == got || aeq(want, got) {
			continue
		}
		var label string
		if strings.Contains(name, "%v") {
			label = fmt.Sprintf(name, x)
		} else {
			label = fmt.Sprintf("%s(%v)", name, x)
		}
		t.Errorf("want %s=%v, got %v", label, want, got)
	}
}

// testMoments checks d's moment accessors against want, where NaN
// means the moment must be undefined.
func testMoments(t *testing.T, d Dist, want map[Op]float64) {
	t.Helper()
	for _, op := range Ops {
		w, ok := want[op]
		if !ok {
			continue
		}
		r, err := Eval(d, op, 0)
		if err != nil {
			t.Errorf("%v %v: unexpected error %v", name(d), op, err)
			continue
		}
		if math.IsNaN(w) {
			if r.Defined {
				t.Errorf("%v %v: want undefined, got %v", name(d), op, r.Value)
			}
			continue
		}
		if !r.Defined || !near(w, r.Value, 1e-12, 1e-10) {
			t.Errorf("%v %v: want %v, got %v", name(d), op, w, r)
		}
	}
}

func name(d Dist) string {
	return fmt.Sprintf("%v%+v", d.Kind(), d)
}

// testProbs are the probabilities at which testContinuous checks
// quantiles. They also split the support into pieces for integration.
var testProbs = []float64{0.001, 0.01, 0.1, 0.3, 0.5, 0.7, 0.9, 0.99, 0.999}

// testContinuous checks the relationships between the density,
// distribution and quantile functions of a continuous distribution.
func testContinuous(t *testing.T, d Dist) {
	t.Helper()
	s := d.Support()

	var xs []float64
	for _, p := range testProbs {
		x, err := d.Quantile(p)
		if err != nil {
			t.Errorf("%v.Quantile(%v): unexpected error %v", name(d), p, err)
			continue
		}
		if !s.Contains(x) {
			t.Errorf("%v.Quantile(%v)=%v outside support %v", name(d), p, x, s)
		}
		if got := d.CDF(x); !near(p, got, 1e-14, 1e-9) {
			t.Errorf("%v.CDF(Quantile(%v))=%v", name(d), p, got)
		}
		if len(xs) > 0 && x < xs[len(xs)-1] {
			t.Errorf("%v.Quantile not monotone at %v", name(d), p)
		}
		xs = append(xs, x)

		xc, err := d.QuantileComp(p)
		if err != nil {
			t.Errorf("%v.QuantileComp(%v): unexpected error %v", name(d), p, err)
			continue
		}
		if got := d.SF(xc); !near(p, got, 1e-14, 1e-9) {
			t.Errorf("%v.SF(QuantileComp(%v))=%v", name(d), p, got)
		}

		cdf, sf := d.CDF(x), d.SF(x)
		if math.Abs(cdf+sf-1) > 1e-14 {
			t.Errorf("%v: CDF+SF at %v = %v, want 1", name(d), x, cdf+sf)
		}
	}

	testEdges(t, d)
	testIntegral(t, d, xs)
}

// testEdges checks the quantiles of 0 and 1 and the behavior outside
// the support.
func testEdges(t *testing.T, d Dist) {
	t.Helper()
	s := d.Support()
	for _, c := range []struct {
		f    func(float64) (float64, error)
		fn   string
		p    float64
		want float64
	}{
		{d.Quantile, "Quantile", 0, s.Lower},
		{d.Quantile, "Quantile", 1, s.Upper},
		{d.QuantileComp, "QuantileComp", 0, s.Upper},
		{d.QuantileComp, "QuantileComp", 1, s.Lower},
	} {
		got, err := c.f(c.p)
		if err != nil || got != c.want {
			t.Errorf("%v.%s(%v) = %v, %v; want %v", name(d), c.fn, c.p, got, err, c.want)
		}
	}

	if !math.IsInf(s.Lower, 0) {
		x := s.Lower - 1
		if d.PDF(x) != 0 || d.CDF(x) != 0 || d.SF(x) != 1 {
			t.Errorf("%v at %v: PDF, CDF, SF = %v, %v, %v; want 0, 0, 1", name(d), x, d.PDF(x), d.CDF(x), d.SF(x))
		}
	}
	if !math.IsInf(s.Upper, 0) {
		x := s.Upper + 1
		if d.PDF(x) != 0 || d.CDF(x) != 1 || d.SF(x) != 0 {
			t.Errorf("%v at %v: PDF, CDF, SF = %v, %v, %v; want 0, 1, 0", name(d), x, d.PDF(x), d.CDF(x), d.SF(x))
		}
	}

	if _, err := d.Quantile(-0.5); !errors.Is(err, ParameterOutOfRange) {
		t.Errorf("%v.Quantile(-0.5): want ParameterOutOfRange, got %v", name(d), err)
	}
	if _, err := d.QuantileComp(1.5); !errors.Is(err, ParameterOutOfRange) {
		t.Errorf("%v.QuantileComp(1.5): want ParameterOutOfRange, got %v", name(d), err)
	}
	if _, err := d.Quantile(nan); !errors.Is(err, DomainError) {
		t.Errorf("%v.Quantile(NaN): want DomainError, got %v", name(d), err)
	}
}

// testIntegral checks that the PDF integrates to the CDF between
// consecutive points of xs. Pieces are split at the mode, where the
// density may have a kink.
func testIntegral(t *testing.T, d Dist, xs []float64) {
	t.Helper()
	pts := append([]float64(nil), xs...)
	if m, ok := d.Mode(); ok && m > xs[0] && m < xs[len(xs)-1] {
		pts = append(pts, m)
		sort.Float64s(pts)
	}
	for i := 0; i+1 < len(pts); i++ {
		lo, hi := pts[i], pts[i+1]
		if lo == hi {
			continue
		}
		got := 0.0
		for _, piece := range geomSplit(lo, hi) {
			got += quad.Fixed(d.PDF, piece[0], piece[1], 200, nil, 1)
		}
		want := d.CDF(hi) - d.CDF(lo)
		if !near(want, got, 1e-10, 1e-8) {
			t.Errorf("%v: ∫PDF over [%v, %v] = %v, want %v", name(d), lo, hi, got, want)
		}
	}
}

// geomSplit splits [lo, hi] into intervals whose ends differ by at
// most a factor of 4, so a density that is singular at 0 stays smooth
// on each.
func geomSplit(lo, hi float64) [][2]float64 {
	var pieces [][2]float64
	switch {
	case lo > 0:
		for ; hi > 4*lo; lo *= 4 {
			pieces = append(pieces, [2]float64{lo, 4 * lo})
		}
	case hi < 0:
		for ; lo < 4*hi; hi *= 4 {
			pieces = append(pieces, [2]float64{4 * hi, hi})
		}
	}
	return append(pieces, [2]float64{lo, hi})
}

// oracle is the subset of a gonum distuv distribution used as a
// reference implementation.
type oracle interface {
	Prob(x float64) float64
	CDF(x float64) float64
	Quantile(p float64) float64
	Mean() float64
}

// testOracle compares d against an independent implementation at the
// points of its quantile grid.
func testOracle(t *testing.T, d Dist, o oracle) {
	t.Helper()
	for _, p := range testProbs {
		x, err := d.Quantile(p)
		if err != nil {
			t.Errorf("%v.Quantile(%v): unexpected error %v", name(d), p, err)
			continue
		}
		if want := o.Quantile(p); !near(want, x, 1e-12, 1e-7) {
			t.Errorf("%v.Quantile(%v): want %v, got %v", name(d), p, want, x)
		}
		if want, got := o.Prob(x), d.PDF(x); !near(want, got, 1e-14, 1e-9) {
			t.Errorf("%v.PDF(%v): want %v, got %v", name(d), x, want, got)
		}
		if want, got := o.CDF(x), d.CDF(x); !near(want, got, 1e-14, 1e-9) {
			t.Errorf("%v.CDF(%v): want %v, got %v", name(d), x, want, got)
		}
	}
	if m, ok := d.Mean(); ok {
		if want := o.Mean(); !near(want, m, 1e-14, 1e-12) {
			t.Errorf("%v.Mean(): want %v, got %v", name(d), want, m)
		}
	}
}

// testDiscreteCDF checks that the CDF of a discrete distribution is
// the running sum of its PMF, both at and between the integers.
func testDiscreteCDF(t *testing.T, name string, dist Dist) {
	t.Helper()
	lo, hi := dist.Bounds()
	lo, hi = math.Floor(lo)-1, math.Ceil(hi)+1
	cdf := 0.0
	for x := lo; x <= hi; x++ {
		cdf += dist.PDF(x)
		for _, off := range []float64{0, 0.5} {
			got := dist.CDF(x + off)
			if !aeq(cdf, got) {
				t.Errorf("%s(%v) = %v, want %v", name, x+off, got, cdf)
			}
			if sf := dist.SF(x + off); !aeq(1-cdf, sf) {
				t.Errorf("SF(%v) = %v, want %v", x+off, sf, 1-cdf)
			}
		}
	}
}
