// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestBetaDist(t *testing.T) {
	d := must(NewBeta(2, 5))
	testFunc(t, "PDF", d.PDF, map[float64]float64{
		-0.5: 0,
		0:    0,
		0.1:  1.9683,
		0.25: 2.373046875,
		0.5:  0.9375,
		0.9:  0.0027,
		1:    0,
		1.5:  0,
	})
	testFunc(t, "CDF", d.CDF, map[float64]float64{
		0:    0,
		0.1:  0.114265,
		0.25: 0.466064453125,
		0.5:  0.890625,
		0.9:  0.999945,
		1:    1,
	})
	testMoments(t, d, map[Op]float64{
		OpMean:           2.0 / 7,
		OpVariance:       10.0 / 392,
		OpMode:           0.2,
		OpSkewness:       0.5962847939999439,
		OpExcessKurtosis: -0.12,
		OpEntropy:        -0.48453071499548983,
	})
	testMoments(t, must(NewBeta(1, 3)), map[Op]float64{OpMode: 0})
	testMoments(t, must(NewBeta(3, 1)), map[Op]float64{OpMode: 1})
	testMoments(t, must(NewBeta(1, 1)), map[Op]float64{
		OpMode:    nan,
		OpEntropy: 0,
	})
	testMoments(t, must(NewBeta(0.5, 0.5)), map[Op]float64{OpMode: nan})

	// Densities at the edges of the support.
	for _, c := range []struct {
		a, b, x, want float64
	}{
		{0.5, 2, 0, math.Inf(1)},
		{1, 3, 0, 3},
		{2, 2, 0, 0},
		{2, 0.5, 1, math.Inf(1)},
		{3, 1, 1, 3},
	} {
		if got := must(NewBeta(c.a, c.b)).PDF(c.x); got != c.want {
			t.Errorf("Beta(%v, %v).PDF(%v) = %v, want %v", c.a, c.b, c.x, got, c.want)
		}
	}

	for _, a := range []float64{0.5, 1, 2, 7.5, 80} {
		for _, b := range []float64{0.5, 1, 3, 25} {
			d := must(NewBeta(a, b))
			testContinuous(t, d)
			testOracle(t, d, &distuv.Beta{Alpha: a, Beta: b})
		}
	}
}

func TestNewBetaErrors(t *testing.T) {
	for _, c := range []struct {
		a, b float64
		kind ErrorKind
	}{
		{nan, 1, ParameterNotFinite},
		{1, math.Inf(1), ParameterNotFinite},
		{0, 1, ParameterNotPositive},
		{1, -0.5, ParameterNotPositive},
	} {
		_, err := NewBeta(c.a, c.b)
		assert.ErrorIs(t, err, c.kind, "NewBeta(%v, %v)", c.a, c.b)
	}
}
