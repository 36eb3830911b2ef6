// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestUniformDist(t *testing.T) {
	d, err := NewUniform(0, 10)
	require.NoError(t, err)
	testFunc(t, "PDF", d.PDF, map[float64]float64{
		-1: 0, 0: 0.1, 5: 0.1, 10: 0.1, 11: 0,
	})
	testFunc(t, "CDF", d.CDF, map[float64]float64{
		-1: 0, 0: 0, 2.5: 0.25, 5: 0.5, 10: 1, 11: 1,
	})
	testFunc(t, "SF", d.SF, map[float64]float64{
		-1: 1, 2.5: 0.75, 10: 0, 11: 0,
	})
	testMoments(t, d, map[Op]float64{
		OpMean:           5,
		OpVariance:       100.0 / 12,
		OpMode:           nan,
		OpSkewness:       0,
		OpExcessKurtosis: -1.2,
		OpEntropy:        math.Log(10),
	})

	for _, d := range []UniformDist{must(NewUniform(0, 10)), must(NewUniform(-3.5, -1)), must(NewUniform(-1e-3, 1e6))} {
		testContinuous(t, d)
		testOracle(t, d, &distuv.Uniform{Min: d.Lower(), Max: d.Upper()})
	}
}

func TestUniformQuantile(t *testing.T) {
	d := must(NewUniform(0, 10))
	q, err := d.Quantile(0.25)
	require.NoError(t, err)
	assert.Equal(t, 2.5, q)
	q, err = d.QuantileComp(0.25)
	require.NoError(t, err)
	assert.Equal(t, 7.5, q)
}

func TestNewUniformErrors(t *testing.T) {
	for _, c := range []struct {
		lower, upper float64
		kind         ErrorKind
	}{
		{nan, 1, ParameterNotFinite},
		{0, math.Inf(1), ParameterNotFinite},
		{1, 1, InvalidBounds},
		{2, 1, InvalidBounds},
		{-math.MaxFloat64, math.MaxFloat64, ParameterOutOfRange},
	} {
		_, err := NewUniform(c.lower, c.upper)
		assert.ErrorIs(t, err, c.kind, "NewUniform(%v, %v)", c.lower, c.upper)
	}

	// Inverted bounds are also a range violation.
	_, err := NewUniform(2, 1)
	assert.ErrorIs(t, err, ParameterOutOfRange)
}

// must returns d, panicking if err is non-nil.
func must[D Dist](d D, err error) D {
	if err != nil {
		panic(err)
	}
	return d
}
