// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// An Op is a quantity Eval can compute for a distribution.
type Op int

const (
	OpPDF Op = iota + 1
	OpLogPDF
	OpCDF
	OpSF
	OpHazard
	OpCumHazard
	OpQuantile
	OpQuantileComp
	OpMean
	OpVariance
	OpMode
	OpSkewness
	OpExcessKurtosis
	OpEntropy
)

// Ops lists every Op in declaration order.
var Ops = []Op{
	OpPDF, OpLogPDF, OpCDF, OpSF, OpHazard, OpCumHazard,
	OpQuantile, OpQuantileComp,
	OpMean, OpVariance, OpMode, OpSkewness, OpExcessKurtosis, OpEntropy,
}

var opNames = map[Op]string{
	OpPDF:            "pdf",
	OpLogPDF:         "logpdf",
	OpCDF:            "cdf",
	OpSF:             "sf",
	OpHazard:         "hazard",
	OpCumHazard:      "cumhazard",
	OpQuantile:       "quantile",
	OpQuantileComp:   "quantile-comp",
	OpMean:           "mean",
	OpVariance:       "variance",
	OpMode:           "mode",
	OpSkewness:       "skewness",
	OpExcessKurtosis: "excess-kurtosis",
	OpEntropy:        "entropy",
}

func (op Op) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// ParseOp returns the Op whose String is s.
func ParseOp(s string) (Op, error) {
	for _, op := range Ops {
		if op.String() == s {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown operation %q", s)
}

// TakesArg reports whether op depends on its argument. Moments do
// not.
func (op Op) TakesArg() bool {
	return op >= OpPDF && op <= OpQuantileComp
}

// Result is the outcome of an evaluation. If Defined is false, the
// quantity does not exist for the distribution's parameters and Value
// is NaN.
type Result struct {
	Value   float64
	Defined bool
}

func (r Result) String() string {
	if !r.Defined {
		return "undefined"
	}
	return fmt.Sprint(r.Value)
}

func definedResult(v float64) Result { return Result{v, true} }

func momentResult(v float64, ok bool) Result {
	if !ok {
		return Result{nan, false}
	}
	return Result{v, true}
}

// Eval computes op for d at x.
//
// For ops that take an argument, x must be finite or Eval returns a
// DomainError. Points outside the support are not an error: densities
// there are 0 and the CDF is 0 or 1. For the quantile ops x is a
// probability, and values outside [0, 1] are a ParameterOutOfRange
// error. Moment ops ignore x.
func Eval(d Dist, op Op, x float64) (Result, error) {
	if op.TakesArg() && (math.IsNaN(x) || math.IsInf(x, 0)) {
		return Result{nan, false}, newError(DomainError, d.Kind(), "x", x)
	}
	switch op {
	case OpPDF:
		return definedResult(d.PDF(x)), nil
	case OpLogPDF:
		return definedResult(d.LogPDF(x)), nil
	case OpCDF, OpSF:
		cdf, sf, err := d.tails(x)
		if err != nil {
			return Result{nan, false}, err
		}
		if op == OpCDF {
			return definedResult(cdf), nil
		}
		return definedResult(sf), nil
	case OpHazard:
		return hazard(d, x)
	case OpCumHazard:
		return cumHazard(d, x)
	case OpQuantile:
		v, err := d.Quantile(x)
		if err != nil {
			return Result{nan, false}, err
		}
		return definedResult(v), nil
	case OpQuantileComp:
		v, err := d.QuantileComp(x)
		if err != nil {
			return Result{nan, false}, err
		}
		return definedResult(v), nil
	case OpMean:
		return momentResult(d.Mean()), nil
	case OpVariance:
		return momentResult(d.Variance()), nil
	case OpMode:
		return momentResult(d.Mode()), nil
	case OpSkewness:
		return momentResult(d.Skewness()), nil
	case OpExcessKurtosis:
		return momentResult(d.ExcessKurtosis()), nil
	case OpEntropy:
		return momentResult(d.Entropy()), nil
	}
	panic(fmt.Sprintf("stats: unknown %v", op))
}

// EvalEach computes op for d at each of xs. It stops at the first
// error.
func EvalEach(d Dist, op Op, xs []float64) ([]Result, error) {
	res := make([]Result, len(xs))
	for i, x := range xs {
		r, err := Eval(d, op, x)
		if err != nil {
			return nil, fmt.Errorf("x[%d]: %w", i, err)
		}
		res[i] = r
	}
	return res, nil
}

// EvalAs is Eval for any floating-point type. The computation is
// carried out in float64 and the result converted to F.
func EvalAs[F constraints.Float](d Dist, op Op, x F) (v F, ok bool, err error) {
	r, err := Eval(d, op, float64(x))
	return F(r.Value), r.Defined, err
}

// Hazard returns the hazard rate PDF(x)/SF(x) of d at x. Where SF(x)
// is 0 it is +Inf if the density is positive and undefined otherwise.
func Hazard(d Dist, x float64) (Result, error) {
	return Eval(d, OpHazard, x)
}

// CumHazard returns the cumulative hazard -log SF(x) of d at x. It is
// +Inf where SF(x) is 0.
func CumHazard(d Dist, x float64) (Result, error) {
	return Eval(d, OpCumHazard, x)
}

func hazard(d Dist, x float64) (Result, error) {
	_, sf, err := d.tails(x)
	if err != nil {
		return Result{nan, false}, err
	}
	pdf := d.PDF(x)
	if sf == 0 {
		if pdf > 0 {
			return definedResult(inf), nil
		}
		return Result{nan, false}, nil
	}
	return definedResult(pdf / sf), nil
}

func cumHazard(d Dist, x float64) (Result, error) {
	cdf, sf, err := d.tails(x)
	if err != nil {
		return Result{nan, false}, err
	}
	switch {
	case sf == 0:
		return definedResult(inf), nil
	case sf > 0.5:
		// -log(1-cdf) keeps precision when cdf is tiny.
		return definedResult(-math.Log1p(-cdf)), nil
	}
	return definedResult(-math.Log(sf)), nil
}
