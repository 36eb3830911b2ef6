// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/aclements/go-probdist/stats"
	"github.com/spf13/pflag"
)

// A family describes how to construct a distribution of one kind
// from named parameters.
type family struct {
	params []string
	build  func(v []float64) (stats.Dist, error)
}

var families = map[stats.Kind]family{
	stats.KindUniform: {[]string{"lower", "upper"}, func(v []float64) (stats.Dist, error) {
		return stats.NewUniform(v[0], v[1])
	}},
	stats.KindTriangular: {[]string{"lower", "mode", "upper"}, func(v []float64) (stats.Dist, error) {
		return stats.NewTriangular(v[0], v[1], v[2])
	}},
	stats.KindInverseGamma: {[]string{"shape", "scale"}, func(v []float64) (stats.Dist, error) {
		return stats.NewInverseGamma(v[0], v[1])
	}},
	stats.KindGamma: {[]string{"shape", "scale"}, func(v []float64) (stats.Dist, error) {
		return stats.NewGamma(v[0], v[1])
	}},
	stats.KindBeta: {[]string{"alpha", "beta"}, func(v []float64) (stats.Dist, error) {
		return stats.NewBeta(v[0], v[1])
	}},
	stats.KindExponential: {[]string{"rate"}, func(v []float64) (stats.Dist, error) {
		return stats.NewExponential(v[0])
	}},
	stats.KindNormal: {[]string{"mu", "sigma"}, func(v []float64) (stats.Dist, error) {
		return stats.NewNormal(v[0], v[1])
	}},
	stats.KindBinomial: {[]string{"n", "p"}, func(v []float64) (stats.Dist, error) {
		if v[0] != math.Trunc(v[0]) || math.Abs(v[0]) > math.MaxInt32 {
			return nil, fmt.Errorf("binomial n=%v is not an integer", v[0])
		}
		return stats.NewBinomial(int(v[0]), v[1])
	}},
}

// addParamFlag registers the repeatable -p name=value flag on fs.
func addParamFlag(fs *pflag.FlagSet, params *map[string]string) {
	fs.StringToStringVarP(params, "param", "p", nil, "distribution parameter as name=value (repeatable)")
}

func parseKind(s string) (stats.Kind, error) {
	for _, k := range stats.Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown distribution %q", s)
}

// newDist constructs the distribution named kind from the parameter
// values in params.
func newDist(kind string, params map[string]string) (stats.Dist, error) {
	k, err := parseKind(kind)
	if err != nil {
		return nil, err
	}
	f := families[k]

	var unknown []string
	for name := range params {
		if !slices.Contains(f.params, name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return nil, fmt.Errorf("%v has no parameter %s; want %s", k, strings.Join(unknown, ", "), strings.Join(f.params, ", "))
	}

	v := make([]float64, len(f.params))
	for i, name := range f.params {
		s, ok := params[name]
		if !ok {
			return nil, fmt.Errorf("%v: missing parameter %s", k, name)
		}
		if v[i], err = strconv.ParseFloat(s, 64); err != nil {
			return nil, fmt.Errorf("%v: parameter %s: %w", k, name, err)
		}
	}
	return f.build(v)
}

// describeDist formats d's kind and parameters as kind(name=value, ...).
func describeDist(kind string, params map[string]string) string {
	k, err := parseKind(kind)
	if err != nil {
		return kind
	}
	var parts []string
	for _, name := range families[k].params {
		parts = append(parts, name+"="+params[name])
	}
	return fmt.Sprintf("%v(%s)", k, strings.Join(parts, ", "))
}
