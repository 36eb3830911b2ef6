// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

var aeqTolerance = 1e-11

func aeq(expect, got float64) bool {
	if expect < 0 && got < 0 {
		expect, got = -expect, -got
	}
	return expect*(1-aeqTolerance) <= got && got <= expect*(1+aeqTolerance)
}

// near reports whether got is within relTol of want, or within absTol
// of it for values near zero.
func near(want, got, absTol, relTol float64) bool {
	if math.IsNaN(want) || math.IsNaN(got) {
		return math.IsNaN(want) && math.IsNaN(got)
	}
	if math.IsInf(want, 0) || math.IsInf(got, 0) {
		return want == got
	}
	return scalar.EqualWithinAbsOrRel(want, got, absTol, relTol)
}

// testFunc checks f against the expected values in vals, which map
// arguments to results. name may contain a %v verb for the argument.
func testFunc(t *testing.T, name string, f func(float64) (float64, error), vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want := vals[x]
		got, err := f(x)
		if err != nil {
			t.Errorf("%s: unexpected error %v", label(name, x), err)
			continue
		}
		if math.IsNaN(want) && math.IsNaN(got) || aeq(want, got) {
			continue
		}
		t.Errorf("want %s=%v, got %v", label(name, x), want, got)
	}
}

func label(name string, x float64) string {
	if strings.Contains(name, "%v") {
		return fmt.Sprintf(name, x)
	}
	return fmt.Sprintf("%s(%v)", name, x)
}
