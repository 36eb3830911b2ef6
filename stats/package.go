// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats evaluates parametric probability distributions.
//
// Each distribution is an immutable value created by a validating
// constructor such as NewInverseGamma. Its methods compute the
// density, cumulative and survival probabilities, quantiles and
// moments directly from the distribution's closed forms and the
// special functions in package mathx. Eval provides a single checked
// entry point for all of these operations.
package stats // import "github.com/aclements/go-probdist/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
