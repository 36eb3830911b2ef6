// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements special functions not provided by the
// standard math package.
package mathx // import "github.com/aclements/go-probdist/mathx"

import (
	"errors"
	"math"
)

var (
	// ErrDomain is returned when an argument lies outside the
	// mathematical domain of a function.
	ErrDomain = errors.New("argument outside function domain")

	// ErrNoConvergence is returned when an iterative method
	// exhausts its iteration budget before reaching tolerance.
	ErrNoConvergence = errors.New("failed to converge")
)

var inf = math.Inf(1)
var nan = math.NaN()

// eps is the float64 machine epsilon.
const eps = 0x1p-52

// tiny is a number near the smallest representable normal float64
// whose reciprocal is still finite.
const tiny = 1e-300

// raiseZero returns z, or tiny if z is too close to zero. It keeps
// modified Lentz iterations from dividing by zero.
func raiseZero(z float64) float64 {
	if math.Abs(z) < tiny {
		return tiny
	}
	return z
}

// iterationBudget returns the iteration limit for a series or
// continued fraction whose convergence slows as sqrt(scale).
func iterationBudget(scale float64) int {
	const base = 200
	if !(scale > 0) {
		return base
	}
	return base + int(math.Min(10*math.Sqrt(scale), 1e8))
}
