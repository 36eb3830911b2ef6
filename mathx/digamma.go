// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Digamma returns the value of the digamma function ψ(x), the
// logarithmic derivative of Γ(x).
//
// Digamma returns ErrDomain if x is NaN, -Inf, or a non-positive
// integer.
func Digamma(x float64) (float64, error) {
	switch {
	case math.IsNaN(x) || math.IsInf(x, -1):
		return nan, ErrDomain
	case math.IsInf(x, 1):
		return inf, nil
	case x <= 0 && x == math.Floor(x):
		return nan, ErrDomain
	}

	res := 0.0
	if x < 0 {
		// Reflection: ψ(1-x) - ψ(x) = π cot(πx).
		res = -math.Pi / math.Tan(math.Pi*(x-math.Round(x)))
		x = 1 - x
	}
	// Recur up until the asymptotic series is accurate.
	for x < 10 {
		res -= 1 / x
		x++
	}
	// ψ(x) ~ ln x - 1/2x - Σ B₂ₙ/(2n x²ⁿ)
	f := 1 / (x * x)
	t := f * (-1.0/12 + f*(1.0/120+f*(-1.0/252+f*(1.0/240+f*(-1.0/132+f*(691.0/32760+f*(-1.0/12)))))))
	return res + math.Log(x) - 0.5/x + t, nil
}
