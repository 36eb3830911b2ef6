// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-probdist/mathx"
)

// An ErrorKind classifies a failure reported by this package. Each
// ErrorKind is itself an error, so callers can test for a kind with
// errors.Is(err, stats.ParameterNotFinite).
type ErrorKind int

const (
	// ParameterNotFinite means a constructor argument was NaN or
	// infinite.
	ParameterNotFinite ErrorKind = iota + 1

	// ParameterNotPositive means a parameter that must be
	// strictly positive was not.
	ParameterNotPositive

	// ParameterOutOfRange means a parameter or argument violated
	// a documented range constraint, such as a probability
	// outside [0, 1] or a triangular mode outside its bounds.
	ParameterOutOfRange

	// InvalidBounds means an upper bound did not exceed its lower
	// bound.
	InvalidBounds

	// DomainError means an evaluation argument was outside the
	// mathematical domain of the function.
	DomainError

	// ConvergenceFailure means an iterative inversion exhausted
	// its iteration budget.
	ConvergenceFailure
)

func (k ErrorKind) String() string {
	switch k {
	case ParameterNotFinite:
		return "parameter not finite"
	case ParameterNotPositive:
		return "parameter not positive"
	case ParameterOutOfRange:
		return "parameter out of range"
	case InvalidBounds:
		return "invalid bounds"
	case DomainError:
		return "domain error"
	case ConvergenceFailure:
		return "convergence failure"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) Error() string {
	return k.String()
}

// An Error describes a failed construction or evaluation.
type Error struct {
	Kind ErrorKind

	// Dist is the distribution kind involved.
	Dist Kind

	// Param names the offending parameter or argument, such as
	// "shape" or "p".
	Param string

	// Value is the offending value.
	Value float64

	// Err is the underlying kernel error, if any.
	Err error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s %s=%v", e.Dist, e.Kind, e.Param, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the kind and the underlying error. InvalidBounds is
// a refinement of ParameterOutOfRange, so errors of that kind match
// both.
func (e *Error) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Kind == InvalidBounds {
		errs = append(errs, ParameterOutOfRange)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func newError(kind ErrorKind, dist Kind, param string, value float64) error {
	return &Error{Kind: kind, Dist: dist, Param: param, Value: value}
}

// wrapKernel converts an error from the special-function kernel into
// an *Error of the matching kind.
func wrapKernel(err error, dist Kind, param string, value float64) error {
	if err == nil {
		return nil
	}
	kind := DomainError
	if errors.Is(err, mathx.ErrNoConvergence) {
		kind = ConvergenceFailure
	}
	return &Error{Kind: kind, Dist: dist, Param: param, Value: value, Err: err}
}

// checkFinite validates that a parameter is a finite number.
func checkFinite(dist Kind, param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return newError(ParameterNotFinite, dist, param, v)
	}
	return nil
}

// checkPositive validates that a parameter is finite and > 0.
func checkPositive(dist Kind, param string, v float64) error {
	if err := checkFinite(dist, param, v); err != nil {
		return err
	}
	if !(v > 0) {
		return newError(ParameterNotPositive, dist, param, v)
	}
	return nil
}

// checkProb validates a probability argument to a quantile function.
func checkProb(dist Kind, param string, p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return newError(DomainError, dist, param, p)
	}
	if p < 0 || p > 1 {
		return newError(ParameterOutOfRange, dist, param, p)
	}
	return nil
}
