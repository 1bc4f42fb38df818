// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned (wrapped) when an argument lies
	// outside its valid domain: a significance level outside (0, 1),
	// an unknown tail, a negative statistic for a distribution with
	// non-negative support, an out-of-support sample value, or an
	// invalid shape parameter.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInconsistentRequest is returned when a rejection region is
	// requested for a bilateral tail from a raw critical value with
	// no significance level.
	ErrInconsistentRequest = errors.New("inconsistent request")

	ErrSampleSize   = fmt.Errorf("%w: sample is too small", ErrInvalidArgument)
	ErrZeroVariance = fmt.Errorf("%w: sample has zero variance", ErrInvalidArgument)
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// CheckAlpha returns an error unless 0 < alpha < 1.
func CheckAlpha(alpha float64) error {
	if !(alpha > 0 && alpha < 1) {
		return invalidf("alpha must be between 0 and 1, got %v", alpha)
	}
	return nil
}

// checkDF returns an error if a degrees-of-freedom parameter is
// negative or NaN.
func checkDF(name string, df float64) error {
	if !(df >= 0) {
		return invalidf("%s degrees of freedom must be >= 0, got %v", name, df)
	}
	return nil
}

// checkProb returns an error unless p is in [0, 1].
func checkProb(p float64) error {
	if !(p >= 0 && p <= 1) {
		return invalidf("probability must be in [0, 1], got %v", p)
	}
	return nil
}
