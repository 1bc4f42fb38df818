// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htest

import (
	"fmt"
	"math"

	"github.com/aclements/go-hzero/stats"
)

// MeanParams are the parameters of a test of a population mean.
type MeanParams struct {
	// H0 is the mean under the null hypothesis.
	H0 float64

	// Std is the known population standard deviation, or 0 if it
	// is unknown and must be estimated from the sample.
	Std float64

	// Alpha is the significance level, or 0 to decide from the
	// p-value alone.
	Alpha float64

	// Tail is the alternative hypothesis. The zero value is
	// bilateral.
	Tail stats.Tail
}

// Mean tests whether the population mean of xs equals p.H0.
//
// With a known standard deviation the statistic
//
//	(x̄ - H0) / (σ / √n)
//
// is standard normal under the null hypothesis. Otherwise σ is
// replaced by the sample standard deviation and the statistic has a
// Student's t-distribution with n-1 degrees of freedom.
func Mean(xs []float64, p MeanParams) (*Result, error) {
	tail, err := checkParams(p.Alpha, p.Tail)
	if err != nil {
		return nil, err
	}
	if p.Std < 0 || math.IsNaN(p.Std) {
		return nil, invalidf("standard deviation must be positive, got %v", p.Std)
	}

	s := stats.Sample{Xs: xs}
	n := float64(s.N())
	r := &Result{
		Parameter: "mean",
		Symbol:    "mean",
		H0:        p.H0,
		Facts:     []Fact{{"Standard deviation", fmtKnown(p.Std)}},
		Alpha:     p.Alpha,
		Tail:      tail,
	}

	var d symmetricDist
	if p.Std != 0 {
		if s.N() < 1 {
			return nil, stats.ErrSampleSize
		}
		d = stats.StdNormal
		r.Statistic = (s.Mean() - p.H0) / (p.Std / math.Sqrt(n))
	} else {
		if s.N() < 2 {
			return nil, stats.ErrSampleSize
		}
		v := s.Quasivariance()
		if v == 0 {
			return nil, stats.ErrZeroVariance
		}
		d = stats.TDist{V: n - 1}
		r.Statistic = (s.Mean() - p.H0) / math.Sqrt(v/n)
	}
	if err := r.decideMagnitude(d); err != nil {
		return nil, err
	}
	return r, nil
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", stats.ErrInvalidArgument, fmt.Sprintf(format, args...))
}
