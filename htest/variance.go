// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htest

import (
	"fmt"
	"math"

	"github.com/aclements/go-hzero/stats"
)

// VarianceParams are the parameters of a test of a population
// variance.
type VarianceParams struct {
	// H0 is the variance under the null hypothesis. It must be
	// positive.
	H0 float64

	// Mean is the known population mean, or nil if it is unknown.
	Mean *float64

	Alpha float64
	Tail  stats.Tail
}

// Variance tests whether the population variance of xs equals p.H0.
//
// With a known mean μ the statistic Σ((x-μ)/√H0)² has a chi-squared
// distribution with n degrees of freedom. Otherwise the statistic
// (n-1)s²/H0 has n-1 degrees of freedom.
//
// With a significance level, a one-sided test rejects when the
// statistic exceeds the critical value, and a bilateral test rejects
// when the statistic falls outside the two critical values.
func Variance(xs []float64, p VarianceParams) (*Result, error) {
	tail, err := checkParams(p.Alpha, p.Tail)
	if err != nil {
		return nil, err
	}
	if !(p.H0 > 0) {
		return nil, invalidf("null variance must be positive, got %v", p.H0)
	}

	s := stats.Sample{Xs: xs}
	n := float64(s.N())
	r := &Result{
		Parameter: "variance",
		Symbol:    "variance",
		H0:        p.H0,
		Alpha:     p.Alpha,
		Tail:      tail,
	}

	var d stats.ChiSquareDist
	if p.Mean != nil {
		if s.N() < 1 {
			return nil, stats.ErrSampleSize
		}
		r.Facts = []Fact{{"Mean", fmt.Sprintf("%g", *p.Mean)}}
		d = stats.ChiSquareDist{K: n}
		r.Statistic = s.SumSqDev(*p.Mean, math.Sqrt(p.H0))
	} else {
		if s.N() < 2 {
			return nil, stats.ErrSampleSize
		}
		r.Facts = []Fact{{"Mean", "unknown"}}
		d = stats.ChiSquareDist{K: n - 1}
		r.Statistic = (n - 1) / p.H0 * s.Quasivariance()
	}
	r.Dist = d
	if r.P, err = d.PValue(r.Statistic, tail); err != nil {
		return nil, err
	}
	if p.Alpha == 0 {
		r.Basis, r.Decision = ByPValue, DecideP(r.P)
		return r, nil
	}

	c, err := d.CriticalValue(p.Alpha, tail)
	if err != nil {
		return nil, err
	}
	r.Critical, r.Basis = &c, ByCriticalValue
	var reject bool
	if tail == stats.TailBilateral {
		reject = c.Outside(r.Statistic)
	} else {
		reject = c.Value() < r.Statistic
	}
	if reject {
		r.Decision = Reject
	}
	return r, nil
}
