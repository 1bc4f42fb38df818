// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htest

import "github.com/aclements/go-hzero/stats"

// VarRatioParams are the parameters of a test of the ratio of two
// population variances.
type VarRatioParams struct {
	// H0 is the ratio var(x)/var(y) under the null hypothesis. It
	// must be positive.
	H0 float64

	Alpha float64
	Tail  stats.Tail
}

// VariancesRatio tests whether the ratio of the population variances
// of xs and ys equals p.H0.
//
// The statistic (s²y / s²x)·H0 has an F distribution with ny-1 and
// nx-1 degrees of freedom under the null hypothesis. With a
// significance level, a bilateral test rejects outside the two
// critical values, a left test rejects below the critical value and
// a right test rejects above it.
func VariancesRatio(xs, ys []float64, p VarRatioParams) (*Result, error) {
	tail, err := checkParams(p.Alpha, p.Tail)
	if err != nil {
		return nil, err
	}
	if !(p.H0 > 0) {
		return nil, invalidf("null variance ratio must be positive, got %v", p.H0)
	}

	x, y := stats.Sample{Xs: xs}, stats.Sample{Xs: ys}
	if x.N() < 2 || y.N() < 2 {
		return nil, stats.ErrSampleSize
	}
	vx := x.Quasivariance()
	if vx == 0 {
		return nil, stats.ErrZeroVariance
	}
	d := stats.FDist{D1: float64(y.N() - 1), D2: float64(x.N() - 1)}
	r := &Result{
		Parameter: "ratio of variances",
		Symbol:    "variance ratio",
		H0:        p.H0,
		Dist:      d,
		Statistic: y.Quasivariance() / vx * p.H0,
		Alpha:     p.Alpha,
		Tail:      tail,
	}
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
	switch tail {
	case stats.TailBilateral:
		reject = c.Outside(r.Statistic)
	case stats.TailLeft:
		reject = c.Value() > r.Statistic
	default:
		reject = c.Value() < r.Statistic
	}
	if reject {
		r.Decision = Reject
	}
	return r, nil
}
