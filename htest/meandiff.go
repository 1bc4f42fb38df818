// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htest

import (
	"fmt"
	"math"

	"github.com/aclements/go-hzero/stats"
)

// MeanDiffParams are the parameters of a test of the difference
// between two population means.
type MeanDiffParams struct {
	// H0 is the difference mean(x) - mean(y) under the null
	// hypothesis.
	H0 float64

	// StdX and StdY are the known population standard deviations.
	// Either both are known or both are 0 (unknown).
	StdX, StdY float64

	// EqualVar assumes the unknown variances are equal and pools
	// them.
	EqualVar bool

	Alpha float64
	Tail  stats.Tail
}

// MeanDiff tests whether the difference between the population
// means of xs and ys equals p.H0.
//
// With both standard deviations known the statistic is standard
// normal. Otherwise it has a Student's t-distribution: with pooled
// variance and nx+ny-2 degrees of freedom if p.EqualVar is set, or
// with separate variances and nx+ny-2-δ degrees of freedom, where δ
// is the nearest integer to
//
//	((ny-1)a - (nx-1)b)² / ((ny-1)a² + (nx-1)b²)
//
// for a = s²x/nx and b = s²y/ny.
func MeanDiff(xs, ys []float64, p MeanDiffParams) (*Result, error) {
	tail, err := checkParams(p.Alpha, p.Tail)
	if err != nil {
		return nil, err
	}
	if !(p.StdX >= 0 && p.StdY >= 0) {
		return nil, invalidf("standard deviations must be positive, got %v and %v", p.StdX, p.StdY)
	}
	if (p.StdX == 0) != (p.StdY == 0) {
		return nil, invalidf("both standard deviations must be known or both unknown")
	}

	x, y := stats.Sample{Xs: xs}, stats.Sample{Xs: ys}
	nx, ny := float64(x.N()), float64(y.N())
	r := &Result{
		Parameter: "difference of means",
		Symbol:    "mean diff",
		H0:        p.H0,
		Facts: []Fact{
			{"Standard deviation 1", fmtKnown(p.StdX)},
			{"Standard deviation 2", fmtKnown(p.StdY)},
		},
		Alpha: p.Alpha,
		Tail:  tail,
	}
	diff := x.Mean() - y.Mean() - p.H0

	var d symmetricDist
	switch {
	case p.StdX != 0:
		if x.N() < 1 || y.N() < 1 {
			return nil, stats.ErrSampleSize
		}
		d = stats.StdNormal
		r.Statistic = diff / math.Sqrt(p.StdX*p.StdX/nx+p.StdY*p.StdY/ny)

	case p.EqualVar:
		if x.N() < 2 || y.N() < 2 {
			return nil, stats.ErrSampleSize
		}
		r.Facts = append(r.Facts, Fact{"Same standard deviations", "yes"})
		df := nx + ny - 2
		pooled := ((nx-1)*x.Quasivariance() + (ny-1)*y.Quasivariance()) / df
		if pooled == 0 {
			return nil, stats.ErrZeroVariance
		}
		d = stats.TDist{V: df}
		r.Statistic = diff / math.Sqrt(pooled*(1/nx+1/ny))

	default:
		if x.N() < 2 || y.N() < 2 {
			return nil, stats.ErrSampleSize
		}
		r.Facts = append(r.Facts, Fact{"Same standard deviations", "no"})
		df, err := welchDF(x, y)
		if err != nil {
			return nil, err
		}
		d = stats.TDist{V: df}
		r.Statistic = diff / math.Sqrt(x.Quasivariance()/nx+y.Quasivariance()/ny)
	}
	if err := r.decideMagnitude(d); err != nil {
		return nil, err
	}
	return r, nil
}

// welchDF returns the degrees of freedom of the unequal-variance
// t statistic of x and y. The result is an integer in [0, nx+ny-2].
func welchDF(x, y stats.Sample) (float64, error) {
	nx, ny := float64(x.N()), float64(y.N())
	a, b := x.Quasivariance()/nx, y.Quasivariance()/ny
	num := (ny-1)*a - (nx-1)*b
	den := (ny-1)*a*a + (nx-1)*b*b
	if den == 0 {
		return 0, stats.ErrZeroVariance
	}
	delta := math.RoundToEven(num * num / den)
	df := nx + ny - 2 - delta
	if !(df > 0) {
		return 0, fmt.Errorf("%w: %v degrees of freedom", stats.ErrSampleSize, df)
	}
	return df, nil
}
