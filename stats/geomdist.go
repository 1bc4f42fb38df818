// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"iter"
	"math"
)

// GeometricDist is the distribution of the number of Bernoulli
// trials up to and including the first success. Its support starts
// at 1.
type GeometricDist struct {
	// P is the probability of success in each trial. 0 < P <= 1.
	P float64

	// MaxK is the largest k enumerated by All.
	MaxK int

	FitInfo
}

// NewGeometricDist returns a geometric distribution enumerated up to
// maxK.
func NewGeometricDist(p float64, maxK int) (GeometricDist, error) {
	if !(p > 0 && p <= 1) {
		return GeometricDist{}, invalidf("geometric p must be in (0, 1], got %v", p)
	}
	if maxK < 0 {
		return GeometricDist{}, invalidf("max k must be >= 0, got %d", maxK)
	}
	return GeometricDist{P: p, MaxK: maxK}, nil
}

// FitGeometric returns the maximum-likelihood geometric distribution
// for the sample xs of trial counts, with p = 1/mean(xs). Every value
// must be at least 1.
func FitGeometric(xs []int, maxK int) (GeometricDist, error) {
	if err := checkCounts("geometric", xs, 1, -1); err != nil {
		return GeometricDist{}, err
	}
	d, err := NewGeometricDist(1/meanInts(xs), maxK)
	if err != nil {
		return GeometricDist{}, err
	}
	d.FitInfo = FitInfo{Trials: len(xs), Estimated: 1}
	return d, nil
}

func (d GeometricDist) PMF(k int) (float64, error) {
	if err := checkK(k); err != nil {
		return 0, err
	}
	return d.pmf(k), nil
}

func (d GeometricDist) pmf(k int) float64 {
	if k < 1 {
		return 0
	}
	return d.P * math.Pow(1-d.P, float64(k-1))
}

func (d GeometricDist) CDF(k int) float64 {
	if k < 1 {
		return 0
	}
	return cdfSum(d.pmf, 1, k, k)
}

func (d GeometricDist) Support() (int, int) {
	return 1, d.MaxK
}

// All returns the sequence of (k, PMF(k)) for k in [1, d.MaxK].
func (d GeometricDist) All() iter.Seq2[int, float64] {
	return Points(d)
}

func (d GeometricDist) Mean() float64 {
	return 1 / d.P
}

func (d GeometricDist) Variance() float64 {
	return (1 - d.P) / (d.P * d.P)
}

func (d GeometricDist) String() string {
	return sprintFit("Geometric distribution with p=%.4g", d.FitInfo, d.P)
}
