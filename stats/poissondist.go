// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"iter"

	"gonum.org/v1/gonum/stat/distuv"
)

// PoissonDist is a Poisson distribution with rate Lambda.
type PoissonDist struct {
	// Lambda is the expected number of events. Lambda >= 0.
	Lambda float64

	// MaxK is the largest k enumerated by All.
	MaxK int

	FitInfo
}

// NewPoissonDist returns a Poisson distribution enumerated up to
// maxK, failing if lambda or maxK is negative.
func NewPoissonDist(lambda float64, maxK int) (PoissonDist, error) {
	if !(lambda >= 0) {
		return PoissonDist{}, invalidf("poisson lambda must be >= 0, got %v", lambda)
	}
	if maxK < 0 {
		return PoissonDist{}, invalidf("max k must be >= 0, got %d", maxK)
	}
	return PoissonDist{Lambda: lambda, MaxK: maxK}, nil
}

// FitPoisson returns the maximum-likelihood Poisson distribution for
// the sample of counts xs, with lambda = mean(xs).
func FitPoisson(xs []int, maxK int) (PoissonDist, error) {
	if err := checkCounts("poisson", xs, 0, -1); err != nil {
		return PoissonDist{}, err
	}
	d, err := NewPoissonDist(meanInts(xs), maxK)
	if err != nil {
		return PoissonDist{}, err
	}
	d.FitInfo = FitInfo{Trials: len(xs), Estimated: 1}
	return d, nil
}

func (d PoissonDist) PMF(k int) (float64, error) {
	if err := checkK(k); err != nil {
		return 0, err
	}
	return d.pmf(k), nil
}

func (d PoissonDist) pmf(k int) float64 {
	if k < 0 {
		return 0
	}
	if d.Lambda == 0 {
		// All mass is at 0.
		if k == 0 {
			return 1
		}
		return 0
	}
	return distuv.Poisson{Lambda: d.Lambda}.Prob(float64(k))
}

func (d PoissonDist) CDF(k int) float64 {
	if k < 0 {
		return 0
	}
	return cdfSum(d.pmf, 0, k, k)
}

func (d PoissonDist) Support() (int, int) {
	return 0, d.MaxK
}

// All returns the sequence of (k, PMF(k)) for k in [0, d.MaxK].
func (d PoissonDist) All() iter.Seq2[int, float64] {
	return Points(d)
}

func (d PoissonDist) Mean() float64     { return d.Lambda }
func (d PoissonDist) Variance() float64 { return d.Lambda }

func (d PoissonDist) String() string {
	return sprintFit("Poisson distribution with lambda=%.4g", d.FitInfo, d.Lambda)
}
