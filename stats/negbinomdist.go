// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"iter"
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// NegBinomialDist is the distribution of the number of failures
// before the R'th success in a sequence of Bernoulli trials.
type NegBinomialDist struct {
	// R is the number of successes. R >= 1.
	R int

	// P is the probability of success in each trial. 0 < P <= 1.
	P float64

	// MaxK is the largest k enumerated by All.
	MaxK int

	FitInfo
}

// NewNegBinomialDist returns a negative binomial distribution
// enumerated up to maxK.
func NewNegBinomialDist(r int, p float64, maxK int) (NegBinomialDist, error) {
	if r < 1 {
		return NegBinomialDist{}, invalidf("negative binomial r must be >= 1, got %d", r)
	}
	if !(p > 0 && p <= 1) {
		return NegBinomialDist{}, invalidf("negative binomial p must be in (0, 1], got %v", p)
	}
	if maxK < 0 {
		return NegBinomialDist{}, invalidf("max k must be >= 0, got %d", maxK)
	}
	return NegBinomialDist{R: r, P: p, MaxK: maxK}, nil
}

// FitNegBinomial returns the maximum-likelihood negative binomial
// distribution with r successes for the sample xs of failure counts,
// with p = r/(r + mean(xs)).
func FitNegBinomial(r int, xs []int, maxK int) (NegBinomialDist, error) {
	if r < 1 {
		return NegBinomialDist{}, invalidf("negative binomial r must be >= 1, got %d", r)
	}
	if err := checkCounts("negative binomial", xs, 0, -1); err != nil {
		return NegBinomialDist{}, err
	}
	rf := float64(r)
	d, err := NewNegBinomialDist(r, rf/(rf+meanInts(xs)), maxK)
	if err != nil {
		return NegBinomialDist{}, err
	}
	d.FitInfo = FitInfo{Trials: len(xs), Estimated: 1}
	return d, nil
}

func (d NegBinomialDist) PMF(k int) (float64, error) {
	if err := checkK(k); err != nil {
		return 0, err
	}
	return d.pmf(k), nil
}

func (d NegBinomialDist) pmf(k int) float64 {
	if k < 0 {
		return 0
	}
	return combin.GeneralizedBinomial(float64(d.R+k-1), float64(k)) *
		math.Pow(d.P, float64(d.R)) * math.Pow(1-d.P, float64(k))
}

func (d NegBinomialDist) CDF(k int) float64 {
	if k < 0 {
		return 0
	}
	return cdfSum(d.pmf, 0, k, k)
}

func (d NegBinomialDist) Support() (int, int) {
	return 0, d.MaxK
}

// All returns the sequence of (k, PMF(k)) for k in [0, d.MaxK].
func (d NegBinomialDist) All() iter.Seq2[int, float64] {
	return Points(d)
}

func (d NegBinomialDist) Mean() float64 {
	return float64(d.R) * (1 - d.P) / d.P
}

func (d NegBinomialDist) Variance() float64 {
	return float64(d.R) * (1 - d.P) / (d.P * d.P)
}

func (d NegBinomialDist) String() string {
	return sprintFit("Negative binomial distribution with r=%d, p=%.4g", d.FitInfo, d.R, d.P)
}
