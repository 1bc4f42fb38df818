// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"iter"
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// BinomialDist is a binomial distribution.
type BinomialDist struct {
	// N is the number of independent Bernoulli trials. N >= 0.
	//
	// If N=1, this is equivalent to the Bernoulli distribution.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64

	FitInfo
}

// NewBinomialDist returns a binomial distribution, failing if n is
// negative or p is outside [0, 1].
func NewBinomialDist(n int, p float64) (BinomialDist, error) {
	if n < 0 {
		return BinomialDist{}, invalidf("binomial n must be >= 0, got %d", n)
	}
	if err := checkProb(p); err != nil {
		return BinomialDist{}, err
	}
	return BinomialDist{N: n, P: p}, nil
}

// FitBinomial returns the maximum-likelihood binomial distribution
// with n trials per observation for the sample xs of success counts.
// The estimate is p = Σxs / (len(xs)·n).
func FitBinomial(n int, xs []int) (BinomialDist, error) {
	if n <= 0 {
		return BinomialDist{}, invalidf("binomial n must be > 0 to fit, got %d", n)
	}
	if err := checkCounts("binomial", xs, 0, n); err != nil {
		return BinomialDist{}, err
	}
	d, err := NewBinomialDist(n, meanInts(xs)/float64(n))
	if err != nil {
		return BinomialDist{}, err
	}
	d.FitInfo = FitInfo{Trials: len(xs), Estimated: 1}
	return d, nil
}

// PMF is the probability of getting exactly k successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) PMF(k int) (float64, error) {
	if err := checkK(k); err != nil {
		return 0, err
	}
	return d.pmf(k), nil
}

func (d BinomialDist) pmf(k int) float64 {
	if k < 0 || k > d.N {
		return 0
	}
	return combin.GeneralizedBinomial(float64(d.N), float64(k)) *
		math.Pow(d.P, float64(k)) * math.Pow(1-d.P, float64(d.N-k))
}

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) CDF(k int) float64 {
	if k < 0 {
		return 0
	} else if k >= d.N {
		return 1
	}
	return cdfSum(d.pmf, 0, d.N, k)
}

func (d BinomialDist) Support() (int, int) {
	return 0, d.N
}

// All returns the sequence of (k, PMF(k)) for k in [0, d.N].
func (d BinomialDist) All() iter.Seq2[int, float64] {
	return Points(d)
}

func (d BinomialDist) Mean() float64 {
	return float64(d.N) * d.P
}

func (d BinomialDist) Variance() float64 {
	return float64(d.N) * d.P * (1 - d.P)
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d BinomialDist) NormalApprox() NormalDist {
	return NormalDist{Mu: d.Mean(), Sigma: math.Sqrt(d.Variance())}
}

func (d BinomialDist) String() string {
	return sprintFit("Binomial distribution with n=%d, p=%.4g", d.FitInfo, d.N, d.P)
}
