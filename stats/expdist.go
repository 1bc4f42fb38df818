// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ExponentialDist is an exponential distribution with rate Rate.
type ExponentialDist struct {
	Rate float64
}

// NewExponentialDist returns an exponential distribution, failing if
// rate is not positive and finite.
func NewExponentialDist(rate float64) (ExponentialDist, error) {
	if !(rate > 0) || math.IsInf(rate, 1) {
		return ExponentialDist{}, invalidf("rate must be positive and finite, got %v", rate)
	}
	return ExponentialDist{rate}, nil
}

// FitExponential returns the maximum-likelihood exponential
// distribution for xs, with rate 1/mean(xs). All values must be
// non-negative and at least one positive.
func FitExponential(xs []float64) (ExponentialDist, error) {
	if len(xs) == 0 {
		return ExponentialDist{}, ErrSampleSize
	}
	for _, x := range xs {
		if !(x >= 0) {
			return ExponentialDist{}, invalidf("exponential sample values must be >= 0, got %v", x)
		}
	}
	mean := Sample{xs}.Mean()
	if mean == 0 {
		return ExponentialDist{}, invalidf("exponential sample must have a positive value")
	}
	return NewExponentialDist(1 / mean)
}

func (e ExponentialDist) dist() distuv.Exponential {
	return distuv.Exponential{Rate: e.Rate}
}

func (e ExponentialDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return e.dist().Prob(x)
}

func (e ExponentialDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return e.dist().CDF(x)
}

func (e ExponentialDist) Quantile(p float64) float64 { return e.dist().Quantile(p) }
func (e ExponentialDist) Mean() float64              { return 1 / e.Rate }
func (e ExponentialDist) Variance() float64          { return 1 / (e.Rate * e.Rate) }

func (e ExponentialDist) Bounds() (float64, float64) {
	return 0, e.Quantile(0.999)
}
