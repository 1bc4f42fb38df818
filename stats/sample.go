// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of observed values.
type Sample struct {
	Xs []float64
}

// N returns the number of values in s.
func (s Sample) N() int {
	return len(s.Xs)
}

// Sum returns the sum of s.
func (s Sample) Sum() float64 {
	return floats.Sum(s.Xs)
}

// Mean returns the arithmetic mean of s, or NaN if s is empty.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Mean(s.Xs, nil)
}

// Quasivariance returns the unbiased sample variance of s, with
// divisor n-1. It is NaN for fewer than two values.
func (s Sample) Quasivariance() float64 {
	if len(s.Xs) < 2 {
		return nan
	}
	return stat.Variance(s.Xs, nil)
}

// StdDev returns the square root of the quasivariance of s.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Quasivariance())
}

// SumSqDev returns Σ((x - mu)/sigma)² over s.
func (s Sample) SumSqDev(mu, sigma float64) float64 {
	sum := 0.0
	for _, x := range s.Xs {
		z := (x - mu) / sigma
		sum += z * z
	}
	return sum
}
