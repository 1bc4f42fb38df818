// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// ChiSquareDist is a chi-square distribution with K degrees of
// freedom.
type ChiSquareDist struct {
	K float64
}

// NewChiSquareDist returns a chi-square distribution with df degrees
// of freedom, failing if df is negative.
func NewChiSquareDist(df float64) (ChiSquareDist, error) {
	if err := checkDF("chi-square", df); err != nil {
		return ChiSquareDist{}, err
	}
	return ChiSquareDist{df}, nil
}

func (c ChiSquareDist) dist() distuv.ChiSquared {
	return distuv.ChiSquared{K: c.K}
}

// degenerate reports whether c has zero degrees of freedom, where
// the density, distribution and quantile functions are undefined.
func (c ChiSquareDist) degenerate() bool { return !(c.K > 0) }

func (c ChiSquareDist) PDF(x float64) float64 {
	if c.degenerate() {
		return nan
	}
	if x < 0 {
		return 0
	}
	return c.dist().Prob(x)
}

func (c ChiSquareDist) CDF(x float64) float64 {
	if c.degenerate() {
		return nan
	}
	if x <= 0 {
		return 0
	}
	return c.dist().CDF(x)
}

func (c ChiSquareDist) Survival(x float64) float64 {
	if c.degenerate() {
		return nan
	}
	if x <= 0 {
		return 1
	}
	return c.dist().Survival(x)
}

func (c ChiSquareDist) Quantile(p float64) float64 {
	if c.degenerate() {
		return nan
	}
	return c.dist().Quantile(p)
}

func (c ChiSquareDist) Mean() float64              { return c.K }
func (c ChiSquareDist) Variance() float64          { return 2 * c.K }

func (c ChiSquareDist) Bounds() (float64, float64) {
	return 0, c.Quantile(0.999)
}

// CriticalValue returns the critical values of c at significance
// level alpha: the alpha quantile for a left tail, the 1-alpha
// quantile for a right tail, and the alpha/2 and 1-alpha/2
// quantiles for a bilateral tail.
func (c ChiSquareDist) CriticalValue(alpha float64, tail Tail) (Critical, error) {
	return quantileCritical(c, alpha, tail)
}

// PValue returns the p-value of d, which must be non-negative. For a
// bilateral tail this is twice the smaller tail probability.
func (c ChiSquareDist) PValue(d float64, tail Tail) (float64, error) {
	return asymmetricPValue(c.CDF, c.Survival, d, tail)
}

func (c ChiSquareDist) Render(r Rejection) (*Plot, error) {
	if r.HasStatistic && r.Statistic < 0 {
		return nil, invalidf("chi-square statistic must be non-negative, got %v", r.Statistic)
	}
	return render(c, r)
}

func (c ChiSquareDist) String() string {
	return fmt.Sprintf("Chi-squared distribution with %g degrees of freedom", c.K)
}
