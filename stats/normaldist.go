// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1).
var StdNormal = NormalDist{0, 1}

// NewNormalDist returns a normal distribution, failing if sigma is
// not positive.
func NewNormalDist(mu, sigma float64) (NormalDist, error) {
	if !(sigma > 0) {
		return NormalDist{}, invalidf("standard deviation must be > 0, got %v", sigma)
	}
	return NormalDist{mu, sigma}, nil
}

func (n NormalDist) dist() distuv.Normal {
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma}
}

func (n NormalDist) PDF(x float64) float64      { return n.dist().Prob(x) }
func (n NormalDist) CDF(x float64) float64      { return n.dist().CDF(x) }
func (n NormalDist) Quantile(p float64) float64 { return n.dist().Quantile(p) }
func (n NormalDist) Mean() float64              { return n.Mu }
func (n NormalDist) Variance() float64          { return n.Sigma * n.Sigma }

func (n NormalDist) Bounds() (float64, float64) {
	return n.Mu - 3*n.Sigma, n.Mu + 3*n.Sigma
}

// CriticalValue returns the critical value of n at significance
// level alpha. For a two-tailed test this is the alpha/2 quantile,
// otherwise the alpha quantile. Both are below the mean for
// alpha < 0.5; callers compare magnitudes.
func (n NormalDist) CriticalValue(alpha float64, twoTailed bool) (float64, error) {
	if err := CheckAlpha(alpha); err != nil {
		return 0, err
	}
	if twoTailed {
		return n.Quantile(alpha / 2), nil
	}
	return n.Quantile(alpha), nil
}

// PValue returns the p-value of d. For a bilateral tail this is
// 2*(1-CDF(|d|)).
func (n NormalDist) PValue(d float64, tail Tail) (float64, error) {
	return symmetricPValue(n.CDF, d, tail)
}

func (n NormalDist) Render(r Rejection) (*Plot, error) {
	return render(n, r)
}

func (n NormalDist) String() string {
	return fmt.Sprintf("Normal distribution with mean %g and standard deviation %g", n.Mu, n.Sigma)
}
