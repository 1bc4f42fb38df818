// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

// FDist is Snedecor's F distribution with D1 and D2 degrees of
// freedom.
type FDist struct {
	D1, D2 float64
}

// NewFDist returns an F distribution, failing if either degrees of
// freedom is negative.
func NewFDist(d1, d2 float64) (FDist, error) {
	if err := checkDF("numerator", d1); err != nil {
		return FDist{}, err
	}
	if err := checkDF("denominator", d2); err != nil {
		return FDist{}, err
	}
	return FDist{d1, d2}, nil
}

func (f FDist) dist() distuv.F {
	return distuv.F{D1: f.D1, D2: f.D2}
}

// degenerate reports whether either degrees of freedom of f is
// zero.
func (f FDist) degenerate() bool { return !(f.D1 > 0 && f.D2 > 0) }

func (f FDist) PDF(x float64) float64 {
	if f.degenerate() {
		return nan
	}
	if x < 0 {
		return 0
	}
	return f.dist().Prob(x)
}

func (f FDist) CDF(x float64) float64 {
	if f.degenerate() {
		return nan
	}
	if x <= 0 {
		return 0
	}
	return f.dist().CDF(x)
}

func (f FDist) Survival(x float64) float64 {
	if f.degenerate() {
		return nan
	}
	if x <= 0 {
		return 1
	}
	return f.dist().Survival(x)
}

// Quantile inverts the CDF through the regularized incomplete beta
// function: if y = I⁻¹(p; D1/2, D2/2) then x = D2·y / (D1·(1-y)).
func (f FDist) Quantile(p float64) float64 {
	switch {
	case f.degenerate():
		return nan
	case p <= 0:
		return 0
	case p >= 1:
		return inf
	}
	y := mathext.InvRegIncBeta(f.D1/2, f.D2/2, p)
	return f.D2 * y / (f.D1 * (1 - y))
}

// Mean is D2/(D2-2) for D2 > 2 and NaN otherwise.
func (f FDist) Mean() float64 {
	if f.D2 <= 2 {
		return nan
	}
	return f.D2 / (f.D2 - 2)
}

// Variance is defined for D2 > 4 and NaN otherwise.
func (f FDist) Variance() float64 {
	if f.D2 <= 4 {
		return nan
	}
	d1, d2 := f.D1, f.D2
	return 2 * d2 * d2 * (d1 + d2 - 2) / (d1 * (d2 - 2) * (d2 - 2) * (d2 - 4))
}

func (f FDist) Bounds() (float64, float64) {
	return 0, f.Quantile(0.999)
}

// CriticalValue returns the critical values of f at significance
// level alpha, as for ChiSquareDist.CriticalValue.
func (f FDist) CriticalValue(alpha float64, tail Tail) (Critical, error) {
	return quantileCritical(f, alpha, tail)
}

// PValue returns the p-value of d, which must be non-negative. For a
// bilateral tail this is twice the smaller tail probability.
func (f FDist) PValue(d float64, tail Tail) (float64, error) {
	return asymmetricPValue(f.CDF, f.Survival, d, tail)
}

func (f FDist) Render(r Rejection) (*Plot, error) {
	if r.HasStatistic && r.Statistic < 0 {
		return nil, invalidf("F statistic must be non-negative, got %v", r.Statistic)
	}
	return render(f, r)
}

func (f FDist) String() string {
	return fmt.Sprintf("Snedecor's F distribution with %g, %g degrees of freedom", f.D1, f.D2)
}
