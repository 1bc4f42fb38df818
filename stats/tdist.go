// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// A TDist is a Student's t-distribution with V degrees of freedom.
type TDist struct {
	V float64
}

// NewTDist returns a t-distribution with df degrees of freedom,
// failing if df is negative.
func NewTDist(df float64) (TDist, error) {
	if err := checkDF("t", df); err != nil {
		return TDist{}, err
	}
	return TDist{df}, nil
}

func (t TDist) dist() distuv.StudentsT {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: t.V}
}

// degenerate reports whether t has zero degrees of freedom.
func (t TDist) degenerate() bool { return !(t.V > 0) }

func (t TDist) PDF(x float64) float64 {
	if t.degenerate() {
		return nan
	}
	return t.dist().Prob(x)
}

func (t TDist) CDF(x float64) float64 {
	if t.degenerate() {
		return nan
	}
	return t.dist().CDF(x)
}

func (t TDist) Quantile(p float64) float64 {
	if t.degenerate() {
		return nan
	}
	return t.dist().Quantile(p)
}

// Mean is 0 for V > 1 and undefined (NaN) otherwise.
func (t TDist) Mean() float64 {
	if t.V <= 1 {
		return nan
	}
	return 0
}

// Variance is V/(V-2) for V > 2, +Inf for 1 < V <= 2, and NaN
// otherwise.
func (t TDist) Variance() float64 {
	switch {
	case t.V > 2:
		return t.V / (t.V - 2)
	case t.V > 1:
		return inf
	}
	return nan
}

func (t TDist) Bounds() (float64, float64) {
	return -4, 4
}

// CriticalValue returns the critical value of t at significance
// level alpha: the 1-alpha/2 quantile for a two-tailed test, and
// the 1-alpha quantile otherwise.
func (t TDist) CriticalValue(alpha float64, twoTailed bool) (float64, error) {
	if err := CheckAlpha(alpha); err != nil {
		return 0, err
	}
	if err := checkQuantiles(t); err != nil {
		return 0, err
	}
	if twoTailed {
		return t.Quantile(1 - alpha/2), nil
	}
	return t.Quantile(1 - alpha), nil
}

// PValue returns the p-value of d. For a bilateral tail this is
// 2*(1-CDF(|d|)).
func (t TDist) PValue(d float64, tail Tail) (float64, error) {
	return symmetricPValue(t.CDF, d, tail)
}

func (t TDist) Render(r Rejection) (*Plot, error) {
	return render(t, r)
}

func (t TDist) String() string {
	return fmt.Sprintf("Student's t-distribution with %g degrees of freedom", t.V)
}
