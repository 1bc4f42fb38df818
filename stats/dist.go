// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A Continuous is a continuous statistical distribution.
type Continuous interface {
	// PDF returns the value of the probability density function
	// of this distribution at x. It is 0 outside the support.
	PDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x. It is 0 below the
	// support and 1 above it.
	CDF(x float64) float64

	Mean() float64
	Variance() float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)
}

// A TestDist is a continuous distribution used as the reference
// distribution of a hypothesis test statistic.
type TestDist interface {
	Continuous

	// Quantile returns the inverse of the CDF for p in [0, 1].
	Quantile(p float64) float64

	// PValue returns the p-value of statistic d for the given
	// tail.
	PValue(d float64, tail Tail) (float64, error)

	// Render returns the curve of this distribution and the
	// rejection region described by r.
	Render(r Rejection) (*Plot, error)

	String() string
}

// A Discrete is a discrete distribution over the integers.
type Discrete interface {
	// PMF returns the probability mass at k. It is 0 for k outside
	// the support and fails with ErrInvalidArgument for k < 0.
	PMF(k int) (float64, error)

	// CDF returns the sum of PMF over the support up to and
	// including k.
	CDF(k int) float64

	Mean() float64
	Variance() float64

	// Support returns the lowest point of the support and the
	// configured upper bound used for enumeration.
	Support() (lo, hi int)

	// EstimatedParams returns the number of parameters that were
	// estimated from data (0 or 1).
	EstimatedParams() int

	// TrialCount returns the number of observations used to scale
	// probabilities to expected frequencies, or 0 if unknown.
	TrialCount() int
}

// Critical holds the critical values of a test. For a one-sided
// test Lo and Hi are the same value.
type Critical struct {
	Lo, Hi float64
	Tail   Tail
}

// Value returns the single critical value of a one-sided test. For
// a bilateral test it returns Hi.
func (c Critical) Value() float64 {
	if c.Tail == TailLeft {
		return c.Lo
	}
	return c.Hi
}

// Outside reports whether d lies strictly outside [c.Lo, c.Hi].
func (c Critical) Outside(d float64) bool {
	return d < c.Lo || d > c.Hi
}

// checkQuantiles returns an error if d has zero degrees of freedom
// and so no quantile function.
func checkQuantiles(d TestDist) error {
	if g, ok := d.(interface{ degenerate() bool }); ok && g.degenerate() {
		return invalidf("%v has no quantiles", d)
	}
	return nil
}

// quantileCritical computes the critical values of d at alpha for
// the given tail.
func quantileCritical(d TestDist, alpha float64, tail Tail) (Critical, error) {
	if err := CheckAlpha(alpha); err != nil {
		return Critical{}, err
	}
	if err := tail.Check(); err != nil {
		return Critical{}, err
	}
	if err := checkQuantiles(d); err != nil {
		return Critical{}, err
	}
	switch tail {
	case TailLeft:
		q := d.Quantile(alpha)
		return Critical{q, q, tail}, nil
	case TailRight:
		q := d.Quantile(1 - alpha)
		return Critical{q, q, tail}, nil
	}
	return Critical{d.Quantile(alpha / 2), d.Quantile(1 - alpha/2), tail}, nil
}

// asymmetricPValue is the p-value of d for a distribution with
// non-negative support.
func asymmetricPValue(cdf, survival func(float64) float64, d float64, tail Tail) (float64, error) {
	if err := tail.Check(); err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, invalidf("statistic must be non-negative, got %v", d)
	}
	switch tail {
	case TailLeft:
		return cdf(d), nil
	case TailRight:
		return survival(d), nil
	}
	l, r := cdf(d), survival(d)
	if l < r {
		return 2 * l, nil
	}
	return 2 * r, nil
}

// symmetricPValue is the p-value of d for a distribution symmetric
// about 0.
func symmetricPValue(cdf func(float64) float64, d float64, tail Tail) (float64, error) {
	if err := tail.Check(); err != nil {
		return 0, err
	}
	switch tail {
	case TailLeft:
		return cdf(d), nil
	case TailRight:
		return 1 - cdf(d), nil
	}
	if d < 0 {
		d = -d
	}
	return 2 * (1 - cdf(d)), nil
}
