// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package htest implements parametric hypothesis tests about the
// mean and variance of one sample and the difference of means and
// ratio of variances of two samples.
//
// Each test selects a reference distribution, computes a statistic
// from the data and the null hypothesis, and decides either by
// comparing the statistic with a critical value (when a
// significance level is given) or from its p-value.
package htest // import "github.com/aclements/go-hzero/htest"

import (
	"fmt"
	"math"
	"strings"

	"github.com/aclements/go-hzero/stats"
)

// A Decision is the outcome of a hypothesis test.
type Decision int

const (
	NoReject Decision = iota
	Reject

	// Doubtful means the p-value is neither small enough to
	// reject nor large enough to be comfortable. It is only
	// produced when DoubtfulBand is set.
	Doubtful
)

func (d Decision) String() string {
	switch d {
	case Reject:
		return "Reject"
	case Doubtful:
		return "Doubtful region"
	}
	return "No reject"
}

// A Basis is how a Decision was reached.
type Basis int

const (
	ByPValue Basis = iota
	ByCriticalValue
)

func (b Basis) String() string {
	if b == ByCriticalValue {
		return "via critical value"
	}
	return "via p-value"
}

// RejectP is the p-value at or below which a test without a
// significance level rejects the null hypothesis.
const RejectP = 0.01

// DoubtfulP is the upper end of the doubtful band.
const DoubtfulP = 0.2

// DoubtfulBand enables the doubtful band RejectP < p < DoubtfulP for
// decisions made from a p-value.
//
// The band is disabled by default, so p-value decisions are reject
// at p <= RejectP and no reject otherwise. Set it once before running
// any test; it must not change while a test is running.
var DoubtfulBand = false

// DecideP returns the decision for p-value p.
func DecideP(p float64) Decision {
	switch {
	case p <= RejectP:
		return Reject
	case DoubtfulBand && p < DoubtfulP:
		return Doubtful
	}
	return NoReject
}

// A Fact is a named input of a test shown in its summary, such as a
// known standard deviation.
type Fact struct {
	Name, Value string
}

// Result is the outcome of a hypothesis test. It is computed once
// when the test runs and is not modified afterwards.
type Result struct {
	// Parameter names the tested population parameter, and Symbol
	// is its short form used when stating the hypotheses.
	Parameter, Symbol string

	// H0 is the parameter value under the null hypothesis.
	H0 float64

	// Facts are the known or assumed inputs of the test.
	Facts []Fact

	// Dist is the distribution of the statistic under the null
	// hypothesis.
	Dist stats.TestDist

	Statistic float64

	// Critical is the critical value, or nil if the test has no
	// significance level.
	Critical *stats.Critical

	P float64

	// Alpha is the significance level, or 0 if none was given.
	Alpha float64
	Tail  stats.Tail

	Decision Decision
	Basis    Basis
}

// Conclusion returns the decision and how it was reached, for
// example "Reject (via p-value)".
func (r *Result) Conclusion() string {
	return fmt.Sprintf("%s (%s)", r.Decision, r.Basis)
}

// Alternative states the alternative hypothesis.
func (r *Result) Alternative() string {
	return alternative(r.Symbol, r.H0, r.Tail)
}

func alternative(sym string, h0 float64, tail stats.Tail) string {
	op := "!="
	switch tail {
	case stats.TailLeft:
		op = "<"
	case stats.TailRight:
		op = ">"
	}
	return fmt.Sprintf("%s %s %g", sym, op, h0)
}

// Summary returns a multi-line description of the test: its
// hypotheses, distribution, statistic, p-value and conclusion.
func (r *Result) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Parameter: %s\n", r.Parameter)
	for _, f := range r.Facts {
		fmt.Fprintf(&b, "%s: %s\n", f.Name, f.Value)
	}
	fmt.Fprintf(&b, "\nNull hypothesis: %s = %g\n", r.Symbol, r.H0)
	fmt.Fprintf(&b, "Alternative hypothesis: %s\n\n", r.Alternative())
	fmt.Fprintf(&b, "Distribution: %s\n", r.Dist)
	fmt.Fprintf(&b, "Statistic: %.6g\n", r.Statistic)
	fmt.Fprintf(&b, "P-value: %.6g\n", r.P)
	if r.Critical != nil {
		fmt.Fprintf(&b, "Critical value: %s (alpha = %g)\n", FormatCritical(*r.Critical), r.Alpha)
	}
	fmt.Fprintf(&b, "\nHypothesis conclusion: %s\n", r.Conclusion())
	return b.String()
}

// FormatCritical formats a single critical value or a bilateral
// interval.
func FormatCritical(c stats.Critical) string {
	if c.Lo == c.Hi {
		return fmt.Sprintf("%.6g", c.Lo)
	}
	return fmt.Sprintf("[%.6g, %.6g]", c.Lo, c.Hi)
}

// Render returns the curve of the test's distribution with a marker
// at the statistic. If the test has a significance level, the plot
// also carries the rejection region.
func (r *Result) Render() (*stats.Plot, error) {
	if r.Alpha != 0 {
		return r.Dist.Render(stats.Rejection{
			Statistic:    r.Statistic,
			HasStatistic: true,
			Alpha:        r.Alpha,
			Tail:         r.Tail,
		})
	}
	p, err := r.Dist.Render(stats.Rejection{})
	if err != nil {
		return nil, err
	}
	p.Marker, p.HasMarker = r.Statistic, true
	p.Label = fmt.Sprintf("Statistic = %.3f", r.Statistic)
	return p, nil
}

// checkParams validates the significance level and tail common to
// all tests and returns the tail with its default applied.
func checkParams(alpha float64, tail stats.Tail) (stats.Tail, error) {
	tail = tail.OrDefault()
	if err := tail.Check(); err != nil {
		return "", err
	}
	if alpha != 0 {
		if err := stats.CheckAlpha(alpha); err != nil {
			return "", err
		}
	}
	return tail, nil
}

// symmetricDist is a test distribution whose critical value is
// chosen by a two-tailed flag.
type symmetricDist interface {
	stats.TestDist
	CriticalValue(alpha float64, twoTailed bool) (float64, error)
}

// decideMagnitude finishes a test on a symmetric distribution. With
// a significance level, it rejects when |statistic| exceeds
// |critical value|.
func (r *Result) decideMagnitude(d symmetricDist) error {
	r.Dist = d
	p, err := d.PValue(r.Statistic, r.Tail)
	if err != nil {
		return err
	}
	r.P = p
	if r.Alpha == 0 {
		r.Basis, r.Decision = ByPValue, DecideP(p)
		return nil
	}
	cv, err := d.CriticalValue(r.Alpha, r.Tail == stats.TailBilateral)
	if err != nil {
		return err
	}
	r.Critical = &stats.Critical{Lo: cv, Hi: cv, Tail: r.Tail}
	r.Basis = ByCriticalValue
	if math.Abs(r.Statistic) > math.Abs(cv) {
		r.Decision = Reject
	}
	return nil
}

func fmtKnown(v float64) string {
	if v == 0 {
		return "unknown"
	}
	return fmt.Sprintf("%g", v)
}
