// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gof implements Pearson's chi-squared goodness-of-fit test
// for discrete distributions.
package gof // import "github.com/aclements/go-hzero/gof"

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/aclements/go-hzero/htest"
	"github.com/aclements/go-hzero/stats"
)

// DefaultMinExpected is the smallest expected count a bucket may
// have before it is merged with a neighbor.
const DefaultMinExpected = 5

// Params are the parameters of a goodness-of-fit test.
type Params struct {
	// Start labels the first observed category: category i is
	// labeled Start+i.
	Start int

	// ShiftPMF takes the probability of category i at Start+i.
	// Otherwise it is taken at i and Start only affects labels.
	ShiftPMF bool

	// Alpha is the significance level, or 0 to decide from the
	// p-value alone.
	Alpha float64

	// MinExpected is the merge threshold. If 0,
	// DefaultMinExpected is used.
	MinExpected float64
}

// A Bucket is one row of the frequency table: one or more adjacent
// categories merged together.
type Bucket struct {
	// Label names the categories in the bucket, such as "3" or
	// "3–4".
	Label string

	Observed int
	Prob     float64
	Expected float64

	// Contribution is (Observed - Expected)² / Expected.
	Contribution float64
}

// Result is the outcome of a goodness-of-fit test.
type Result struct {
	// Dist is the hypothesized distribution.
	Dist stats.Discrete

	// Buckets is the frequency table after merging.
	Buckets []Bucket

	// Trials is the number of observations used to scale
	// probabilities to expected counts.
	Trials int

	// ChiSquare is the distribution of the statistic, with
	// len(Buckets) - estimated parameters - 1 degrees of freedom.
	ChiSquare stats.ChiSquareDist

	// Statistic is the sum of the bucket contributions.
	Statistic float64

	// Critical is the critical value, or nil without a
	// significance level.
	Critical *stats.Critical

	P     float64
	Alpha float64

	Decision htest.Decision
	Basis    htest.Basis
}

// Table computes the merged frequency table of observed against d.
//
// Expected counts are the probability of each category times the
// distribution's trial count, or times the total observed count if d
// does not carry one. Scanning from the left, a bucket whose expected
// count is below the threshold is merged into the next bucket, or
// into the previous one if it is the last. Merging stops when every
// bucket meets the threshold or only one bucket remains.
func Table(observed []int, d stats.Discrete, p Params) ([]Bucket, int, error) {
	if len(observed) == 0 {
		return nil, 0, stats.ErrSampleSize
	}
	threshold := p.MinExpected
	if threshold == 0 {
		threshold = DefaultMinExpected
	}
	if !(threshold > 0) {
		return nil, 0, fmt.Errorf("%w: minimum expected count must be positive, got %v", stats.ErrInvalidArgument, threshold)
	}

	sum := 0
	bs := make([]Bucket, len(observed))
	for i, o := range observed {
		if o < 0 {
			return nil, 0, fmt.Errorf("%w: observed count %d is negative", stats.ErrInvalidArgument, o)
		}
		k := i
		if p.ShiftPMF {
			k = p.Start + i
		}
		prob, err := d.PMF(k)
		if err != nil {
			return nil, 0, err
		}
		sum += o
		bs[i] = Bucket{Label: strconv.Itoa(p.Start + i), Observed: o, Prob: prob}
	}
	trials := d.TrialCount()
	if trials == 0 {
		trials = sum
	}
	if trials == 0 {
		return nil, 0, stats.ErrSampleSize
	}

	n := float64(trials)
	for i := 0; i < len(bs) && len(bs) > 1; {
		if n*bs[i].Prob >= threshold {
			i++
			continue
		}
		if i == len(bs)-1 {
			// Every earlier bucket meets the threshold, so
			// merging backwards ends the pass.
			bs[i-1] = merge(bs[i-1], bs[i])
			bs = bs[:i]
			break
		}
		bs[i+1] = merge(bs[i], bs[i+1])
		bs = append(bs[:i], bs[i+1:]...)
	}

	for i := range bs {
		b := &bs[i]
		b.Expected = n * b.Prob
		diff := float64(b.Observed) - b.Expected
		b.Contribution = diff * diff / b.Expected
	}
	return bs, trials, nil
}

func merge(a, b Bucket) Bucket {
	return Bucket{
		Label:    a.Label + "–" + b.Label,
		Observed: a.Observed + b.Observed,
		Prob:     a.Prob + b.Prob,
	}
}

// Pearson tests whether the observed category counts follow d.
//
// The statistic is compared against a chi-squared distribution
// using its left-tail critical value and p-value.
func Pearson(observed []int, d stats.Discrete, p Params) (*Result, error) {
	if p.Alpha != 0 {
		if err := stats.CheckAlpha(p.Alpha); err != nil {
			return nil, err
		}
	}
	bs, trials, err := Table(observed, d, p)
	if err != nil {
		return nil, err
	}
	df := len(bs) - d.EstimatedParams() - 1
	if df < 1 {
		return nil, fmt.Errorf("%w: %d buckets leave %d degrees of freedom", stats.ErrSampleSize, len(bs), df)
	}

	r := &Result{
		Dist:      d,
		Buckets:   bs,
		Trials:    trials,
		ChiSquare: stats.ChiSquareDist{K: float64(df)},
		Alpha:     p.Alpha,
	}
	for _, b := range bs {
		r.Statistic += b.Contribution
	}
	if r.P, err = r.ChiSquare.PValue(r.Statistic, stats.TailLeft); err != nil {
		return nil, err
	}
	if p.Alpha == 0 {
		r.Basis, r.Decision = htest.ByPValue, htest.DecideP(r.P)
		return r, nil
	}
	c, err := r.ChiSquare.CriticalValue(p.Alpha, stats.TailLeft)
	if err != nil {
		return nil, err
	}
	r.Critical, r.Basis = &c, htest.ByCriticalValue
	if r.Statistic > c.Value() {
		r.Decision = htest.Reject
	}
	return r, nil
}

// DF returns the degrees of freedom of the test.
func (r *Result) DF() int {
	return int(r.ChiSquare.K)
}

// Conclusion returns the decision and how it was reached.
func (r *Result) Conclusion() string {
	return fmt.Sprintf("%s (%s)", r.Decision, r.Basis)
}

// Summary returns a multi-line description of the test.
func (r *Result) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Test: Pearson's chi-squared test\n")
	fmt.Fprintf(&b, "Null hypothesis: data follow %v\n\n", r.Dist)
	fmt.Fprintf(&b, "Distribution: %s\n", r.ChiSquare)
	fmt.Fprintf(&b, "D statistic: %.6g\n", r.Statistic)
	fmt.Fprintf(&b, "P-value: %.6g\n", r.P)
	if r.Critical != nil {
		fmt.Fprintf(&b, "Critical value: %s (alpha = %g)\n", htest.FormatCritical(*r.Critical), r.Alpha)
	}
	fmt.Fprintf(&b, "\nHypothesis conclusion: %s\n", r.Conclusion())
	return b.String()
}

// Table returns the frequency table formatted in aligned columns.
func (r *Result) Table() string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "\tobserved\tprob\texpected\tcontribution\t\n")
	for _, bk := range r.Buckets {
		fmt.Fprintf(w, "%s\t%d\t%.4f\t%.3f\t%.4f\t\n", bk.Label, bk.Observed, bk.Prob, bk.Expected, bk.Contribution)
	}
	w.Flush()
	return b.String()
}

// Render returns the chi-squared density with a marker at the
// statistic. With a significance level the upper rejection region is
// included.
func (r *Result) Render() (*stats.Plot, error) {
	if r.Alpha != 0 {
		return r.ChiSquare.Render(stats.Rejection{
			Statistic:    r.Statistic,
			HasStatistic: true,
			Alpha:        r.Alpha,
			Tail:         stats.TailRight,
		})
	}
	p, err := r.ChiSquare.Render(stats.Rejection{})
	if err != nil {
		return nil, err
	}
	p.Marker, p.HasMarker = r.Statistic, true
	p.Label = fmt.Sprintf("Statistic = %.3f", r.Statistic)
	return p, nil
}
