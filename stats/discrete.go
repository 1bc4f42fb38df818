// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"iter"
)

// FitInfo records how a discrete distribution relates to observed
// data. It is embedded in each discrete distribution.
type FitInfo struct {
	// Trials is the number of observations. Goodness-of-fit tests
	// scale probabilities by Trials to get expected frequencies.
	Trials int

	// Estimated is the number of distribution parameters that
	// were estimated from the observations. Each one costs a
	// degree of freedom in a goodness-of-fit test.
	Estimated int
}

func (f FitInfo) TrialCount() int      { return f.Trials }
func (f FitInfo) EstimatedParams() int { return f.Estimated }

// Points returns the sequence of (k, PMF(k)) for k from the floor of
// d's support to its upper bound, inclusive. Each call returns an
// independent sequence; ranging over it more than once or from
// several goroutines is safe.
func Points(d Discrete) iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		lo, hi := d.Support()
		for k := lo; k <= hi; k++ {
			p, err := d.PMF(k)
			if err != nil || !yield(k, p) {
				return
			}
		}
	}
}

// cdfSum sums pmf over [lo, min(k, max)].
func cdfSum(pmf func(int) float64, lo, max, k int) float64 {
	if k > max {
		k = max
	}
	sum := 0.0
	for i := lo; i <= k; i++ {
		sum += pmf(i)
	}
	if sum > 1 {
		sum = 1
	}
	return sum
}

func checkK(k int) error {
	if k < 0 {
		return invalidf("k must be >= 0, got %d", k)
	}
	return nil
}

// checkCounts returns an error unless every value of xs is in
// [lo, hi]. A negative hi means no upper limit.
func checkCounts(name string, xs []int, lo, hi int) error {
	if len(xs) == 0 {
		return ErrSampleSize
	}
	for _, x := range xs {
		if x < lo || (hi >= 0 && x > hi) {
			if hi >= 0 {
				return invalidf("%s sample values must be in [%d, %d], got %d", name, lo, hi, x)
			}
			return invalidf("%s sample values must be >= %d, got %d", name, lo, x)
		}
	}
	return nil
}

func meanInts(xs []int) float64 {
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return float64(sum) / float64(len(xs))
}

// ExpandCounts converts a frequency table into a raw sample.
// counts[i] is the number of observations of the value start+i.
func ExpandCounts(counts []int, start int) ([]int, error) {
	n := 0
	for i, c := range counts {
		if c < 0 {
			return nil, invalidf("count for %d must be >= 0, got %d", start+i, c)
		}
		n += c
	}
	xs := make([]int, 0, n)
	for i, c := range counts {
		for ; c > 0; c-- {
			xs = append(xs, start+i)
		}
	}
	return xs, nil
}

// sprintFit formats a distribution description, noting an estimated
// parameter.
func sprintFit(format string, f FitInfo, args ...any) string {
	s := fmt.Sprintf(format, args...)
	if f.Estimated > 0 {
		s += fmt.Sprintf(" (estimated from %d observations)", f.Trials)
	}
	return s
}
