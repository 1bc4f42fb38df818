// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// testFunc checks f against a table of expected values.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	for x, want := range vals {
		if got := f(x); !aeq(want, got) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
		}
	}
}

// testDiscreteCDF checks that d.CDF agrees with the running sum of
// d.PMF across and beyond the support.
func testDiscreteCDF(t *testing.T, name string, d Discrete) {
	t.Helper()
	lo, hi := d.Support()
	if got := d.CDF(lo - 1); got != 0 {
		t.Errorf("%s(%d) = %v, want 0", name, lo-1, got)
	}
	sum := 0.0
	for k := lo; k <= hi+2; k++ {
		p, err := d.PMF(k)
		if err != nil {
			t.Fatalf("PMF(%d): %v", k, err)
		}
		sum += p
		if got := d.CDF(k); !aeq(sum, got) {
			t.Errorf("%s(%d) = %v, want %v", name, k, got, sum)
		}
	}
}
