// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestSampleMoments(t *testing.T) {
	s := Sample{Xs: []float64{42, 39, 41, 38, 40, 43, 39, 37, 44, 41}}
	if s.N() != 10 {
		t.Errorf("N = %d, want 10", s.N())
	}
	if g := s.Sum(); !aeq(404, g) {
		t.Errorf("Sum = %v, want 404", g)
	}
	if g := s.Mean(); !aeq(40.4, g) {
		t.Errorf("Mean = %v, want 40.4", g)
	}
	if g := s.Quasivariance(); !aeq(44.4/9, g) {
		t.Errorf("Quasivariance = %v, want %v", g, 44.4/9)
	}
	if g := s.StdDev(); !aeq(math.Sqrt(44.4/9), g) {
		t.Errorf("StdDev = %v, want %v", g, math.Sqrt(44.4/9))
	}
	if g := s.SumSqDev(40, 2); !aeq(46/4.0, g) {
		t.Errorf("SumSqDev = %v, want %v", g, 46/4.0)
	}

	var empty Sample
	if !math.IsNaN(empty.Mean()) || !math.IsNaN(Sample{Xs: []float64{1}}.Quasivariance()) {
		t.Errorf("want NaN moments for tiny samples")
	}
}
