// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// renderPoints is the number of points sampled across a rendered
// density.
const renderPoints = 1000

// Rejection describes the rejection region to shade when rendering
// a test distribution.
//
// If Alpha is non-zero, Statistic is the test statistic and the
// region is derived from the critical values at Alpha. If Alpha is
// zero, Statistic is itself used as a critical value, which is
// ambiguous for a bilateral tail.
type Rejection struct {
	Statistic    float64
	HasStatistic bool

	// Alpha is the significance level, or 0 if none.
	Alpha float64

	// Tail is the tail of the test, or "" for no region.
	Tail Tail
}

// A Region is a closed interval of the x axis that lies in the
// rejection region.
type Region struct {
	Lo, Hi float64
}

// Plot is everything needed to draw a density and its rejection
// region. Ys[i] is the density at Xs[i].
type Plot struct {
	Xs, Ys  []float64
	Regions []Region

	// Marker is the x position of a vertical marker line, valid if
	// HasMarker is set. Label describes it.
	Marker    float64
	HasMarker bool
	Label     string
}

// Contains reports whether x falls in one of p's rejection regions.
func (p *Plot) Contains(x float64) bool {
	for _, r := range p.Regions {
		if x >= r.Lo && x <= r.Hi {
			return true
		}
	}
	return false
}

func render(d TestDist, r Rejection) (*Plot, error) {
	if r.Alpha != 0 {
		if err := CheckAlpha(r.Alpha); err != nil {
			return nil, err
		}
	}
	if r.Tail != "" {
		if err := r.Tail.Check(); err != nil {
			return nil, err
		}
	}
	if r.HasStatistic && r.Alpha == 0 && r.Tail == TailBilateral {
		return nil, fmt.Errorf("%w: given a critical value without alpha, the tail cannot be bilateral", ErrInconsistentRequest)
	}

	if err := checkQuantiles(d); err != nil {
		return nil, err
	}

	lo, hi := d.Quantile(0.001), d.Quantile(0.999)
	p := &Plot{Xs: floats.Span(make([]float64, renderPoints), lo, hi)}
	p.Ys = make([]float64, len(p.Xs))
	for i, x := range p.Xs {
		p.Ys[i] = d.PDF(x)
	}
	if !r.HasStatistic || r.Tail == "" {
		return p, nil
	}

	p.Marker, p.HasMarker = r.Statistic, true
	if r.Alpha == 0 {
		p.Label = fmt.Sprintf("Critic value = %g", r.Statistic)
		if r.Tail == TailLeft {
			p.Regions = []Region{{math.Inf(-1), r.Statistic}}
		} else {
			p.Regions = []Region{{r.Statistic, inf}}
		}
		return p, nil
	}

	p.Label = fmt.Sprintf("Statistic = %.3f", r.Statistic)
	c, err := quantileCritical(d, r.Alpha, r.Tail)
	if err != nil {
		return nil, err
	}
	switch r.Tail {
	case TailLeft:
		p.Regions = []Region{{math.Inf(-1), c.Lo}}
	case TailRight:
		p.Regions = []Region{{c.Hi, inf}}
	default:
		p.Regions = []Region{{math.Inf(-1), c.Lo}, {c.Hi, inf}}
	}
	return p, nil
}
