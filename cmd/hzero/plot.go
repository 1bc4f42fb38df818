// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/aclements/go-hzero/stats"
)

const (
	plotRows  = 25
	plotWidth = 60
)

// fprintPlot draws p sideways as a bar chart, one row per sampled x.
// Bars in the rejection region are drawn with '*' and the row
// nearest the marker is flagged with '<'.
func fprintPlot(w io.Writer, p *stats.Plot) {
	if len(p.Xs) == 0 {
		return
	}
	maxY := 0.0
	for _, y := range p.Ys {
		if y > maxY && !math.IsInf(y, 0) {
			maxY = y
		}
	}
	markRow := -1
	if p.HasMarker {
		best := math.Inf(1)
		for row := 0; row < plotRows; row++ {
			x := p.Xs[plotIndex(row, len(p.Xs))]
			if d := math.Abs(x - p.Marker); d < best {
				best, markRow = d, row
			}
		}
	}

	for row := 0; row < plotRows; row++ {
		i := plotIndex(row, len(p.Xs))
		x, y := p.Xs[i], p.Ys[i]
		n := 0
		if maxY > 0 {
			n = int(math.Round(math.Min(y/maxY, 1) * plotWidth))
		}
		ch := "#"
		if p.Contains(x) {
			ch = "*"
		}
		mark := ""
		if row == markRow {
			mark = " <"
		}
		fmt.Fprintf(w, "%10.4g |%s%s\n", x, strings.Repeat(ch, n), mark)
	}
	if p.Label != "" {
		fmt.Fprintf(w, "%10s  %s\n", "", p.Label)
	}
}

func plotIndex(row, n int) int {
	return row * (n - 1) / (plotRows - 1)
}
