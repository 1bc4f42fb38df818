// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCurve(t *testing.T) {
	p, err := StdNormal.Render(Rejection{})
	require.NoError(t, err)
	require.Len(t, p.Xs, renderPoints)
	require.Len(t, p.Ys, renderPoints)
	assert.InDelta(t, StdNormal.Quantile(0.001), p.Xs[0], 1e-12)
	assert.InDelta(t, StdNormal.Quantile(0.999), p.Xs[len(p.Xs)-1], 1e-12)
	assert.Empty(t, p.Regions)
	assert.False(t, p.HasMarker)
	for i, x := range p.Xs {
		assert.Equal(t, StdNormal.PDF(x), p.Ys[i])
	}
}

func TestRenderRegions(t *testing.T) {
	d := TDist{15}
	p, err := d.Render(Rejection{Statistic: -1.21, HasStatistic: true, Alpha: 0.05, Tail: TailBilateral})
	require.NoError(t, err)
	require.Len(t, p.Regions, 2)
	q := d.Quantile(0.975)
	assert.InDelta(t, -q, p.Regions[0].Hi, 1e-9)
	assert.InDelta(t, q, p.Regions[1].Lo, 1e-9)
	assert.False(t, p.Contains(-1.21))
	assert.True(t, p.HasMarker)
	assert.Equal(t, -1.21, p.Marker)

	p, err = ChiSquareDist{4}.Render(Rejection{Statistic: 3.25, HasStatistic: true, Alpha: 0.05, Tail: TailRight})
	require.NoError(t, err)
	require.Len(t, p.Regions, 1)
	assert.InDelta(t, ChiSquareDist{4}.Quantile(0.95), p.Regions[0].Lo, 1e-9)

	// Without alpha, the statistic is the critical value.
	p, err = StdNormal.Render(Rejection{Statistic: 1.45, HasStatistic: true, Tail: TailLeft})
	require.NoError(t, err)
	assert.True(t, p.Contains(1.0))
	assert.False(t, p.Contains(2.0))
}

func TestRenderErrors(t *testing.T) {
	_, err := ChiSquareDist{4}.Render(Rejection{Statistic: 3, HasStatistic: true, Tail: TailBilateral})
	assert.ErrorIs(t, err, ErrInconsistentRequest)

	_, err = StdNormal.Render(Rejection{Statistic: 3, HasStatistic: true, Alpha: 1.5, Tail: TailRight})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = FDist{10, 12}.Render(Rejection{Statistic: -1, HasStatistic: true, Alpha: 0.05, Tail: TailRight})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = TDist{5}.Render(Rejection{Statistic: 1, HasStatistic: true, Alpha: 0.05, Tail: "up"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
