// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gof

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-hzero/htest"
	"github.com/aclements/go-hzero/stats"
)

var litters = []int{39, 61, 34, 13, 3}

func fitLitters(t *testing.T) stats.BinomialDist {
	t.Helper()
	xs, err := stats.ExpandCounts(litters, 0)
	require.NoError(t, err)
	d, err := stats.FitBinomial(4, xs)
	require.NoError(t, err)
	require.Equal(t, 150, d.TrialCount())
	require.InDelta(t, 0.3, d.P, 1e-12)
	return d
}

func TestPearsonBinomial(t *testing.T) {
	d := fitLitters(t)
	r, err := Pearson(litters, d, Params{Alpha: 0.05})
	require.NoError(t, err)

	require.Len(t, r.Buckets, 4)
	last := r.Buckets[3]
	assert.Equal(t, "3–4", last.Label)
	assert.Equal(t, 16, last.Observed)
	assert.InDelta(t, 0.0837, last.Prob, 1e-12)
	assert.InDelta(t, 12.555, last.Expected, 1e-9)
	for i, want := range []float64{36.015, 61.74, 39.69} {
		assert.InDelta(t, want, r.Buckets[i].Expected, 1e-9)
	}

	assert.Equal(t, 2, r.DF())
	assert.Equal(t, 150, r.Trials)
	assert.InDelta(t, 2.0172797375844507, r.Statistic, 1e-9)
	assert.InDelta(t, 0.6352852977803977, r.P, 1e-7)
	require.NotNil(t, r.Critical)
	assert.InDelta(t, 0.10258658877510107, r.Critical.Value(), 1e-7)
	assert.Equal(t, htest.Reject, r.Decision)
	assert.Equal(t, "Reject (via critical value)", r.Conclusion())

	s := r.Summary()
	assert.Contains(t, s, "Null hypothesis: data follow Binomial distribution with n=4, p=0.3 (estimated from 150 observations)\n")
	assert.Contains(t, s, "Distribution: Chi-squared distribution with 2 degrees of freedom\n")
	assert.Contains(t, r.Table(), "3–4")
}

func TestPearsonPValue(t *testing.T) {
	r, err := Pearson(litters, fitLitters(t), Params{})
	require.NoError(t, err)
	assert.Nil(t, r.Critical)
	assert.Equal(t, htest.ByPValue, r.Basis)
	assert.Equal(t, htest.NoReject, r.Decision)
}

func TestTableMergesBothEnds(t *testing.T) {
	// Trials come from the observed total, giving expected counts
	// 2.5, 7.5, 7.5, 2.5.
	d := stats.BinomialDist{N: 3, P: 0.5}
	bs, trials, err := Table([]int{1, 8, 9, 2}, d, Params{})
	require.NoError(t, err)
	assert.Equal(t, 20, trials)
	require.Len(t, bs, 2)
	assert.Equal(t, "0–1", bs[0].Label)
	assert.Equal(t, 9, bs[0].Observed)
	assert.InDelta(t, 10, bs[0].Expected, 1e-12)
	assert.Equal(t, "2–3", bs[1].Label)
	assert.Equal(t, 11, bs[1].Observed)

	r, err := Pearson([]int{1, 8, 9, 2}, d, Params{})
	require.NoError(t, err)
	assert.Equal(t, 1, r.DF())
	assert.InDelta(t, 0.2, r.Statistic, 1e-12)
}

func TestTableMergeChain(t *testing.T) {
	// Expected counts 20.48, 15.36, 3.84, 0.32: category 2 merges
	// forward into 3, and the result, now last, merges back into 1.
	d := stats.BinomialDist{N: 3, P: 0.2}
	bs, _, err := Table([]int{20, 15, 4, 1}, d, Params{})
	require.NoError(t, err)
	require.Len(t, bs, 2)
	assert.Equal(t, "0", bs[0].Label)
	assert.Equal(t, "1–2–3", bs[1].Label)
	assert.Equal(t, 20, bs[1].Observed)
	assert.InDelta(t, 19.52, bs[1].Expected, 1e-9)
}

func TestTableSingleBucket(t *testing.T) {
	d := stats.BinomialDist{N: 1, P: 0.5}
	bs, _, err := Table([]int{1, 1}, d, Params{})
	require.NoError(t, err)
	require.Len(t, bs, 1)
	assert.Equal(t, "0–1", bs[0].Label)
	assert.InDelta(t, 2, bs[0].Expected, 1e-12)

	_, err = Pearson([]int{1, 1}, d, Params{})
	assert.ErrorIs(t, err, stats.ErrSampleSize)
}

func TestTableStart(t *testing.T) {
	d, err := stats.NewGeometricDist(0.5, 10)
	require.NoError(t, err)
	bs, _, err := Table([]int{50, 25, 25}, d, Params{Start: 1, ShiftPMF: true})
	require.NoError(t, err)
	require.Len(t, bs, 3)
	assert.Equal(t, "1", bs[0].Label)
	assert.InDelta(t, 0.5, bs[0].Prob, 1e-12)
	assert.InDelta(t, 0.125, bs[2].Prob, 1e-12)
}

func TestTableStartLabelsOnly(t *testing.T) {
	d := stats.BinomialDist{N: 4, P: 0.3}
	bs, trials, err := Table(litters, d, Params{Start: 1})
	require.NoError(t, err)
	assert.Equal(t, 150, trials)
	require.Len(t, bs, 4)
	assert.Equal(t, "1", bs[0].Label)
	assert.InDelta(t, 0.2401, bs[0].Prob, 1e-12)
	assert.InDelta(t, 0.4116, bs[1].Prob, 1e-12)
	assert.Equal(t, "4–5", bs[3].Label)
	assert.InDelta(t, 0.0837, bs[3].Prob, 1e-12)

	// The same table as with Start 0, relabeled.
	want, _, err := Table(litters, d, Params{})
	require.NoError(t, err)
	for i := range bs {
		assert.Equal(t, want[i].Observed, bs[i].Observed)
		assert.InDelta(t, want[i].Expected, bs[i].Expected, 1e-12)
	}
}

func TestPearsonErrors(t *testing.T) {
	d := stats.BinomialDist{N: 4, P: 0.3}
	_, err := Pearson(nil, d, Params{})
	assert.ErrorIs(t, err, stats.ErrSampleSize)

	_, err = Pearson([]int{1, -1}, d, Params{})
	assert.ErrorIs(t, err, stats.ErrInvalidArgument)

	_, err = Pearson(litters, d, Params{Alpha: 2})
	assert.ErrorIs(t, err, stats.ErrInvalidArgument)

	_, err = Pearson(litters, d, Params{Start: -1, ShiftPMF: true})
	assert.ErrorIs(t, err, stats.ErrInvalidArgument)

	_, err = Pearson([]int{0, 0, 0}, d, Params{})
	assert.ErrorIs(t, err, stats.ErrSampleSize)
}

func TestPearsonRender(t *testing.T) {
	r, err := Pearson(litters, fitLitters(t), Params{Alpha: 0.05})
	require.NoError(t, err)
	p, err := r.Render()
	require.NoError(t, err)
	require.Len(t, p.Regions, 1)
	assert.False(t, p.Contains(r.Statistic))
	assert.True(t, p.HasMarker)
}
