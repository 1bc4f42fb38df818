// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-hzero/htest"
	"github.com/aclements/go-hzero/stats"
)

const suite = `
tests:
  - name: batch weight
    kind: mean
    h0: 40
    alpha: 0.05
    x: [42, 39, 41, 38, 40, 43, 39, 37, 44, 41]
  - name: fill variance
    kind: variance
    h0: 1.5
    tail: right
    mean: 0
    x: [1, 2, 3]
  - name: regions
    kind: meandiff
    equal_var: true
    alpha: 0.05
    x: [7.1, 6.9, 7.3, 7.2, 6.8, 7.0, 6.7, 7.1, 7.2, 6.9]
    y: [6.5, 6.3, 6.6, 6.7, 6.2, 6.4, 6.8, 6.6]
  - name: litter sizes
    kind: gof
    alpha: 0.05
    observed: [39, 61, 34, 13, 3]
    dist: {family: binomial, n: 4}
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(suite), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	require.Len(t, f.Tests, 4)

	assert.Equal(t, KindMean, f.Tests[0].Kind)
	assert.Equal(t, 40.0, f.Tests[0].H0)
	assert.Len(t, f.Tests[0].X, 10)

	require.NotNil(t, f.Tests[1].Mean)
	assert.Equal(t, 0.0, *f.Tests[1].Mean)
	assert.Equal(t, stats.TailRight, f.Tests[1].tail())

	assert.True(t, f.Tests[2].EqualVar)
	require.NotNil(t, f.Tests[3].Dist)
	assert.Equal(t, "binomial", f.Tests[3].Dist.Family)
	assert.Nil(t, f.Tests[3].Dist.P)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun(t *testing.T) {
	f, err := Parse([]byte(suite))
	require.NoError(t, err)

	o, err := f.Tests[0].Run()
	require.NoError(t, err)
	require.NotNil(t, o.HTest)
	assert.Equal(t, "No reject (via critical value)", o.Conclusion())

	o, err = f.Tests[2].Run()
	require.NoError(t, err)
	assert.Equal(t, htest.Reject, o.HTest.Decision)

	o, err = f.Tests[3].Run()
	require.NoError(t, err)
	require.NotNil(t, o.GOF)
	assert.Len(t, o.GOF.Buckets, 4)
	assert.Equal(t, 2, o.GOF.DF())
	assert.Contains(t, o.Summary(), "Pearson's chi-squared test")
}

func TestParseInvalid(t *testing.T) {
	for name, doc := range map[string]string{
		"kind":     "tests: [{kind: median, x: [1, 2]}]",
		"tail":     "tests: [{kind: mean, tail: up, x: [1, 2]}]",
		"no x":     "tests: [{kind: mean}]",
		"no y":     "tests: [{kind: varratio, x: [1, 2]}]",
		"no dist":  "tests: [{kind: gof, observed: [1, 2]}]",
		"no count": "tests: [{kind: gof, dist: {family: poisson}}]",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, stats.ErrInvalidArgument)
		})
	}

	_, err := Parse([]byte("tests: [unterminated"))
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	observed := []int{10, 20, 10}

	d, err := (&DistSpec{Family: "poisson"}).Build(observed, 0)
	require.NoError(t, err)
	pd := d.(stats.PoissonDist)
	assert.InDelta(t, 1.0, pd.Lambda, 1e-12)
	assert.Equal(t, 2, pd.MaxK)
	assert.Equal(t, 1, pd.EstimatedParams())

	p := 0.5
	d, err = (&DistSpec{Family: "geometric", P: &p, MaxK: 8}).Build(observed, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, d.EstimatedParams())
	_, hi := d.Support()
	assert.Equal(t, 8, hi)

	d, err = (&DistSpec{Family: "negbinomial", R: 2}).Build(observed, 0)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3, d.(stats.NegBinomialDist).P, 1e-12)

	_, err = (&DistSpec{Family: "zipf"}).Build(observed, 0)
	assert.ErrorIs(t, err, stats.ErrInvalidArgument)

	bad := 1.5
	_, err = (&DistSpec{Family: "binomial", N: 4, P: &bad}).Build(observed, 0)
	assert.ErrorIs(t, err, stats.ErrInvalidArgument)
}

func TestRunStart(t *testing.T) {
	run := func(doc string) *Outcome {
		f, err := Parse([]byte(doc))
		require.NoError(t, err)
		o, err := f.Tests[0].Run()
		require.NoError(t, err)
		return &o
	}
	const base = "tests: [{kind: gof, observed: [39, 61, 34, 13, 3], dist: {family: binomial, n: 4, p: 0.3}"

	zero := run(base + "}]")
	labeled := run(base + ", start: 1}]")
	shifted := run(base + ", start: 1, shift_pmf: true}]")

	assert.Equal(t, "1", labeled.GOF.Buckets[0].Label)
	assert.Equal(t, zero.GOF.Statistic, labeled.GOF.Statistic)
	assert.Equal(t, zero.GOF.Buckets[0].Prob, labeled.GOF.Buckets[0].Prob)
	assert.InDelta(t, 0.2401, labeled.GOF.Buckets[0].Prob, 1e-12)
	assert.InDelta(t, 0.4116, shifted.GOF.Buckets[0].Prob, 1e-12)
}
