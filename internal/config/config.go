// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads hypothesis tests described in YAML.
//
// A file holds a list of tests:
//
//	tests:
//	  - name: batch weight
//	    kind: mean
//	    h0: 40
//	    alpha: 0.05
//	    x: [42, 39, 41, 38, 40, 43, 39, 37, 44, 41]
//	  - name: litter sizes
//	    kind: gof
//	    alpha: 0.05
//	    observed: [39, 61, 34, 13, 3]
//	    dist: {family: binomial, n: 4}
package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/aclements/go-hzero/gof"
	"github.com/aclements/go-hzero/htest"
	"github.com/aclements/go-hzero/stats"
)

// Test kinds.
const (
	KindMean     = "mean"
	KindVariance = "variance"
	KindMeanDiff = "meandiff"
	KindVarRatio = "varratio"
	KindGOF      = "gof"
)

var kinds = []string{KindMean, KindVariance, KindMeanDiff, KindVarRatio, KindGOF}

// File is a parsed test description file.
type File struct {
	Tests []Test `yaml:"tests"`
}

// Test describes a single hypothesis test and its data.
type Test struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	H0    float64 `yaml:"h0"`
	Alpha float64 `yaml:"alpha"`
	Tail  string  `yaml:"tail"`

	// Std and StdY are known standard deviations of X and Y.
	Std  float64 `yaml:"std"`
	StdY float64 `yaml:"std_y"`

	// Mean is the known mean of X for a variance test.
	Mean     *float64 `yaml:"mean"`
	EqualVar bool     `yaml:"equal_var"`

	X []float64 `yaml:"x"`
	Y []float64 `yaml:"y"`

	// Observed, Start, ShiftPMF, MinExpected and Dist describe a
	// goodness-of-fit test.
	Observed    []int     `yaml:"observed"`
	Start       int       `yaml:"start"`
	ShiftPMF    bool      `yaml:"shift_pmf"`
	MinExpected float64   `yaml:"min_expected"`
	Dist        *DistSpec `yaml:"dist"`
}

// DistSpec names a discrete distribution. A parameter left unset is
// estimated from the observed counts.
type DistSpec struct {
	Family string   `yaml:"family"`
	N      int      `yaml:"n"`
	R      int      `yaml:"r"`
	P      *float64 `yaml:"p"`
	Lambda *float64 `yaml:"lambda"`
	MaxK   int      `yaml:"max_k"`
}

// Load reads and validates the test description file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read test file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML test description.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	for i := range f.Tests {
		if err := f.Tests[i].Validate(); err != nil {
			return nil, fmt.Errorf("test %d (%s): %w", i, f.Tests[i].Name, err)
		}
	}
	return &f, nil
}

// Validate checks that t names a known kind and carries the data
// that kind needs.
func (t *Test) Validate() error {
	if !slices.Contains(kinds, t.Kind) {
		return fmt.Errorf("%w: unknown test kind %q", stats.ErrInvalidArgument, t.Kind)
	}
	if _, err := stats.ParseTail(t.Tail); err != nil {
		return err
	}
	switch t.Kind {
	case KindGOF:
		if len(t.Observed) == 0 {
			return fmt.Errorf("%w: gof test needs observed counts", stats.ErrInvalidArgument)
		}
		if t.Dist == nil {
			return fmt.Errorf("%w: gof test needs a distribution", stats.ErrInvalidArgument)
		}
	case KindMeanDiff, KindVarRatio:
		if len(t.Y) == 0 {
			return fmt.Errorf("%w: %s test needs y data", stats.ErrInvalidArgument, t.Kind)
		}
		fallthrough
	default:
		if len(t.X) == 0 {
			return fmt.Errorf("%w: %s test needs x data", stats.ErrInvalidArgument, t.Kind)
		}
	}
	return nil
}

func (t *Test) tail() stats.Tail {
	tail, _ := stats.ParseTail(t.Tail)
	return tail
}

// Outcome is the result of running a Test. Exactly one of HTest and
// GOF is set.
type Outcome struct {
	HTest *htest.Result
	GOF   *gof.Result
}

// Summary returns the summary of whichever result is set.
func (o Outcome) Summary() string {
	if o.GOF != nil {
		return o.GOF.Table() + "\n" + o.GOF.Summary()
	}
	return o.HTest.Summary()
}

// Conclusion returns the conclusion of whichever result is set.
func (o Outcome) Conclusion() string {
	if o.GOF != nil {
		return o.GOF.Conclusion()
	}
	return o.HTest.Conclusion()
}

// Run performs the test.
func (t *Test) Run() (Outcome, error) {
	var (
		o   Outcome
		err error
	)
	switch t.Kind {
	case KindMean:
		o.HTest, err = htest.Mean(t.X, htest.MeanParams{
			H0: t.H0, Std: t.Std, Alpha: t.Alpha, Tail: t.tail(),
		})
	case KindVariance:
		o.HTest, err = htest.Variance(t.X, htest.VarianceParams{
			H0: t.H0, Mean: t.Mean, Alpha: t.Alpha, Tail: t.tail(),
		})
	case KindMeanDiff:
		o.HTest, err = htest.MeanDiff(t.X, t.Y, htest.MeanDiffParams{
			H0: t.H0, StdX: t.Std, StdY: t.StdY, EqualVar: t.EqualVar,
			Alpha: t.Alpha, Tail: t.tail(),
		})
	case KindVarRatio:
		o.HTest, err = htest.VariancesRatio(t.X, t.Y, htest.VarRatioParams{
			H0: t.H0, Alpha: t.Alpha, Tail: t.tail(),
		})
	case KindGOF:
		var d stats.Discrete
		d, err = t.Dist.Build(t.Observed, t.pmfStart())
		if err != nil {
			return o, err
		}
		o.GOF, err = gof.Pearson(t.Observed, d, gof.Params{
			Start: t.Start, ShiftPMF: t.ShiftPMF,
			Alpha: t.Alpha, MinExpected: t.MinExpected,
		})
	default:
		err = fmt.Errorf("%w: unknown test kind %q", stats.ErrInvalidArgument, t.Kind)
	}
	return o, err
}

// pmfStart is the distribution value of the first observed category.
func (t *Test) pmfStart() int {
	if t.ShiftPMF {
		return t.Start
	}
	return 0
}

// Build constructs the distribution. Parameters that are not set are
// fit from the frequency table observed, whose first category is
// start. MaxK defaults to the last observed category.
func (s *DistSpec) Build(observed []int, start int) (stats.Discrete, error) {
	maxK := s.MaxK
	if maxK == 0 {
		maxK = start + len(observed) - 1
	}
	xs, err := stats.ExpandCounts(observed, start)
	if err != nil {
		return nil, err
	}

	switch s.Family {
	case "binomial":
		if s.P != nil {
			return discrete(stats.NewBinomialDist(s.N, *s.P))
		}
		return discrete(stats.FitBinomial(s.N, xs))
	case "poisson":
		if s.Lambda != nil {
			return discrete(stats.NewPoissonDist(*s.Lambda, maxK))
		}
		return discrete(stats.FitPoisson(xs, maxK))
	case "geometric":
		if s.P != nil {
			return discrete(stats.NewGeometricDist(*s.P, maxK))
		}
		return discrete(stats.FitGeometric(xs, maxK))
	case "negbinomial":
		if s.P != nil {
			return discrete(stats.NewNegBinomialDist(s.R, *s.P, maxK))
		}
		return discrete(stats.FitNegBinomial(s.R, xs, maxK))
	}
	return nil, fmt.Errorf("%w: unknown distribution family %q", stats.ErrInvalidArgument, s.Family)
}

func discrete(d stats.Discrete, err error) (stats.Discrete, error) {
	if err != nil {
		return nil, err
	}
	return d, nil
}
