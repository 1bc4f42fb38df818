// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aclements/go-hzero/gof"
	"github.com/aclements/go-hzero/htest"
	"github.com/aclements/go-hzero/internal/config"
	"github.com/aclements/go-hzero/stats"
)

// commonFlags are the flags shared by every hypothesis test.
type commonFlags struct {
	h0    float64
	alpha float64
	tail  string
}

func (f *commonFlags) register(cmd *cobra.Command, h0 float64) {
	cmd.Flags().Float64Var(&f.h0, "h0", h0, "parameter value under the null hypothesis")
	cmd.Flags().Float64Var(&f.alpha, "alpha", 0, "significance level; 0 decides by p-value")
	cmd.Flags().StringVar(&f.tail, "tail", "bilateral", "alternative hypothesis: left, right or bilateral")
}

func (f *commonFlags) parseTail() (stats.Tail, error) {
	return stats.ParseTail(f.tail)
}

func newMeanCmd() *cobra.Command {
	var (
		flags commonFlags
		std   float64
	)
	cmd := &cobra.Command{
		Use:   "mean [file]",
		Short: "Test a population mean",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := readSample(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			tail, err := flags.parseTail()
			if err != nil {
				return err
			}
			log.Debug("mean test", zap.Int("n", len(xs)), zap.Float64("h0", flags.h0), zap.Float64("std", std))
			r, err := htest.Mean(xs, htest.MeanParams{H0: flags.h0, Std: std, Alpha: flags.alpha, Tail: tail})
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), r)
		},
	}
	flags.register(cmd, 0)
	cmd.Flags().Float64Var(&std, "std", 0, "known population standard deviation; 0 if unknown")
	return cmd
}

func newVarianceCmd() *cobra.Command {
	var (
		flags commonFlags
		mean  float64
	)
	cmd := &cobra.Command{
		Use:   "variance [file]",
		Short: "Test a population variance",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := readSample(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			tail, err := flags.parseTail()
			if err != nil {
				return err
			}
			p := htest.VarianceParams{H0: flags.h0, Alpha: flags.alpha, Tail: tail}
			if cmd.Flags().Changed("mean") {
				p.Mean = &mean
			}
			log.Debug("variance test", zap.Int("n", len(xs)), zap.Float64("h0", flags.h0), zap.Bool("known mean", p.Mean != nil))
			r, err := htest.Variance(xs, p)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), r)
		},
	}
	flags.register(cmd, 1)
	cmd.Flags().Float64Var(&mean, "mean", 0, "known population mean")
	return cmd
}

func newMeanDiffCmd() *cobra.Command {
	var (
		flags      commonFlags
		stdX, stdY float64
		equalVar   bool
	)
	cmd := &cobra.Command{
		Use:   "meandiff xfile yfile",
		Short: "Test the difference of two population means",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, ys, err := readPair(cmd, args)
			if err != nil {
				return err
			}
			tail, err := flags.parseTail()
			if err != nil {
				return err
			}
			log.Debug("mean difference test", zap.Int("nx", len(xs)), zap.Int("ny", len(ys)), zap.Bool("equal var", equalVar))
			r, err := htest.MeanDiff(xs, ys, htest.MeanDiffParams{
				H0: flags.h0, StdX: stdX, StdY: stdY, EqualVar: equalVar,
				Alpha: flags.alpha, Tail: tail,
			})
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), r)
		},
	}
	flags.register(cmd, 0)
	cmd.Flags().Float64Var(&stdX, "std-x", 0, "known standard deviation of x")
	cmd.Flags().Float64Var(&stdY, "std-y", 0, "known standard deviation of y")
	cmd.Flags().BoolVar(&equalVar, "equal-var", false, "assume equal unknown variances")
	return cmd
}

func newVarRatioCmd() *cobra.Command {
	var flags commonFlags
	cmd := &cobra.Command{
		Use:   "varratio xfile yfile",
		Short: "Test the ratio of two population variances",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, ys, err := readPair(cmd, args)
			if err != nil {
				return err
			}
			tail, err := flags.parseTail()
			if err != nil {
				return err
			}
			log.Debug("variance ratio test", zap.Int("nx", len(xs)), zap.Int("ny", len(ys)))
			r, err := htest.VariancesRatio(xs, ys, htest.VarRatioParams{H0: flags.h0, Alpha: flags.alpha, Tail: tail})
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), r)
		},
	}
	flags.register(cmd, 1)
	return cmd
}

func newGOFCmd() *cobra.Command {
	var (
		ds          config.DistSpec
		p, lambda   float64
		start       int
		shift       bool
		alpha, minE float64
	)
	cmd := &cobra.Command{
		Use:   "gof [counts...]",
		Short: "Pearson's chi-squared goodness-of-fit test",
		Long: `Gof tests whether observed category counts follow a discrete
distribution. Counts are given as arguments or read from stdin. The
first count is labeled --start; with --shift-pmf it is also compared
against the probability of that value. Distribution parameters that
are not given are estimated from the counts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			observed, err := parseCounts(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("p") {
				ds.P = &p
			}
			if cmd.Flags().Changed("lambda") {
				ds.Lambda = &lambda
			}
			k0 := 0
			if shift {
				k0 = start
			}
			d, err := ds.Build(observed, k0)
			if err != nil {
				return err
			}
			log.Debug("goodness of fit", zap.Ints("observed", observed), zap.String("dist", fmt.Sprint(d)))
			r, err := gof.Pearson(observed, d, gof.Params{
				Start: start, ShiftPMF: shift, Alpha: alpha, MinExpected: minE,
			})
			if err != nil {
				return err
			}
			return printGOF(cmd.OutOrStdout(), r)
		},
	}
	cmd.Flags().StringVar(&ds.Family, "dist", "binomial", "distribution: binomial, poisson, geometric or negbinomial")
	cmd.Flags().IntVar(&ds.N, "n", 0, "binomial number of trials")
	cmd.Flags().IntVar(&ds.R, "r", 1, "negative binomial number of successes")
	cmd.Flags().Float64Var(&p, "p", 0, "success probability; estimated if not given")
	cmd.Flags().Float64Var(&lambda, "lambda", 0, "poisson rate; estimated if not given")
	cmd.Flags().IntVar(&ds.MaxK, "max-k", 0, "largest value enumerated; defaults to the last category")
	cmd.Flags().IntVar(&start, "start", 0, "label of the first category")
	cmd.Flags().BoolVar(&shift, "shift-pmf", false, "evaluate the distribution at the labels rather than at 0, 1, ...")
	cmd.Flags().Float64Var(&alpha, "alpha", 0, "significance level; 0 decides by p-value")
	cmd.Flags().Float64Var(&minE, "min-expected", gof.DefaultMinExpected, "merge buckets with fewer expected counts")
	return cmd
}

func newRunCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "run -f file",
		Short: "Run the tests described in a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.Load(path)
			if err != nil {
				return err
			}
			return runAll(cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "test description file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// runAll runs the tests in f concurrently and reports them in file
// order. It returns the first error after reporting every test.
func runAll(w io.Writer, f *config.File) error {
	outcomes := make([]config.Outcome, len(f.Tests))
	errs := make([]error, len(f.Tests))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range f.Tests {
		g.Go(func() error {
			t := &f.Tests[i]
			log.Info("running test", zap.String("name", testName(i, t)), zap.String("kind", t.Kind))
			outcomes[i], errs[i] = t.Run()
			return nil
		})
	}
	_ = g.Wait()

	var first error
	for i := range f.Tests {
		t := &f.Tests[i]
		name := testName(i, t)
		fmt.Fprintf(w, "== %s (%s)\n", name, t.Kind)
		if err := errs[i]; err != nil {
			log.Warn("test failed", zap.String("name", name), zap.Error(err))
			fmt.Fprintf(w, "error: %v\n\n", err)
			if first == nil {
				first = fmt.Errorf("test %s: %w", name, err)
			}
			continue
		}
		fmt.Fprintln(w, outcomes[i].Summary())
	}
	return first
}

func testName(i int, t *config.Test) string {
	if t.Name != "" {
		return t.Name
	}
	return fmt.Sprintf("#%d", i+1)
}

func readPair(cmd *cobra.Command, args []string) (xs, ys []float64, err error) {
	if xs, err = readSample(cmd.InOrStdin(), args[:1]); err != nil {
		return nil, nil, err
	}
	if ys, err = readSample(cmd.InOrStdin(), args[1:]); err != nil {
		return nil, nil, err
	}
	return xs, ys, nil
}

func printResult(w io.Writer, r *htest.Result) error {
	fmt.Fprint(w, r.Summary())
	if !plot {
		return nil
	}
	p, err := r.Render()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fprintPlot(w, p)
	return nil
}

func printGOF(w io.Writer, r *gof.Result) error {
	fmt.Fprint(w, r.Table())
	fmt.Fprintln(w)
	fmt.Fprint(w, r.Summary())
	if !plot {
		return nil
	}
	p, err := r.Render()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fprintPlot(w, p)
	return nil
}
