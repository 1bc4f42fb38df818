// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"

	mstats "github.com/montanaflynn/stats"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aclements/go-hzero/stats"
)

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe [file]",
		Short: "Describe the distribution of a sample",
		Long: `Describe reads newline-separated numbers from file, or stdin if no
file is given, and prints summary statistics, quantiles and a fitted
exponential distribution.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := readSample(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return describe(cmd.OutOrStdout(), xs)
		},
	}
}

func describe(w io.Writer, xs []float64) error {
	if len(xs) == 0 {
		return stats.ErrSampleSize
	}
	log.Debug("describing sample", zap.Int("n", len(xs)))
	sum, _ := mstats.Sum(xs)
	mean, _ := mstats.Mean(xs)
	fmt.Fprintf(w, "N %d  sum %.6g  mean %.6g", len(xs), sum, mean)
	if gmean, err := mstats.GeometricMean(xs); err == nil && !math.IsNaN(gmean) && gmean > 0 {
		fmt.Fprintf(w, "  gmean %.6g", gmean)
	}
	if len(xs) > 1 {
		sd, _ := mstats.StandardDeviationSample(xs)
		v, _ := mstats.SampleVariance(xs)
		fmt.Fprintf(w, "  std dev %.6g  variance %.6g", sd, v)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	// Quartiles and tails.
	lo, _ := mstats.Min(xs)
	hi, _ := mstats.Max(xs)
	fmt.Fprintf(w, "%8s %.6g\n", "min", lo)
	for _, p := range []float64{1, 5, 25, 50, 75, 95, 99} {
		label := fmt.Sprintf("%g%%ile", p)
		if p == 50 {
			label = "median"
		}
		q, err := mstats.PercentileNearestRank(xs, p)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%8s %.6g\n", label, q)
	}
	fmt.Fprintf(w, "%8s %.6g\n", "max", hi)

	if e, err := stats.FitExponential(xs); err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "exponential fit: rate %.6g  mean %.6g  median %.6g\n", e.Rate, e.Mean(), e.Quantile(0.5))
	} else {
		log.Debug("no exponential fit", zap.Error(err))
	}
	return nil
}
