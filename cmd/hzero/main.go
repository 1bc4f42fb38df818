// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// hzero runs parametric hypothesis tests and goodness-of-fit tests
// on data read from files or stdin.
//
// Samples are newline-separated numbers. For example,
//
//	hzero mean --h0 40 --alpha 0.05 batches.txt
//	hzero varratio --h0 1 --alpha 0.05 old.txt new.txt
//	hzero gof --dist binomial --n 4 --alpha 0.05 39 61 34 13 3
//	hzero run -f suite.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	plot    bool
	log     = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hzero",
		Short:         "Statistical hypothesis tests",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				log = zap.NewNop()
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			log = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = log.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
	root.PersistentFlags().BoolVar(&plot, "plot", false, "draw the test distribution and rejection region")

	root.AddCommand(
		newDescribeCmd(),
		newMeanCmd(),
		newVarianceCmd(),
		newMeanDiffCmd(),
		newVarRatioCmd(),
		newGOFCmd(),
		newRunCmd(),
	)
	return root
}
