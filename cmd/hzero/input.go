// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// readSample reads numbers from the file named by args[0], or from
// stdin if args is empty or args[0] is "-".
func readSample(stdin io.Reader, args []string) ([]float64, error) {
	if len(args) == 0 || args[0] == "-" {
		return parseSample(stdin, "stdin")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseSample(f, args[0])
}

// parseSample parses whitespace-separated numbers. Text after a # is
// ignored.
func parseSample(r io.Reader, name string) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		l := scanner.Text()
		if i := strings.IndexByte(l, '#'); i >= 0 {
			l = l[:i]
		}
		for _, field := range strings.Fields(l) {
			x, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", name, line, err)
			}
			xs = append(xs, x)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return xs, nil
}

// parseCounts parses non-negative integer counts given as arguments,
// or read from stdin if there are none.
func parseCounts(stdin io.Reader, args []string) ([]int, error) {
	fields := args
	if len(fields) == 0 {
		xs, err := parseSample(stdin, "stdin")
		if err != nil {
			return nil, err
		}
		counts := make([]int, len(xs))
		for i, x := range xs {
			if x != float64(int(x)) {
				return nil, fmt.Errorf("count %v is not an integer", x)
			}
			counts[i] = int(x)
		}
		return counts, nil
	}
	counts := make([]int, len(fields))
	for i, f := range fields {
		c, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("count %q: %w", f, err)
		}
		counts[i] = c
	}
	return counts, nil
}
