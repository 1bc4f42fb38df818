// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides the probability distributions used by
// hypothesis tests: the continuous test distributions (normal,
// Student's t, chi-square and F) with critical values and p-values,
// descriptive continuous distributions (exponential, uniform), and
// discrete distributions (binomial, Poisson, geometric, negative
// binomial) that can be fit to observed data.
//
// Closed-form density, cumulative and quantile functions come from
// gonum's distuv and mathext packages. This package is concerned
// with how they are parameterized, combined and interpreted.
package stats // import "github.com/aclements/go-hzero/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
