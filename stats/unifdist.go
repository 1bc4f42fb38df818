// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/stat/distuv"

// UniformDist is a continuous uniform distribution on [Low, High].
//
// If Low == High the distribution is a point mass: the PDF is +Inf
// at Low and the CDF steps from 0 to 1 there.
type UniformDist struct {
	Low, High float64
}

// NewUniformDist returns a uniform distribution, failing if
// low > high.
func NewUniformDist(low, high float64) (UniformDist, error) {
	if !(low <= high) {
		return UniformDist{}, invalidf("low must be <= high, got [%v, %v]", low, high)
	}
	return UniformDist{low, high}, nil
}

func (u UniformDist) PDF(x float64) float64 {
	if x < u.Low || x > u.High {
		return 0
	}
	if u.Low == u.High {
		return inf
	}
	return distuv.Uniform{Min: u.Low, Max: u.High}.Prob(x)
}

func (u UniformDist) CDF(x float64) float64 {
	switch {
	case x < u.Low:
		return 0
	case x >= u.High:
		return 1
	}
	return (x - u.Low) / (u.High - u.Low)
}

func (u UniformDist) Mean() float64 {
	return (u.Low + u.High) / 2
}

func (u UniformDist) Variance() float64 {
	w := u.High - u.Low
	return w * w / 12
}

func (u UniformDist) Bounds() (float64, float64) {
	margin := 0.2 * (u.High - u.Low)
	return u.Low - margin, u.High + margin
}
