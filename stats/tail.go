// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "strings"

// A Tail selects the direction of a test's rejection region.
type Tail string

const (
	// TailLeft rejects for small values of the statistic.
	TailLeft Tail = "left"

	// TailRight rejects for large values of the statistic.
	TailRight Tail = "right"

	// TailBilateral rejects for values far from the center in
	// either direction.
	TailBilateral Tail = "bilateral"
)

// Valid reports whether t is one of TailLeft, TailRight or
// TailBilateral.
func (t Tail) Valid() bool {
	switch t {
	case TailLeft, TailRight, TailBilateral:
		return true
	}
	return false
}

// Check returns an ErrInvalidArgument error if t is not valid.
func (t Tail) Check() error {
	if !t.Valid() {
		return invalidf("tail must be one of left, right, bilateral, got %q", string(t))
	}
	return nil
}

// OrDefault returns t, or TailBilateral if t is empty.
func (t Tail) OrDefault() Tail {
	if t == "" {
		return TailBilateral
	}
	return t
}

// ParseTail parses a tail name. It accepts the canonical names as
// well as "two-sided", "less" and "greater".
func ParseTail(s string) (Tail, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "less":
		return TailLeft, nil
	case "right", "greater":
		return TailRight, nil
	case "", "bilateral", "two-sided", "two-tailed":
		return TailBilateral, nil
	}
	return "", invalidf("unknown tail %q", s)
}
