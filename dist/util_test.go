// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	if math.IsNaN(expect) || math.IsNaN(got) {
		return math.IsNaN(expect) && math.IsNaN(got)
	}
	return math.Abs(expect-got) < 0.00001
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	for in, want := range vals {
		if got := f(in); !aeq(want, got) {
			t.Errorf("%s(%v) = %v, want %v", name, in, got, want)
		}
	}
}

func sliceAeq(expect, got []float64) bool {
	if len(expect) != len(got) {
		return false
	}
	for i := range expect {
		if !aeq(expect[i], got[i]) {
			return false
		}
	}
	return true
}
