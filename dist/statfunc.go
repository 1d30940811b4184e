// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "gonum.org/v1/gonum/floats"

// Control-point derivations for the statistical functions estimated
// from a histogram. Each takes the shared edges and a counts slice
// of length len(edges)+1 that has already been validated.

// makeCDF builds the CDF approximation. Control points sit at the
// edges; y values are cumulative counts normalized by the total
// weight, including the overflow bucket.
//
// Below the first edge the CDF is 0. Beyond the last edge it is the
// final control value if the overflow bucket is empty and NaN
// otherwise, since the overflow bucket is unbounded and its mass
// cannot be placed. A histogram with no samples has a CDF that is 0
// everywhere on the finite range.
func makeCDF(s *Shape, hist []float64) *Func {
	n := s.Len()
	x := make([]float64, n)
	copy(x, s.edges)
	y := make([]float64, n)
	cum := make([]float64, len(hist))
	floats.CumSum(cum, hist)
	total := cum[len(cum)-1]
	if total == 0 {
		return &Func{Kind: FuncCDF, X: x, Y: y, left: 0, right: 0}
	}
	for i := range y {
		y[i] = cum[i] / total
	}
	right := nan
	if hist[n] == 0 {
		right = y[n-1]
	}
	return &Func{Kind: FuncCDF, X: x, Y: y, left: 0, right: right}
}

// makePDF builds the PDF approximation: within each inner bucket the
// density is the bucket's relative frequency divided by its width.
// The first bucket concentrates its mass at the first edge and the
// overflow bucket has unknown width, so neither has a finite
// density; both are reported as 0, except that queries beyond the
// last edge return NaN when the overflow bucket holds mass.
func makePDF(s *Shape, hist []float64) *Func {
	n := s.Len()
	x := make([]float64, n)
	copy(x, s.edges)
	y := make([]float64, n)
	total := floats.Sum(hist)
	if total == 0 {
		return &Func{Kind: FuncPDF, X: x, Y: y, left: 0, right: 0}
	}
	for i := 1; i < n; i++ {
		y[i] = hist[i] / total / (s.edges[i] - s.edges[i-1])
	}
	right := nan
	if hist[n] == 0 {
		right = 0
	}
	return &Func{Kind: FuncPDF, X: x, Y: y, left: 0, right: right}
}

// makeQuantile builds the inverse CDF. Control-point x values are
// the cumulative probabilities at each edge and y values are the
// edges, so evaluation inverts the CDF's linear segments. A bucket
// with zero count produces a run of equal x values; Func.At resolves
// those to the lowest edge. Probabilities beyond the cumulative
// probability at the last edge fall in the overflow bucket and
// return NaN.
//
// A histogram with no samples has no mass to locate anywhere, so its
// quantile function degenerates to the first edge for every p.
func makeQuantile(s *Shape, hist []float64) *Func {
	n := s.Len()
	cum := make([]float64, len(hist))
	floats.CumSum(cum, hist)
	total := cum[len(cum)-1]
	if total == 0 {
		e0 := s.edges[0]
		return &Func{
			Kind: FuncQuantile,
			X:    []float64{0, 1},
			Y:    []float64{e0, e0},
			left: e0, right: e0,
		}
	}
	x := make([]float64, n)
	for i := range x {
		x[i] = cum[i] / total
	}
	y := make([]float64, n)
	copy(y, s.edges)
	return &Func{Kind: FuncQuantile, X: x, Y: y, left: s.edges[0], right: nan}
}

// meanOf estimates the mean of the histogram, representing the first
// bucket by the first edge and each inner bucket by its midpoint.
// The estimate is NaN if the overflow bucket holds any mass, since
// that mass has no finite representative. An empty histogram has
// mean 0.
func meanOf(s *Shape, hist []float64) float64 {
	total := floats.Sum(hist)
	if total == 0 {
		return 0
	}
	n := s.Len()
	if hist[n] > 0 {
		return nan
	}
	sum := s.edges[0] * hist[0]
	for i := 1; i < n; i++ {
		sum += (s.edges[i-1] + s.edges[i]) / 2 * hist[i]
	}
	return sum / total
}
