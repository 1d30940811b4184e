// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"sort"
)

// Kind identifies which statistical function a Func approximates.
// The set is closed: each kind has its own control-point derivation
// and evaluation rule.
type Kind int

const (
	// FuncCDF is a cumulative distribution function, P(X <= x).
	FuncCDF Kind = iota

	// FuncPDF is a probability density function, stepwise constant
	// within each bucket.
	FuncPDF

	// FuncQuantile is an inverse CDF. Its domain is [0, 1].
	FuncQuantile
)

// A Func is a piecewise approximation of a statistical function,
// derived from a histogram. It holds the discrete control points of
// the approximation and evaluates the function at arbitrary points
// by interpolating between them.
//
// The X and Y slices are parallel and X is non-decreasing. They can
// be plotted directly; callers must not modify them.
type Func struct {
	// Kind is the statistical function this Func approximates.
	Kind Kind

	// X and Y are the control points of the approximation.
	X, Y []float64

	// left and right are the values reported below X[0] and above
	// X[len(X)-1], respectively.
	left, right float64
}

// At evaluates the function at v.
//
// Queries left of the first control point or right of the last one
// return the function's fill values, which may be NaN when the
// function is not defined there (for example beyond the last edge of
// a histogram with samples in the overflow bucket). Queries between
// control points interpolate: linearly for CDF and quantile
// functions, stepwise for PDFs.
//
// For FuncQuantile, v must be a probability in [0, 1]; At panics
// with ErrInvalidProbability otherwise.
func (f *Func) At(v float64) float64 {
	if f.Kind == FuncQuantile && (math.IsNaN(v) || v < 0 || v > 1) {
		panic(ErrInvalidProbability)
	}
	if math.IsNaN(v) {
		return nan
	}
	n := len(f.X)
	if v < f.X[0] {
		return f.left
	}
	if v > f.X[n-1] {
		return f.right
	}
	// SearchFloat64s returns the lowest index with X[i] >= v, so a
	// query that lands on a run of equal x values resolves to the
	// first control point of the run. For quantile functions this
	// is the documented tie-break: a probability on a flat CDF
	// segment maps to the lowest edge reaching it.
	i := sort.SearchFloat64s(f.X, v)
	if f.X[i] == v {
		return f.Y[i]
	}
	// X[i-1] < v < X[i].
	if f.Kind == FuncPDF {
		// Density is constant across the bucket ending at X[i].
		return f.Y[i]
	}
	t := (v - f.X[i-1]) / (f.X[i] - f.X[i-1])
	return f.Y[i-1] + t*(f.Y[i]-f.Y[i-1])
}

// Each returns At(vs[i]) for each i.
func (f *Func) Each(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = f.At(v)
	}
	return out
}
