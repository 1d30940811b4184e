// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist estimates statistical distributions from histograms
// with fixed bucket edges.
//
// Unlike estimators that work on raw samples, everything in this
// package operates on aggregated bucket counts, which makes it usable
// when only histogram columns are available (for example from a
// database) or when the underlying samples are too large to keep in
// memory. Bucket edges are described by a Shape, counts are
// accumulated in a Distribution, and mean, PDF, CDF, and quantile
// estimates are derived from the counts by piecewise interpolation.
package dist // import "github.com/mpojman/go-distimate/dist"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
