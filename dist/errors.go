// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "errors"

// Errors reported for inputs that violate histogram contracts. They
// are wrapped with context, so test with errors.Is.
var (
	// ErrInvalidEdges indicates edges that are not a non-empty,
	// strictly increasing sequence of finite values.
	ErrInvalidEdges = errors.New("edges must be finite and strictly increasing")

	// ErrShapeMismatch indicates an operation combining
	// distributions whose edges differ.
	ErrShapeMismatch = errors.New("distributions have different edges")

	// ErrLengthMismatch indicates a histogram or weights slice of
	// the wrong length.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrNegativeValue indicates a negative bucket count or sample
	// weight.
	ErrNegativeValue = errors.New("negative count or weight")

	// ErrInvalidProbability indicates a quantile query outside
	// [0, 1]. Quantile evaluation panics with this error since the
	// argument is under caller control.
	ErrInvalidProbability = errors.New("probability out of [0, 1] range")
)
