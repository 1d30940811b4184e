// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// A Shape describes the fixed bucket edges shared by a family of
// histograms. N edges define N+1 buckets: bucket 0 holds samples
// <= edges[0], bucket i (0 < i < N) holds samples in
// (edges[i-1], edges[i]], and bucket N holds samples > edges[N-1]
// (the overflow bucket).
//
// A Shape is immutable after construction and may be shared freely
// between goroutines and Distributions.
type Shape struct {
	edges []float64
}

// NewShape returns a Shape with the given bucket edges. The edges
// must be a non-empty, strictly increasing sequence of finite
// values; otherwise NewShape returns an error wrapping
// ErrInvalidEdges.
func NewShape(edges []float64) (*Shape, error) {
	if len(edges) == 0 {
		return nil, fmt.Errorf("%w: no edges", ErrInvalidEdges)
	}
	for i, e := range edges {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return nil, fmt.Errorf("%w: edge %v at index %d", ErrInvalidEdges, e, i)
		}
		if i > 0 && e <= edges[i-1] {
			return nil, fmt.Errorf("%w: edge %v at index %d does not increase", ErrInvalidEdges, e, i)
		}
	}
	s := &Shape{edges: make([]float64, len(edges))}
	copy(s.edges, edges)
	return s, nil
}

// MustShape is like NewShape but panics if the edges are invalid.
// It simplifies initialization of package-level shapes.
func MustShape(edges ...float64) *Shape {
	s, err := NewShape(edges)
	if err != nil {
		panic(err)
	}
	return s
}

// Edges returns the bucket edges. The caller must not modify the
// returned slice.
func (s *Shape) Edges() []float64 {
	return s.edges
}

// Len returns the number of edges.
func (s *Shape) Len() int {
	return len(s.edges)
}

// Buckets returns the number of buckets, which is Len()+1.
func (s *Shape) Buckets() int {
	return len(s.edges) + 1
}

// Equal reports whether s and o have identical edges.
func (s *Shape) Equal(o *Shape) bool {
	return s == o || floats.Equal(s.edges, o.edges)
}

// bucket returns the index of the bucket that sample v falls in.
func (s *Shape) bucket(v float64) int {
	return sort.SearchFloat64s(s.edges, v)
}

// Empty returns a Distribution over s with all-zero counts.
func (s *Shape) Empty() *Distribution {
	return &Distribution{shape: s, hist: make([]float64, s.Buckets())}
}

// FromSamples returns a Distribution over s accumulating the given
// samples. If weights is non-nil, it must have the same length as
// samples and each sample adds its weight instead of 1.
func (s *Shape) FromSamples(samples, weights []float64) (*Distribution, error) {
	d := s.Empty()
	if err := d.Update(samples, weights); err != nil {
		return nil, err
	}
	return d, nil
}

// FromHistogram returns a Distribution over s with the given bucket
// counts. The counts slice must have s.Buckets() non-negative
// elements; it is copied.
func (s *Shape) FromHistogram(counts []float64) (*Distribution, error) {
	if len(counts) != s.Buckets() {
		return nil, fmt.Errorf("%w: histogram must have len(edges)+1 = %d values, got %d",
			ErrLengthMismatch, s.Buckets(), len(counts))
	}
	hist := make([]float64, len(counts))
	for i, c := range counts {
		if c < 0 || math.IsNaN(c) {
			return nil, fmt.Errorf("%w: bucket %d has count %v", ErrNegativeValue, i, c)
		}
		hist[i] = c
	}
	return &Distribution{shape: s, hist: hist}, nil
}

// FromCumulative returns a Distribution over s from cumulative
// bucket counts, which must be non-negative and non-decreasing with
// s.Buckets() elements.
func (s *Shape) FromCumulative(cumulative []float64) (*Distribution, error) {
	if len(cumulative) != s.Buckets() {
		return nil, fmt.Errorf("%w: cumulative histogram must have len(edges)+1 = %d values, got %d",
			ErrLengthMismatch, s.Buckets(), len(cumulative))
	}
	hist := make([]float64, len(cumulative))
	prev := 0.0
	for i, c := range cumulative {
		if c < prev || math.IsNaN(c) {
			return nil, fmt.Errorf("%w: cumulative count %v at index %d", ErrNegativeValue, c, i)
		}
		hist[i] = c - prev
		prev = c
	}
	return &Distribution{shape: s, hist: hist}, nil
}
