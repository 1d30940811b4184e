// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"encoding/json"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// A Distribution is a statistical distribution represented by a
// histogram with fixed bucket edges. It accumulates samples into
// bucket counts and estimates mean, PDF, CDF, and quantiles from the
// counts.
//
// The bucket counts are float64 weights, so weighted samples and
// fractional counts are supported. All counts are non-negative.
//
// A Distribution is not safe for concurrent mutation. For parallel
// accumulation, give each goroutine its own Distribution over a
// shared Shape and combine the results with Sum or Merge.
type Distribution struct {
	shape *Shape
	hist  []float64
}

// Shape returns the bucket edges of d.
func (d *Distribution) Shape() *Shape {
	return d.shape
}

// Edges returns the bucket edges of d. The caller must not modify
// the returned slice.
func (d *Distribution) Edges() []float64 {
	return d.shape.edges
}

// Histogram returns a copy of d's bucket counts. The slice has
// d.Shape().Buckets() elements.
func (d *Distribution) Histogram() []float64 {
	hist := make([]float64, len(d.hist))
	copy(hist, d.hist)
	return hist
}

// Cumulative returns a copy of d's bucket counts accumulated from
// the first bucket, so the last element is the total weight.
func (d *Distribution) Cumulative() []float64 {
	cum := make([]float64, len(d.hist))
	floats.CumSum(cum, d.hist)
	return cum
}

// Weight returns the total weight of samples in d.
func (d *Distribution) Weight() float64 {
	return floats.Sum(d.hist)
}

// Clone returns an independent copy of d sharing d's Shape.
func (d *Distribution) Clone() *Distribution {
	return &Distribution{shape: d.shape, hist: d.Histogram()}
}

// Equal reports whether d and o have the same edges and the same
// bucket counts.
func (d *Distribution) Equal(o *Distribution) bool {
	return d.shape.Equal(o.shape) && floats.Equal(d.hist, o.hist)
}

// Add accumulates a single sample with weight 1.
func (d *Distribution) Add(v float64) {
	d.hist[d.shape.bucket(v)]++
}

// AddWeighted accumulates a single sample with the given weight.
// The weight must be non-negative.
func (d *Distribution) AddWeighted(v, weight float64) error {
	if weight < 0 || math.IsNaN(weight) {
		return fmt.Errorf("%w: weight %v", ErrNegativeValue, weight)
	}
	d.hist[d.shape.bucket(v)] += weight
	return nil
}

// Update accumulates multiple samples. If weights is non-nil, it
// must have the same length as samples and weights[i] is added for
// samples[i]; otherwise each sample has weight 1. The counts are
// unchanged if Update returns an error.
func (d *Distribution) Update(samples, weights []float64) error {
	if weights != nil {
		if len(weights) != len(samples) {
			return fmt.Errorf("%w: %d samples but %d weights",
				ErrLengthMismatch, len(samples), len(weights))
		}
		for _, w := range weights {
			if w < 0 || math.IsNaN(w) {
				return fmt.Errorf("%w: weight %v", ErrNegativeValue, w)
			}
		}
	}
	for i, v := range samples {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		d.hist[d.shape.bucket(v)] += w
	}
	return nil
}

// Merge adds o's bucket counts to d in place. The distributions
// must have equal edges.
func (d *Distribution) Merge(o *Distribution) error {
	if !d.shape.Equal(o.shape) {
		return ErrShapeMismatch
	}
	floats.Add(d.hist, o.hist)
	return nil
}

// Sum combines distributions over equal edges into a new
// Distribution with elementwise-summed counts. Sum is commutative
// and associative, so it can reduce shards accumulated in parallel
// or rows grouped by key, in any order.
func Sum(ds ...*Distribution) (*Distribution, error) {
	if len(ds) == 0 {
		return nil, fmt.Errorf("dist: Sum of no distributions")
	}
	out := ds[0].Clone()
	for _, d := range ds[1:] {
		if err := out.Merge(d); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Mean estimates the mean of d. See the package documentation for
// the approximation; a histogram is a poor substitute for raw
// samples here, so treat the result as a sanity check. The mean is
// NaN if the overflow bucket holds mass and 0 if d is empty.
func (d *Distribution) Mean() float64 {
	return meanOf(d.shape, d.hist)
}

// CDF returns the cumulative distribution function of d, estimated
// from the current counts. The result does not track later
// mutations of d.
func (d *Distribution) CDF() *Func {
	return makeCDF(d.shape, d.hist)
}

// PDF returns the probability density function of d, estimated from
// the current counts. The result does not track later mutations of
// d.
func (d *Distribution) PDF() *Func {
	return makePDF(d.shape, d.hist)
}

// Quantile returns the quantile (inverse CDF) function of d,
// estimated from the current counts. The result does not track
// later mutations of d.
func (d *Distribution) Quantile() *Func {
	return makeQuantile(d.shape, d.hist)
}

func (d *Distribution) String() string {
	return fmt.Sprintf("<Distribution: weight=%.0f, mean=%.2f>", d.Weight(), d.Mean())
}

// distJSON is the serialized form of a Distribution: the edge and
// count arrays are sufficient to reconstruct an equivalent instance.
type distJSON struct {
	Edges  []float64 `json:"edges"`
	Values []float64 `json:"values"`
}

// MarshalJSON implements json.Marshaler.
func (d *Distribution) MarshalJSON() ([]byte, error) {
	return json.Marshal(distJSON{Edges: d.shape.edges, Values: d.hist})
}

// UnmarshalJSON implements json.Unmarshaler. The encoded edges and
// counts are validated as in NewShape and Shape.FromHistogram.
func (d *Distribution) UnmarshalJSON(data []byte) error {
	var raw distJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	shape, err := NewShape(raw.Edges)
	if err != nil {
		return err
	}
	nd, err := shape.FromHistogram(raw.Values)
	if err != nil {
		return err
	}
	*d = *nd
	return nil
}
