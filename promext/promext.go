// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package promext converts between Distributions and Prometheus
// histogram metrics.
//
// A Prometheus histogram carries the same data model as a
// Distribution: fixed upper bounds, cumulative observation counts,
// and an implicit +Inf bucket that corresponds to the overflow
// bucket. That makes histogram metrics scraped from a monitoring
// system directly usable as estimation input, and lets accumulated
// Distributions be exported as metrics.
package promext

import (
	"fmt"
	"math"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/mpojman/go-distimate/dist"
)

// Shape returns the bucket edges of a Prometheus histogram metric:
// its bucket upper bounds excluding +Inf.
func Shape(h *dto.Histogram) (*dist.Shape, error) {
	edges := make([]float64, 0, len(h.GetBucket()))
	for _, b := range h.GetBucket() {
		if math.IsInf(b.GetUpperBound(), 1) {
			continue
		}
		edges = append(edges, b.GetUpperBound())
	}
	return dist.NewShape(edges)
}

// FromMetric converts a Prometheus histogram metric to a
// Distribution. Bucket upper bounds become the edges; observations
// counted only by the +Inf bucket become the overflow bucket.
func FromMetric(h *dto.Histogram) (*dist.Distribution, error) {
	shape, err := Shape(h)
	if err != nil {
		return nil, err
	}
	cum := make([]float64, 0, shape.Buckets())
	for _, b := range h.GetBucket() {
		if math.IsInf(b.GetUpperBound(), 1) {
			continue
		}
		cum = append(cum, float64(b.GetCumulativeCount()))
	}
	// SampleCount totals all observations, including those beyond
	// the last finite bound.
	cum = append(cum, float64(h.GetSampleCount()))
	return shape.FromCumulative(cum)
}

// ConstMetric exports d as a constant Prometheus histogram metric.
// Bucket counts are truncated to integers, so d should hold
// unweighted counts. The metric's sum is estimated from d's mean and
// is NaN when the overflow bucket holds mass.
func ConstMetric(desc *prometheus.Desc, d *dist.Distribution, labelValues ...string) (prometheus.Metric, error) {
	edges := d.Edges()
	cum := d.Cumulative()
	buckets := make(map[float64]uint64, len(edges))
	for i, e := range edges {
		buckets[e] = uint64(cum[i])
	}
	weight := d.Weight()
	return prometheus.NewConstHistogram(desc, uint64(weight), d.Mean()*weight, buckets, labelValues...)
}

// FromFamily extracts Distributions from every metric of a scraped
// histogram metric family, in the family's metric order.
func FromFamily(mf *dto.MetricFamily) ([]*dist.Distribution, error) {
	if mf.GetType() != dto.MetricType_HISTOGRAM {
		return nil, fmt.Errorf("promext: metric family %q is %s, not a histogram",
			mf.GetName(), mf.GetType())
	}
	out := make([]*dist.Distribution, 0, len(mf.GetMetric()))
	for _, m := range mf.GetMetric() {
		d, err := FromMetric(m.GetHistogram())
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
