// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table adapts row-oriented histogram data to the dist
// package. Callers that keep one histogram per row, such as results
// of a database group-by, load the rows into a Column and evaluate
// statistics row-wise, getting one scalar back per row.
package table

import (
	"github.com/mpojman/go-distimate/dist"
)

// A Column is an ordered collection of Distributions over a shared
// Shape, one per row. Row identity is positional: the i'th result of
// every row-wise method belongs to the i'th input row.
type Column struct {
	shape *dist.Shape
	rows  []*dist.Distribution
}

// NewColumn returns an empty Column over the given shape.
func NewColumn(shape *dist.Shape) *Column {
	return &Column{shape: shape}
}

// FromHistograms builds a Column from per-row bucket counts. Every
// row must have shape.Buckets() non-negative elements.
func FromHistograms(shape *dist.Shape, rows [][]float64) (*Column, error) {
	c := NewColumn(shape)
	for _, row := range rows {
		d, err := shape.FromHistogram(row)
		if err != nil {
			return nil, err
		}
		c.rows = append(c.rows, d)
	}
	return c, nil
}

// FromCumulative builds a Column from per-row cumulative bucket
// counts.
func FromCumulative(shape *dist.Shape, rows [][]float64) (*Column, error) {
	c := NewColumn(shape)
	for _, row := range rows {
		d, err := shape.FromCumulative(row)
		if err != nil {
			return nil, err
		}
		c.rows = append(c.rows, d)
	}
	return c, nil
}

// Append adds a distribution as a new row. The distribution must
// have the column's shape.
func (c *Column) Append(d *dist.Distribution) error {
	if !c.shape.Equal(d.Shape()) {
		return dist.ErrShapeMismatch
	}
	c.rows = append(c.rows, d)
	return nil
}

// Len returns the number of rows.
func (c *Column) Len() int {
	return len(c.rows)
}

// Shape returns the shared bucket edges of the column.
func (c *Column) Shape() *dist.Shape {
	return c.shape
}

// Row returns the distribution of row i.
func (c *Column) Row(i int) *dist.Distribution {
	return c.rows[i]
}

// ToHistograms returns the bucket counts of every row.
func (c *Column) ToHistograms() [][]float64 {
	out := make([][]float64, len(c.rows))
	for i, d := range c.rows {
		out[i] = d.Histogram()
	}
	return out
}

// ToCumulative returns the cumulative bucket counts of every row.
func (c *Column) ToCumulative() [][]float64 {
	out := make([][]float64, len(c.rows))
	for i, d := range c.rows {
		out[i] = d.Cumulative()
	}
	return out
}

// Weights returns the total sample weight of every row.
func (c *Column) Weights() []float64 {
	return c.mapRows((*dist.Distribution).Weight)
}

// Means returns the estimated mean of every row.
func (c *Column) Means() []float64 {
	return c.mapRows((*dist.Distribution).Mean)
}

// CDFAt returns the estimated CDF of every row evaluated at v.
func (c *Column) CDFAt(v float64) []float64 {
	return c.mapRows(func(d *dist.Distribution) float64 {
		return d.CDF().At(v)
	})
}

// PDFAt returns the estimated PDF of every row evaluated at v.
func (c *Column) PDFAt(v float64) []float64 {
	return c.mapRows(func(d *dist.Distribution) float64 {
		return d.PDF().At(v)
	})
}

// QuantileAt returns the p'th quantile of every row. p must be in
// [0, 1].
func (c *Column) QuantileAt(p float64) []float64 {
	return c.mapRows(func(d *dist.Distribution) float64 {
		return d.Quantile().At(p)
	})
}

// Sum reduces the column to a single Distribution with
// elementwise-summed counts. An empty column sums to an empty
// distribution.
func (c *Column) Sum() *dist.Distribution {
	out := c.shape.Empty()
	for _, d := range c.rows {
		// Merge cannot fail: Append and the constructors only
		// admit rows with the column's shape.
		out.Merge(d)
	}
	return out
}

func (c *Column) mapRows(f func(*dist.Distribution) float64) []float64 {
	out := make([]float64, len(c.rows))
	for i, d := range c.rows {
		out[i] = f(d)
	}
	return out
}
