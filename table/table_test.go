// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"errors"
	"math"
	"testing"

	"github.com/mpojman/go-distimate/dist"
)

var testRows = [][]float64{
	{4, 3, 1, 0, 2},
	{0, 5, 0, 5, 0},
	{0, 0, 0, 0, 0},
}

func testColumn(t *testing.T) *Column {
	t.Helper()
	shape := dist.MustShape(0, 10, 50, 100)
	c, err := FromHistograms(shape, testRows)
	if err != nil {
		t.Fatalf("FromHistograms: %v", err)
	}
	return c
}

func sliceAeq(expect, got []float64) bool {
	if len(expect) != len(got) {
		return false
	}
	for i := range expect {
		a, b := expect[i], got[i]
		if math.IsNaN(a) || math.IsNaN(b) {
			if !(math.IsNaN(a) && math.IsNaN(b)) {
				return false
			}
			continue
		}
		if math.Abs(a-b) > 0.00001 {
			return false
		}
	}
	return true
}

func TestRoundTrip(t *testing.T) {
	c := testColumn(t)
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	got := c.ToHistograms()
	for i, row := range testRows {
		if !sliceAeq(row, got[i]) {
			t.Errorf("row %d = %v, want %v", i, got[i], row)
		}
	}
}

func TestFromHistogramsInvalidRow(t *testing.T) {
	shape := dist.MustShape(0, 10, 50, 100)
	if _, err := FromHistograms(shape, [][]float64{{1, 2}}); !errors.Is(err, dist.ErrLengthMismatch) {
		t.Errorf("short row err = %v, want ErrLengthMismatch", err)
	}
}

func TestFromCumulative(t *testing.T) {
	shape := dist.MustShape(0, 10, 50, 100)
	c, err := FromCumulative(shape, [][]float64{{4, 7, 8, 8, 10}})
	if err != nil {
		t.Fatalf("FromCumulative: %v", err)
	}
	if got := c.ToHistograms()[0]; !sliceAeq([]float64{4, 3, 1, 0, 2}, got) {
		t.Errorf("row 0 = %v, want [4 3 1 0 2]", got)
	}
	if got := c.ToCumulative()[0]; !sliceAeq([]float64{4, 7, 8, 8, 10}, got) {
		t.Errorf("cumulative row 0 = %v", got)
	}
}

func TestRowWiseScalars(t *testing.T) {
	c := testColumn(t)
	if got := c.Weights(); !sliceAeq([]float64{10, 10, 0}, got) {
		t.Errorf("Weights() = %v", got)
	}
	if got := c.CDFAt(5); !sliceAeq([]float64{0.55, 0.25, 0}, got) {
		t.Errorf("CDFAt(5) = %v", got)
	}
	if got := c.QuantileAt(0.5); !sliceAeq([]float64{10.0 / 3, 10, 0}, got) {
		t.Errorf("QuantileAt(0.5) = %v", got)
	}
	if got := c.Means(); !sliceAeq([]float64{math.NaN(), 40, 0}, got) {
		t.Errorf("Means() = %v", got)
	}
}

func TestColumnSum(t *testing.T) {
	c := testColumn(t)
	want := []float64{4, 8, 1, 5, 2}
	if got := c.Sum().Histogram(); !sliceAeq(want, got) {
		t.Errorf("Sum() histogram = %v, want %v", got, want)
	}
	empty := NewColumn(c.Shape())
	if got := empty.Sum().Weight(); got != 0 {
		t.Errorf("empty column Sum() weight = %v, want 0", got)
	}
}

func TestAppendShapeCheck(t *testing.T) {
	c := testColumn(t)
	if err := c.Append(dist.MustShape(0, 1).Empty()); !errors.Is(err, dist.ErrShapeMismatch) {
		t.Errorf("Append err = %v, want ErrShapeMismatch", err)
	}
	if err := c.Append(c.Shape().Empty()); err != nil {
		t.Errorf("Append same shape: %v", err)
	}
	if c.Len() != 4 {
		t.Errorf("Len() = %d, want 4", c.Len())
	}
}
