// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"math"
	"testing"
)

func TestNewShape(t *testing.T) {
	s, err := NewShape([]float64{1, 10, 100})
	if err != nil {
		t.Fatalf("NewShape: %v", err)
	}
	if s.Len() != 3 || s.Buckets() != 4 {
		t.Errorf("Len() = %d, Buckets() = %d, want 3, 4", s.Len(), s.Buckets())
	}
	if !sliceAeq([]float64{1, 10, 100}, s.Edges()) {
		t.Errorf("Edges() = %v", s.Edges())
	}
}

func TestNewShapeInvalid(t *testing.T) {
	bad := [][]float64{
		{},
		{1, 1},
		{1, 10, 5},
		{1, math.NaN()},
		{1, math.Inf(1)},
		{math.Inf(-1), 1},
	}
	for _, edges := range bad {
		if _, err := NewShape(edges); !errors.Is(err, ErrInvalidEdges) {
			t.Errorf("NewShape(%v) err = %v, want ErrInvalidEdges", edges, err)
		}
	}
}

func TestShapeCopiesEdges(t *testing.T) {
	edges := []float64{1, 10, 100}
	s, _ := NewShape(edges)
	edges[0] = 42
	if s.Edges()[0] != 1 {
		t.Errorf("Shape aliases caller's edges slice")
	}
}

func TestMustShapePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MustShape(10, 1) did not panic")
		}
	}()
	MustShape(10, 1)
}

func TestShapeEqual(t *testing.T) {
	a := MustShape(1, 10, 100)
	b := MustShape(1, 10, 100)
	c := MustShape(1, 10, 1000)
	d := MustShape(1, 10)
	if !a.Equal(a) || !a.Equal(b) {
		t.Errorf("equal shapes compare unequal")
	}
	if a.Equal(c) || a.Equal(d) {
		t.Errorf("unequal shapes compare equal")
	}
}

func TestBucketing(t *testing.T) {
	s := MustShape(1, 10, 100)
	// Buckets are right-closed: bucket 0 is <= 1, bucket 1 is
	// (1, 10], bucket 2 is (10, 100], bucket 3 is > 100.
	cases := []struct {
		v    float64
		want []float64
	}{
		{0.9, []float64{1, 0, 0, 0}},
		{1, []float64{1, 0, 0, 0}},
		{1.1, []float64{0, 1, 0, 0}},
		{10, []float64{0, 1, 0, 0}},
		{99, []float64{0, 0, 1, 0}},
		{100, []float64{0, 0, 1, 0}},
		{101, []float64{0, 0, 0, 1}},
	}
	for _, c := range cases {
		d := s.Empty()
		d.Add(c.v)
		if !sliceAeq(c.want, d.Histogram()) {
			t.Errorf("Add(%v): histogram = %v, want %v", c.v, d.Histogram(), c.want)
		}
	}
}
