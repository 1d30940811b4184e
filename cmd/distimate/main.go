// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// distimate estimates statistics from fixed-bucket histograms.
//
// All commands need the bucket edges, given either directly with
// --edges or as a YAML file with --shape:
//
//	edges: [0, 10, 50, 100]
//
// The summary command reads newline-separated samples from stdin and
// describes their distribution. The mean, cdf, pdf, and quantile
// commands read CSV histogram rows (one histogram per row, with one
// more column than there are edges) and print one estimate per row.
// The merge command sums CSV histogram rows into a single histogram.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/mpojman/go-distimate/dist"
	"github.com/mpojman/go-distimate/table"
)

var (
	edgesFlag string
	shapeFlag string
)

func main() {
	root := &cobra.Command{
		Use:          "distimate",
		Short:        "Estimate statistics from fixed-bucket histograms",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&edgesFlag, "edges", "", "comma-separated bucket edges")
	root.PersistentFlags().StringVar(&shapeFlag, "shape", "", "YAML file with an edges list")

	root.AddCommand(
		summaryCommand(),
		evalCommand("mean", "Estimate the mean of each histogram row"),
		evalCommand("cdf", "Evaluate the CDF of each histogram row"),
		evalCommand("pdf", "Evaluate the PDF of each histogram row"),
		evalCommand("quantile", "Evaluate a quantile of each histogram row"),
		mergeCommand(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// shapeFile is the YAML schema of a --shape file.
type shapeFile struct {
	Edges []float64 `yaml:"edges"`
}

func loadShape() (*dist.Shape, error) {
	switch {
	case edgesFlag != "" && shapeFlag != "":
		return nil, fmt.Errorf("--edges and --shape are mutually exclusive")
	case edgesFlag != "":
		parts := strings.Split(edgesFlag, ",")
		edges := make([]float64, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("bad edge %q: %v", p, err)
			}
			edges[i] = v
		}
		return dist.NewShape(edges)
	case shapeFlag != "":
		data, err := os.ReadFile(shapeFlag)
		if err != nil {
			return nil, err
		}
		var sf shapeFile
		if err := yaml.UnmarshalStrict(data, &sf); err != nil {
			return nil, fmt.Errorf("%s: %v", shapeFlag, err)
		}
		return dist.NewShape(sf.Edges)
	}
	return nil, fmt.Errorf("either --edges or --shape is required")
}

// readColumn reads CSV histogram rows into a column over the shape.
func readColumn(r io.Reader, shape *dist.Shape) (*table.Column, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = shape.Buckets()
	cr.TrimLeadingSpace = true
	var rows [][]float64
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make([]float64, len(record))
		for i, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("bad count %q: %v", field, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	return table.FromHistograms(shape, rows)
}
