// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mpojman/go-distimate/dist"
)

func summaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Read samples from stdin and describe their distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, err := loadShape()
			if err != nil {
				return err
			}
			d, err := readSamples(os.Stdin, shape)
			if err != nil {
				return err
			}
			printSummary(os.Stdout, d)
			return nil
		},
	}
}

func readSamples(r io.Reader, shape *dist.Shape) (*dist.Distribution, error) {
	d := shape.Empty()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		value, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, err
		}
		d.Add(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

func printSummary(w io.Writer, d *dist.Distribution) {
	fmt.Fprintf(w, "weight %.6g  mean %.6g\n\n", d.Weight(), d.Mean())

	q := d.Quantile()
	labels := map[int]string{50: "median"}
	for _, p := range []int{1, 5, 25, 50, 75, 95, 99} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		fmt.Fprintf(w, "%8s %.6g\n", label, q.At(float64(p)/100))
	}
}
