// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// evalCommand builds a command that reads CSV histogram rows from
// stdin and prints one estimate per row.
func evalCommand(name, short string) *cobra.Command {
	var at float64
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, err := loadShape()
			if err != nil {
				return err
			}
			col, err := readColumn(os.Stdin, shape)
			if err != nil {
				return err
			}
			var results []float64
			switch name {
			case "mean":
				results = col.Means()
			case "cdf":
				results = col.CDFAt(at)
			case "pdf":
				results = col.PDFAt(at)
			case "quantile":
				if at < 0 || at > 1 {
					return fmt.Errorf("--at must be a probability in [0, 1]")
				}
				results = col.QuantileAt(at)
			}
			for _, v := range results {
				fmt.Printf("%g\n", v)
			}
			return nil
		},
	}
	if name != "mean" {
		cmd.Flags().Float64Var(&at, "at", 0.5, "point to evaluate at")
	}
	return cmd
}

func mergeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "merge",
		Short: "Sum CSV histogram rows into a single histogram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, err := loadShape()
			if err != nil {
				return err
			}
			col, err := readColumn(os.Stdin, shape)
			if err != nil {
				return err
			}
			sum := col.Sum()
			for i, v := range sum.Histogram() {
				if i > 0 {
					fmt.Print(",")
				}
				fmt.Printf("%g", v)
			}
			fmt.Println()
			return nil
		},
	}
}
