// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"slices"

	"github.com/aclements/go-probdist/stats"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) quantileCICmd() *cobra.Command {
	var q, confidence float64
	cmd := &cobra.Command{
		Use:   "quantile-ci",
		Short: "Compute a confidence interval for a quantile of a sample",
		Long: `Read newline-separated numbers from stdin and print a
distribution-free confidence interval for the requested quantile of
the population they were drawn from.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := readInput(cmd.InOrStdin())
			if err != nil {
				return err
			}
			slices.Sort(xs)
			res, err := stats.QuantileCI(len(xs), q, confidence)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"n":     res.N,
				"order": fmt.Sprintf("[%d, %d]", res.LoOrder, res.HiOrder),
			}).Debug("quantile interval")
			lo, hi, err := res.FromSorted(xs)
			if err != nil {
				return err
			}
			if res.Ambiguous {
				a.log.Info("interval is ambiguous")
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "[%s, %s] @ %s\n", a.format(lo), a.format(hi), a.format(res.Confidence))
			return err
		},
	}
	cmd.Flags().Float64VarP(&q, "quantile", "q", 0.5, "quantile in [0, 1]")
	cmd.Flags().Float64VarP(&confidence, "confidence", "c", 0.95, "confidence level in [0, 1]")
	return cmd
}
