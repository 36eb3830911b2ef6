// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/aclements/go-probdist/stats"
	"github.com/spf13/cobra"
)

func (a *app) describeCmd() *cobra.Command {
	var (
		params map[string]string
		plot   bool
	)
	cmd := &cobra.Command{
		Use:   "describe <kind>",
		Short: "Print the support and moments of a distribution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDist(args[0], params)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, describeDist(args[0], params))
			fmt.Fprintln(w)

			tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
			fmt.Fprintf(tw, "support\t%v\n", d.Support())
			fmt.Fprintf(tw, "discrete\t%v\n", d.IsDiscrete())
			for _, op := range []stats.Op{stats.OpMean, stats.OpVariance, stats.OpMode, stats.OpSkewness, stats.OpExcessKurtosis, stats.OpEntropy} {
				r, err := stats.Eval(d, op, 0)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%v\t%s\n", op, a.formatResult(r))
			}
			// Quartiles and tails.
			for _, p := range []int{1, 25, 50, 75, 99} {
				r, err := stats.Eval(d, stats.OpQuantile, float64(p)/100)
				if err != nil {
					return err
				}
				label := fmt.Sprintf("%d%%ile", p)
				if p == 50 {
					label = "median"
				}
				fmt.Fprintf(tw, "%s\t%s\n", label, a.formatResult(r))
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if !plot {
				return nil
			}
			var buf bytes.Buffer
			if err := FprintPDF(&buf, d); errors.Is(err, errNoPlot) {
				a.log.WithError(err).Warn("skipping plot")
				return nil
			} else if err != nil {
				return err
			}
			fmt.Fprintln(w)
			_, err = buf.WriteTo(w)
			return err
		},
	}
	addParamFlag(cmd.Flags(), &params)
	cmd.Flags().BoolVar(&plot, "plot", true, "plot the density")
	return cmd
}

func (a *app) kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the distribution kinds and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			for _, k := range stats.Kinds {
				fmt.Fprintf(tw, "%v\t%s\n", k, strings.Join(families[k].params, " "))
			}
			return tw.Flush()
		},
	}
}
