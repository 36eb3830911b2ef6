// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aclements/go-probdist/stats"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) evalCmd() *cobra.Command {
	var (
		params map[string]string
		opName string
	)
	cmd := &cobra.Command{
		Use:   "eval <kind> [x...]",
		Short: "Evaluate one operation of a distribution",
		Long: `Evaluate one operation of a distribution at each argument and print
one result per line. Without arguments, eval reads newline-separated
arguments from stdin. Operations that do not take an argument, such
as mean, print a single result.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDist(args[0], params)
			if err != nil {
				return err
			}
			op, err := stats.ParseOp(opName)
			if err != nil {
				return err
			}

			var xs []float64
			switch {
			case !op.TakesArg():
				if len(args) > 1 {
					return fmt.Errorf("%v takes no arguments", op)
				}
				xs = []float64{0}
			case len(args) > 1:
				for _, arg := range args[1:] {
					x, err := strconv.ParseFloat(arg, 64)
					if err != nil {
						return err
					}
					xs = append(xs, x)
				}
			default:
				a.log.Debug("reading arguments from stdin")
				if xs, err = readInput(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			a.log.WithFields(logrus.Fields{
				"dist": describeDist(args[0], params),
				"op":   op,
				"n":    len(xs),
			}).Debug("evaluating")
			rs, err := stats.EvalEach(d, op, xs)
			if err != nil {
				return err
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			for i, r := range rs {
				if !r.Defined {
					a.log.WithField("x", xs[i]).Infof("%v is undefined", op)
				}
				fmt.Fprintln(w, a.formatResult(r))
			}
			return w.Flush()
		},
	}
	addParamFlag(cmd.Flags(), &params)
	cmd.Flags().StringVar(&opName, "op", "pdf", "operation: "+opNames())
	return cmd
}

func (a *app) formatResult(r stats.Result) string {
	if !r.Defined {
		return "undefined"
	}
	return a.format(r.Value)
}

func opNames() string {
	var names []string
	for _, op := range stats.Ops {
		names = append(names, op.String())
	}
	return strings.Join(names, ", ")
}

// readInput reads newline-separated numbers from r. Blank lines are
// skipped.
func readInput(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return xs, nil
}
