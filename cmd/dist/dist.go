// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dist evaluates a parametric probability distribution.
//
// Usage:
//
//	dist eval <kind> -p name=value... [--op op] [x...]
//	dist describe <kind> -p name=value...
//	dist kinds
//	dist quantile-ci [-q quantile] [-c confidence] < sample
//
// eval reads newline-separated arguments from stdin if none are given
// on the command line. Negative arguments must follow "--".
//
// The environment variables DIST_LOG_LEVEL and DIST_PRECISION set the
// defaults for --log-level and --precision.
package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type config struct {
	LogLevel  string `env:"DIST_LOG_LEVEL" envDefault:"warning"`
	Precision int    `env:"DIST_PRECISION" envDefault:"6"`
}

// loadConfig reads the configuration from the environment.
func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// app holds the state shared by all subcommands.
type app struct {
	log       *logrus.Logger
	logLevel  string
	precision int
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg config) *cobra.Command {
	a := &app{log: logrus.New()}
	a.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	root := &cobra.Command{
		Use:          "dist",
		Short:        "Evaluate a probability distribution",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.log.SetOutput(cmd.ErrOrStderr())
			level, err := logrus.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.log.SetLevel(level)
			if a.precision < 1 || a.precision > 17 {
				return fmt.Errorf("precision %d not in [1, 17]", a.precision)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", cfg.LogLevel, "log level (debug, info, warning, error)")
	root.PersistentFlags().IntVar(&a.precision, "precision", cfg.Precision, "significant digits in printed values")

	root.AddCommand(a.evalCmd(), a.describeCmd(), a.kindsCmd(), a.quantileCICmd())
	return root
}

// format formats v with the configured precision.
func (a *app) format(v float64) string {
	return fmt.Sprintf("%.*g", a.precision, v)
}
