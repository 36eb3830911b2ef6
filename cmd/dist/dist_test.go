// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aclements/go-probdist/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the dist command with args and stdin and returns its
// standard output and standard error.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd(config{LogLevel: "warning", Precision: 6})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestEvalArgs(t *testing.T) {
	out, _, err := run(t, "", "eval", "uniform", "-p", "lower=0", "-p", "upper=10", "--op", "cdf", "2.5", "5", "12")
	require.NoError(t, err)
	assert.Equal(t, "0.25\n0.5\n1\n", out)

	out, _, err = run(t, "", "eval", "inverse-gamma", "-p", "shape=3,scale=2", "--op", "mean")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	out, _, err = run(t, "", "eval", "inverse-gamma", "-p", "shape=3,scale=2", "--op", "skewness")
	require.NoError(t, err)
	assert.Equal(t, "undefined\n", out)

	out, _, err = run(t, "", "eval", "exponential", "-p", "rate=1", "--op", "pdf", "--", "-1", "0")
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n", out)

	out, _, err = run(t, "", "--precision", "3", "eval", "normal", "-p", "mu=100,sigma=5", "--op", "quantile", "0.1")
	require.NoError(t, err)
	assert.Equal(t, "93.6\n", out)
}

func TestEvalStdin(t *testing.T) {
	out, _, err := run(t, "0.5\n\n2\n", "eval", "binomial", "-p", "n=5", "-p", "p=0.2", "--op", "cdf")
	require.NoError(t, err)
	assert.Equal(t, "0.32768\n0.94208\n", out)

	_, _, err = run(t, "1\nx\n", "eval", "binomial", "-p", "n=5,p=0.2")
	assert.ErrorContains(t, err, "line 2")
}

func TestEvalErrors(t *testing.T) {
	for _, c := range []struct {
		args []string
		msg  string
	}{
		{[]string{"eval", "cauchy", "-p", "x=1"}, `unknown distribution "cauchy"`},
		{[]string{"eval", "uniform", "-p", "lower=0"}, "missing parameter upper"},
		{[]string{"eval", "uniform", "-p", "lower=0,upper=1,mode=3"}, "has no parameter mode"},
		{[]string{"eval", "uniform", "-p", "lower=0,upper=x"}, "parameter upper"},
		{[]string{"eval", "binomial", "-p", "n=2.5,p=0.1"}, "not an integer"},
		{[]string{"eval", "uniform", "-p", "lower=0,upper=1", "--op", "median", "1"}, `unknown operation "median"`},
		{[]string{"eval", "uniform", "-p", "lower=0,upper=1", "--op", "mean", "1"}, "takes no arguments"},
		{[]string{"--precision", "0", "eval", "uniform", "-p", "lower=0,upper=1", "1"}, "precision"},
		{[]string{"--log-level", "loud", "eval", "uniform", "-p", "lower=0,upper=1", "1"}, "loud"},
	} {
		_, _, err := run(t, "", c.args...)
		assert.ErrorContains(t, err, c.msg, "%v", c.args)
	}

	_, _, err := run(t, "", "eval", "uniform", "-p", "lower=1,upper=0", "0.5")
	assert.ErrorIs(t, err, stats.InvalidBounds)
	_, _, err = run(t, "", "eval", "gamma", "-p", "shape=2,scale=1", "--op", "quantile", "2")
	assert.ErrorIs(t, err, stats.ParameterOutOfRange)
}

func TestDescribe(t *testing.T) {
	out, _, err := run(t, "", "describe", "inverse-gamma", "-p", "shape=3", "-p", "scale=2", "--plot=false")
	require.NoError(t, err)
	assert.Equal(t, `inverse-gamma(shape=3, scale=2)

support          (0, +Inf)
discrete         false
mean             1
variance         1
mode             0.5
skewness         undefined
excess-kurtosis  undefined
entropy          0.695157
1%ile            0.237927
25%ile           0.510152
median           0.747926
75%ile           1.15788
99%ile           4.58668
`, out)
}

func TestDescribePlot(t *testing.T) {
	out, _, err := run(t, "", "describe", "triangular", "-p", "lower=0,mode=1,upper=4")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Greater(t, len(lines), plotHeight+2)
	plot := lines[len(lines)-plotHeight-2:]
	assert.Contains(t, plot[0], "┤")
	assert.Contains(t, plot[0], "█")
	assert.Equal(t, []string{"0", "4"}, strings.Fields(plot[len(plot)-1]))

	// Unbounded and degenerate distributions describe without a plot.
	for _, args := range [][]string{
		{"inverse-gamma", "-p", "shape=0.001", "-p", "scale=1"},
		{"binomial", "-p", "n=0", "-p", "p=0.5"},
	} {
		out, errOut, err := run(t, "", append([]string{"describe"}, args...)...)
		require.NoError(t, err, "describe %v", args)
		assert.Contains(t, out, "median", "describe %v", args)
		assert.NotContains(t, out, "┤", "describe %v", args)
		assert.Contains(t, errOut, "skipping plot", "describe %v", args)
	}
}

func TestFprintPDFBounds(t *testing.T) {
	d, err := stats.NewBinomial(0, 0.5)
	require.NoError(t, err)
	var buf bytes.Buffer
	assert.ErrorIs(t, FprintPDF(&buf, d), errNoPlot)
	assert.Empty(t, buf.String())
}

func TestQuantileCI(t *testing.T) {
	out, _, err := run(t, "5\n1\n4\n2\n3\n", "quantile-ci", "-q", "0.5", "-c", "0.3125001")
	require.NoError(t, err)
	assert.Equal(t, "[2, 4] @ 0.625\n", out)

	out, _, err = run(t, "1\n2\n", "quantile-ci", "-c", "1")
	require.NoError(t, err)
	assert.Equal(t, "[-Inf, +Inf] @ 1\n", out)

	_, _, err = run(t, "1\n2\n", "quantile-ci", "-q", "2")
	assert.ErrorIs(t, err, stats.ParameterOutOfRange)
}

func TestKinds(t *testing.T) {
	out, _, err := run(t, "", "kinds")
	require.NoError(t, err)
	for _, k := range stats.Kinds {
		assert.Contains(t, out, k.String())
	}
	assert.Contains(t, out, "shape scale")
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("DIST_LOG_LEVEL", "debug")
	t.Setenv("DIST_PRECISION", "4")
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config{LogLevel: "debug", Precision: 4}, cfg)

	t.Setenv("DIST_PRECISION", "many")
	_, err = loadConfig()
	assert.ErrorContains(t, err, "parse env")
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := run(t, "", "--log-level", "debug", "eval", "exponential", "-p", "rate=2", "1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "evaluating")
	assert.Contains(t, stderr, "exponential(rate=2)")
}
