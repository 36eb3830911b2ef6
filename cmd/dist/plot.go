// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/aclements/go-probdist/stats"
)

const (
	plotWidth  = 64
	plotHeight = 8
)

// blocks are the partial-height bars used to draw one cell, in
// eighths.
var blocks = []rune(" ▁▂▃▄▅▆▇█")

// errNoPlot is returned by FprintPDF when d has no finite, nonempty
// range to draw.
var errNoPlot = errors.New("cannot plot density")

// FprintPDF prints a bar plot of d's density over d.Bounds() to w.
// Nothing is written if the plot cannot be drawn.
func FprintPDF(w io.Writer, d stats.Dist) error {
	lo, hi := d.Bounds()
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) || !(hi > lo) {
		return fmt.Errorf("%w: %v over [%v, %v]", errNoPlot, d.Kind(), lo, hi)
	}

	ys := make([]float64, plotWidth)
	ymax := 0.0
	for i := range ys {
		x := lo + (hi-lo)*(float64(i)+0.5)/plotWidth
		ys[i] = d.PDF(x)
		if !math.IsInf(ys[i], 0) && ys[i] > ymax {
			ymax = ys[i]
		}
	}
	if ymax == 0 {
		return fmt.Errorf("%w: density of %v is zero over [%v, %v]", errNoPlot, d.Kind(), lo, hi)
	}

	var b strings.Builder
	for row := plotHeight - 1; row >= 0; row-- {
		if row == plotHeight-1 {
			fmt.Fprintf(&b, "%10.4g ┤", ymax)
		} else {
			fmt.Fprintf(&b, "%10s │", "")
		}
		for _, y := range ys {
			// Height of this column in eighths of a row,
			// relative to the bottom of this row.
			h := int(math.Round(math.Min(y/ymax, 1)*plotHeight*8)) - row*8
			switch {
			case h <= 0:
				b.WriteRune(blocks[0])
			case h >= 8:
				b.WriteRune(blocks[8])
			default:
				b.WriteRune(blocks[h])
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%10s └%s\n", "", strings.Repeat("─", plotWidth))
	left, right := fmt.Sprintf("%.4g", lo), fmt.Sprintf("%.4g", hi)
	pad := plotWidth - len(left) - len(right)
	if pad < 1 {
		pad = 1
	}
	fmt.Fprintf(&b, "%10s  %s%s%s\n", "", left, strings.Repeat(" ", pad), right)

	_, err := io.WriteString(w, b.String())
	return err
}
