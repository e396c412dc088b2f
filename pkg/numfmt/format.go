// Package numfmt formats calculator results for display.
//
// Results are rounded to two decimal places. Values that round to an
// exact integer render with no decimal part ("4", not "4.00"); everything
// else renders with exactly two decimal digits ("4.50"). The same helpers
// back the TUI display, the tape, and the CLI output.
package numfmt

import (
	"math"
	"strconv"
)

// Round2 rounds n to two decimal places.
func Round2(n float64) float64 {
	return math.Round(n*100) / 100
}

// Format renders n for display: integer results without decimals,
// fractional results with exactly two decimal digits.
func Format(n float64) string {
	r := Round2(n)
	if r == 0 {
		r = 0 // normalize -0
	}
	if r == math.Trunc(r) {
		return strconv.FormatFloat(r, 'f', 0, 64)
	}
	return strconv.FormatFloat(r, 'f', 2, 64)
}
