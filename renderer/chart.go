package renderer

import (
	"fmt"
	"math"
	"strings"
)

const (
	chartWidth  = 24  // width of each side of the axis
	negativeBar = "░" // years still below water
	positiveBar = "█"
)

// CumulativeChart draws the cumulative cash flow as horizontal bars, one line
// per year. Negative values extend left of the axis, positive values right of
// it, with a different fill.
func CumulativeChart(cumulative []float64, currency string) string {
	var b strings.Builder
	var maxAbs float64
	for _, v := range cumulative {
		if finite(v) {
			maxAbs = math.Max(maxAbs, math.Abs(v))
		}
	}
	for year, v := range cumulative {
		n := 0
		switch {
		case math.IsInf(v, 0):
			n = chartWidth
		case finite(v) && maxAbs > 0:
			n = int(math.Round(math.Abs(v) / maxAbs * chartWidth))
		}
		var left, right string
		if v < 0 {
			left = strings.Repeat(negativeBar, n)
		} else {
			right = strings.Repeat(positiveBar, n)
		}
		fmt.Fprintf(&b, "%4d %*s|%-*s %s\n", year, chartWidth, left, chartWidth, right, Cash(v, currency))
	}
	return b.String()
}
