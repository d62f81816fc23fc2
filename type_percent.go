package econ

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Percent is a rate expressed in percent: 2.5 means 2.5%.
type Percent float64

// PercentOf converts a fraction (0.025) to a Percent (2.5).
func PercentOf(fraction float64) Percent { return Percent(fraction * 100) }

// Fixed formats p rounded to the given number of decimals, "7.8%" for 1.
func (p Percent) Fixed(places int32) string {
	if v := float64(p); math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', -1, 64) + "%"
	}
	return decimal.NewFromFloat(float64(p)).StringFixed(places) + "%"
}

func (p Percent) String() string { return p.Fixed(2) }
