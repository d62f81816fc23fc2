package renderer

import (
	"fmt"
	"math"
	"strconv"

	"github.com/etnz/econ"
	"github.com/shopspring/decimal"
)

// NotApplicable is displayed in place of an undefined measure.
const NotApplicable = "n/a"

// RateOfReturn formats an IRR (a fraction) as a percentage with one decimal.
func RateOfReturn(irr econ.Metric) string {
	v, ok := irr.Get()
	if !ok {
		return NotApplicable
	}
	return econ.PercentOf(v).Fixed(1) + " / year"
}

// Payback formats a simple payback in years with one decimal. A negative
// payback means the cost is never recovered.
func Payback(p econ.Metric) string {
	v, ok := p.Get()
	switch {
	case !ok:
		return NotApplicable
	case v < 0:
		return "never (negative savings)"
	case !finite(v):
		return NotApplicable
	}
	return decimal.NewFromFloat(v).StringFixed(1) + " years"
}

// Ratio formats a benefit/cost ratio with 3 significant figures.
func Ratio(r econ.Metric) string {
	v, ok := r.Get()
	if !ok {
		return NotApplicable
	}
	return strconv.FormatFloat(v, 'g', 3, 64)
}

// BreakEven formats the break-even year.
func BreakEven(y econ.Metric) string {
	v, ok := y.Get()
	if !ok {
		return "never"
	}
	return fmt.Sprintf("year %d", int(v))
}

// Cash formats an amount rounded to the unit, thousands grouped.
func Cash(v float64, currency string) string {
	if !finite(v) {
		return NotApplicable
	}
	return econ.M(v, currency).Whole()
}

func finite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }

// Years formats a project life.
func Years(n int) string {
	if n == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", n)
}

// rate formats an input rate the way it was entered: 2.5 gives "2.5%".
func rate(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

// Escalation describes the savings escalation relative to inflation.
func Escalation(pct float64) string {
	switch {
	case pct > 0:
		return rate(pct) + " / year more than inflation"
	case pct < 0:
		return rate(-pct) + " / year less than inflation"
	}
	return "at general inflation rate"
}

// Inflation describes the general inflation rate.
func Inflation(pct float64) string { return rate(pct) + " / year" }

// Discount describes the real discount rate.
func Discount(pct float64) string { return rate(pct) + " / year more than general inflation" }
