package econ

import "math"

// NominalRate combines a real rate with inflation, both in percent, and
// returns the nominal rate as a fraction (0.0557 for 5.57%).
func NominalRate(realPct, inflationPct float64) float64 {
	return (1+realPct/100)*(1+inflationPct/100) - 1
}

// NPV returns the net present value of the cash flow at the given yearly rate
// (a fraction). Year 0 is not discounted. A zero rate yields the plain sum.
func NPV(rate float64, cf CashFlow) float64 {
	var npv float64
	factor := 1.0
	for _, v := range cf {
		npv += v / factor
		factor *= 1 + rate
	}
	return npv
}

// BenefitCostRatio returns (npv + initialCost) / initialCost, the discounted
// benefits per unit of cost. It is undefined for a project with no cost.
func BenefitCostRatio(npv, initialCost float64) Metric {
	if initialCost == 0 {
		return Undefined
	}
	return Defined((npv + initialCost) / initialCost)
}

// SimplePayback returns the number of years needed to recover the initial
// cost if the first year savings never changed.
//
// It is undefined when there are no savings. Negative savings give a negative
// payback: the project never recovers its cost, it is up to the caller to
// present it that way.
func SimplePayback(initialCost, firstYearSavings float64) Metric {
	if firstYearSavings == 0 {
		return Undefined
	}
	return Defined(initialCost / firstYearSavings)
}

// Bounds of the IRR search, as yearly rates.
const (
	irrMinRate   = -0.99 // -99%/year
	irrMaxRate   = 100.0 // 10000%/year
	irrGridSize  = 2000
	irrTolerance = 1e-13
	irrMaxIter   = 200
)

// IRR returns the internal rate of return of the cash flow: the yearly rate
// (a fraction) at which its NPV is zero.
//
// IRR is undefined when the cash flow never changes sign, when no rate in
// (-99%, 10000%] zeroes the NPV, or when the search does not converge.
//
// A cash flow that changes sign more than once may have several rates of
// return. IRR then returns the one closest to zero. The search scans a grid
// of about 0.46% steps on the discount factor 1/(1+r): two rates closer than
// one step cancel out and may be missed, leaving IRR undefined or returning
// another rate.
func IRR(cf CashFlow) Metric {
	if cf.signChanges() == 0 {
		return Undefined
	}
	roots := irrRoots(cf)
	if len(roots) == 0 {
		return Undefined
	}
	best := roots[0]
	for _, r := range roots[1:] {
		if math.Abs(r) < math.Abs(best) {
			best = r
		}
	}
	return Defined(best)
}

// irrRoots returns every rate found in the search range where the NPV of cf
// changes sign or is exactly zero.
//
// The search works on the discount factor x = 1/(1+r), where the NPV is the
// polynomial sum(cf[i] x^i). x is scanned on a geometric grid, each bracket
// with a sign change is refined by bisection.
func irrRoots(cf CashFlow) []float64 {
	poly := func(x float64) float64 {
		var p float64
		for i := len(cf) - 1; i >= 0; i-- {
			p = p*x + cf[i]
		}
		return p
	}

	lo, hi := 1/(1+irrMaxRate), 1/(1+irrMinRate)
	step := math.Pow(hi/lo, 1.0/irrGridSize)

	var roots []float64
	prevX, prevV := lo, poly(lo)
	if prevV == 0 {
		roots = append(roots, 1/prevX-1)
	}
	for k := 1; k <= irrGridSize; k++ {
		x := lo * math.Pow(step, float64(k))
		if k == irrGridSize {
			x = hi
		}
		v := poly(x)
		switch {
		case v == 0:
			roots = append(roots, 1/x-1)
		case prevV != 0 && (v < 0) != (prevV < 0):
			if root, ok := bisect(poly, prevX, x, prevV); ok {
				roots = append(roots, 1/root-1)
			}
		}
		prevX, prevV = x, v
	}
	return roots
}

// bisect finds a zero of f in [lo, hi] given f(lo) = flo and a sign change
// over the interval.
func bisect(f func(float64) float64, lo, hi, flo float64) (float64, bool) {
	for range irrMaxIter {
		mid := (lo + hi) / 2
		fm := f(mid)
		if fm == 0 || (hi-lo)/2 <= irrTolerance*math.Max(1, math.Abs(mid)) {
			return mid, true
		}
		if (fm < 0) == (flo < 0) {
			lo, flo = mid, fm
		} else {
			hi = mid
		}
	}
	return 0, false
}
