package econ

// CashFlow is the net cash flow of a project, one value per year starting at
// year 0.
type CashFlow []float64

// NewCashFlow builds the project cash flow from its initial cost and its
// savings trajectory (as returned by Savings).
//
// The cost is incurred once at year 0; every other year carries the savings
// of that year. savings is not modified.
func NewCashFlow(initialCost float64, savings []float64) CashFlow {
	if len(savings) == 0 {
		return CashFlow{-initialCost}
	}
	cf := make(CashFlow, len(savings))
	copy(cf, savings)
	cf[0] = -initialCost + savings[0]
	return cf
}

// Sum returns the undiscounted sum of the cash flow.
func (cf CashFlow) Sum() float64 {
	var sum float64
	for _, v := range cf {
		sum += v
	}
	return sum
}

// Discounted returns a copy of the cash flow where each value has been
// discounted to its present value at the given yearly rate (0.05 for 5%).
func (cf CashFlow) Discounted(rate float64) CashFlow {
	res := make(CashFlow, len(cf))
	factor := 1.0
	for i, v := range cf {
		res[i] = v / factor
		factor *= 1 + rate
	}
	return res
}

// signChanges counts the sign changes in the cash flow, ignoring zeros.
func (cf CashFlow) signChanges() int {
	n := 0
	prev := 0.0
	for _, v := range cf {
		if v == 0 {
			continue
		}
		if prev != 0 && (v < 0) != (prev < 0) {
			n++
		}
		prev = v
	}
	return n
}
