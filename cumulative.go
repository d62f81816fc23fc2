package econ

// Cumulative returns the running sum of the cash flow: element i is the sum of
// cf[0..i]. No discounting is applied.
func Cumulative(cf CashFlow) []float64 {
	cum := make([]float64, len(cf))
	var sum float64
	for i, v := range cf {
		sum += v
		cum[i] = sum
	}
	return cum
}

// BreakEven returns the first year where the cumulative cash flow is no
// longer negative, or Undefined if the project never gets there.
func BreakEven(cumulative []float64) Metric {
	for i, v := range cumulative {
		if v >= 0 {
			return Defined(float64(i))
		}
	}
	return Undefined
}
