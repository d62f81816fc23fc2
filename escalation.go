package econ

// EscalationMultiplier returns the year-over-year growth factor of savings.
//
// Savings follow general inflation and escalate on top of it, so both rates
// compound: (1 + inflation) × (1 + escalation).
func EscalationMultiplier(escalationPct, inflationPct float64) float64 {
	return (1 + inflationPct/100) * (1 + escalationPct/100)
}

// Savings returns the nominal savings trajectory of a project.
//
// The result has life+1 elements: element 0 is always 0 (nothing is saved at
// year 0) and element i is firstYear × multiplier^(i-1). A life of 0 or less
// yields [0].
func Savings(firstYear, escalationPct, inflationPct float64, life int) []float64 {
	if life < 0 {
		life = 0
	}
	savings := make([]float64, life+1)
	mult := EscalationMultiplier(escalationPct, inflationPct)
	s := firstYear
	for i := 1; i <= life; i++ {
		savings[i] = s
		s *= mult
	}
	return savings
}
