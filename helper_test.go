package econ

import (
	"math"
	"testing"
)

const tolerance = 1e-9

// near reports whether a and b are equal up to a relative tolerance.
func near(a, b float64) bool {
	return math.Abs(a-b) <= tolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// mustAnalyze is a helper for tests that expect valid inputs.
func mustAnalyze(t *testing.T, in ProjectInputs) *Analysis {
	t.Helper()
	a, err := Analyze(in)
	if err != nil {
		t.Fatalf("Analyze(%+v) failed: %v", in, err)
	}
	return a
}

// flat returns inputs with no inflation, no escalation and no discount.
func flat(cost float64, life int, savings float64) ProjectInputs {
	return ProjectInputs{InitialCost: cost, LifeYears: life, FirstYearSavings: savings}
}
