package econ

import (
	"errors"
	"fmt"
	"math"
)

// FinancialMetrics holds the cost-effectiveness measures of a project.
type FinancialMetrics struct {
	NominalDiscountRate float64   // NominalDiscountRate is the rate used for the NPV, as a fraction.
	IRR                 Metric    // IRR is the nominal rate of return, as a fraction.
	NPV                 float64   // NPV is the net present value at the nominal discount rate.
	BCRatio             Metric    // BCRatio is the benefit/cost ratio.
	SimplePayback       Metric    // SimplePayback is in years, negative if the project never recovers.
	BreakEven           Metric    // BreakEven is the first year with a non-negative cumulative cash flow.
	Cumulative          []float64 // Cumulative is the running sum of the cash flow, from year 0.
}

// NewFinancialMetrics computes the metrics of a cash flow.
//
// Undefined metrics do not prevent the others from being computed.
func NewFinancialMetrics(cf CashFlow, discountRatePct, inflationPct, initialCost, firstYearSavings float64) FinancialMetrics {
	rate := NominalRate(discountRatePct, inflationPct)
	npv := NPV(rate, cf)
	cum := Cumulative(cf)
	return FinancialMetrics{
		NominalDiscountRate: rate,
		IRR:                 IRR(cf),
		NPV:                 npv,
		BCRatio:             BenefitCostRatio(npv, initialCost),
		SimplePayback:       SimplePayback(initialCost, firstYearSavings),
		BreakEven:           BreakEven(cum),
		Cumulative:          cum,
	}
}

// NeverRecovers reports whether the simple payback is negative, meaning
// savings are negative and the initial cost is never recovered.
func (m FinancialMetrics) NeverRecovers() bool {
	v, ok := m.SimplePayback.Get()
	return ok && v < 0
}

// Analysis is the complete evaluation of one ProjectInputs snapshot.
type Analysis struct {
	Inputs     ProjectInputs
	Multiplier float64   // Multiplier is the year-over-year growth of savings.
	Savings    []float64 // Savings is the nominal savings trajectory, from year 0.
	CashFlow   CashFlow
	FinancialMetrics
}

// Analyze validates the inputs and evaluates the project.
//
// Every output is derived from the same inputs, in a single pass, so the
// metrics and the cumulative series always match.
func Analyze(in ProjectInputs) (*Analysis, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("invalid project inputs: %w", err)
	}
	savings := Savings(in.FirstYearSavings, in.SavingsEscalationPct, in.GeneralInflationPct, in.LifeYears)
	cf := NewCashFlow(in.InitialCost, savings)
	a := &Analysis{
		Inputs:           in,
		Multiplier:       EscalationMultiplier(in.SavingsEscalationPct, in.GeneralInflationPct),
		Savings:          savings,
		CashFlow:         cf,
		FinancialMetrics: NewFinancialMetrics(cf, in.DiscountRatePct, in.GeneralInflationPct, in.InitialCost, in.FirstYearSavings),
	}
	if err := a.checkFinite(); err != nil {
		return nil, fmt.Errorf("invalid project inputs: %w", err)
	}
	return a, nil
}

// checkFinite reports rates so extreme that some figure overflows.
func (a *Analysis) checkFinite() error {
	finite := func(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }
	for i, v := range a.CashFlow {
		if !finite(v) || !finite(a.Cumulative[i]) {
			return fmt.Errorf("cash flow overflows in year %d, check the escalation and inflation rates", i)
		}
	}
	for _, r := range []float64{a.NominalDiscountRate, a.NPV} {
		if !finite(r) {
			return errors.New("net present value overflows, check the discount and inflation rates")
		}
	}
	for _, m := range []Metric{a.BCRatio, a.SimplePayback} {
		if v, ok := m.Get(); ok && !finite(v) {
			return errors.New("measures overflow, check the initial cost and first year savings")
		}
	}
	return nil
}

// Years returns the detail of every year, from year 0.
func (a *Analysis) Years() []YearDetail {
	discounted := a.CashFlow.Discounted(a.NominalDiscountRate)
	years := make([]YearDetail, len(a.CashFlow))
	for i := range years {
		years[i] = YearDetail{
			Year:       i,
			Savings:    a.Savings[i],
			CashFlow:   a.CashFlow[i],
			Discounted: discounted[i],
			Cumulative: a.Cumulative[i],
		}
	}
	return years
}

// YearDetail is one row of the cash flow table.
type YearDetail struct {
	Year       int     `json:"year"`
	Savings    float64 `json:"savings"`
	CashFlow   float64 `json:"cash_flow"`
	Discounted float64 `json:"discounted"`
	Cumulative float64 `json:"cumulative"`
}
