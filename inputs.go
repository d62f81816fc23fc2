package econ

import (
	"errors"
	"fmt"
	"math"
)

// ProjectInputs describes an energy project to evaluate.
//
// All rates are expressed in percent per year: 2.5 means 2.5%/year.
type ProjectInputs struct {
	InitialCost          float64 `json:"initial_cost" yaml:"initial_cost"`                     // InitialCost is the cost incurred at year 0.
	LifeYears            int     `json:"life_years" yaml:"life_years"`                         // LifeYears is the number of years the project is evaluated over.
	FirstYearSavings     float64 `json:"first_year_savings" yaml:"first_year_savings"`         // FirstYearSavings is the net savings or revenue in year 1.
	SavingsEscalationPct float64 `json:"savings_escalation_pct" yaml:"savings_escalation_pct"` // SavingsEscalationPct is the escalation of savings relative to inflation.
	GeneralInflationPct  float64 `json:"general_inflation_pct" yaml:"general_inflation_pct"`   // GeneralInflationPct is the average inflation over the project life.
	DiscountRatePct      float64 `json:"discount_rate_pct" yaml:"discount_rate_pct"`           // DiscountRatePct is the real (inflation adjusted) discount rate.
}

// MaxLifeYears is the longest project life accepted by Validate.
const MaxLifeYears = 50

// DefaultInputs returns a typical residential project: a 1000 investment
// saving 100 the first year, over 20 years, with savings escalating 0.5%/year
// faster than a 2.5%/year inflation and discounted at 3%/year above inflation.
func DefaultInputs() ProjectInputs {
	return ProjectInputs{
		InitialCost:          1000,
		LifeYears:            20,
		FirstYearSavings:     100,
		SavingsEscalationPct: 0.5,
		GeneralInflationPct:  2.5,
		DiscountRatePct:      3.0,
	}
}

// Validate checks that inputs can be evaluated. It returns an error joining
// every failure found.
func (p ProjectInputs) Validate() error {
	var errs error
	if p.InitialCost < 0 || math.IsNaN(p.InitialCost) || math.IsInf(p.InitialCost, 0) {
		errs = errors.Join(errs, fmt.Errorf("initial cost must be a non-negative number, got %v", p.InitialCost))
	}
	if p.LifeYears < 1 || p.LifeYears > MaxLifeYears {
		errs = errors.Join(errs, fmt.Errorf("project life must be between 1 and %d years, got %d", MaxLifeYears, p.LifeYears))
	}
	rates := []struct {
		name  string
		value float64
	}{
		{"first year savings", p.FirstYearSavings},
		{"savings escalation rate", p.SavingsEscalationPct},
		{"general inflation rate", p.GeneralInflationPct},
		{"discount rate", p.DiscountRatePct},
	}
	for _, r := range rates {
		if math.IsNaN(r.value) || math.IsInf(r.value, 0) {
			errs = errors.Join(errs, fmt.Errorf("%s must be a finite number, got %v", r.name, r.value))
		}
	}
	// a rate of -100% or less wipes out the value of money.
	if p.SavingsEscalationPct <= -100 {
		errs = errors.Join(errs, fmt.Errorf("savings escalation rate must be greater than -100%%, got %v", p.SavingsEscalationPct))
	}
	if p.GeneralInflationPct <= -100 {
		errs = errors.Join(errs, fmt.Errorf("general inflation rate must be greater than -100%%, got %v", p.GeneralInflationPct))
	}
	if p.DiscountRatePct <= -100 {
		errs = errors.Join(errs, fmt.Errorf("discount rate must be greater than -100%%, got %v", p.DiscountRatePct))
	}
	return errs
}
