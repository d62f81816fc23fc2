package renderer

import (
	"github.com/etnz/econ"
)

// Report is the view of an analysis, every figure formatted for display.
type Report struct {
	Title         string     `json:"title"`
	Currency      string     `json:"currency"`
	Inputs        InputsView `json:"inputs"`
	RateOfReturn  string     `json:"rateOfReturn"`
	SimplePayback string     `json:"simplePayback"`
	NPV           string     `json:"npv"`
	BCRatio       string     `json:"bcRatio"`
	BreakEven     string     `json:"breakEven"`
	Verdict       string     `json:"verdict"`
	Chart         string     `json:"chart"`
	Years         []YearRow  `json:"years"`
	Notes         []Note     `json:"notes"`
}

// InputsView is the formatted project inputs.
type InputsView struct {
	InitialCost      string `json:"initialCost"`
	Life             string `json:"life"`
	FirstYearSavings string `json:"firstYearSavings"`
	Escalation       string `json:"escalation"`
	Inflation        string `json:"inflation"`
	Discount         string `json:"discount"`
}

// YearRow is a line of the cash flow table.
type YearRow struct {
	Year       int    `json:"year"`
	Savings    string `json:"savings"`
	CashFlow   string `json:"cashFlow"`
	Discounted string `json:"discounted"`
	Cumulative string `json:"cumulative"`
}

// Note explains one of the measures.
type Note struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// NewReport builds the view of the analysis. Cash values are formatted in
// currency, USD if empty.
func NewReport(a *econ.Analysis, currency string) *Report {
	if currency == "" {
		currency = "USD"
	}
	in := a.Inputs
	r := &Report{
		Title:    "Energy Project Economics",
		Currency: currency,
		Inputs: InputsView{
			InitialCost:      Cash(in.InitialCost, currency),
			Life:             Years(in.LifeYears),
			FirstYearSavings: Cash(in.FirstYearSavings, currency),
			Escalation:       Escalation(in.SavingsEscalationPct),
			Inflation:        Inflation(in.GeneralInflationPct),
			Discount:         Discount(in.DiscountRatePct),
		},
		RateOfReturn:  RateOfReturn(a.IRR),
		SimplePayback: Payback(a.SimplePayback),
		NPV:           Cash(a.NPV, currency),
		BCRatio:       Ratio(a.BCRatio),
		BreakEven:     BreakEven(a.BreakEven),
		Verdict:       verdict(a),
		Chart:         CumulativeChart(a.Cumulative, currency),
		Notes:         notes,
	}
	for _, y := range a.Years() {
		r.Years = append(r.Years, YearRow{
			Year:       y.Year,
			Savings:    Cash(y.Savings, currency),
			CashFlow:   Cash(y.CashFlow, currency),
			Discounted: Cash(y.Discounted, currency),
			Cumulative: Cash(y.Cumulative, currency),
		})
	}
	return r
}

func verdict(a *econ.Analysis) string {
	rate := econ.PercentOf(a.NominalDiscountRate).Fixed(2)
	switch {
	case a.NeverRecovers():
		return "The project never recovers its initial cost: its savings are negative."
	case a.NPV > 0:
		return "The project is cost-effective: its Net Present Value at a " + rate + " nominal discount rate is positive."
	case a.NPV == 0:
		return "The project breaks even at a " + rate + " nominal discount rate."
	}
	return "The project is not cost-effective: its Net Present Value at a " + rate + " nominal discount rate is negative."
}

var notes = []Note{
	{
		Label: "Rate of Return",
		Text: "The project is cost-effective if this rate exceeds the return of an alternative investment of comparable risk. " +
			"Most residential energy projects provide tax-free income. " +
			"This is a nominal rate of return, it has not been reduced for general inflation.",
	},
	{
		Label: "Simple Payback",
		Text: "The initial cost divided by the first year savings: " +
			"the number of years needed to return the investment if the first year savings continued without change.",
	},
	{
		Label: "Net Present Value",
		Text: "The benefits of the project minus its costs, future benefits being discounted for the time value of money. " +
			"The project is cost-effective if it is greater than 0.",
	},
	{
		Label: "Benefit/Cost Ratio",
		Text: "The discounted benefits of the project divided by its cost. " +
			"The project is cost-effective if it is greater than 1.0.",
	},
	{
		Label: "Cumulative Cash Flow",
		Text: "The running total of the project cash flow over its life. It starts negative with the initial cost, " +
			"then grows as savings accumulate. Savings escalation is included, the time value of money is not.",
	},
}

// Comparison is the side by side view of several scenarios.
type Comparison struct {
	Title string          `json:"title"`
	Names []string        `json:"names"`
	Rows  []ComparisonRow `json:"rows"`
}

// ComparisonRow is one measure across all scenarios.
type ComparisonRow struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// NewComparison builds the comparison of analyses, names[i] naming analyses[i].
func NewComparison(names []string, analyses []*econ.Analysis, currency string) *Comparison {
	c := &Comparison{Title: "Scenario Comparison", Names: names}
	reports := make([]*Report, len(analyses))
	for i, a := range analyses {
		reports[i] = NewReport(a, currency)
	}
	row := func(label string, value func(*Report) string) {
		r := ComparisonRow{Label: label}
		for _, rep := range reports {
			r.Values = append(r.Values, value(rep))
		}
		c.Rows = append(c.Rows, r)
	}
	row("Initial cost", func(r *Report) string { return r.Inputs.InitialCost })
	row("Expected life", func(r *Report) string { return r.Inputs.Life })
	row("First year savings", func(r *Report) string { return r.Inputs.FirstYearSavings })
	row("Savings escalation", func(r *Report) string { return r.Inputs.Escalation })
	row("General inflation", func(r *Report) string { return r.Inputs.Inflation })
	row("Discount rate", func(r *Report) string { return r.Inputs.Discount })
	row("Rate of Return", func(r *Report) string { return r.RateOfReturn })
	row("Simple Payback", func(r *Report) string { return r.SimplePayback })
	row("Net Present Value", func(r *Report) string { return r.NPV })
	row("Benefit/Cost Ratio", func(r *Report) string { return r.BCRatio })
	row("Break-even", func(r *Report) string { return r.BreakEven })
	return c
}
