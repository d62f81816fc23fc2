package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/etnz/econ"
	"github.com/etnz/econ/insee"
)

// projectFlags holds the flags describing a project, shared by the commands
// that evaluate one.
type projectFlags struct {
	file     string
	cpiYears int
	in       econ.ProjectInputs
}

func (p *projectFlags) SetFlags(f *flag.FlagSet) {
	d := econ.DefaultInputs()
	f.StringVar(&p.file, "f", "", "YAML or JSON project file. Flags set on the command line override its values.")
	f.Float64Var(&p.in.InitialCost, "cost", d.InitialCost, "Initial cost of the project, at year 0")
	f.IntVar(&p.in.LifeYears, "life", d.LifeYears, fmt.Sprintf("Project life in years (1 to %d)", econ.MaxLifeYears))
	f.Float64Var(&p.in.FirstYearSavings, "savings", d.FirstYearSavings, "Net savings or revenue in year 1")
	f.Float64Var(&p.in.SavingsEscalationPct, "escalation", d.SavingsEscalationPct, "Escalation of savings in %/year above general inflation")
	f.Float64Var(&p.in.GeneralInflationPct, "inflation", d.GeneralInflationPct, "Average general inflation in %/year")
	f.Float64Var(&p.in.DiscountRatePct, "discount", d.DiscountRatePct, "Real discount rate in %/year above general inflation")
	f.IntVar(&p.cpiYears, "cpi-years", 0, "Use the average French consumer price inflation of the last N years (INSEE) as general inflation")
}

// newInseeClient is replaced in tests.
var newInseeClient = insee.NewClient

// inputs returns the project described by the file and the flags. Flags
// explicitly set on the command line take precedence over the file.
func (p *projectFlags) inputs(ctx context.Context, f *flag.FlagSet) (econ.ProjectInputs, error) {
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	in := p.in
	if p.file != "" {
		var err error
		in, err = econ.DecodeInputsFile(p.file)
		if err != nil {
			return in, fmt.Errorf("reading project file: %w", err)
		}
		override(&in, p.in, set)
	}

	if p.cpiYears != 0 {
		if set["inflation"] {
			return in, errors.New("-inflation and -cpi-years are mutually exclusive")
		}
		rate, err := newInseeClient().Inflation(ctx, p.cpiYears, time.Now())
		if err != nil {
			return in, fmt.Errorf("computing inflation from INSEE: %w", err)
		}
		log.Printf("Average inflation over %d years: %.2f%%/year", p.cpiYears, rate)
		in.GeneralInflationPct = rate
	}

	if err := in.Validate(); err != nil {
		return in, err
	}
	return in, nil
}

// override copies into dst the fields of src whose flag is set.
func override(dst *econ.ProjectInputs, src econ.ProjectInputs, set map[string]bool) {
	if set["cost"] {
		dst.InitialCost = src.InitialCost
	}
	if set["life"] {
		dst.LifeYears = src.LifeYears
	}
	if set["savings"] {
		dst.FirstYearSavings = src.FirstYearSavings
	}
	if set["escalation"] {
		dst.SavingsEscalationPct = src.SavingsEscalationPct
	}
	if set["inflation"] {
		dst.GeneralInflationPct = src.GeneralInflationPct
	}
	if set["discount"] {
		dst.DiscountRatePct = src.DiscountRatePct
	}
}

// analyze evaluates the project described by the flags.
func (p *projectFlags) analyze(ctx context.Context, f *flag.FlagSet) (*econ.Analysis, error) {
	in, err := p.inputs(ctx, f)
	if err != nil {
		return nil, err
	}
	return econ.Analyze(in)
}
