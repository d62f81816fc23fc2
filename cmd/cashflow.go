package cmd

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/econ"
	"github.com/etnz/econ/renderer"
	"github.com/google/subcommands"
)

type cashflowCmd struct {
	project projectFlags
	format  string
}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "print the year by year cash flow of a project" }
func (*cashflowCmd) Usage() string {
	return `econ cashflow [-f <project>] [project flags] [-format term|md|json|csv]

  Print, for each year of the project life, the savings, the net cash flow,
  the discounted cash flow and the cumulative cash flow.
`
}

func (c *cashflowCmd) SetFlags(f *flag.FlagSet) {
	c.project.SetFlags(f)
	f.StringVar(&c.format, "format", formatTerm, "Output format: term, md, json or csv")
}

func (c *cashflowCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := checkFormat(c.format, formatTerm, formatMD, formatJSON, formatCSV); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, err := c.project.analyze(ctx, f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	switch c.format {
	case formatJSON:
		err = printJSON(a.Years())
	case formatCSV:
		err = writeCSV(a.Years())
	default:
		err = printDocument(c.format, renderer.CashFlowMarkdown(a, *currency))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func writeCSV(years []econ.YearDetail) error {
	w := csv.NewWriter(stdout)
	w.Write([]string{"year", "savings", "cash_flow", "discounted", "cumulative"})
	amount := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
	for _, y := range years {
		w.Write([]string{strconv.Itoa(y.Year), amount(y.Savings), amount(y.CashFlow), amount(y.Discounted), amount(y.Cumulative)})
	}
	w.Flush()
	return w.Error()
}
