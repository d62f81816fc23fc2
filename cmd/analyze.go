package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/econ/renderer"
	"github.com/google/subcommands"
)

// analyzeCmd holds the flags for the 'analyze' subcommand.
type analyzeCmd struct {
	project    projectFlags
	format     string
	query      string
	noChart    bool
	noCashFlow bool
	noNotes    bool
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "evaluate the cost-effectiveness of an energy project" }
func (*analyzeCmd) Usage() string {
	return `econ analyze [-f <project>] [-cost <amount>] [-life <years>] [-savings <amount>] [-escalation <%>] [-inflation <%> | -cpi-years <years>] [-discount <%>] [-format term|md|html|json] [-q <jsonpath>]

  Compute the rate of return, net present value, benefit/cost ratio, simple
  payback and cumulative cash flow of a project.

  With -q, print only the JSON value selected by the JSONPath expression,
  for instance '$.npv' or '$.years[-1:].cumulative'.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	c.project.SetFlags(f)
	f.StringVar(&c.format, "format", formatTerm, "Output format: term, md, html or json")
	f.StringVar(&c.query, "q", "", "JSONPath expression selecting the values to print, as JSON")
	f.BoolVar(&c.noChart, "no-chart", false, "Do not render the cumulative cash flow chart")
	f.BoolVar(&c.noCashFlow, "no-cashflow", false, "Do not render the year by year cash flow table")
	f.BoolVar(&c.noNotes, "no-notes", false, "Do not render the explanation of each measure")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := checkFormat(c.format, formatTerm, formatMD, formatHTML, formatJSON); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, err := c.project.analyze(ctx, f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if c.query != "" {
		v, err := a.Query(c.query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		data, err := json.Marshal(v)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, string(data))
		return subcommands.ExitSuccess
	}

	if c.format == formatJSON {
		if err := printJSON(a); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	md := renderer.AnalysisMarkdown(a, renderer.ReportOptions{
		Currency:     *currency,
		SkipChart:    c.noChart,
		SkipCashFlow: c.noCashFlow,
		SkipNotes:    c.noNotes,
	})
	if err := printDocument(c.format, md); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
