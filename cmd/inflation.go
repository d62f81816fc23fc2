package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/econ/insee"
	"github.com/google/subcommands"
)

// inflationCmd estimates the general inflation rate from INSEE data.
type inflationCmd struct {
	years  int
	idBank string
}

func (*inflationCmd) Name() string     { return "inflation" }
func (*inflationCmd) Synopsis() string { return "average inflation from the INSEE consumer price index" }
func (*inflationCmd) Usage() string {
	return `econ inflation [-years <n>] [-idbank <id>]

  Download a price index series from INSEE and print its average annual
  growth over the last years, to be used as the -inflation of a project.
  Downloads are cached for the day.
`
}

func (c *inflationCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.years, "years", 10, "Number of years to average over")
	f.StringVar(&c.idBank, "idbank", insee.CPI, "INSEE idBank of the price index series")
}

func (c *inflationCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.years < 1 {
		fmt.Fprintf(os.Stderr, "Error: -years must be at least 1, got %d\n", c.years)
		return subcommands.ExitUsageError
	}
	now := time.Now()
	series, err := newInseeClient().Series(ctx, c.idBank, now.AddDate(-c.years-1, 0, 0), now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	rate, err := series.AverageInflation(c.years)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	last := series.Values[len(series.Values)-1]
	fmt.Fprintf(stdout, "%.2f\n", rate)
	fmt.Fprintf(os.Stderr, "%s\naverage over %d years up to %s, last update %s\n",
		series.Libelle, c.years, last.Date.Format(time.DateOnly), series.LastUpdate.Format(time.DateOnly))
	return subcommands.ExitSuccess
}
