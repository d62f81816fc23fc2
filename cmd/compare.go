package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/econ"
	"github.com/etnz/econ/renderer"
	"github.com/google/subcommands"
)

type compareCmd struct {
	format string
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare several project scenarios side by side" }
func (*compareCmd) Usage() string {
	return `econ compare [-format term|md|html|json] <scenarios.jsonl>

  Evaluate every scenario of a JSONL file, one JSON object per line, and
  compare their results. Fields missing from a line keep their default value:

    {"name":"heat pump","initial_cost":12000,"first_year_savings":900}
    {"name":"insulation","initial_cost":4000,"first_year_savings":350,"life_years":30}
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", formatTerm, "Output format: term, md, html or json")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := checkFormat(c.format, formatTerm, formatMD, formatHTML, formatJSON); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: compare expects exactly one scenarios file")
		return subcommands.ExitUsageError
	}

	names, analyses, err := analyzeScenarios(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.format == formatJSON {
		out := make([]map[string]any, len(names))
		for i := range names {
			out[i] = map[string]any{"name": names[i], "analysis": analyses[i]}
		}
		err = printJSON(out)
	} else {
		err = printDocument(c.format, renderer.ComparisonMarkdown(renderer.NewComparison(names, analyses, *currency)))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// analyzeScenarios decodes and evaluates every scenario of the file.
func analyzeScenarios(file string) ([]string, []*econ.Analysis, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()

	scenarios, err := econ.DecodeScenarios(r)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding %s: %w", file, err)
	}
	if len(scenarios) == 0 {
		return nil, nil, fmt.Errorf("no scenario in %s", file)
	}

	var errs error
	names := make([]string, 0, len(scenarios))
	analyses := make([]*econ.Analysis, 0, len(scenarios))
	for _, s := range scenarios {
		a, err := econ.Analyze(s.ProjectInputs)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("scenario %q: %w", s.Name, err))
			continue
		}
		names = append(names, s.Name)
		analyses = append(analyses, a)
	}
	return names, analyses, errs
}
