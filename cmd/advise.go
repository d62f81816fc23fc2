package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/econ/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// adviseCmd is the subcommand for the AI advisor.
type adviseCmd struct{}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "start an interactive session with the AI advisor" }
func (*adviseCmd) Usage() string {
	return `econ advise [<question>]

  Start an interactive session with an AI advisor that evaluates energy
  projects with econ. The question, if any, is asked first.

  It requires a Gemini API key in $GEMINI_API_KEY, or in a .env file.
`
}

func (*adviseCmd) SetFlags(_ *flag.FlagSet) {}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(stdout, os.Stdin, agent.NewAnalyst(*currency))
	a.Print = printMarkdown
	if err := a.Run(ctx, client, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Advisor failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
