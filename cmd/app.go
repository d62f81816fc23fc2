// Package cmd implements the CLI application to evaluate energy projects.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&analyzeCmd{}, "projects")
	c.Register(&cashflowCmd{}, "projects")
	c.Register(&compareCmd{}, "projects")
	c.Register(&initCmd{}, "projects")

	c.Register(&inflationCmd{}, "data")
	c.Register(&adviseCmd{}, "assistant")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// Verbose enables the diagnostic logs.
var Verbose = flag.Bool("v", false, "Enable verbose logging. Defaults to $"+EnvVerbose+".")

var currency = flag.String("currency", "USD", "ISO 4217 code of the currency used to display cash values. Defaults to $"+EnvCurrency+".")

// stdout is where commands write their output. Tests replace it.
var stdout io.Writer = os.Stdout

// Configure completes the parsed global flags with the environment variables
// for the flags not set on the command line, then sets up the log. Diagnostic
// logs go to stderr when verbose and are discarded otherwise.
func Configure(fs *flag.FlagSet) error {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var errs error
	for name, env := range map[string]string{"v": EnvVerbose, "currency": EnvCurrency} {
		v, ok := os.LookupEnv(env)
		if set[name] || !ok || v == "" || fs.Lookup(name) == nil {
			continue
		}
		if err := fs.Set(name, v); err != nil {
			errs = errors.Join(errs, fmt.Errorf("invalid $%s: %w", env, err))
		}
	}

	log.SetFlags(0)
	if *Verbose {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}
	return errs
}

// printMarkdown renders md for the terminal. It falls back to the raw markdown
// if the renderer fails.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		log.Printf("cannot create the markdown renderer: %v", err)
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
