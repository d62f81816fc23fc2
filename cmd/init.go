package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/econ"
	"github.com/google/subcommands"
)

type initCmd struct {
	project projectFlags
	force   bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "write a project file" }
func (*initCmd) Usage() string {
	return `econ init [project flags] [-force] [<file>]

  Write a YAML project file with the default inputs, overridden by the
  project flags. Without a file, print it.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	c.project.SetFlags(f)
	f.BoolVar(&c.force, "force", false, "Overwrite the file if it exists")
}

func (c *initCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := c.project.inputs(ctx, f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if f.NArg() == 0 {
		if err := econ.EncodeInputs(stdout, in); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	name := f.Arg(0)
	mode := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !c.force {
		mode |= os.O_EXCL
	}
	w, err := os.OpenFile(name, mode, 0o644)
	if errors.Is(err, fs.ErrExist) {
		fmt.Fprintf(os.Stderr, "Error: %s already exists, use -force to overwrite it\n", name)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	err = errors.Join(econ.EncodeInputs(w, in), w.Close())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", name, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Successfully written project to %s\n", name)
	return subcommands.ExitSuccess
}
