package cmd

import (
	"flag"

	"github.com/etnz/econ/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// argPredictors completes the positional arguments of the commands that take
// some.
var argPredictors = map[string]complete.Predictor{
	"compare": predict.Files("*.jsonl"),
	"init":    predict.Files("*.yaml"),
	"topic":   predict.Set(append([]string{"*"}, topicNames()...)),
}

// flagPredictors completes the value of the flags by name.
var flagPredictors = map[string]complete.Predictor{
	"f":        predict.Files("*"),
	"format":   predict.Set{formatTerm, formatMD, formatHTML, formatJSON, formatCSV},
	"currency": predict.Set{"USD", "EUR", "GBP", "CHF", "CAD", "JPY"},
}

func topicNames() []string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return topics
}

// Completion returns the bash completion of the commander's commands and
// their flags.
func Completion(c *subcommands.Commander, global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagsOf(global),
	}
	var names []string
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		root.Sub[cmd.Name()] = &complete.Command{
			Flags: flagsOf(fs),
			Args:  argPredictors[cmd.Name()],
		}
		names = append(names, cmd.Name())
	})
	if help, ok := root.Sub["help"]; ok {
		help.Args = predict.Set(names)
	}
	return root
}

func flagsOf(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		p, ok := flagPredictors[f.Name]
		switch {
		case ok:
		case isBool(f):
			p = predict.Nothing
		default:
			p = predict.Something
		}
		flags[f.Name] = p
	})
	return flags
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
