package cmd

import (
	"flag"
	"strings"
	"time"

	"github.com/etnz/capgains/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors predicts the values of flags by name. Other flags take any value.
var flagPredictors = map[string]complete.Predictor{
	"data":         predict.Dirs("*"),
	"in":           predict.Dirs("*"),
	"out":          predict.Dirs("*"),
	"o":            predict.Files("*.csv"),
	"json-mapping": predict.Files("*.json"),
	"format":       predict.Set{"csv", "jsonl", "md"},
	"fy-start":     months(),
}

func months() predict.Set {
	var set predict.Set
	for m := time.January; m <= time.December; m++ {
		set = append(set, strings.ToLower(m.String()))
	}
	return set
}

// isBool reports whether f is a boolean flag, that takes no value.
func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// predictFlags returns the predictors of every flag of fs.
func predictFlags(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		switch p, ok := flagPredictors[f.Name]; {
		case ok:
			flags[f.Name] = p
		case isBool(f):
			flags[f.Name] = predict.Nothing
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}

// Completion describes the cgs command line for shell completion: its
// global flags and the flags and arguments of each subcommand.
func Completion(global *flag.FlagSet) *complete.Command {
	c := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: predictFlags(global),
	}
	for _, cmd := range Commands {
		c.Sub[cmd.Name()] = subCompletion(cmd)
	}
	return c
}

func subCompletion(cmd subcommands.Command) *complete.Command {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(fs)
	sub := &complete.Command{Flags: predictFlags(fs)}
	switch cmd.Name() {
	case "topic":
		topics, _ := docs.GetAllTopics()
		sub.Args = predict.Set(topics)
	case "extract":
		sub.Args = predict.Files("*.xlsx")
	}
	return sub
}
