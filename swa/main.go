// Command swa extracts figures from spreadsheet exports and studies safe withdrawal rates.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/swr-analysis/swr"
	"github.com/swr-analysis/swr/cmd"
	"github.com/swr-analysis/swr/docs"
)

func main() {
	if err := cmd.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	completion().Complete("swa")

	flag.Parse()
	if err := cmd.Setup(flag.CommandLine); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	// unknown subcommands are looked up as swa-<name> extensions.
	if name := flag.Arg(0); name != "" && !known(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

// known reports whether name is a registered subcommand.
func known(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		found = found || c.Name() == name
	})
	return found
}

// completion describes the command line for shell completion.
func completion() *complete.Command {
	topics, _ := docs.GetAllTopics()
	args := map[string]complete.Predictor{
		"convert": predict.Files("*.csv"),
		"changes": predict.Set(swr.DefaultSeries),
		"import":  predict.Set(swr.DefaultSeries),
		"topic":   predict.Set(topics),
	}

	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flags(flag.CommandLine),
	}
	for _, c := range cmd.Commands {
		set := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(set)
		root.Sub[c.Name()] = &complete.Command{Flags: flags(set), Args: args[c.Name()]}
	}
	return root
}

func flags(set *flag.FlagSet) map[string]complete.Predictor {
	res := make(map[string]complete.Predictor)
	set.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			res[f.Name] = predict.Nothing
			return
		}
		res[f.Name] = predict.Something
	})
	return res
}
