package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/swr-analysis/swr"
	"github.com/swr-analysis/swr/store"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "store historical series and their changes in sqlite" }
func (*importCmd) Usage() string {
	return `swa import [series...]

  Reads each series from the data folder and replaces its points, with their monthly
  change, in the sqlite database. Without series, the simulator's default series are used.

`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (*importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names := f.Args()
	if len(names) == 0 {
		names = swr.DefaultSeries
	}

	all, err := swr.LoadSeriesDir(*dataDir, names...)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading series: %v\n", err)
		return subcommands.ExitFailure
	}

	db, err := store.Open(*dbFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error opening database %q: %v\n", *dbFile, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	for _, s := range all {
		n, err := db.Import(ctx, s)
		if err != nil {
			fmt.Fprintf(stderr, "Error importing %s: %v\n", s.Name, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "Imported %d points of %s into %s\n", n, s.Name, *dbFile)
	}
	return subcommands.ExitSuccess
}
