package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/subcommands"
	"github.com/swr-analysis/swr"
	"github.com/swr-analysis/swr/date"
	"github.com/swr-analysis/swr/renderer"
)

type changesCmd struct {
	summary bool
	within  string
}

func (*changesCmd) Name() string     { return "changes" }
func (*changesCmd) Synopsis() string { return "display the monthly changes of historical series" }
func (*changesCmd) Usage() string {
	return `swa changes [-summary] [-range from..to] [series...]

  Displays the monthly value, change and change in percent of each series read from
  the data folder. Without series, the simulator's default series are used.

`
}

func (c *changesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.summary, "summary", false, "only display the statistics of the changes")
	f.StringVar(&c.within, "range", "", "months to display, such as 2000-01..2009-12")
}

func (c *changesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	within, err := date.ParseRange(c.within)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing range: %v\n", err)
		return subcommands.ExitUsageError
	}
	names := f.Args()
	if len(names) == 0 {
		names = swr.DefaultSeries
	}

	all, err := swr.LoadSeriesDir(*dataDir, names...)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading series: %v\n", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	summaries := new(swr.SummaryReport)
	for _, s := range all {
		s.Values = *s.Values.Within(within)
		changes := s.Changes()
		if !c.summary {
			b.WriteString(renderer.ChangesMarkdown(&swr.ChangesReport{Series: s.Name, Changes: changes}))
			b.WriteString("\n")
			continue
		}
		sum, err := swr.Summarize(s.Name, changes)
		if err != nil {
			slog.Warn("series left out of the summary", "series", s.Name, "error", err)
			continue
		}
		summaries.Summaries = append(summaries.Summaries, sum)
	}
	if c.summary {
		b.WriteString(renderer.SummaryMarkdown(summaries))
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
