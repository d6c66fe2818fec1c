package cmd

import (
	"context"
	"flag"
	"fmt"
	"slices"
	"strings"

	"github.com/google/subcommands"
	"github.com/swr-analysis/swr/docs"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "print the documentation of swa" }
func (*topicCmd) Usage() string {
	return `swa topic [-list] [<topic>...]

  Prints the documentation of each topic in turn, the overview when none is given.
  '*' stands for every topic. With -list, prints the topic names instead.

`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "print the names of the topics")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	known, err := docs.GetAllTopics()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.list {
		fmt.Fprintln(stdout, strings.Join(known, "\n"))
		return subcommands.ExitSuccess
	}

	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	for _, topic := range topics {
		if topic != docs.All && topic != "readme" && !slices.Contains(known, topic) {
			fmt.Fprintf(stderr, "unknown topic %q, want one of: %s\n", topic, strings.Join(known, ", "))
			return subcommands.ExitUsageError
		}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
