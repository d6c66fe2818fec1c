package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/swr-analysis/swr"
	"github.com/swr-analysis/swr/renderer"
)

type simulateCmd struct {
	queryFlags
	portfolio string
	start     int
	rebalance string
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "run a single simulation" }
func (*simulateCmd) Usage() string {
	return `swa simulate [-portfolio P] [-rebalance R] [-start Y] [-end Y] [-years N] [-wr R] ...

  Asks the simulation service for the outcome of withdrawing wr percent of a portfolio
  every year, for retirements starting each month from start to end.

`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	c.queryFlags.SetFlags(f)
	def := swr.DefaultQuery()
	f.StringVar(&c.portfolio, "portfolio", def.Portfolio.String(), "portfolio allocations, such as us_stocks:60;us_bonds:40;")
	f.IntVar(&c.start, "start", def.Start, "first start year of the simulated retirements")
	f.StringVar(&c.rebalance, "rebalance", def.Rebalance.String(), "rebalancing: none, monthly, yearly or threshold")
}

func (c *simulateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	q, err := c.Query()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if q.Portfolio, err = swr.ParsePortfolio(c.portfolio); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if q.Rebalance, err = swr.ParseRebalancing(c.rebalance); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	q.Start = c.start

	res, err := newClient().Simulate(ctx, q)
	if err != nil {
		fmt.Fprintf(stderr, "Error: simulation failed: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ResultsMarkdown(q, res, *currency))
	return subcommands.ExitSuccess
}
