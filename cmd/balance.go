package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/swr-analysis/swr"
	"github.com/swr-analysis/swr/renderer"
)

// balanceCmd compares rebalancing strategies, by default on three stock/bond
// allocations.
type balanceCmd struct {
	queryFlags
	metric         string
	from, to, step int
	portfolios     portfolios
	rebalancings   rebalancings
}

var (
	defaultPortfolios = []string{"us_stocks:80;us_bonds:20;", "us_stocks:50;us_bonds:50;", "us_stocks:20;us_bonds:80;"}
	defaultRebalances = []swr.Rebalancing{swr.RebalanceNone, swr.RebalanceMonthly, swr.RebalanceYearly}
)

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "compare portfolios and rebalancing strategies" }
func (*balanceCmd) Usage() string {
	return `swa balance [-metric M] [-from Y] [-to Y] [-step N] [-portfolio P]... [-rebalance R]...

  Simulates each portfolio with each rebalancing strategy for retirements starting on
  every step years from 'from' up to 'to' excluded, and displays the metric in a table
  per strategy. See 'swa topic balance'.

`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	c.queryFlags.SetFlags(f)
	f.StringVar(&c.metric, "metric", "tv_median", "result to compare: a results field or a JSON path")
	f.IntVar(&c.from, "from", 1970, "first start year")
	f.IntVar(&c.to, "to", 2020, "start years are before this year")
	f.IntVar(&c.step, "step", 3, "years between two start years")
	f.Var(&c.portfolios, "portfolio", "portfolio to compare, repeatable")
	f.Var(&c.rebalancings, "rebalance", "rebalancing strategy to compare, repeatable")
}

func (c *balanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	base, err := c.Query()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	grid := swr.Grid{
		Rebalances: c.rebalancings,
		Portfolios: c.portfolios,
		Years:      swr.YearRange(c.from, c.to, c.step),
	}
	if len(grid.Rebalances) == 0 {
		grid.Rebalances = defaultRebalances
	}
	if len(grid.Portfolios) == 0 {
		for _, p := range defaultPortfolios {
			grid.Portfolios = append(grid.Portfolios, swr.MustParsePortfolio(p))
		}
	}
	if len(grid.Years) == 0 {
		fmt.Fprintf(stderr, "Error: no start year from %d to %d\n", c.from, c.to)
		return subcommands.ExitUsageError
	}

	cells, err := grid.Run(ctx, newClient(), base, c.metric)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if missing := grid.Size() - len(cells); missing > 0 {
		fmt.Fprintf(stderr, "Warning: %d of %d simulations failed\n", missing, grid.Size())
	}
	printMarkdown(renderer.BalanceMarkdown(swr.NewBalanceReport(cells, c.metric, *currency)))
	return subcommands.ExitSuccess
}
