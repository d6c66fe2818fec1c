package cmd

import (
	"flag"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/swr-analysis/swr"
)

// queryFlags are the simulation parameters shared by simulate and balance.
type queryFlags struct {
	inflation string
	initial   string
	years     int
	wr        string
	end       int
}

func (q *queryFlags) SetFlags(f *flag.FlagSet) {
	def := swr.DefaultQuery()
	f.StringVar(&q.inflation, "inflation", def.Inflation, "inflation series")
	f.StringVar(&q.initial, "initial", def.Initial.String(), "initial portfolio value")
	f.IntVar(&q.years, "years", def.Years, "duration of the retirement in years")
	f.StringVar(&q.wr, "wr", def.WithdrawalRate.String(), "yearly withdrawal rate in percent")
	f.IntVar(&q.end, "end", def.End, "last start year of the simulated retirements")
}

// Query returns the default query updated with the flags.
func (q *queryFlags) Query() (swr.Query, error) {
	res := swr.DefaultQuery()
	res.Inflation = q.inflation
	res.Years = q.years
	res.End = q.end

	var err error
	if res.Initial, err = decimal.NewFromString(q.initial); err != nil {
		return res, fmt.Errorf("invalid initial value %q: %w", q.initial, err)
	}
	if res.WithdrawalRate, err = decimal.NewFromString(q.wr); err != nil {
		return res, fmt.Errorf("invalid withdrawal rate %q: %w", q.wr, err)
	}
	return res, nil
}

// portfolios is a repeatable -portfolio flag.
type portfolios []swr.Portfolio

func (p *portfolios) String() string {
	var s []string
	for _, x := range *p {
		s = append(s, x.String())
	}
	return strings.Join(s, " ")
}

func (p *portfolios) Set(s string) error {
	x, err := swr.ParsePortfolio(s)
	if err != nil {
		return err
	}
	*p = append(*p, x)
	return nil
}

// rebalancings is a repeatable -rebalance flag, also accepting comma separated values.
type rebalancings []swr.Rebalancing

func (r *rebalancings) String() string {
	var s []string
	for _, x := range *r {
		s = append(s, x.String())
	}
	return strings.Join(s, ",")
}

func (r *rebalancings) Set(s string) error {
	for name := range strings.SplitSeq(s, ",") {
		x, err := swr.ParseRebalancing(name)
		if err != nil {
			return err
		}
		*r = append(*r, x)
	}
	return nil
}
