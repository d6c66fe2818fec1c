package swr

import (
	"slices"
	"strings"
)

// BalanceReport arranges the cells of a grid for comparison: one section per
// rebalancing strategy, one row per start year, one column per portfolio.
type BalanceReport struct {
	Metric     string
	Currency   string // currency of money metrics
	Portfolios []string
	Sections   []BalanceSection
}

// BalanceSection holds the rows of one rebalancing strategy.
type BalanceSection struct {
	Rebalance Rebalancing
	Rows      []BalanceRow
}

// BalanceRow holds the metric of each portfolio for one start year.
// Values[i] belongs to Portfolios[i]; nil when the simulation failed.
type BalanceRow struct {
	Start  int
	Values []*float64
}

// IsMoney reports whether the metric is an amount of money (a terminal value).
func (r *BalanceReport) IsMoney() bool { return strings.HasPrefix(r.Metric, "tv_") }

// NewBalanceReport pivots cells. Strategies, portfolios and years keep the order of
// their first appearance in cells.
func NewBalanceReport(cells []Cell, metric, currency string) *BalanceReport {
	r := &BalanceReport{Metric: metric, Currency: currency}

	var rebalances []Rebalancing
	var years []int
	for _, c := range cells {
		if !slices.Contains(rebalances, c.Rebalance) {
			rebalances = append(rebalances, c.Rebalance)
		}
		if p := c.Portfolio.String(); !slices.Contains(r.Portfolios, p) {
			r.Portfolios = append(r.Portfolios, p)
		}
		if !slices.Contains(years, c.Start) {
			years = append(years, c.Start)
		}
	}

	for _, rebalance := range rebalances {
		section := BalanceSection{Rebalance: rebalance}
		for _, year := range years {
			row := BalanceRow{Start: year, Values: make([]*float64, len(r.Portfolios))}
			for _, c := range cells {
				if c.Rebalance == rebalance && c.Start == year {
					v := c.Value
					row.Values[slices.Index(r.Portfolios, c.Portfolio.String())] = &v
				}
			}
			section.Rows = append(section.Rows, row)
		}
		r.Sections = append(r.Sections, section)
	}
	return r
}

// ChangesReport lists the monthly changes of a series.
type ChangesReport struct {
	Series  string
	Changes []Change
}

// SummaryReport compares the monthly changes of several series.
type SummaryReport struct {
	Summaries []Summary
}
