package swr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Grid is a set of simulations comparing rebalancing strategies and portfolios over a
// range of retirement start years.
type Grid struct {
	Rebalances []Rebalancing
	Portfolios []Portfolio
	Years      []int
}

// YearRange returns from, from+step, ... up to but excluding to.
func YearRange(from, to, step int) []int {
	if step <= 0 {
		step = 1
	}
	var years []int
	for y := from; y < to; y += step {
		years = append(years, y)
	}
	return years
}

// Size returns the number of simulations of the grid.
func (g Grid) Size() int { return len(g.Rebalances) * len(g.Portfolios) * len(g.Years) }

// Cell is the metric of one simulation of a grid.
type Cell struct {
	Rebalance Rebalancing
	Portfolio Portfolio
	Start     int
	Value     float64
}

// Run simulates every cell of the grid, varying base's rebalancing, portfolio and start
// year, and keeps the requested metric of each.
//
// Cells are simulated in rebalancing, portfolio, year order. A failed cell is logged and
// left out; Run fails only when no cell succeeds or ctx is done.
func (g Grid) Run(ctx context.Context, sim Simulator, base Query, metric string) ([]Cell, error) {
	cells := make([]Cell, 0, g.Size())
	var errs error
	for _, rebalance := range g.Rebalances {
		for _, portfolio := range g.Portfolios {
			for _, year := range g.Years {
				if err := ctx.Err(); err != nil {
					return cells, err
				}
				q := base
				q.Rebalance, q.Portfolio, q.Start = rebalance, portfolio, year
				log := slog.With("rebalance", rebalance, "portfolio", portfolio.String(), "start", year)

				res, err := sim.Simulate(ctx, q)
				if err == nil {
					var v float64
					if v, err = res.Metric(metric); err == nil {
						cells = append(cells, Cell{Rebalance: rebalance, Portfolio: portfolio, Start: year, Value: v})
						log.Debug("simulated", metric, v)
						continue
					}
				}
				log.Warn("simulation skipped", "error", err)
				errs = errors.Join(errs, fmt.Errorf("%s %s %d: %w", rebalance, portfolio, year, err))
			}
		}
	}
	if len(cells) == 0 && errs != nil {
		return nil, errs
	}
	return cells, nil
}
