package swr

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Allocation is the share of a portfolio invested in one asset series, in percent.
type Allocation struct {
	Asset  string
	Weight decimal.Decimal
}

// Portfolio is a list of allocations, written "us_stocks:80;us_bonds:20;" by the simulator.
type Portfolio []Allocation

// ParsePortfolio parses the simulator's portfolio notation. The trailing ';' is optional.
func ParsePortfolio(s string) (Portfolio, error) {
	var p Portfolio
	for position := range strings.SplitSeq(s, ";") {
		position = strings.TrimSpace(position)
		if position == "" {
			continue
		}
		asset, weight, ok := strings.Cut(position, ":")
		if !ok || strings.TrimSpace(asset) == "" {
			return nil, fmt.Errorf("invalid position %q, want asset:weight", position)
		}
		w, err := decimal.NewFromString(strings.TrimSpace(weight))
		if err != nil {
			return nil, fmt.Errorf("invalid weight for %q: %w", asset, err)
		}
		if w.IsNegative() {
			return nil, fmt.Errorf("negative weight for %q", asset)
		}
		p = append(p, Allocation{Asset: strings.TrimSpace(asset), Weight: w})
	}
	if len(p) == 0 {
		return nil, fmt.Errorf("empty portfolio %q", s)
	}
	return p, nil
}

// MustParsePortfolio is like ParsePortfolio but panics on error.
func MustParsePortfolio(s string) Portfolio {
	p, err := ParsePortfolio(s)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// Total returns the sum of the weights.
func (p Portfolio) Total() decimal.Decimal {
	total := decimal.Zero
	for _, a := range p {
		total = total.Add(a.Weight)
	}
	return total
}

// Normalize returns the portfolio with its weights rescaled to total 100.
func (p Portfolio) Normalize() Portfolio {
	total := p.Total()
	if total.IsZero() || total.Equal(hundred) {
		return p
	}
	res := make(Portfolio, len(p))
	for i, a := range p {
		res[i] = Allocation{Asset: a.Asset, Weight: a.Weight.Mul(hundred).Div(total)}
	}
	return res
}

// String formats the portfolio in the simulator's notation.
func (p Portfolio) String() string {
	var b strings.Builder
	for _, a := range p {
		fmt.Fprintf(&b, "%s:%s;", a.Asset, a.Weight)
	}
	return b.String()
}

// Assets returns the names of the series the portfolio invests in.
func (p Portfolio) Assets() []string {
	assets := make([]string, len(p))
	for i, a := range p {
		assets[i] = a.Asset
	}
	return assets
}
