package swr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Rebalancing is the strategy used by the simulator to restore a portfolio's allocations.
type Rebalancing int

const (
	RebalanceNone Rebalancing = iota
	RebalanceMonthly
	RebalanceYearly
	RebalanceThreshold
)

func (r Rebalancing) String() string {
	switch r {
	case RebalanceNone:
		return "none"
	case RebalanceMonthly:
		return "monthly"
	case RebalanceYearly:
		return "yearly"
	case RebalanceThreshold:
		return "threshold"
	default:
		return fmt.Sprintf("Rebalancing(%d)", int(r))
	}
}

// ParseRebalancing parses a strategy name as printed by String.
func ParseRebalancing(s string) (Rebalancing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return RebalanceNone, nil
	case "monthly":
		return RebalanceMonthly, nil
	case "yearly":
		return RebalanceYearly, nil
	case "threshold":
		return RebalanceThreshold, nil
	default:
		return RebalanceNone, fmt.Errorf("unknown rebalancing %q, want none, monthly, yearly or threshold", s)
	}
}

// Query is the set of parameters of one simulation.
type Query struct {
	Portfolio      Portfolio
	Inflation      string          // name of the inflation series
	Initial        decimal.Decimal // initial portfolio value
	Years          int             // duration of the retirement
	WithdrawalRate decimal.Decimal // yearly withdrawal rate, in percent
	Start, End     int             // range of start years to simulate
	Rebalance      Rebalancing
}

// DefaultQuery returns the parameters of a classic 30 years, 4% retirement in US assets.
func DefaultQuery() Query {
	return Query{
		Portfolio:      MustParsePortfolio("us_stocks:80;us_bonds:20;"),
		Inflation:      "us_inflation",
		Initial:        decimal.NewFromInt(1000),
		Years:          30,
		WithdrawalRate: decimal.RequireFromString("4.0"),
		Start:          1871,
		End:            2022,
	}
}

// Validate reports the first missing or inconsistent parameter.
func (q Query) Validate() error {
	switch {
	case len(q.Portfolio) == 0:
		return fmt.Errorf("missing parameter portfolio")
	case q.Inflation == "":
		return fmt.Errorf("missing parameter inflation")
	case q.Years <= 0:
		return fmt.Errorf("invalid years %d", q.Years)
	case !q.WithdrawalRate.IsPositive():
		return fmt.Errorf("invalid withdrawal rate %v", q.WithdrawalRate)
	case q.Start <= 0 || q.End <= 0:
		return fmt.Errorf("missing start or end year")
	case q.Start > q.End:
		return fmt.Errorf("start year %d is after end year %d", q.Start, q.End)
	}
	return nil
}

// Values encodes the query as the simulator's URL parameters.
func (q Query) Values() url.Values {
	v := url.Values{}
	v.Set("portfolio", q.Portfolio.String())
	v.Set("inflation", q.Inflation)
	v.Set("initial", q.Initial.String())
	v.Set("years", strconv.Itoa(q.Years))
	v.Set("wr", q.WithdrawalRate.String())
	v.Set("start", strconv.Itoa(q.Start))
	v.Set("end", strconv.Itoa(q.End))
	v.Set("rebalance", q.Rebalance.String())
	return v
}

// Results are the outcome of a simulation over every start month of the query's range.
// tv_* fields are terminal values, the portfolio value left at the end of the retirement.
type Results struct {
	Successes          int     `json:"successes"`
	Failures           int     `json:"failures"`
	SuccessRate        float64 `json:"success_rate"`
	TVAverage          float64 `json:"tv_average"`
	TVMinimum          float64 `json:"tv_minimum"`
	TVMaximum          float64 `json:"tv_maximum"`
	TVMedian           float64 `json:"tv_median"`
	WorstDuration      int     `json:"worst_duration"`
	WorstStartingMonth int     `json:"worst_starting_month"`
	WorstStartingYear  int     `json:"worst_starting_year"`
	Message            string  `json:"message"`
	Error              bool    `json:"error"`

	raw any // the decoded response document
}

// DecodeResults decodes a simulator response: {"results": {...}}.
//
// A response reporting an error is returned along with an error wrapping ErrSimulation.
func DecodeResults(body []byte) (Results, error) {
	var doc struct {
		Results *Results `json:"results"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return Results{}, fmt.Errorf("invalid simulation response: %w", err)
	}
	if doc.Results == nil {
		return Results{}, fmt.Errorf("invalid simulation response: no results")
	}
	res := *doc.Results
	if err := json.Unmarshal(body, &res.raw); err != nil {
		return Results{}, err
	}
	if res.Error {
		return res, fmt.Errorf("%w: %s", ErrSimulation, res.Message)
	}
	return res, nil
}

// Metric returns a numeric field of the results. name is either a field of the results
// object ("tv_median") or a JSON path over the whole response ("$.results.tv_median").
func (r Results) Metric(name string) (float64, error) {
	path := name
	if !strings.HasPrefix(path, "$") {
		path = "$.results." + name
	}
	doc := r.raw
	if doc == nil {
		// built in memory rather than decoded: go through its JSON form.
		b, err := json.Marshal(map[string]any{"results": r})
		if err != nil {
			return 0, err
		}
		if err := json.Unmarshal(b, &doc); err != nil {
			return 0, err
		}
	}
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return 0, fmt.Errorf("metric %q: %w", name, err)
	}
	// jsonpath may answer a list of 1 answer, or a single answer.
	if list, ok := v.([]any); ok && len(list) > 0 {
		v = list[0]
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("metric %q is not a number: %v", name, v)
	}
	return f, nil
}

// Simulator runs simulations, usually by calling the simulation service.
type Simulator interface {
	Simulate(ctx context.Context, q Query) (Results, error)
}
