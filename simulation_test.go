package swr

import (
	"errors"
	"testing"
)

const simpleResponse = `{ "results": {
  "successes": 1458,
  "failures": 42,
  "success_rate": 97.2,
  "tv_average": 2712.5,
  "tv_minimum": 0,
  "tv_maximum": 11012.8,
  "tv_median": 2208.25,
  "worst_duration": 312,
  "worst_starting_month": 1,
  "worst_starting_year": 1966,
  "message": "",
  "error": false
}}`

func TestDecodeResults(t *testing.T) {
	res, err := DecodeResults([]byte(simpleResponse))
	if err != nil {
		t.Fatalf("DecodeResults() unexpected error: %v", err)
	}
	if res.Successes != 1458 || res.TVMedian != 2208.25 || res.WorstStartingYear != 1966 {
		t.Errorf("DecodeResults() = %+v", res)
	}

	tests := []struct {
		metric string
		want   float64
	}{
		{"tv_median", 2208.25},
		{"success_rate", 97.2},
		{"$.results.tv_maximum", 11012.8},
	}
	for _, tt := range tests {
		got, err := res.Metric(tt.metric)
		if err != nil {
			t.Errorf("Metric(%q) unexpected error: %v", tt.metric, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Metric(%q) = %v want %v", tt.metric, got, tt.want)
		}
	}
	if _, err := res.Metric("message"); err == nil {
		t.Error("Metric(message) expected an error, it is not a number")
	}
	if _, err := res.Metric("tv_mode"); err == nil {
		t.Error("Metric(tv_mode) expected an error")
	}
}

func TestDecodeResultsErrors(t *testing.T) {
	_, err := DecodeResults([]byte(`{"results": {"error": true, "message": "not enough data"}}`))
	if !errors.Is(err, ErrSimulation) {
		t.Errorf("DecodeResults() error = %v want ErrSimulation", err)
	}
	if _, err := DecodeResults([]byte(`Error: Missing parameter wr`)); err == nil {
		t.Error("DecodeResults(plain text) expected an error")
	}
	if _, err := DecodeResults([]byte(`{}`)); err == nil {
		t.Error("DecodeResults({}) expected an error")
	}
}

func TestQueryValues(t *testing.T) {
	q := DefaultQuery()
	q.Start = 1970
	q.Rebalance = RebalanceMonthly
	if err := q.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
	v := q.Values()
	want := map[string]string{
		"portfolio": "us_stocks:80;us_bonds:20;",
		"inflation": "us_inflation",
		"initial":   "1000",
		"years":     "30",
		"wr":        "4",
		"start":     "1970",
		"end":       "2022",
		"rebalance": "monthly",
	}
	for k, w := range want {
		if got := v.Get(k); got != w {
			t.Errorf("Values()[%s] = %q want %q", k, got, w)
		}
	}

	q.Start = 2030
	if err := q.Validate(); err == nil {
		t.Error("Validate() expected an error for start after end")
	}
}

func TestParseRebalancing(t *testing.T) {
	for _, r := range []Rebalancing{RebalanceNone, RebalanceMonthly, RebalanceYearly, RebalanceThreshold} {
		got, err := ParseRebalancing(r.String())
		if err != nil || got != r {
			t.Errorf("ParseRebalancing(%q) = %v, %v", r.String(), got, err)
		}
	}
	if _, err := ParseRebalancing("weekly"); err == nil {
		t.Error("ParseRebalancing(weekly) expected an error")
	}
}
