package swr

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
	"github.com/swr-analysis/swr/date"
)

// DefaultSeries are the monthly series shipped in the simulator's data directory.
var DefaultSeries = []string{
	"cash", "ch_inflation", "ch_stocks", "gold",
	"us_bonds", "us_inflation", "us_stocks", "usd_chf",
}

// Series is a named monthly series of values: an index level, a price or an exchange rate.
type Series struct {
	Name   string
	Values date.History[decimal.Decimal]
}

// LoadSeries reads a series file; the series is named after the file's base name.
func LoadSeries(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open series: %w", err)
	}
	defer f.Close()

	s, err := ParseSeries(f)
	if err != nil {
		return nil, fmt.Errorf("series %q: %w", path, err)
	}
	s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return s, nil
}

// LoadSeriesDir loads the named series from dir/<name>.csv. All files are attempted,
// errors are joined.
func LoadSeriesDir(dir string, names ...string) ([]*Series, error) {
	var all []*Series
	var errs error
	for _, name := range names {
		s, err := LoadSeries(filepath.Join(dir, name+".csv"))
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		all = append(all, s)
	}
	return all, errs
}

// ParseSeries reads the simulator's data format: one "month,year,value" line per month,
// without header. The value may be quoted and carry thousands separators.
func ParseSeries(r io.Reader) (*Series, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	s := new(Series)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		line, _ := reader.FieldPos(0)
		if len(record) < 3 {
			return nil, fmt.Errorf("%w: line %d has %d fields, want month,year,value", ErrMalformedRow, line, len(record))
		}
		on, err := date.FromFields(record[0], record[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		value, err := ThousandsComma.ParseValue(record[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		s.Values.Append(on, value)
	}
	return s, nil
}

// Change is the move of a series from one month to the next.
type Change struct {
	Month date.Month
	Value decimal.Decimal
	// Diff is Value minus the previous month's value.
	Diff decimal.Decimal
	// Percent is Diff relative to the previous value, times 100.
	Percent decimal.Decimal
	// HasDiff is false for the first month of the series.
	HasDiff bool
	// HasPercent is false when there is no diff or the previous value is zero.
	HasPercent bool
}

var hundred = decimal.NewFromInt(100)

// Changes returns one entry per month of the series. The first month has no diff.
func (s *Series) Changes() []Change {
	changes := make([]Change, 0, s.Values.Len())
	var prev decimal.Decimal
	first := true
	for on, v := range s.Values.Values() {
		c := Change{Month: on, Value: v}
		if !first {
			c.Diff, c.HasDiff = v.Sub(prev), true
			if !prev.IsZero() {
				c.Percent, c.HasPercent = c.Diff.Div(prev).Mul(hundred), true
			}
		}
		changes = append(changes, c)
		prev, first = v, false
	}
	return changes
}

// Summary describes the distribution of a series' monthly percent changes.
type Summary struct {
	Name   string
	Count  int
	Mean   float64
	Median float64
	StdDev float64 // NaN with fewer than two changes
	Min    float64
	Max    float64
}

// Summarize computes the statistics of the percent changes of a series.
func Summarize(name string, changes []Change) (Summary, error) {
	var data stats.Float64Data
	for _, c := range changes {
		if c.HasPercent {
			data = append(data, c.Percent.InexactFloat64())
		}
	}
	sum := Summary{Name: name, Count: len(data)}
	if len(data) == 0 {
		return sum, fmt.Errorf("series %q has no monthly change", name)
	}

	var err error
	if sum.Mean, err = data.Mean(); err != nil {
		return sum, err
	}
	if sum.Median, err = data.Median(); err != nil {
		return sum, err
	}
	// A single change has no sample deviation.
	sum.StdDev = math.NaN()
	if len(data) > 1 {
		if sum.StdDev, err = data.StandardDeviationSample(); err != nil {
			return sum, err
		}
	}
	if sum.Min, err = data.Min(); err != nil {
		return sum, err
	}
	if sum.Max, err = data.Max(); err != nil {
		return sum, err
	}
	return sum, nil
}
