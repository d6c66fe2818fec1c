// Package renderer formats the reports of the swr package as markdown.
package renderer

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/swr-analysis/swr"
)

// missing is printed in place of a value that could not be computed.
const missing = "-"

// signed formats a change with an explicit sign, "-" when it rounds to zero.
func signed(d decimal.Decimal, places int32) string {
	s := d.StringFixed(places)
	if d.Round(places).IsZero() {
		return missing
	}
	if d.IsPositive() {
		return "+" + s
	}
	return s
}

// signedPercent is signed for a value in percent.
func signedPercent(d decimal.Decimal) string {
	s := signed(d, 2)
	if s == missing {
		return s
	}
	return s + "%"
}

// float formats a statistic, which may be NaN for too small samples.
func float(f float64, format string) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return missing
	}
	return fmt.Sprintf(format, f)
}

// metric formats the value of a simulation metric: money for terminal values.
func metric(r *swr.BalanceReport, v *float64) string {
	if v == nil {
		return missing
	}
	if r.IsMoney() {
		return swr.MF(*v, r.Currency).String()
	}
	return float(*v, "%.2f")
}
