package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/swr-analysis/swr"
)

// ResultsMarkdown renders the outcome of a single simulation.
func ResultsMarkdown(q swr.Query, res swr.Results, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s%% withdrawals over %d years", q.WithdrawalRate, q.Years))
	doc.PlainText(fmt.Sprintf("Portfolio %s, inflation %s, rebalancing %s, retirements starting from %d to %d.",
		q.Portfolio, q.Inflation, q.Rebalance, q.Start, q.End))

	money := func(v float64) string { return swr.MF(v, currency).String() }
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Success rate", fmt.Sprintf("%.2f%%", res.SuccessRate)},
			{"Successes", fmt.Sprint(res.Successes)},
			{"Failures", fmt.Sprint(res.Failures)},
			{"Initial value", swr.M(q.Initial, currency).String()},
			{"Terminal value, average", money(res.TVAverage)},
			{"Terminal value, median", money(res.TVMedian)},
			{"Terminal value, minimum", money(res.TVMinimum)},
			{"Terminal value, maximum", money(res.TVMaximum)},
		},
	}
	if res.Failures > 0 {
		table.Rows = append(table.Rows,
			[]string{"Worst duration", fmt.Sprintf("%d months", res.WorstDuration)},
			[]string{"Worst start", fmt.Sprintf("%d-%02d", res.WorstStartingYear, res.WorstStartingMonth)},
		)
	}
	doc.Table(table)
	if res.Message != "" {
		doc.PlainText(res.Message)
	}

	return doc.String()
}
