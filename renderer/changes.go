package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/swr-analysis/swr"
)

// ChangesMarkdown renders the monthly changes of a series.
func ChangesMarkdown(r *swr.ChangesReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Monthly changes of %s", r.Series))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Month", "Value", "Change", "Change %"},
		Rows:   [][]string{},
	}
	for _, c := range r.Changes {
		diff, percent := missing, missing
		if c.HasDiff {
			diff = signed(c.Diff, 2)
		}
		if c.HasPercent {
			percent = signedPercent(c.Percent)
		}
		table.Rows = append(table.Rows, []string{
			c.Month.String(),
			c.Value.String(),
			diff,
			percent,
		})
	}
	doc.Table(table)

	return doc.String()
}

// SummaryMarkdown renders the statistics of the monthly changes of several series.
func SummaryMarkdown(r *swr.SummaryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Monthly changes summary")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Series", "Months", "Mean %", "Median %", "Std dev %", "Min %", "Max %"},
		Rows:   [][]string{},
	}
	for _, s := range r.Summaries {
		table.Rows = append(table.Rows, []string{
			s.Name,
			fmt.Sprint(s.Count),
			float(s.Mean, "%+.3f"),
			float(s.Median, "%+.3f"),
			float(s.StdDev, "%.3f"),
			float(s.Min, "%+.2f"),
			float(s.Max, "%+.2f"),
		})
	}
	doc.Table(table)

	return doc.String()
}
