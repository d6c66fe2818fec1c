package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"
	"github.com/swr-analysis/swr"
)

// BalanceMarkdown renders one table per rebalancing strategy, with a row per start year
// and a column per portfolio.
func BalanceMarkdown(r *swr.BalanceReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s by start year", r.Metric))

	header := append([]string{"Start"}, r.Portfolios...)
	alignment := []md.TableAlignment{md.AlignLeft}
	for range r.Portfolios {
		alignment = append(alignment, md.AlignRight)
	}

	for _, section := range r.Sections {
		doc.H2(fmt.Sprintf("Rebalancing: %s", section.Rebalance))
		table := md.TableSet{
			Alignment: alignment,
			Header:    header,
			Rows:      [][]string{},
		}
		for _, row := range section.Rows {
			cells := []string{strconv.Itoa(row.Start)}
			for _, v := range row.Values {
				cells = append(cells, metric(r, v))
			}
			table.Rows = append(table.Rows, cells)
		}
		doc.Table(table)
	}

	return doc.String()
}
