package render

import (
	"fmt"
	"io"
	"math"

	"github.com/olekukonko/tablewriter"

	"github.com/KaramelBytes/costview-cli/internal/stats"
)

// TopTable renders ranked group means as a terminal table.
func TopTable(rows []stats.AggregateRow, valueColumn string, w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rank", "Country", "Mean " + valueColumn, "Rows"})
	for i, r := range rows {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			r.Key,
			fmt.Sprintf("%.2f", r.Mean),
			fmt.Sprintf("%d", r.N),
		})
	}
	table.Render()
}

// CorrelationTable renders a correlation matrix; undefined coefficients
// show as "n/a".
func CorrelationTable(m *stats.CorrMatrix, w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(append([]string{""}, m.Columns...))
	for i, name := range m.Columns {
		row := make([]string, 0, len(m.Columns)+1)
		row = append(row, name)
		for j := range m.Columns {
			v := m.Values[i][j]
			if math.IsNaN(v) {
				row = append(row, "n/a")
			} else {
				row = append(row, fmt.Sprintf("%.3f", v))
			}
		}
		table.Append(row)
	}
	table.Render()
}

// HistogramTable renders buckets with counts and a proportional bar.
func HistogramTable(buckets []stats.Bucket, w io.Writer) {
	maxCount := 0
	for _, b := range buckets {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Range", "Count", ""})
	for _, b := range buckets {
		bar := ""
		if maxCount > 0 {
			for i := 0; i < b.Count*30/maxCount; i++ {
				bar += "█"
			}
		}
		table.Append([]string{
			fmt.Sprintf("%.2f - %.2f", b.Low, b.High),
			fmt.Sprintf("%d", b.Count),
			bar,
		})
	}
	table.Render()
}
