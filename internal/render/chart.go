// Package render turns aggregator output into the artifacts the
// presentation side consumes: chart images and terminal tables.
package render

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/KaramelBytes/costview-cli/internal/dataset"
	"github.com/KaramelBytes/costview-cli/internal/stats"
)

// ScatterPNG renders an x/y scatter of two numeric columns. When sizeColumn
// is non-empty and present, dot size scales with that column's value
// relative to its observed range.
func ScatterPNG(d *dataset.Dataset, xColumn, yColumn, sizeColumn string, title string, w io.Writer) error {
	for _, c := range []string{xColumn, yColumn} {
		if !d.HasColumn(c) {
			return &dataset.ColumnMissingError{Column: c}
		}
	}
	if sizeColumn != "" && !d.HasColumn(sizeColumn) {
		sizeColumn = ""
	}

	var xs, ys, sizes []float64
	for i := 0; i < d.NumRows(); i++ {
		x, okX := d.Float(i, xColumn)
		y, okY := d.Float(i, yColumn)
		if !okX || !okY {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
		if sizeColumn != "" {
			s, ok := d.Float(i, sizeColumn)
			if !ok {
				s = 0
			}
			sizes = append(sizes, s)
		}
	}
	if len(xs) == 0 {
		return fmt.Errorf("no plottable rows for %s vs %s", xColumn, yColumn)
	}
	// go-chart needs at least two X values to build a range.
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
		if sizes != nil {
			sizes = append(sizes, sizes[0])
		}
	}

	style := chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    chart.ColorBlue,
	}
	if len(sizes) > 0 {
		lo, hi := sizes[0], sizes[0]
		for _, s := range sizes[1:] {
			if s < lo {
				lo = s
			}
			if s > hi {
				hi = s
			}
		}
		style.DotWidthProvider = func(_, _ chart.Range, index int, _, _ float64) float64 {
			if hi == lo || index >= len(sizes) {
				return 4
			}
			return 2 + 8*(sizes[index]-lo)/(hi-lo)
		}
	}

	graph := chart.Chart{
		Title: title,
		XAxis: chart.XAxis{Name: xColumn},
		YAxis: chart.YAxis{Name: yColumn},
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: xs, YValues: ys, Style: style},
		},
	}
	return graph.Render(chart.PNG, w)
}

// BarPNG renders ranked group means as a bar chart.
func BarPNG(rows []stats.AggregateRow, title string, w io.Writer) error {
	if len(rows) == 0 {
		return fmt.Errorf("no groups to chart")
	}
	bars := make([]chart.Value, 0, len(rows))
	for _, r := range rows {
		bars = append(bars, chart.Value{Label: r.Key, Value: r.Mean})
	}
	graph := chart.BarChart{
		Title:    title,
		Height:   400,
		BarWidth: 40,
		Bars:     bars,
	}
	return graph.Render(chart.PNG, w)
}

// HistogramPNG renders equal-width buckets as a bar chart, one bar per
// bucket labeled with the bucket's lower bound.
func HistogramPNG(buckets []stats.Bucket, title string, w io.Writer) error {
	if len(buckets) == 0 {
		return fmt.Errorf("no buckets to chart")
	}
	bars := make([]chart.Value, 0, len(buckets))
	for _, b := range buckets {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%.1f", b.Low),
			Value: float64(b.Count),
		})
	}
	graph := chart.BarChart{
		Title:    title,
		Height:   400,
		BarWidth: 24,
		Bars:     bars,
	}
	return graph.Render(chart.PNG, w)
}
