// Package stats derives display views from a filtered dataset. Every
// function is pure: it reads the snapshot it is given and returns fresh
// values, so the same dataset can back any number of views.
package stats

import (
	"math"
	"sort"

	"github.com/KaramelBytes/costview-cli/internal/dataset"
)

// MeanOf computes the arithmetic mean of a numeric column. The second
// return is false when the column is absent or holds no numeric values;
// callers decide how to display that (typically "N/A").
func MeanOf(d *dataset.Dataset, column string) (float64, bool) {
	if !d.HasColumn(column) {
		return 0, false
	}
	var sum float64
	var n int
	for i := 0; i < d.NumRows(); i++ {
		if v, ok := d.Float(i, column); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// AggregateRow pairs a group key with the mean of one numeric column.
type AggregateRow struct {
	Key  string
	Mean float64
	N    int
}

// TopNByMean groups records by groupColumn, computes the mean of
// valueColumn per group, sorts by that mean and returns the first n groups
// (or fewer if fewer exist). The sort is stable: ties keep the
// first-appearance order of the group key.
func TopNByMean(d *dataset.Dataset, groupColumn, valueColumn string, n int, descending bool) ([]AggregateRow, error) {
	if !d.HasColumn(groupColumn) {
		return nil, &dataset.ColumnMissingError{Column: groupColumn}
	}
	if !d.HasColumn(valueColumn) {
		return nil, &dataset.ColumnMissingError{Column: valueColumn}
	}

	type acc struct {
		sum float64
		n   int
	}
	sums := make(map[string]*acc)
	var order []string
	for i := 0; i < d.NumRows(); i++ {
		key, _ := d.Cell(i, groupColumn)
		v, ok := d.Float(i, valueColumn)
		if !ok {
			continue
		}
		a := sums[key]
		if a == nil {
			a = &acc{}
			sums[key] = a
			order = append(order, key)
		}
		a.sum += v
		a.n++
	}

	rows := make([]AggregateRow, 0, len(order))
	for _, key := range order {
		a := sums[key]
		rows = append(rows, AggregateRow{Key: key, Mean: a.sum / float64(a.n), N: a.n})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if descending {
			return rows[i].Mean > rows[j].Mean
		}
		return rows[i].Mean < rows[j].Mean
	})
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows, nil
}

// Bucket is one equal-width histogram bucket over a column's range.
type Bucket struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// HistogramBuckets partitions the observed range of column into bucketCount
// equal-width buckets and counts membership. A constant column (min == max)
// yields a single bucket holding every value.
func HistogramBuckets(d *dataset.Dataset, column string, bucketCount int) ([]Bucket, error) {
	if !d.HasColumn(column) {
		return nil, &dataset.ColumnMissingError{Column: column}
	}
	if bucketCount < 1 {
		bucketCount = 1
	}

	var vals []float64
	for i := 0; i < d.NumRows(); i++ {
		if v, ok := d.Float(i, column); ok {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return nil, nil
	}

	lo, hi := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		return []Bucket{{Low: lo, High: hi, Count: len(vals)}}, nil
	}

	width := (hi - lo) / float64(bucketCount)
	buckets := make([]Bucket, bucketCount)
	for i := range buckets {
		buckets[i].Low = lo + float64(i)*width
		buckets[i].High = lo + float64(i+1)*width
	}
	buckets[bucketCount-1].High = hi
	for _, v := range vals {
		i := int((v - lo) / width)
		if i >= bucketCount { // v == hi lands in the last bucket
			i = bucketCount - 1
		}
		buckets[i].Count++
	}
	return buckets, nil
}

// CorrMatrix is a symmetric Pearson correlation matrix. Values[i][j] is the
// coefficient between Columns[i] and Columns[j]; NaN marks pairs with no
// defined correlation (insufficient rows or zero variance).
type CorrMatrix struct {
	Columns []string
	Values  [][]float64
}

// CorrelationMatrix computes pairwise-complete Pearson correlations over
// the given columns: each pair uses only the rows where both values are
// present. The diagonal is 1.0 when the column has non-zero variance over
// its own non-missing rows, NaN otherwise.
func CorrelationMatrix(d *dataset.Dataset, columns []string) *CorrMatrix {
	n := len(columns)
	m := &CorrMatrix{Columns: append([]string(nil), columns...), Values: make([][]float64, n)}
	for i := range m.Values {
		m.Values[i] = make([]float64, n)
	}

	type pairAcc struct {
		n     float64
		sumX  float64
		sumY  float64
		sumXX float64
		sumYY float64
		sumXY float64
	}
	pairs := make(map[int]*pairAcc) // key = i*n + j with i <= j

	for row := 0; row < d.NumRows(); row++ {
		vals := make([]float64, n)
		have := make([]bool, n)
		for i, c := range columns {
			vals[i], have[i] = d.Float(row, c)
		}
		for i := 0; i < n; i++ {
			if !have[i] {
				continue
			}
			for j := i; j < n; j++ {
				if !have[j] {
					continue
				}
				key := i*n + j
				pa := pairs[key]
				if pa == nil {
					pa = &pairAcc{}
					pairs[key] = pa
				}
				x, y := vals[i], vals[j]
				pa.n++
				pa.sumX += x
				pa.sumY += y
				pa.sumXX += x * x
				pa.sumYY += y * y
				pa.sumXY += x * y
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			r := math.NaN()
			if pa := pairs[i*n+j]; pa != nil && pa.n >= 2 {
				denom := math.Sqrt((pa.n*pa.sumXX - pa.sumX*pa.sumX) * (pa.n*pa.sumYY - pa.sumY*pa.sumY))
				if denom != 0 {
					r = (pa.n*pa.sumXY - pa.sumX*pa.sumY) / denom
					if r > 1 {
						r = 1
					} else if r < -1 {
						r = -1
					}
				}
			}
			if i == j && !math.IsNaN(r) {
				r = 1 // exactly 1.0 on the diagonal when variance is non-zero
			}
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m
}
