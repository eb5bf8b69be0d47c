package stats

import (
	"math"
	"testing"

	"github.com/KaramelBytes/costview-cli/internal/dataset"
)

func abDataset() *dataset.Dataset {
	return dataset.New(
		[]string{"Country", "City", "Cost of Living Index"},
		[][]string{
			{"A", "a1", "10"},
			{"A", "a2", "20"},
			{"B", "b1", "30"},
			{"B", "b2", "40"},
		},
	)
}

func TestMeanOf(t *testing.T) {
	d := abDataset()
	m, ok := MeanOf(d, "Cost of Living Index")
	if !ok {
		t.Fatal("MeanOf reported undefined for populated column")
	}
	if m != 25 {
		t.Fatalf("mean = %v, want 25", m)
	}
}

func TestMeanOfUndefined(t *testing.T) {
	empty := dataset.New([]string{"Country", "Cost of Living Index"}, nil)
	if _, ok := MeanOf(empty, "Cost of Living Index"); ok {
		t.Fatal("MeanOf over empty dataset should be undefined")
	}
	d := abDataset()
	if _, ok := MeanOf(d, "Rent Index"); ok {
		t.Fatal("MeanOf over absent column should be undefined")
	}
}

func TestTopNByMean(t *testing.T) {
	d := abDataset()
	rows, err := TopNByMean(d, "Country", "Cost of Living Index", 2, true)
	if err != nil {
		t.Fatalf("TopNByMean: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2", len(rows))
	}
	if rows[0].Key != "B" || rows[0].Mean != 35 {
		t.Fatalf("rows[0] = %+v, want B/35", rows[0])
	}
	if rows[1].Key != "A" || rows[1].Mean != 15 {
		t.Fatalf("rows[1] = %+v, want A/15", rows[1])
	}
}

func TestTopNByMeanStableTies(t *testing.T) {
	d := dataset.New(
		[]string{"Country", "Rent Index"},
		[][]string{
			{"X", "50"},
			{"Y", "50"},
			{"Z", "50"},
		},
	)
	rows, err := TopNByMean(d, "Country", "Rent Index", 3, true)
	if err != nil {
		t.Fatalf("TopNByMean: %v", err)
	}
	want := []string{"X", "Y", "Z"}
	for i, w := range want {
		if rows[i].Key != w {
			t.Fatalf("tie order broken: rows[%d] = %q, want %q", i, rows[i].Key, w)
		}
	}
}

func TestTopNByMeanLimitsAndColumnMissing(t *testing.T) {
	d := abDataset()
	rows, err := TopNByMean(d, "Country", "Cost of Living Index", 10, true)
	if err != nil {
		t.Fatalf("TopNByMean: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2 (fewer groups than n)", len(rows))
	}

	if _, err := TopNByMean(d, "Country", "Rent Index", 3, true); !dataset.IsColumnMissing(err) {
		t.Fatalf("err = %v, want ColumnMissingError", err)
	}
}

func TestHistogramBuckets(t *testing.T) {
	d := dataset.New(
		[]string{"Groceries Index"},
		[][]string{{"0"}, {"5"}, {"10"}, {"10"}},
	)
	buckets, err := HistogramBuckets(d, "Groceries Index", 2)
	if err != nil {
		t.Fatalf("HistogramBuckets: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("len = %d, want 2", len(buckets))
	}
	if buckets[0].Count != 1 || buckets[1].Count != 3 {
		t.Fatalf("counts = %d,%d; want 1,3", buckets[0].Count, buckets[1].Count)
	}
	// The max value belongs to the last bucket, not an overflow bucket.
	if buckets[1].High != 10 {
		t.Fatalf("last bucket high = %v, want 10", buckets[1].High)
	}
}

func TestHistogramConstantColumn(t *testing.T) {
	d := dataset.New(
		[]string{"Rent Index"},
		[][]string{{"42"}, {"42"}, {"42"}},
	)
	buckets, err := HistogramBuckets(d, "Rent Index", 20)
	if err != nil {
		t.Fatalf("HistogramBuckets: %v", err)
	}
	if len(buckets) != 1 {
		t.Fatalf("len = %d, want 1 for constant column", len(buckets))
	}
	if buckets[0].Count != 3 || buckets[0].Low != 42 || buckets[0].High != 42 {
		t.Fatalf("bucket = %+v, want all three values in one 42..42 bucket", buckets[0])
	}
}

func TestHistogramEmpty(t *testing.T) {
	d := dataset.New([]string{"Rent Index"}, nil)
	buckets, err := HistogramBuckets(d, "Rent Index", 20)
	if err != nil {
		t.Fatalf("HistogramBuckets: %v", err)
	}
	if buckets != nil {
		t.Fatalf("buckets = %v, want nil for empty dataset", buckets)
	}
}

func TestCorrelationMatrix(t *testing.T) {
	d := dataset.New(
		[]string{"A", "B", "C"},
		[][]string{
			{"1", "2", "5"},
			{"2", "4", "5"},
			{"3", "6", "5"},
			{"4", "8", "5"},
		},
	)
	m := CorrelationMatrix(d, []string{"A", "B", "C"})

	// Symmetric with 1.0 on the diagonal for columns with variance.
	for i := range m.Columns {
		for j := range m.Columns {
			a, b := m.Values[i][j], m.Values[j][i]
			if math.IsNaN(a) != math.IsNaN(b) || (!math.IsNaN(a) && a != b) {
				t.Fatalf("matrix not symmetric at (%d,%d): %v vs %v", i, j, a, b)
			}
		}
	}
	if m.Values[0][0] != 1 || m.Values[1][1] != 1 {
		t.Fatalf("diagonal = %v, %v; want 1, 1", m.Values[0][0], m.Values[1][1])
	}
	// B is exactly 2*A.
	if got := m.Values[0][1]; math.Abs(got-1) > 1e-9 {
		t.Fatalf("corr(A,B) = %v, want 1", got)
	}
	// C is constant: no defined correlation, including its own diagonal.
	if !math.IsNaN(m.Values[2][2]) {
		t.Fatalf("constant column diagonal = %v, want NaN", m.Values[2][2])
	}
	if !math.IsNaN(m.Values[0][2]) {
		t.Fatalf("corr(A,C) = %v, want NaN", m.Values[0][2])
	}
}

func TestCorrelationPairwiseComplete(t *testing.T) {
	// The missing B value must only exclude that row from A~B, not from A~C.
	d := dataset.New(
		[]string{"A", "B", "C"},
		[][]string{
			{"1", "1", "3"},
			{"2", "", "2"},
			{"3", "3", "1"},
		},
	)
	m := CorrelationMatrix(d, []string{"A", "B", "C"})
	if got := m.Values[0][1]; math.Abs(got-1) > 1e-9 {
		t.Fatalf("corr(A,B) over complete pairs = %v, want 1", got)
	}
	if got := m.Values[0][2]; math.Abs(got+1) > 1e-9 {
		t.Fatalf("corr(A,C) = %v, want -1", got)
	}
}

func TestCapabilities(t *testing.T) {
	full := dataset.New([]string{
		"Country", "City",
		"Cost of Living Index", "Rent Index", "Groceries Index",
		"Restaurant Price Index", "Local Purchasing Power Index",
	}, nil)
	caps := Capabilities(full)
	for view, ok := range caps {
		if !ok {
			t.Fatalf("view %s disabled on full schema", view)
		}
	}

	partial := dataset.New([]string{"Country", "Cost of Living Index"}, nil)
	caps = Capabilities(partial)
	if !caps[ViewTopCost] {
		t.Fatal("top-cost should be available with country + cost columns")
	}
	if caps[ViewCostRentScatter] {
		t.Fatal("scatter should be disabled without the rent column")
	}
	if caps[ViewCorrelation] {
		t.Fatal("correlation needs at least two indicator columns")
	}
	if !caps[ViewExport] {
		t.Fatal("export is always available")
	}
}
