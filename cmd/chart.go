package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/costview-cli/internal/dataset"
	"github.com/KaramelBytes/costview-cli/internal/render"
	"github.com/KaramelBytes/costview-cli/internal/stats"
	"github.com/KaramelBytes/costview-cli/internal/utils"
)

var (
	chartOutput  string
	chartX       string
	chartY       string
	chartSize    string
	chartBy      string
	chartN       int
	chartColumn  string
	chartBuckets int
	chartTitle   string
)

var chartCmd = &cobra.Command{
	Use:   "chart <scatter|bar|hist>",
	Short: "Render a chart of the filtered selection to a PNG file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := runPipeline()
		if err != nil {
			return err
		}
		if ds.NumRows() == 0 {
			return fmt.Errorf("no data for the current selection")
		}

		var buf bytes.Buffer
		switch args[0] {
		case "scatter":
			title := chartTitle
			if title == "" {
				title = fmt.Sprintf("%s vs %s", chartX, chartY)
			}
			if err := render.ScatterPNG(ds, chartX, chartY, chartSize, title, &buf); err != nil {
				return err
			}
		case "bar":
			n := chartN
			if n <= 0 {
				n = cfg.TopN
			}
			rows, err := stats.TopNByMean(ds, dataset.ColCountry, chartBy, n, true)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				return fmt.Errorf("no data for the current selection")
			}
			title := chartTitle
			if title == "" {
				title = fmt.Sprintf("Top %d Countries by %s", len(rows), chartBy)
			}
			if err := render.BarPNG(rows, title, &buf); err != nil {
				return err
			}
		case "hist":
			buckets := chartBuckets
			if buckets <= 0 {
				buckets = cfg.HistogramBuckets
			}
			out, err := stats.HistogramBuckets(ds, chartColumn, buckets)
			if err != nil {
				return err
			}
			if len(out) == 0 {
				return fmt.Errorf("no data for the current selection")
			}
			title := chartTitle
			if title == "" {
				title = fmt.Sprintf("Distribution of %s", chartColumn)
			}
			if err := render.HistogramPNG(out, title, &buf); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported chart kind: %s (use scatter|bar|hist)", args[0])
		}

		if err := utils.SafeWriteFile(chartOutput, buf.Bytes()); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote chart to %s\n", chartOutput)
		return nil
	},
}

func init() {
	chartCmd.Flags().StringVarP(&chartOutput, "output", "o", "chart.png", "output PNG path")
	chartCmd.Flags().StringVar(&chartX, "x", dataset.ColCostOfLiving, "x column (scatter)")
	chartCmd.Flags().StringVar(&chartY, "y", dataset.ColRent, "y column (scatter)")
	chartCmd.Flags().StringVar(&chartSize, "size", dataset.ColPurchasingPower, "dot size column (scatter; empty to disable)")
	chartCmd.Flags().StringVar(&chartBy, "by", dataset.ColCostOfLiving, "metric column (bar)")
	chartCmd.Flags().IntVarP(&chartN, "limit", "n", 0, "number of countries (bar; default from config)")
	chartCmd.Flags().StringVar(&chartColumn, "column", dataset.ColGroceries, "numeric column (hist)")
	chartCmd.Flags().IntVar(&chartBuckets, "buckets", 0, "bucket count (hist; default from config)")
	chartCmd.Flags().StringVar(&chartTitle, "title", "", "chart title (default derived from bindings)")
	rootCmd.AddCommand(chartCmd)
}
