package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/costview-cli/internal/dataset"
	"github.com/KaramelBytes/costview-cli/internal/render"
	"github.com/KaramelBytes/costview-cli/internal/stats"
)

var (
	histColumn  string
	histBuckets int
)

var histCmd = &cobra.Command{
	Use:   "hist",
	Short: "Equal-width histogram of a numeric column",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := runPipeline()
		if err != nil {
			return err
		}
		buckets := histBuckets
		if buckets <= 0 {
			buckets = cfg.HistogramBuckets
		}
		out, err := stats.HistogramBuckets(ds, histColumn, buckets)
		if err != nil {
			return err
		}
		if len(out) == 0 {
			fmt.Println("No data for the current selection.")
			return nil
		}
		render.HistogramTable(out, os.Stdout)
		return nil
	},
}

func init() {
	histCmd.Flags().StringVar(&histColumn, "column", dataset.ColGroceries, "numeric column to bucket")
	histCmd.Flags().IntVar(&histBuckets, "buckets", 0, "bucket count (default from config)")
	rootCmd.AddCommand(histCmd)
}
