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
	topBy        string
	topN         int
	topAscending bool
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Rank countries by the mean of a metric",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := runPipeline()
		if err != nil {
			return err
		}
		n := topN
		if n <= 0 {
			n = cfg.TopN
		}
		rows, err := stats.TopNByMean(ds, dataset.ColCountry, topBy, n, !topAscending)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Println("No data for the current selection.")
			return nil
		}
		render.TopTable(rows, topBy, os.Stdout)
		return nil
	},
}

func init() {
	topCmd.Flags().StringVar(&topBy, "by", dataset.ColCostOfLiving, "metric column to rank by")
	topCmd.Flags().IntVarP(&topN, "limit", "n", 0, "number of countries (default from config)")
	topCmd.Flags().BoolVar(&topAscending, "ascending", false, "rank lowest means first")
	rootCmd.AddCommand(topCmd)
}
