package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/costview-cli/internal/dataset"
	"github.com/KaramelBytes/costview-cli/internal/stats"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show KPI means and dataset overview for the filtered selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := runPipeline()
		if err != nil {
			return err
		}
		if ds.NumRows() == 0 {
			fmt.Println("No data for the current selection.")
			return nil
		}

		fmt.Printf("Rows: %d   Countries: %d\n\n", ds.NumRows(), len(ds.Countries()))
		for _, col := range []string{dataset.ColCostOfLiving, dataset.ColRent, dataset.ColPurchasingPower} {
			if m, ok := stats.MeanOf(ds, col); ok {
				fmt.Printf("Average %-30s %8.2f\n", col+":", m)
			} else {
				fmt.Printf("Average %-30s %8s\n", col+":", "N/A")
			}
		}

		if debug {
			caps := stats.Capabilities(ds)
			names := make([]string, 0, len(caps))
			for v := range caps {
				names = append(names, string(v))
			}
			sort.Strings(names)
			fmt.Println("\nAvailable views:")
			for _, n := range names {
				mark := "✗"
				if caps[stats.View(n)] {
					mark = "✓"
				}
				fmt.Printf("  %s %s\n", mark, n)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
