package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/costview-cli/internal/render"
	"github.com/KaramelBytes/costview-cli/internal/stats"
)

var corrColumns []string

var corrCmd = &cobra.Command{
	Use:   "corr",
	Short: "Pearson correlation matrix over the indicator columns",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := runPipeline()
		if err != nil {
			return err
		}
		cols := corrColumns
		if len(cols) == 0 {
			cols = ds.PresentIndicators()
		}
		if len(cols) < 2 {
			fmt.Println("Need at least two numeric columns for a correlation matrix.")
			return nil
		}
		if ds.NumRows() == 0 {
			fmt.Println("No data for the current selection.")
			return nil
		}
		m := stats.CorrelationMatrix(ds, cols)
		render.CorrelationTable(m, os.Stdout)
		return nil
	},
}

func init() {
	corrCmd.Flags().StringSliceVar(&corrColumns, "columns", nil, "columns to correlate (default: present indicator columns)")
	rootCmd.AddCommand(corrCmd)
}
