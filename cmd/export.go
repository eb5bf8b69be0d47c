package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/costview-cli/internal/storage"
)

var (
	exportOutput string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the filtered dataset to CSV or SQLite",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := runPipeline()
		if err != nil {
			return err
		}

		var w storage.SnapshotWriter
		switch exportFormat {
		case "csv":
			w, err = storage.NewCSVWriter(exportOutput)
		case "sqlite":
			w, err = storage.NewSQLiteWriter(exportOutput)
		default:
			return fmt.Errorf("unsupported --format: %s (use csv|sqlite)", exportFormat)
		}
		if err != nil {
			return err
		}
		defer w.Close()

		if err := w.Write(ds); err != nil {
			return err
		}
		fmt.Printf("✓ Exported %d rows to %s\n", ds.NumRows(), exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "costview_export.csv", "output path")
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "output format: csv or sqlite")
	rootCmd.AddCommand(exportCmd)
}
