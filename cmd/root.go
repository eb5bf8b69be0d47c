package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/costview-cli/internal/config"
)

var (
	// Global flags
	cfgFile       string
	debug         bool
	flagFile      string
	flagCountries []string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "costview",
	Short: "CostView CLI: analyze cost-of-living indices across countries",
	Long: `CostView loads a CSV or XLSX of cost-of-living indices, cleans and
filters it by country, and computes the summary tables and chart data a
dashboard frontend renders: KPI means, top-N rankings, histograms, and a
correlation matrix.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.costview/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagFile, "file", "", "dataset file overriding the configured source")
	rootCmd.PersistentFlags().StringSliceVar(&flagCountries, "countries", nil, "country selection (exact names); empty follows the empty_selection policy")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}
