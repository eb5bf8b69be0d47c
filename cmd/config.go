package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/costview-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set CostView configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("dataset_path: %s\n", cfg.DatasetPath)
		if cfg.Delimiter != "" {
			fmt.Printf("delimiter: %s\n", cfg.Delimiter)
		}
		fmt.Printf("empty_selection: %s\n", cfg.EmptySelection)
		fmt.Printf("top_n: %d\n", cfg.TopN)
		fmt.Printf("histogram_buckets: %d\n", cfg.HistogramBuckets)
		fmt.Printf("serve_addr: %s\n", cfg.ServeAddr)
		fmt.Printf("log_level: %s\n", cfg.LogLevel)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "dataset_path":
			cfg.DatasetPath = val
		case "delimiter":
			cfg.Delimiter = val
			if _, err := cfg.DelimiterRune(); err != nil {
				return err
			}
		case "empty_selection":
			cfg.EmptySelection = val
			if _, err := cfg.Policy(); err != nil {
				return err
			}
		case "top_n":
			n, err := strconv.Atoi(val)
			if err != nil || n < 1 {
				return fmt.Errorf("invalid top_n: %s", val)
			}
			cfg.TopN = n
		case "histogram_buckets":
			n, err := strconv.Atoi(val)
			if err != nil || n < 1 {
				return fmt.Errorf("invalid histogram_buckets: %s", val)
			}
			cfg.HistogramBuckets = n
		case "serve_addr":
			cfg.ServeAddr = val
		case "log_level":
			cfg.LogLevel = val
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Saved %s\n", key)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
