package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/costview-cli/internal/dataset"
)

// Global configuration structure.
type Global struct {
	// DatasetPath is the default source consulted when no --file override
	// is supplied.
	DatasetPath string `mapstructure:"dataset_path" yaml:"dataset_path"`
	// Delimiter for CSV sources: "," ";" or "tab". Empty means sniff by
	// file extension.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	// EmptySelection picks the empty-selection policy: "all" or "none".
	EmptySelection string `mapstructure:"empty_selection" yaml:"empty_selection"`
	// TopN is the default ranking depth for the top command.
	TopN int `mapstructure:"top_n" yaml:"top_n"`
	// HistogramBuckets is the default bucket count for histograms.
	HistogramBuckets int `mapstructure:"histogram_buckets" yaml:"histogram_buckets"`

	// Serve mode
	ServeAddr string `mapstructure:"serve_addr" yaml:"serve_addr"`
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
}

// DelimiterRune maps the configured delimiter string to a rune; 0 means
// sniff by extension.
func (c *Global) DelimiterRune() (rune, error) {
	switch c.Delimiter {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case ";":
		return ';', nil
	case "\t", "tab":
		return '\t', nil
	default:
		return 0, fmt.Errorf("unsupported delimiter: %q (use ','|';'|'tab')", c.Delimiter)
	}
}

// Policy maps the configured empty-selection string to the dataset policy.
func (c *Global) Policy() (dataset.EmptySelectionPolicy, error) {
	switch c.EmptySelection {
	case "", "all":
		return dataset.EmptySelectsAll, nil
	case "none":
		return dataset.EmptySelectsNone, nil
	default:
		return dataset.EmptySelectsAll, fmt.Errorf("unsupported empty_selection: %q (use 'all'|'none')", c.EmptySelection)
	}
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.costview/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".costview")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("COSTVIEW")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("dataset_path", dataset.DefaultSourcePath)
	v.SetDefault("delimiter", "")
	v.SetDefault("empty_selection", "all")
	v.SetDefault("top_n", 10)
	v.SetDefault("histogram_buckets", 20)
	v.SetDefault("serve_addr", "127.0.0.1:8400")
	v.SetDefault("log_level", "info")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".costview")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
