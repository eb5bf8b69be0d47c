package cmd

import (
	"fmt"

	"github.com/KaramelBytes/costview-cli/internal/dataset"
)

// runPipeline executes Loader -> Cleaner -> Filter for the current flags
// and returns the filtered snapshot every data command aggregates over.
func runPipeline() (*dataset.Dataset, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	path := flagFile
	if path == "" {
		path = cfg.DatasetPath
	}
	delim, err := cfg.DelimiterRune()
	if err != nil {
		return nil, err
	}
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}

	ds, err := dataset.Load(path, dataset.Options{Delimiter: delim})
	if err != nil {
		return nil, err
	}
	cleaned := dataset.Clean(ds)
	if debug {
		fmt.Printf("loaded %d rows from %s (%d after cleaning)\n", ds.NumRows(), path, cleaned.NumRows())
	}
	return dataset.Filter(cleaned, flagCountries, policy), nil
}
