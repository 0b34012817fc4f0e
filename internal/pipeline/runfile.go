// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

// RunFile is the on-disk representation of a pipeline run: the query,
// the settings that produced it, and the classified papers. A saved run
// can be re-examined later without re-querying the API.
type RunFile struct {
	Query   string                  `yaml:"query"`
	Config  RunFileConfig           `yaml:"config"`
	Papers  []types.ClassifiedPaper `yaml:"papers"`
	Summary RunSummary              `yaml:"summary"`
}

// RunFileConfig stores the search settings that produced the run.
type RunFileConfig struct {
	MaxResults int    `yaml:"max_results"`
	Sort       string `yaml:"sort,omitempty"`
}

// RunSummary stores run statistics and a timestamp.
type RunSummary struct {
	Found     int       `yaml:"found"`
	Fetched   int       `yaml:"fetched"`
	Relevant  int       `yaml:"relevant"`
	Excluded  int       `yaml:"excluded"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteRunFile saves a run and its results to a YAML file.
func WriteRunFile(path, query string, cfg types.SearchConfig, res Result) error {
	rf := RunFile{
		Query: query,
		Config: RunFileConfig{
			MaxResults: cfg.MaxResults,
			Sort:       cfg.Sort,
		},
		Papers: res.Papers,
		Summary: RunSummary{
			Found:     len(res.PMIDs),
			Fetched:   res.Fetched,
			Relevant:  len(res.Papers),
			Excluded:  res.Excluded,
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling run file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadRunFile loads a previously saved run file from disk.
func ReadRunFile(path string) (*RunFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run file: %w", err)
	}
	var rf RunFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing run file: %w", err)
	}
	return &rf, nil
}
