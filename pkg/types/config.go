package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that talk to the
// E-utilities endpoints.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pharma-papers/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for PubMed search and fetch.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of PMIDs to retrieve (default 100).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Sort selects the ESearch result order (default "relevance").
	Sort string `json:"sort" yaml:"sort"`

	// APIKey is an optional NCBI API key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Email is sent with requests per the E-utilities usage policy.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// RequestDelay is the pause between consecutive EFetch requests
	// (default 350ms, under the 3 req/s keyless limit).
	RequestDelay time.Duration `json:"request_delay" yaml:"request_delay"`

	// FetchBatchSize is the number of PMIDs per EFetch request (default 200).
	FetchBatchSize int `json:"fetch_batch_size" yaml:"fetch_batch_size"`
}

// ReportConfig holds settings for report output.
type ReportConfig struct {
	// OutputFile is the CSV destination (default "pubmed_results.csv").
	OutputFile string `json:"output_file" yaml:"output_file"`
}

// StoreConfig holds settings for the run archive.
type StoreConfig struct {
	// DataDir is the base directory for the archive (contains index/).
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Search SearchConfig `json:"search" yaml:"search"`
	Report ReportConfig `json:"report" yaml:"report"`
	Store  StoreConfig  `json:"store" yaml:"store"`
}
