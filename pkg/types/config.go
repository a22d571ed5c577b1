package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-digest/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// DiscoveryConfig holds settings for the listing-discovery stage.
type DiscoveryConfig struct {
	HTTPConfig `yaml:",inline"`

	// ListingURL overrides the default trending-listing page (empty =
	// default).
	ListingURL string `json:"listing_url,omitempty" yaml:"listing_url,omitempty"`

	// MaxPapers caps the number of candidates taken from the listing
	// (0 = no cap).
	MaxPapers int `json:"max_papers" yaml:"max_papers"`
}

// ExtractionConfig holds settings for the text-extraction stage.
type ExtractionConfig struct {
	HTTPConfig `yaml:",inline"`
}

// SummaryConfig holds settings for the summarization stage.
type SummaryConfig struct {
	// Model is the generative model identifier (e.g. "gemini-1.5-flash").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the generative API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Instruction is the prompt instruction placed before the paper text.
	// Empty selects the default instruction.
	Instruction string `json:"instruction,omitempty" yaml:"instruction,omitempty"`
}

// DigestConfig holds settings for the pipeline run.
type DigestConfig struct {
	// Delay is the pause between consecutive papers in sequential mode.
	Delay time.Duration `json:"delay" yaml:"delay"`

	// Workers bounds the number of papers processed concurrently.
	// Values <= 1 select strictly sequential processing.
	Workers int `json:"workers" yaml:"workers"`
}

// RenderConfig holds settings for the rendering stage.
type RenderConfig struct {
	// OutputPath is the HTML digest file written in the working directory.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// YAMLPath is an optional machine-readable export of the run's records
	// (empty = disabled).
	YAMLPath string `json:"yaml_path,omitempty" yaml:"yaml_path,omitempty"`
}

// PipelineConfig groups all stage configurations for one digest run.
type PipelineConfig struct {
	Discovery  DiscoveryConfig  `json:"discovery" yaml:"discovery"`
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
	Summary    SummaryConfig    `json:"summary" yaml:"summary"`
	Digest     DigestConfig     `json:"digest" yaml:"digest"`
	Render     RenderConfig     `json:"render" yaml:"render"`
}
