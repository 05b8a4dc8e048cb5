package compaction

import "fmt"

// Default configuration values.
const (
	DefaultSummaryMaxChars     = 400
	DefaultFieldTruncateAt     = 60
	DefaultKeepLast            = 10
	DefaultTargetTokens        = 4000
	DefaultSummarizerModel     = "claude-3-5-haiku-20241022"
	DefaultSummarizerMaxTokens = 1024
)

// Config holds compaction configuration.
type Config struct {
	// SummaryMaxChars is the character budget for a produced summary body.
	// Default: 400
	SummaryMaxChars int

	// FieldTruncateAt is the per-field cap applied to shell command
	// tails and function output bodies before the ellipsis marker.
	// Default: 60
	FieldTruncateAt int

	// KeepLast is the number of trailing message items the pruner
	// always retains.
	// Default: 10
	KeepLast int

	// TargetTokens is the estimated-token budget the selection policy
	// compacts down to.
	// Default: 4000
	TargetTokens int

	// SummarizerModel is the model used by the model-backed summarizer.
	// Default: "claude-3-5-haiku-20241022"
	SummarizerModel string

	// SummarizerMaxTokens caps the model-backed summarizer response.
	// Default: 1024
	SummarizerMaxTokens int
}

// DefaultConfig returns a Config with the default values.
func DefaultConfig() *Config {
	return &Config{
		SummaryMaxChars:     DefaultSummaryMaxChars,
		FieldTruncateAt:     DefaultFieldTruncateAt,
		KeepLast:            DefaultKeepLast,
		TargetTokens:        DefaultTargetTokens,
		SummarizerModel:     DefaultSummarizerModel,
		SummarizerMaxTokens: DefaultSummarizerMaxTokens,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *Config) ApplyDefaults() {
	if c.SummaryMaxChars == 0 {
		c.SummaryMaxChars = DefaultSummaryMaxChars
	}
	if c.FieldTruncateAt == 0 {
		c.FieldTruncateAt = DefaultFieldTruncateAt
	}
	if c.KeepLast == 0 {
		c.KeepLast = DefaultKeepLast
	}
	if c.TargetTokens == 0 {
		c.TargetTokens = DefaultTargetTokens
	}
	if c.SummarizerModel == "" {
		c.SummarizerModel = DefaultSummarizerModel
	}
	if c.SummarizerMaxTokens == 0 {
		c.SummarizerMaxTokens = DefaultSummarizerMaxTokens
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.SummaryMaxChars <= 0 {
		return fmt.Errorf("%w: summary_max_chars must be positive, got %d", ErrInvalidConfig, c.SummaryMaxChars)
	}
	if c.FieldTruncateAt <= 0 {
		return fmt.Errorf("%w: field_truncate_at must be positive, got %d", ErrInvalidConfig, c.FieldTruncateAt)
	}
	if c.KeepLast < 0 {
		return fmt.Errorf("%w: keep_last must be non-negative, got %d", ErrInvalidConfig, c.KeepLast)
	}
	if c.TargetTokens <= 0 {
		return fmt.Errorf("%w: target_tokens must be positive, got %d", ErrInvalidConfig, c.TargetTokens)
	}
	if c.SummarizerModel == "" {
		return fmt.Errorf("%w: summarizer_model is required", ErrInvalidConfig)
	}
	if c.SummarizerMaxTokens <= 0 {
		return fmt.Errorf("%w: summarizer_max_tokens must be positive, got %d", ErrInvalidConfig, c.SummarizerMaxTokens)
	}
	return nil
}
