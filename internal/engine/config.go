package engine

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/instabio/bioforge/internal/similarity"
)

// Config holds the orchestrator's knobs.
type Config struct {
	// TargetCount is the number of bios a round aims to return.
	// Default: 6.
	TargetCount int

	// MinViable is the smallest acceptable result before the engine
	// relaxes history filtering to within-batch-unique candidates.
	// Showing some content beats showing none. Default: 3.
	MinViable int

	// PerCallCount is how many candidates each generation call asks
	// for. Default: 6.
	PerCallCount int

	// CallInterval paces consecutive generation calls to stay under
	// backend rate limits. Default: 1s.
	CallInterval time.Duration

	// CrossBatch is the strict classifier profile applied against
	// session history.
	CrossBatch similarity.Config

	// WithinBatch is the looser profile applied between candidates of
	// the same round.
	WithinBatch similarity.Config
}

// DefaultConfig returns the default orchestrator configuration.
func DefaultConfig() Config {
	return Config{
		TargetCount:  6,
		MinViable:    3,
		PerCallCount: 6,
		CallInterval: 1 * time.Second,
		CrossBatch:   similarity.DefaultConfig(),
		WithinBatch:  similarity.WithinBatchConfig(),
	}
}

// Validate checks if the configuration has valid values.
func (c Config) Validate() error {
	if c.TargetCount <= 0 {
		return fmt.Errorf("target_count must be positive (got %d)", c.TargetCount)
	}
	if c.TargetCount > 50 {
		return fmt.Errorf("target_count too large (got %d, max 50)", c.TargetCount)
	}
	if c.MinViable < 0 {
		return fmt.Errorf("min_viable cannot be negative (got %d)", c.MinViable)
	}
	if c.MinViable > c.TargetCount {
		return fmt.Errorf("min_viable (%d) cannot exceed target_count (%d)", c.MinViable, c.TargetCount)
	}
	if c.PerCallCount <= 0 {
		return fmt.Errorf("per_call_count must be positive (got %d)", c.PerCallCount)
	}
	if c.CallInterval < 0 {
		return fmt.Errorf("call_interval cannot be negative (got %v)", c.CallInterval)
	}
	if c.CallInterval > time.Minute {
		return fmt.Errorf("call_interval too large (got %v, max 1 minute)", c.CallInterval)
	}
	if err := c.CrossBatch.Validate(); err != nil {
		return fmt.Errorf("cross_batch: %w", err)
	}
	if err := c.WithinBatch.Validate(); err != nil {
		return fmt.Errorf("within_batch: %w", err)
	}
	return nil
}

// ConfigFromEnv creates a Config from environment variables, falling
// back to defaults. The similarity profiles are read via
// similarity.ConfigFromEnv for the cross-batch side.
//
// Environment variables:
//   - BIOFORGE_TARGET_COUNT: bios per round (default: 6)
//   - BIOFORGE_MIN_VIABLE: relaxation floor (default: 3)
//   - BIOFORGE_PER_CALL_COUNT: candidates per generation call (default: 6)
//   - BIOFORGE_CALL_INTERVAL_MS: pacing between calls in ms (default: 1000)
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if err := parseEnvInt("BIOFORGE_TARGET_COUNT", &cfg.TargetCount); err != nil {
		return cfg, err
	}
	if err := parseEnvInt("BIOFORGE_MIN_VIABLE", &cfg.MinViable); err != nil {
		return cfg, err
	}
	if err := parseEnvInt("BIOFORGE_PER_CALL_COUNT", &cfg.PerCallCount); err != nil {
		return cfg, err
	}
	if err := parseEnvDuration("BIOFORGE_CALL_INTERVAL_MS", &cfg.CallInterval, time.Millisecond); err != nil {
		return cfg, err
	}

	cross, err := similarity.ConfigFromEnv()
	if err != nil {
		return cfg, err
	}
	cfg.CrossBatch = cross

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration from environment: %w", err)
	}
	return cfg, nil
}

// fileConfig is the YAML shape of the optional config file. Pointer
// fields distinguish "absent" from zero.
type fileConfig struct {
	TargetCount    *int `yaml:"target_count,omitempty"`
	MinViable      *int `yaml:"min_viable,omitempty"`
	PerCallCount   *int `yaml:"per_call_count,omitempty"`
	CallIntervalMs *int `yaml:"call_interval_ms,omitempty"`

	Similarity struct {
		WordOverlap    *float64 `yaml:"word_overlap,omitempty"`
		Sentence       *float64 `yaml:"sentence,omitempty"`
		Emoji          *float64 `yaml:"emoji,omitempty"`
		PhraseSizes    []int    `yaml:"phrase_sizes,omitempty"`
		Stopwords      []string `yaml:"stopwords,omitempty"`
	} `yaml:"similarity"`

	WithinBatch struct {
		WordOverlap *float64 `yaml:"word_overlap,omitempty"`
		Sentence    *float64 `yaml:"sentence,omitempty"`
		PhraseSizes []int    `yaml:"phrase_sizes,omitempty"`
	} `yaml:"within_batch"`
}

// LoadConfigFile loads orchestrator configuration from a YAML file,
// applying it over the defaults.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parsing YAML: %w", err)
	}

	if fc.TargetCount != nil {
		cfg.TargetCount = *fc.TargetCount
	}
	if fc.MinViable != nil {
		cfg.MinViable = *fc.MinViable
	}
	if fc.PerCallCount != nil {
		cfg.PerCallCount = *fc.PerCallCount
	}
	if fc.CallIntervalMs != nil {
		cfg.CallInterval = time.Duration(*fc.CallIntervalMs) * time.Millisecond
	}

	if fc.Similarity.WordOverlap != nil {
		cfg.CrossBatch.WordOverlapThreshold = *fc.Similarity.WordOverlap
	}
	if fc.Similarity.Sentence != nil {
		cfg.CrossBatch.SentenceSimilarityThreshold = *fc.Similarity.Sentence
	}
	if fc.Similarity.Emoji != nil {
		cfg.CrossBatch.EmojiOverlapThreshold = *fc.Similarity.Emoji
	}
	if len(fc.Similarity.PhraseSizes) > 0 {
		cfg.CrossBatch.PhraseSizes = fc.Similarity.PhraseSizes
	}
	if len(fc.Similarity.Stopwords) > 0 {
		cfg.CrossBatch.Stopwords = fc.Similarity.Stopwords
		cfg.WithinBatch.Stopwords = fc.Similarity.Stopwords
	}

	if fc.WithinBatch.WordOverlap != nil {
		cfg.WithinBatch.WordOverlapThreshold = *fc.WithinBatch.WordOverlap
	}
	if fc.WithinBatch.Sentence != nil {
		cfg.WithinBatch.SentenceSimilarityThreshold = *fc.WithinBatch.Sentence
	}
	if len(fc.WithinBatch.PhraseSizes) > 0 {
		cfg.WithinBatch.PhraseSizes = fc.WithinBatch.PhraseSizes
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	return cfg, nil
}

// parseEnvInt parses an int from an environment variable.
func parseEnvInt(key string, dest *int) error {
	value := os.Getenv(key)
	if value == "" {
		return nil // Use default
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	*dest = parsed
	return nil
}

// parseEnvDuration parses a duration from an environment variable,
// multiplying the numeric value by the given unit.
func parseEnvDuration(key string, dest *time.Duration, unit time.Duration) error {
	value := os.Getenv(key)
	if value == "" {
		return nil // Use default
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	*dest = time.Duration(parsed) * unit
	return nil
}
