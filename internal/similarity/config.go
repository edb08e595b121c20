package similarity

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// defaultStopwords is the fixed stop-word list used for word-overlap
// and bigram filtering. Short glue words and filler common to nearly
// every generated bio carry no duplicate signal.
var defaultStopwords = []string{
	"the", "and", "for", "with", "you", "your", "are", "but", "not",
	"all", "can", "has", "have", "this", "that", "was", "will", "from",
	"out", "get", "just", "like", "into", "our", "their", "who", "what",
	"when", "where", "how",
}

// Config holds the classifier's thresholds and knobs. The original
// implementations of this filter disagreed on threshold values between
// copies; these are consolidated policy choices, exposed here instead
// of inlined.
type Config struct {
	// WordOverlapThreshold marks a candidate duplicate when the ratio
	// of shared content tokens to the larger token set exceeds it.
	// Cross-batch default: 0.25. Within-batch default: 0.55.
	WordOverlapThreshold float64

	// SentenceSimilarityThreshold marks a candidate duplicate when any
	// sentence pair's edit-distance similarity exceeds it.
	// Cross-batch default: 0.65.
	SentenceSimilarityThreshold float64

	// EmojiOverlapThreshold marks a candidate duplicate when the emoji
	// set overlap ratio exceeds it. Zero disables the signal.
	// Default: 0.5.
	EmojiOverlapThreshold float64

	// PhraseSizes lists the n-gram lengths checked for shared phrases.
	// Any shared phrase of a listed size is a duplicate. Phrases of
	// size 2 additionally exclude chunks containing a stop word.
	// Cross-batch default: [2, 3]. Within-batch default: [4].
	PhraseSizes []int

	// MinTokenLength drops words of this many runes or fewer from
	// word-overlap scoring. Default: 2 (keep words longer than 2).
	MinTokenLength int

	// MinFragmentLength drops sentence fragments of this many runes or
	// fewer from sentence-level comparison. Default: 10.
	MinFragmentLength int

	// Stopwords overrides the default stop-word list when non-nil.
	Stopwords []string

	// EmojiExtractor overrides the default emoji extraction when
	// non-nil. The classifier treats emoji as a pluggable signal.
	EmojiExtractor EmojiExtractor
}

// DefaultConfig returns the strict cross-batch profile, used when
// comparing candidates against bios the user has already seen.
func DefaultConfig() Config {
	return Config{
		WordOverlapThreshold:        0.25,
		SentenceSimilarityThreshold: 0.65,
		EmojiOverlapThreshold:       0.5,
		PhraseSizes:                 []int{2, 3},
		MinTokenLength:              2,
		MinFragmentLength:           10,
	}
}

// WithinBatchConfig returns the looser profile used when comparing
// candidates against each other inside one generation batch. Some
// repetition within a single response is tolerable; only near-verbatim
// repeats are dropped.
func WithinBatchConfig() Config {
	return Config{
		WordOverlapThreshold:        0.55,
		SentenceSimilarityThreshold: 0.80,
		EmojiOverlapThreshold:       0, // emoji reuse within one response is expected
		PhraseSizes:                 []int{4},
		MinTokenLength:              2,
		MinFragmentLength:           10,
	}
}

// Validate checks if the configuration has valid values.
func (c Config) Validate() error {
	if c.WordOverlapThreshold < 0.0 || c.WordOverlapThreshold > 1.0 {
		return fmt.Errorf("word_overlap_threshold must be between 0.0 and 1.0 (got %.2f)", c.WordOverlapThreshold)
	}
	if c.SentenceSimilarityThreshold < 0.0 || c.SentenceSimilarityThreshold > 1.0 {
		return fmt.Errorf("sentence_similarity_threshold must be between 0.0 and 1.0 (got %.2f)", c.SentenceSimilarityThreshold)
	}
	if c.EmojiOverlapThreshold < 0.0 || c.EmojiOverlapThreshold > 1.0 {
		return fmt.Errorf("emoji_overlap_threshold must be between 0.0 and 1.0 (got %.2f)", c.EmojiOverlapThreshold)
	}
	if len(c.PhraseSizes) == 0 {
		return fmt.Errorf("phrase_sizes cannot be empty")
	}
	for _, n := range c.PhraseSizes {
		if n < 2 || n > 10 {
			return fmt.Errorf("phrase size %d out of range (2-10)", n)
		}
	}
	if c.MinTokenLength < 0 || c.MinTokenLength > 20 {
		return fmt.Errorf("min_token_length out of range (got %d, max 20)", c.MinTokenLength)
	}
	if c.MinFragmentLength < 0 || c.MinFragmentLength > 200 {
		return fmt.Errorf("min_fragment_length out of range (got %d, max 200)", c.MinFragmentLength)
	}
	return nil
}

// String returns a human-readable representation of the config.
func (c Config) String() string {
	sizes := make([]string, len(c.PhraseSizes))
	for i, n := range c.PhraseSizes {
		sizes[i] = strconv.Itoa(n)
	}
	return fmt.Sprintf(
		"Config{WordOverlap: %.2f, SentenceSim: %.2f, EmojiOverlap: %.2f, PhraseSizes: [%s], MinToken: %d, MinFragment: %d}",
		c.WordOverlapThreshold, c.SentenceSimilarityThreshold, c.EmojiOverlapThreshold,
		strings.Join(sizes, ","), c.MinTokenLength, c.MinFragmentLength,
	)
}

// ConfigFromEnv creates a cross-batch Config from environment
// variables, falling back to defaults.
//
// Environment variables:
//   - BIOFORGE_SIM_WORD_OVERLAP: word-overlap threshold (default: 0.25)
//   - BIOFORGE_SIM_SENTENCE: sentence similarity threshold (default: 0.65)
//   - BIOFORGE_SIM_EMOJI: emoji overlap threshold, 0 disables (default: 0.5)
//   - BIOFORGE_SIM_PHRASE_SIZES: comma-separated n-gram sizes (default: 2,3)
//
// Returns an error if any variable has an invalid value.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if err := parseEnvFloat("BIOFORGE_SIM_WORD_OVERLAP", &cfg.WordOverlapThreshold); err != nil {
		return cfg, err
	}
	if err := parseEnvFloat("BIOFORGE_SIM_SENTENCE", &cfg.SentenceSimilarityThreshold); err != nil {
		return cfg, err
	}
	if err := parseEnvFloat("BIOFORGE_SIM_EMOJI", &cfg.EmojiOverlapThreshold); err != nil {
		return cfg, err
	}
	if err := parseEnvIntList("BIOFORGE_SIM_PHRASE_SIZES", &cfg.PhraseSizes); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration from environment: %w", err)
	}

	return cfg, nil
}

// parseEnvFloat parses a float64 from an environment variable.
func parseEnvFloat(key string, dest *float64) error {
	value := os.Getenv(key)
	if value == "" {
		return nil // Use default
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	*dest = parsed
	return nil
}

// parseEnvIntList parses a comma-separated int list from an environment
// variable.
func parseEnvIntList(key string, dest *[]int) error {
	value := os.Getenv(key)
	if value == "" {
		return nil // Use default
	}
	parts := strings.Split(value, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
		out = append(out, n)
	}
	*dest = out
	return nil
}

// stopwordSet builds the lookup set from the configured (or default)
// stop-word list.
func (c Config) stopwordSet() map[string]struct{} {
	list := c.Stopwords
	if list == nil {
		list = defaultStopwords
	}
	set := make(map[string]struct{}, len(list))
	for _, w := range list {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}
